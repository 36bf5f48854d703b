package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.DailyCutRepository = (*DailyCutRepo)(nil)

// DailyCutRepo cortes de caja sobre PostgreSQL.
type DailyCutRepo struct {
	q Querier
}

// NewDailyCutRepository construye el adaptador.
func NewDailyCutRepository(q Querier) *DailyCutRepo {
	return &DailyCutRepo{q: q}
}

const cutColumns = `id, module_id, date, cash_total, card_total, system_total, extra_recharges, extra_transport,
	extra_other, grand_total, closed_by, created_at`

// Create guarda el corte. UNIQUE (module_id, date) impide cerrar dos veces el mismo día.
func (r *DailyCutRepo) Create(ctx context.Context, c *entity.DailyCut) error {
	_, err := r.q.Exec(ctx, `INSERT INTO daily_cuts (`+cutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.ModuleID, c.Date, c.CashTotal, c.CardTotal, c.SystemTotal, c.ExtraRecharges, c.ExtraTransport,
		c.ExtraOther, c.GrandTotal, c.ClosedBy, c.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert daily cut", err)
	}
	return nil
}

// List cortes filtrados, del más reciente al más antiguo.
func (r *DailyCutRepo) List(ctx context.Context, f repository.DailyCutFilter) ([]*entity.DailyCut, error) {
	var w whereBuilder
	if f.ModuleID != "" {
		w.add("module_id = ?", f.ModuleID)
	}
	if !f.From.IsZero() {
		w.add("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		w.add("date <= ?", f.To)
	}
	rows, err := r.q.Query(ctx, `SELECT `+cutColumns+` FROM daily_cuts`+w.sql()+` ORDER BY date DESC, created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list daily cuts: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyCut
	for rows.Next() {
		c, err := scanCut(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily cut: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCut(row pgx.Row) (*entity.DailyCut, error) {
	var c entity.DailyCut
	if err := row.Scan(
		&c.ID, &c.ModuleID, &c.Date, &c.CashTotal, &c.CardTotal, &c.SystemTotal, &c.ExtraRecharges,
		&c.ExtraTransport, &c.ExtraOther, &c.GrandTotal, &c.ClosedBy, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Date = dateOnly(c.Date)
	return &c, nil
}
