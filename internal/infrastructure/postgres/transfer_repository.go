package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo traspasos entre módulos sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, product, key, price, product_type, quantity, origin_module_id, destination_module_id,
	status, requested_by, approved_by, folio, visible, created_at, resolved_at`

// Create persiste la solicitud.
func (r *TransferRepo) Create(ctx context.Context, t *entity.Transfer) error {
	query := `INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Product, t.Key, t.Price, t.ProductType, t.Quantity, t.OriginModuleID, t.DestinationModuleID,
		t.Status, t.RequestedBy, t.ApprovedBy, t.Folio, t.Visible, t.CreatedAt, t.ResolvedAt,
	)
	if err != nil {
		return wrapWrite("insert transfer", err)
	}
	return nil
}

// GetByID obtiene un traspaso; nil si no existe.
func (r *TransferRepo) GetByID(ctx context.Context, id string) (*entity.Transfer, error) {
	t, err := scanTransfer(r.q.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// Resolve aplica el estado final solo si el traspaso sigue pendiente.
func (r *TransferRepo) Resolve(ctx context.Context, t *entity.Transfer) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE transfers SET status = $2, approved_by = $3, folio = $4, resolved_at = $5
		WHERE id = $1 AND status = $6`,
		t.ID, t.Status, t.ApprovedBy, t.Folio, t.ResolvedAt, entity.TransferPending)
	if err != nil {
		return false, fmt.Errorf("resolve transfer: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Hide oculta el traspaso de los listados.
func (r *TransferRepo) Hide(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `UPDATE transfers SET visible = FALSE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("hide transfer: %w", err)
	}
	return nil
}

// List traspasos del más reciente al más antiguo.
func (r *TransferRepo) List(ctx context.Context, f repository.TransferFilter) ([]*entity.Transfer, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.ModuleID != "" {
		w.add("(origin_module_id = ? OR destination_module_id = ?)", f.ModuleID)
	}
	if f.VisibleOnly {
		w.raw("visible")
	}
	rows, err := r.q.Query(ctx, `SELECT `+transferColumns+` FROM transfers`+w.sql()+` ORDER BY created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	err := row.Scan(
		&t.ID, &t.Product, &t.Key, &t.Price, &t.ProductType, &t.Quantity, &t.OriginModuleID, &t.DestinationModuleID,
		&t.Status, &t.RequestedBy, &t.ApprovedBy, &t.Folio, &t.Visible, &t.CreatedAt, &t.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
