package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// PeriodManager dueño único del periodo de nómina activo. Nadie más consulta la tabla de periodos.
type PeriodManager struct {
	tx      TxRunner
	periods repository.PayrollPeriodRepository
	now     func() time.Time
}

// NewPeriodManager construye el gestor.
func NewPeriodManager(tx TxRunner, periods repository.PayrollPeriodRepository) *PeriodManager {
	return &PeriodManager{tx: tx, periods: periods, now: time.Now}
}

// Active periodo activo o ErrNoActivePeriod.
func (m *PeriodManager) Active(ctx context.Context) (*entity.PayrollPeriod, error) {
	p, err := m.periods.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar periodo activo: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNoActivePeriod
	}
	return p, nil
}

// Resolve periodo por ID; sin ID devuelve el activo.
func (m *PeriodManager) Resolve(ctx context.Context, periodID string) (*entity.PayrollPeriod, error) {
	if periodID == "" {
		return m.Active(ctx)
	}
	p, err := m.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("periodo de nómina")
	}
	return p, nil
}

// Open cierra cualquier periodo activo y abre uno nuevo en la misma transacción.
func (m *PeriodManager) Open(ctx context.Context, actor access.Actor, in dto.OpenPeriodRequest) (*dto.PayrollPeriodResponse, error) {
	if err := access.Require(actor, access.ManagePayroll); err != nil {
		return nil, err
	}
	global, err := ParseRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	groupA, err := parseOptionalRange(in.GroupA)
	if err != nil {
		return nil, err
	}
	groupC, err := parseOptionalRange(in.GroupC)
	if err != nil {
		return nil, err
	}
	now := m.now()
	p := &entity.PayrollPeriod{
		ID:        uuid.New().String(),
		Start:     global.Start,
		End:       global.End,
		GroupA:    groupA,
		GroupC:    groupC,
		Active:    true,
		Status:    entity.PayrollStatusOpen,
		CreatedAt: now,
	}
	var closed int
	err = m.tx.RunPayroll(ctx, func(periods repository.PayrollPeriodRepository, _ repository.PayrollRecordRepository) error {
		n, err := periods.CloseActive(ctx, now)
		if err != nil {
			return fmt.Errorf("cerrar periodos activos: %w", err)
		}
		closed = n
		return periods.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("periodo", p.ID).Int("cerrados", closed).Str("por", actor.Username).Msg("periodo de nómina abierto")
	return ToPeriodResponse(p), nil
}

// SetGroupRanges cambia los sub-rangos A/C; solo en periodos abiertos.
func (m *PeriodManager) SetGroupRanges(ctx context.Context, actor access.Actor, periodID string, in dto.GroupRangesRequest) (*dto.PayrollPeriodResponse, error) {
	if err := access.Require(actor, access.ManagePayroll); err != nil {
		return nil, err
	}
	var groupA, groupC *entity.DateRange
	var err error
	if in.GroupA != nil {
		if groupA, err = parseOptionalRange(in.GroupA); err != nil {
			return nil, err
		}
	}
	if in.GroupC != nil {
		if groupC, err = parseOptionalRange(in.GroupC); err != nil {
			return nil, err
		}
	}
	var updated *entity.PayrollPeriod
	err = m.WithOpenPeriod(ctx, periodID, func(p *entity.PayrollPeriod, periods repository.PayrollPeriodRepository, _ repository.PayrollRecordRepository) error {
		if in.GroupA != nil {
			p.GroupA = groupA
		}
		if in.GroupC != nil {
			p.GroupC = groupC
		}
		updated = p
		return periods.UpdateRanges(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return ToPeriodResponse(updated), nil
}

// WithOpenPeriod ejecuta fn en una transacción que bloquea la fila del periodo y vuelve a
// comprobar que siga abierto. Un Close concurrente espera a que la transacción termine; si
// cerró antes, fn no corre y se devuelve ErrPeriodClosed. Sin periodID usa el activo.
func (m *PeriodManager) WithOpenPeriod(ctx context.Context, periodID string, fn func(
	p *entity.PayrollPeriod,
	periods repository.PayrollPeriodRepository,
	records repository.PayrollRecordRepository,
) error) error {
	resolved, err := m.Resolve(ctx, periodID)
	if err != nil {
		return err
	}
	if !resolved.IsOpen() {
		return domain.ErrPeriodClosed
	}
	return m.tx.RunPayroll(ctx, func(periods repository.PayrollPeriodRepository, records repository.PayrollRecordRepository) error {
		p, err := periods.GetForUpdate(ctx, resolved.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFound("periodo de nómina")
		}
		if !p.IsOpen() {
			return domain.ErrPeriodClosed
		}
		return fn(p, periods, records)
	})
}

// Close cierra el periodo. Es terminal: no se reabre.
func (m *PeriodManager) Close(ctx context.Context, actor access.Actor, periodID string) (*dto.PayrollPeriodResponse, error) {
	if err := access.Require(actor, access.ManagePayroll); err != nil {
		return nil, err
	}
	p, err := m.Resolve(ctx, periodID)
	if err != nil {
		return nil, err
	}
	now := m.now()
	ok, err := m.periods.Close(ctx, p.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: el periodo ya está cerrado", domain.ErrInvalidState)
	}
	p.Active = false
	p.Status = entity.PayrollStatusClosed
	p.ClosedAt = &now
	log.Info().Str("periodo", p.ID).Str("por", actor.Username).Msg("periodo de nómina cerrado")
	return ToPeriodResponse(p), nil
}

// List historial de periodos.
func (m *PeriodManager) List(ctx context.Context, actor access.Actor) ([]dto.PayrollPeriodResponse, error) {
	if err := access.Require(actor, access.ViewPayroll); err != nil {
		return nil, err
	}
	list, err := m.periods.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollPeriodResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToPeriodResponse(p))
	}
	return out, nil
}

// ToPeriodResponse mapea el periodo con sus rangos efectivos por grupo.
func ToPeriodResponse(p *entity.PayrollPeriod) *dto.PayrollPeriodResponse {
	a := p.RangeFor(entity.PayrollGroupA)
	c := p.RangeFor(entity.PayrollGroupC)
	return &dto.PayrollPeriodResponse{
		ID:       p.ID,
		Start:    p.Start.Format(dto.DateLayout),
		End:      p.End.Format(dto.DateLayout),
		GroupA:   dto.DateRangeDTO{Start: a.Start.Format(dto.DateLayout), End: a.End.Format(dto.DateLayout)},
		GroupC:   dto.DateRangeDTO{Start: c.Start.Format(dto.DateLayout), End: c.End.Format(dto.DateLayout)},
		Active:   p.Active,
		Status:   p.Status,
		ClosedAt: p.ClosedAt,
	}
}

// ParseDate interpreta AAAA-MM-DD como fecha de negocio.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.Invalid("fecha %q inválida, se espera AAAA-MM-DD", s)
	}
	return t, nil
}

// ParseRange rango inclusivo AAAA-MM-DD con inicio <= fin.
func ParseRange(start, end string) (entity.DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return entity.DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return entity.DateRange{}, err
	}
	r := entity.DateRange{Start: s, End: e}
	if !r.Valid() {
		return entity.DateRange{}, domain.Invalid("el inicio %s es posterior al fin %s", start, end)
	}
	return r, nil
}

func parseOptionalRange(in *dto.DateRangeDTO) (*entity.DateRange, error) {
	if in == nil {
		return nil, nil
	}
	r, err := ParseRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
