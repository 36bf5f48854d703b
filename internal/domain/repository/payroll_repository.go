package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// PayrollPeriodRepository periodos de nómina. Solo el gestor de periodos lo usa directamente.
type PayrollPeriodRepository interface {
	Create(ctx context.Context, p *entity.PayrollPeriod) error
	GetByID(ctx context.Context, id string) (*entity.PayrollPeriod, error)
	// GetForUpdate lee el periodo bloqueando su fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.PayrollPeriod, error)
	// GetActive periodo activo; nil si no hay.
	GetActive(ctx context.Context) (*entity.PayrollPeriod, error)
	// CloseActive cierra todos los periodos activos y devuelve cuántos cerró.
	CloseActive(ctx context.Context, at time.Time) (int, error)
	// Close cierra el periodo si está activo. false = ya estaba cerrado.
	Close(ctx context.Context, id string, at time.Time) (bool, error)
	UpdateRanges(ctx context.Context, p *entity.PayrollPeriod) error
	List(ctx context.Context) ([]*entity.PayrollPeriod, error)
}

// PayrollRecordRepository campos ajustables por (periodo, empleado).
type PayrollRecordRepository interface {
	Get(ctx context.Context, periodID, employeeID string) (*entity.PayrollEmployeeRecord, error)
	ListByPeriod(ctx context.Context, periodID string) ([]*entity.PayrollEmployeeRecord, error)
	Upsert(ctx context.Context, r *entity.PayrollEmployeeRecord) error
}
