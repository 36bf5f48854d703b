package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// AttendanceFilter filtros de asistencia; campos vacíos no filtran.
type AttendanceFilter struct {
	ModuleID   string
	EmployeeID string
	From       time.Time
	To         time.Time
}

// AttendanceRepository registros de entrada y salida.
type AttendanceRepository interface {
	// Create una segunda entrada del mismo día devuelve domain.ErrDuplicate.
	Create(ctx context.Context, a *entity.Attendance) error
	// GetByDay registro del empleado en la fecha; nil si no hay.
	GetByDay(ctx context.Context, employeeID string, day time.Time) (*entity.Attendance, error)
	// SetCheckOut fija la salida solo si no estaba registrada. false = ya tenía salida.
	SetCheckOut(ctx context.Context, id string, at time.Time) (bool, error)
	List(ctx context.Context, f AttendanceFilter) ([]*entity.Attendance, error)
}
