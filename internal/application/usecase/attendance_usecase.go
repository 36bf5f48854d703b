package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// AttendanceUseCase entrada y salida de los empleados. El día se toma en la zona del negocio.
type AttendanceUseCase struct {
	repo repository.AttendanceRepository
	loc  *time.Location
	now  func() time.Time
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(repo repository.AttendanceRepository, loc *time.Location) *AttendanceUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceUseCase{repo: repo, loc: loc, now: time.Now}
}

// CheckIn registra la entrada de hoy. Una segunda entrada del mismo día es ErrDuplicate.
func (uc *AttendanceUseCase) CheckIn(ctx context.Context, actor access.Actor, in dto.CheckInRequest) (*dto.AttendanceResponse, error) {
	if err := access.Require(actor, access.RecordAttendance); err != nil {
		return nil, err
	}
	shift := strings.TrimSpace(in.Shift)
	if shift == "" {
		return nil, domain.Invalid("turno obligatorio")
	}
	now := uc.now().In(uc.loc)
	a := &entity.Attendance{
		ID:         uuid.New().String(),
		EmployeeID: actor.EmployeeID,
		Username:   actor.Username,
		ModuleID:   actor.ModuleID,
		Shift:      shift,
		Date:       payroll.Date(now),
		CheckIn:    now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	log.Info().Str("empleado", actor.Username).Str("turno", shift).Msg("entrada registrada")
	return toAttendanceResponse(a), nil
}

// CheckOut cierra la entrada abierta de hoy; si no hay, la de ayer (turno que cruza medianoche).
func (uc *AttendanceUseCase) CheckOut(ctx context.Context, actor access.Actor) (*dto.AttendanceResponse, error) {
	if err := access.Require(actor, access.RecordAttendance); err != nil {
		return nil, err
	}
	now := uc.now().In(uc.loc)
	today := payroll.Date(now)
	a, err := uc.repo.GetByDay(ctx, actor.EmployeeID, today)
	if err != nil {
		return nil, err
	}
	if a == nil {
		prev, err := uc.repo.GetByDay(ctx, actor.EmployeeID, today.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		if prev != nil && prev.CheckOut == nil {
			a = prev
		}
	}
	if a == nil {
		return nil, domain.NotFound("entrada del día")
	}
	ok, err := uc.repo.SetCheckOut(ctx, a.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: la salida ya fue registrada", domain.ErrInvalidState)
	}
	a.CheckOut = &now
	return toAttendanceResponse(a), nil
}

// List sin ViewAttendance solo los registros propios; sin AnyModule solo el módulo asignado.
func (uc *AttendanceUseCase) List(ctx context.Context, actor access.Actor, f repository.AttendanceFilter) ([]dto.AttendanceResponse, error) {
	switch {
	case !access.Can(actor.Role, access.ViewAttendance):
		f.EmployeeID, f.ModuleID = actor.EmployeeID, ""
	case !access.Can(actor.Role, access.AnyModule):
		f.ModuleID = actor.ModuleID
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAttendanceResponse(a))
	}
	return out, nil
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Username:    a.Username,
		ModuleID:    a.ModuleID,
		Shift:       a.Shift,
		Date:        a.Date.Format(dto.DateLayout),
		CheckIn:     a.CheckIn,
		CheckOut:    a.CheckOut,
		WorkedHours: a.WorkedHours(),
	}
}
