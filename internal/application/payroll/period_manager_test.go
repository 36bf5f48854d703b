package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin  = access.Actor{EmployeeID: "adm", Username: "admin", Role: entity.RoleAdmin}
	asesor = access.Actor{EmployeeID: "e1", Username: "ana", Role: entity.RoleAsesor}
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestActive_NoPeriod(t *testing.T) {
	periods := &memPeriods{}
	m := payroll.NewPeriodManager(memTx{periods: periods}, periods)

	_, err := m.Active(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActivePeriod)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOpen_LeavesExactlyOneActive(t *testing.T) {
	for _, before := range []int{0, 1, 3} {
		periods := &memPeriods{}
		for i := 0; i < before; i++ {
			periods.rows = append(periods.rows, &entity.PayrollPeriod{ID: string(rune('a' + i)), Active: true, Status: entity.PayrollStatusOpen})
		}
		m := payroll.NewPeriodManager(memTx{periods: periods}, periods)

		res, err := m.Open(context.Background(), admin, dto.OpenPeriodRequest{Start: "2025-10-01", End: "2025-10-15"})
		require.NoError(t, err)

		assert.Equal(t, 1, periods.activeCount(), "activos previos: %d", before)
		active, err := m.Active(context.Background())
		require.NoError(t, err)
		assert.Equal(t, res.ID, active.ID)
		assert.Equal(t, "2025-10-01", res.GroupA.Start, "sin sub-rango el grupo usa el global")
	}
}

func TestOpen_RollbackKeepsPreviousActive(t *testing.T) {
	periods := &memPeriods{rows: []*entity.PayrollPeriod{{ID: "old", Active: true, Status: entity.PayrollStatusOpen}}}
	periods.failCreate = errors.New("disco lleno")
	m := payroll.NewPeriodManager(memTx{periods: periods}, periods)

	_, err := m.Open(context.Background(), admin, dto.OpenPeriodRequest{Start: "2025-10-01", End: "2025-10-15"})
	require.Error(t, err)

	active, err := m.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "old", active.ID)
}

func TestOpen_Validation(t *testing.T) {
	periods := &memPeriods{}
	m := payroll.NewPeriodManager(memTx{periods: periods}, periods)
	ctx := context.Background()

	_, err := m.Open(ctx, asesor, dto.OpenPeriodRequest{Start: "2025-10-01", End: "2025-10-15"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = m.Open(ctx, admin, dto.OpenPeriodRequest{Start: "2025-10-15", End: "2025-10-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = m.Open(ctx, admin, dto.OpenPeriodRequest{Start: "15/10/2025", End: "2025-10-30"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, periods.rows)
}

func TestClose_IsTerminal(t *testing.T) {
	periods := &memPeriods{}
	m := payroll.NewPeriodManager(memTx{periods: periods}, periods)
	ctx := context.Background()

	p, err := m.Open(ctx, admin, dto.OpenPeriodRequest{Start: "2025-10-01", End: "2025-10-15"})
	require.NoError(t, err)

	closed, err := m.Close(ctx, admin, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PayrollStatusClosed, closed.Status)
	assert.False(t, closed.Active)

	_, err = m.Close(ctx, admin, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = m.SetGroupRanges(ctx, admin, p.ID, dto.GroupRangesRequest{GroupA: &dto.DateRangeDTO{Start: "2025-10-02", End: "2025-10-14"}})
	assert.ErrorIs(t, err, domain.ErrPeriodClosed)
}

func TestSetGroupRanges_WhileActive(t *testing.T) {
	periods := &memPeriods{}
	m := payroll.NewPeriodManager(memTx{periods: periods}, periods)
	ctx := context.Background()

	_, err := m.Open(ctx, admin, dto.OpenPeriodRequest{Start: "2025-10-01", End: "2025-10-15"})
	require.NoError(t, err)

	res, err := m.SetGroupRanges(ctx, admin, "", dto.GroupRangesRequest{GroupC: &dto.DateRangeDTO{Start: "2025-09-28", End: "2025-10-12"}})
	require.NoError(t, err)
	assert.Equal(t, "2025-09-28", res.GroupC.Start)
	assert.Equal(t, "2025-10-01", res.GroupA.Start)

	active, err := m.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, date("2025-09-28"), active.RangeFor(entity.PayrollGroupC).Start)
}

func TestSetGroupRanges_PeriodClosedMeanwhile(t *testing.T) {
	periods := &memPeriods{}
	m := payroll.NewPeriodManager(memTx{periods: periods}, periods)
	ctx := context.Background()

	p, err := m.Open(ctx, admin, dto.OpenPeriodRequest{Start: "2025-10-01", End: "2025-10-15"})
	require.NoError(t, err)
	periods.beforeLock = func() {
		_, _ = periods.Close(ctx, p.ID, time.Now())
	}

	_, err = m.SetGroupRanges(ctx, admin, p.ID, dto.GroupRangesRequest{GroupC: &dto.DateRangeDTO{Start: "2025-09-28", End: "2025-10-12"}})
	assert.ErrorIs(t, err, domain.ErrPeriodClosed)
	stored, err := periods.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.GroupC)
}
