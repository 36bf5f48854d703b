//go:build integration

package postgres_test

// Pruebas contra PostgreSQL real (testcontainers).
// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/...

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Nomina-api/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// ── Entorno ───────────────────────────────────────────────────────────────────

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("nomina_test"),
		tcPostgres.WithUsername("nomina"),
		tcPostgres.WithPassword("nomina"),
		tcPostgres.WithInitScripts(
			"../../../migrations/0001_init.up.sql",
			"../../../migrations/0002_general_inventory_attendance_cuts.up.sql",
		),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	url, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedModule(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	m := &entity.Module{ID: uuid.NewString(), Name: name, Active: true, CreatedAt: time.Now()}
	require.NoError(t, postgres.NewModuleRepository(pool).Create(context.Background(), m))
	return m.ID
}

func seedEmployee(t *testing.T, pool *pgxpool.Pool, username, moduleID string) string {
	t.Helper()
	now := time.Now()
	e := &entity.Employee{
		ID: uuid.NewString(), Username: username, PasswordHash: "x", Role: entity.RoleAsesor,
		ModuleID: moduleID, BaseSalary: decimal.NewFromInt(1500), Active: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, postgres.NewEmployeeRepository(pool).Create(context.Background(), e))
	return e.ID
}

// ── Inventario ────────────────────────────────────────────────────────────────

func TestInventory_DecrementNeverGoesNegative(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	repo := postgres.NewInventoryRepository(pool)

	require.NoError(t, repo.Upsert(ctx, &entity.ModuleInventory{
		ID: uuid.NewString(), ModuleID: mod, Product: "Funda", Price: decimal.NewFromInt(150),
		ProductType: entity.ProductTypeAccessory, Quantity: 5, UpdatedAt: time.Now(),
	}))

	var ok int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			done, err := repo.Decrement(ctx, mod, "Funda", 1)
			assert.NoError(t, err)
			if done {
				atomic.AddInt32(&ok, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), ok, "solo 5 decrementos caben en la existencia")
	it, err := repo.Get(ctx, mod, "Funda")
	require.NoError(t, err)
	assert.Equal(t, 0, it.Quantity)
}

func TestInventory_IncrementCreatesRow(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Norte")
	repo := postgres.NewInventoryRepository(pool)

	item := &entity.ModuleInventory{
		ID: uuid.NewString(), ModuleID: mod, Product: "Cargador", Key: "CG-1",
		Price: decimal.NewFromInt(90), ProductType: entity.ProductTypeAccessory,
	}
	require.NoError(t, repo.Increment(ctx, item, 3))
	item.ID = uuid.NewString()
	require.NoError(t, repo.Increment(ctx, item, 2))

	it, err := repo.Get(ctx, mod, "Cargador")
	require.NoError(t, err)
	assert.Equal(t, 5, it.Quantity)
	assert.Equal(t, "CG-1", it.Key)
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Sur")
	runner := postgres.NewTxRunner(pool)
	inv := postgres.NewInventoryRepository(pool)

	require.NoError(t, inv.Upsert(ctx, &entity.ModuleInventory{
		ID: uuid.NewString(), ModuleID: mod, Product: "Mica", ProductType: entity.ProductTypeAccessory,
		Quantity: 4, UpdatedAt: time.Now(),
	}))

	err := runner.RunSales(ctx, func(invRepo repository.InventoryRepository, _ repository.SaleRepository, _ repository.InventoryMovementRepository) error {
		ok, err := invRepo.Decrement(ctx, mod, "Mica", 2)
		if err != nil {
			return err
		}
		assert.True(t, ok)
		ok, err = invRepo.Decrement(ctx, mod, "Mica", 3)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		return nil
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, err := inv.Get(ctx, mod, "Mica")
	require.NoError(t, err)
	assert.Equal(t, 4, it.Quantity, "la tx revertida no toca la existencia")
}

// ── Ventas y chips ────────────────────────────────────────────────────────────

func TestSales_CancelOnlyOnce(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	emp := seedEmployee(t, pool, "ana", mod)
	repo := postgres.NewSaleRepository(pool)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s := &entity.Sale{
		ID: uuid.NewString(), EmployeeID: emp, ModuleID: mod, Product: "Funda", ProductType: entity.ProductTypeAccessory,
		Quantity: 1, UnitPrice: decimal.NewFromInt(150), PaymentMethod: entity.PaymentCash, Date: day, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, s))

	first, err := repo.Cancel(ctx, s.ID)
	require.NoError(t, err)
	second, err := repo.Cancel(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)

	list, err := repo.List(ctx, repository.SaleFilter{From: day, To: day, IncludeCancelled: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Cancelled)
	assert.True(t, list[0].Date.Equal(day))

	list, err = repo.List(ctx, repository.SaleFilter{From: day, To: day})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestChips_MarkValidatedOnce(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	emp := seedEmployee(t, pool, "carlos", mod)
	repo := postgres.NewChipSaleRepository(pool)

	c := &entity.ChipSale{
		ID: uuid.NewString(), EmployeeID: emp, ModuleID: mod, ChipType: "Chip Azul", PhoneNumber: "5512345678",
		RechargeAmount: decimal.NewFromInt(60), Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, c))

	ten, other := decimal.NewFromInt(10), decimal.NewFromInt(99)
	reason := "tarde"
	first := *c
	first.Validated = true
	first.Commission = &ten
	ok, err := repo.MarkValidated(ctx, &first)
	require.NoError(t, err)
	assert.True(t, ok)

	second := *c
	second.Validated = true
	second.Commission = &other
	ok, err = repo.MarkValidated(ctx, &second)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Commission)
	assert.True(t, got.Commission.Equal(ten), "la segunda validación no cambia la comisión")

	ok, err = repo.SetRejection(ctx, c.ID, &reason)
	require.NoError(t, err)
	assert.False(t, ok, "un chip validado no se rechaza")
}

func TestChips_RejectedIsNotValidated(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	emp := seedEmployee(t, pool, "carlos", mod)
	repo := postgres.NewChipSaleRepository(pool)

	c := &entity.ChipSale{
		ID: uuid.NewString(), EmployeeID: emp, ModuleID: mod, ChipType: "Chip Azul", PhoneNumber: "5512345678",
		RechargeAmount: decimal.NewFromInt(60), Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, c))

	ok, err := repo.SetRejection(ctx, c.ID, nil)
	require.NoError(t, err)
	assert.False(t, ok, "no hay rechazo que revertir")

	reason := "número duplicado"
	ok, err = repo.SetRejection(ctx, c.ID, &reason)
	require.NoError(t, err)
	assert.True(t, ok)

	ten := decimal.NewFromInt(10)
	v := *c
	v.Validated = true
	v.Commission = &ten
	ok, err = repo.MarkValidated(ctx, &v)
	require.NoError(t, err)
	assert.False(t, ok, "un chip rechazado no se valida")

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.Validated)
	assert.Nil(t, got.Commission)
}

// ── Reglas y nómina ───────────────────────────────────────────────────────────

func TestCommissionRules_DuplicateProductIgnoresCase(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewCommissionRuleRepository(pool)
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &entity.CommissionRule{
		ID: uuid.NewString(), Product: "Funda", Amount: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now,
	}))
	err := repo.Create(ctx, &entity.CommissionRule{
		ID: uuid.NewString(), Product: " FUNDA ", Amount: decimal.NewFromInt(7), CreatedAt: now, UpdatedAt: now,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestChipTiers_SeededAndReplace(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewChipTierRepository(pool)

	tiers, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tiers, 9)

	require.NoError(t, repo.Replace(ctx, "Chip Azul", []*entity.ChipCommissionTier{{
		ID: uuid.NewString(), Min: decimal.Zero, Max: decimal.NewFromInt(1000), Amount: decimal.NewFromInt(20),
	}}))
	tiers, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tiers, 7)
}

func TestPayrollPeriods_SingleActive(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewPayrollPeriodRepository(pool)

	newPeriod := func() *entity.PayrollPeriod {
		return &entity.PayrollPeriod{
			ID:     uuid.NewString(),
			Start:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			GroupA: &entity.DateRange{Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
			Active: true, Status: entity.PayrollStatusOpen, CreatedAt: time.Now(),
		}
	}
	p1 := newPeriod()
	require.NoError(t, repo.Create(ctx, p1))
	assert.ErrorIs(t, repo.Create(ctx, newPeriod()), domain.ErrDuplicate, "índice parcial: un solo periodo activo")

	got, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.GroupA)
	assert.Nil(t, got.GroupC)
	assert.Equal(t, 2, got.GroupA.Start.Day())

	n, err := repo.CloseActive(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	ok, err := repo.Close(ctx, p1.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPayrollPeriods_CloseWaitsForLockedEdit(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	emp := seedEmployee(t, pool, "carlos", mod)
	repo := postgres.NewPayrollPeriodRepository(pool)
	runner := postgres.NewTxRunner(pool)

	p := &entity.PayrollPeriod{
		ID: uuid.NewString(), Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Active: true, Status: entity.PayrollStatusOpen, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, p))

	locked := make(chan struct{})
	release := make(chan struct{})
	closed := make(chan bool, 1)
	go func() {
		<-locked
		ok, _ := repo.Close(ctx, p.ID, time.Now())
		closed <- ok
	}()

	err := runner.RunPayroll(ctx, func(periods repository.PayrollPeriodRepository, records repository.PayrollRecordRepository) error {
		cur, err := periods.GetForUpdate(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, cur.IsOpen())
		close(locked)
		go func() { time.Sleep(300 * time.Millisecond); close(release) }()
		<-release
		select {
		case <-closed:
			t.Error("el cierre no debe completar mientras la fila está bloqueada")
		default:
		}
		return records.Upsert(ctx, &entity.PayrollEmployeeRecord{
			ID: uuid.NewString(), PeriodID: p.ID, EmployeeID: emp, Sanctions: decimal.NewFromInt(10), UpdatedAt: time.Now(),
		})
	})
	require.NoError(t, err)
	assert.True(t, <-closed, "el cierre procede después del commit")

	err = runner.RunPayroll(ctx, func(periods repository.PayrollPeriodRepository, _ repository.PayrollRecordRepository) error {
		cur, err := periods.GetForUpdate(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, cur.IsOpen())
		return nil
	})
	require.NoError(t, err)
}

// ── Almacén general, asistencia y cortes ─────────────────────────────────────

func TestGeneralInventory_MoveRollsBackOnInsufficientStock(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	general := postgres.NewGeneralInventoryRepository(pool)
	runner := postgres.NewTxRunner(pool)

	require.NoError(t, general.Create(ctx, &entity.GeneralInventoryItem{
		ID: uuid.NewString(), Product: "Audífonos", Key: "AU-1", Price: decimal.NewFromInt(350),
		ProductType: entity.ProductTypeAccessory, Quantity: 4, UpdatedAt: time.Now(),
	}))
	err := general.Create(ctx, &entity.GeneralInventoryItem{ID: uuid.NewString(), Product: "Audífonos", ProductType: entity.ProductTypeAccessory, UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = runner.RunGeneral(ctx, func(g repository.GeneralInventoryRepository, inv repository.InventoryRepository, movs repository.InventoryMovementRepository) error {
		ok, err := g.Decrement(ctx, "Audífonos", 3)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, inv.Increment(ctx, &entity.ModuleInventory{
			ID: uuid.NewString(), ModuleID: mod, Product: "Audífonos", ProductType: entity.ProductTypeAccessory,
		}, 3))
		dest := mod
		require.NoError(t, movs.Create(ctx, &entity.InventoryMovement{
			ID: uuid.NewString(), Product: "Audífonos", ProductType: entity.ProductTypeAccessory, Quantity: 3,
			Type: entity.MovementAssignment, DestinationModuleID: &dest, CreatedAt: time.Now(),
		}))
		ok, err = g.Decrement(ctx, "Audífonos", 2)
		require.NoError(t, err)
		if !ok {
			return domain.ErrInsufficientStock
		}
		return nil
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, err := general.Get(ctx, "Audífonos")
	require.NoError(t, err)
	assert.Equal(t, 4, it.Quantity)
	mi, err := postgres.NewInventoryRepository(pool).Get(ctx, mod, "Audífonos")
	require.NoError(t, err)
	assert.Nil(t, mi, "la asignación revertida no crea la fila del módulo")

	deleted, err := general.Delete(ctx, "Audífonos")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = general.Delete(ctx, "Audífonos")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAttendance_OncePerDayAndSingleCheckOut(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	emp := seedEmployee(t, pool, "dora", mod)
	repo := postgres.NewAttendanceRepository(pool)

	day := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	in := day.Add(9 * time.Hour)
	a := &entity.Attendance{ID: uuid.NewString(), EmployeeID: emp, Username: "dora", ModuleID: mod, Shift: "matutino", Date: day, CheckIn: in}
	require.NoError(t, repo.Create(ctx, a))

	dup := *a
	dup.ID = uuid.NewString()
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicate)

	ok, err := repo.SetCheckOut(ctx, a.ID, in.Add(8*time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.SetCheckOut(ctx, a.ID, in.Add(9*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "la salida se registra una sola vez")

	got, err := repo.GetByDay(ctx, emp, day)
	require.NoError(t, err)
	require.NotNil(t, got.CheckOut)
	assert.True(t, got.WorkedHours().Equal(decimal.NewFromInt(8)))

	list, err := repo.List(ctx, repository.AttendanceFilter{ModuleID: mod, From: day, To: day})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDailyCuts_OnePerModuleAndDay(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	mod := seedModule(t, pool, "Centro")
	emp := seedEmployee(t, pool, "eli", mod)
	repo := postgres.NewDailyCutRepository(pool)

	day := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	c := &entity.DailyCut{
		ID: uuid.NewString(), ModuleID: mod, Date: day,
		CashTotal: decimal.NewFromInt(300), CardTotal: decimal.NewFromInt(500), SystemTotal: decimal.NewFromInt(800),
		ExtraRecharges: decimal.NewFromInt(50), GrandTotal: decimal.NewFromInt(850), ClosedBy: emp, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, c))

	again := *c
	again.ID = uuid.NewString()
	assert.ErrorIs(t, repo.Create(ctx, &again), domain.ErrDuplicate)

	bad := *c
	bad.ID, bad.Date, bad.ExtraOther = uuid.NewString(), day.AddDate(0, 0, 1), decimal.NewFromInt(-5)
	assert.Error(t, repo.Create(ctx, &bad), "los adicionales no pueden ser negativos")

	list, err := repo.List(ctx, repository.DailyCutFilter{ModuleID: mod})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].GrandTotal.Equal(decimal.NewFromInt(850)))
}
