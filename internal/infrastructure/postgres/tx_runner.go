package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var (
	_ sales.TxRunner     = (*TxRunner)(nil)
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ payroll.TxRunner   = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia la transacción, ejecuta fn y hace Commit; cualquier error deja Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales registro y cancelación de ventas: inventario, ventas y kardex en la misma tx.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewInventoryRepository(tx), NewSaleRepository(tx), NewInventoryMovementRepository(tx))
	})
}

// RunInventory traspasos, ajustes y cargas masivas.
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
	transferRepo repository.TransferRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewInventoryRepository(tx), NewInventoryMovementRepository(tx), NewTransferRepository(tx))
	})
}

// RunGeneral ajustes del almacén general y asignaciones a módulos.
func (r *TxRunner) RunGeneral(ctx context.Context, fn func(
	general repository.GeneralInventoryRepository,
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewGeneralInventoryRepository(tx), NewInventoryRepository(tx), NewInventoryMovementRepository(tx))
	})
}

// RunPayroll apertura de periodos (a lo más uno activo) y escrituras bajo el bloqueo del periodo.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(
	periods repository.PayrollPeriodRepository,
	records repository.PayrollRecordRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPayrollPeriodRepository(tx), NewPayrollRecordRepository(tx))
	})
}
