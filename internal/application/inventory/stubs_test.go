package inventory_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// ── Repositorios en memoria ──────────────────────────────────────────────────

type memInventory struct {
	rows map[string]*entity.ModuleInventory
}

func newMemInventory(items ...*entity.ModuleInventory) *memInventory {
	m := &memInventory{rows: map[string]*entity.ModuleInventory{}}
	for _, it := range items {
		m.rows[it.ModuleID+"|"+it.Product] = it
	}
	return m
}

func (m *memInventory) Get(_ context.Context, moduleID, product string) (*entity.ModuleInventory, error) {
	it := m.rows[moduleID+"|"+product]
	if it == nil {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memInventory) ListByModule(_ context.Context, moduleID string) ([]*entity.ModuleInventory, error) {
	var out []*entity.ModuleInventory
	for _, it := range m.rows {
		if it.ModuleID == moduleID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memInventory) Upsert(_ context.Context, item *entity.ModuleInventory) error {
	cp := *item
	m.rows[item.ModuleID+"|"+item.Product] = &cp
	return nil
}

func (m *memInventory) Decrement(_ context.Context, moduleID, product string, qty int) (bool, error) {
	it := m.rows[moduleID+"|"+product]
	if it == nil || it.Quantity < qty {
		return false, nil
	}
	it.Quantity -= qty
	return true, nil
}

func (m *memInventory) Increment(_ context.Context, item *entity.ModuleInventory, qty int) error {
	k := item.ModuleID + "|" + item.Product
	if it := m.rows[k]; it != nil {
		it.Quantity += qty
		return nil
	}
	cp := *item
	cp.Quantity = qty
	m.rows[k] = &cp
	return nil
}

func (m *memInventory) qty(moduleID, product string) int {
	if it := m.rows[moduleID+"|"+product]; it != nil {
		return it.Quantity
	}
	return -1
}

type memMovements struct {
	rows []*entity.InventoryMovement
	last repository.MovementFilter
}

func (m *memMovements) Create(_ context.Context, mv *entity.InventoryMovement) error {
	m.rows = append(m.rows, mv)
	return nil
}

func (m *memMovements) List(_ context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	m.last = f
	var out []*entity.InventoryMovement
	for _, mv := range m.rows {
		if f.ModuleID != "" && !touches(mv, f.ModuleID) {
			continue
		}
		out = append(out, mv)
	}
	return out, nil
}

func touches(mv *entity.InventoryMovement, moduleID string) bool {
	return (mv.OriginModuleID != nil && *mv.OriginModuleID == moduleID) ||
		(mv.DestinationModuleID != nil && *mv.DestinationModuleID == moduleID)
}

type memTransfers struct {
	rows map[string]*entity.Transfer
}

func (m *memTransfers) Create(_ context.Context, t *entity.Transfer) error {
	cp := *t
	m.rows[t.ID] = &cp
	return nil
}

func (m *memTransfers) GetByID(_ context.Context, id string) (*entity.Transfer, error) {
	t := m.rows[id]
	if t == nil {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTransfers) Resolve(_ context.Context, t *entity.Transfer) (bool, error) {
	cur := m.rows[t.ID]
	if cur == nil || cur.Status != entity.TransferPending {
		return false, nil
	}
	cp := *t
	m.rows[t.ID] = &cp
	return true, nil
}

func (m *memTransfers) Hide(_ context.Context, id string) error {
	if t := m.rows[id]; t != nil {
		t.Visible = false
	}
	return nil
}

func (m *memTransfers) List(_ context.Context, f repository.TransferFilter) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range m.rows {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.VisibleOnly && !t.Visible {
			continue
		}
		if f.ModuleID != "" && t.OriginModuleID != f.ModuleID && t.DestinationModuleID != f.ModuleID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type memModules struct {
	rows map[string]*entity.Module
}

func (m *memModules) Create(_ context.Context, mod *entity.Module) error {
	m.rows[mod.ID] = mod
	return nil
}

func (m *memModules) GetByID(_ context.Context, id string) (*entity.Module, error) {
	return m.rows[id], nil
}

func (m *memModules) List(_ context.Context) ([]*entity.Module, error) {
	var out []*entity.Module
	for _, mod := range m.rows {
		out = append(out, mod)
	}
	return out, nil
}

// memTx restaura inventario, kardex y traspasos si fn devuelve error.
type memTx struct {
	mu        sync.Mutex
	inv       *memInventory
	movs      *memMovements
	transfers *memTransfers
	general   *memGeneral
}

func (tx *memTx) RunInventory(_ context.Context, fn func(repository.InventoryRepository, repository.InventoryMovementRepository, repository.TransferRepository) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	invSnap := make(map[string]entity.ModuleInventory, len(tx.inv.rows))
	for k, v := range tx.inv.rows {
		invSnap[k] = *v
	}
	trSnap := make(map[string]entity.Transfer, len(tx.transfers.rows))
	for k, v := range tx.transfers.rows {
		trSnap[k] = *v
	}
	movCount := len(tx.movs.rows)

	if err := fn(tx.inv, tx.movs, tx.transfers); err != nil {
		tx.inv.rows = make(map[string]*entity.ModuleInventory, len(invSnap))
		for k, v := range invSnap {
			v := v
			tx.inv.rows[k] = &v
		}
		tx.transfers.rows = make(map[string]*entity.Transfer, len(trSnap))
		for k, v := range trSnap {
			v := v
			tx.transfers.rows[k] = &v
		}
		tx.movs.rows = tx.movs.rows[:movCount]
		return err
	}
	return nil
}

type memGeneral struct {
	rows map[string]*entity.GeneralInventoryItem
}

func newMemGeneral(items ...*entity.GeneralInventoryItem) *memGeneral {
	m := &memGeneral{rows: map[string]*entity.GeneralInventoryItem{}}
	for _, it := range items {
		m.rows[it.Product] = it
	}
	return m
}

func (m *memGeneral) Get(_ context.Context, product string) (*entity.GeneralInventoryItem, error) {
	it := m.rows[product]
	if it == nil {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memGeneral) List(_ context.Context) ([]*entity.GeneralInventoryItem, error) {
	var out []*entity.GeneralInventoryItem
	for _, it := range m.rows {
		out = append(out, it)
	}
	return out, nil
}

func (m *memGeneral) Create(_ context.Context, it *entity.GeneralInventoryItem) error {
	if _, ok := m.rows[it.Product]; ok {
		return domain.ErrDuplicate
	}
	cp := *it
	m.rows[it.Product] = &cp
	return nil
}

func (m *memGeneral) Update(_ context.Context, it *entity.GeneralInventoryItem) error {
	cp := *it
	m.rows[it.Product] = &cp
	return nil
}

func (m *memGeneral) Decrement(_ context.Context, product string, qty int) (bool, error) {
	it := m.rows[product]
	if it == nil || it.Quantity < qty {
		return false, nil
	}
	it.Quantity -= qty
	return true, nil
}

func (m *memGeneral) Delete(_ context.Context, product string) (bool, error) {
	if _, ok := m.rows[product]; !ok {
		return false, nil
	}
	delete(m.rows, product)
	return true, nil
}

func (tx *memTx) RunGeneral(ctx context.Context, fn func(repository.GeneralInventoryRepository, repository.InventoryRepository, repository.InventoryMovementRepository) error) error {
	genSnap := make(map[string]entity.GeneralInventoryItem, len(tx.general.rows))
	for k, v := range tx.general.rows {
		genSnap[k] = *v
	}
	err := tx.RunInventory(ctx, func(inv repository.InventoryRepository, movs repository.InventoryMovementRepository, _ repository.TransferRepository) error {
		return fn(tx.general, inv, movs)
	})
	if err != nil {
		tx.general.rows = make(map[string]*entity.GeneralInventoryItem, len(genSnap))
		for k, v := range genSnap {
			v := v
			tx.general.rows[k] = &v
		}
	}
	return err
}
