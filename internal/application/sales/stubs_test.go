package sales_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/domain"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
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
	m.rows[item.ModuleID+"|"+item.Product] = item
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

type memSales struct {
	rows []*entity.Sale
}

func (m *memSales) Create(_ context.Context, s *entity.Sale) error {
	m.rows = append(m.rows, s)
	return nil
}

func (m *memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range m.rows {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSales) Cancel(_ context.Context, id string) (bool, error) {
	for _, s := range m.rows {
		if s.ID == id && !s.Cancelled {
			s.Cancelled = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memSales) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.rows {
		if f.EmployeeID != "" && s.EmployeeID != f.EmployeeID {
			continue
		}
		if f.ModuleID != "" && s.ModuleID != f.ModuleID {
			continue
		}
		if !f.IncludeCancelled && s.Cancelled {
			continue
		}
		if s.Date.Before(f.From) || s.Date.After(f.To) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type memMovements struct {
	rows []*entity.InventoryMovement
}

func (m *memMovements) Create(_ context.Context, mv *entity.InventoryMovement) error {
	m.rows = append(m.rows, mv)
	return nil
}

func (m *memMovements) List(_ context.Context, _ repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	return m.rows, nil
}

// memTx serializa las transacciones y restaura el estado previo si fn falla.
type memTx struct {
	mu    sync.Mutex
	inv   *memInventory
	sales *memSales
	movs  *memMovements
}

func (tx *memTx) RunSales(_ context.Context, fn func(repository.InventoryRepository, repository.SaleRepository, repository.InventoryMovementRepository) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	invSnap := make(map[string]entity.ModuleInventory, len(tx.inv.rows))
	for k, v := range tx.inv.rows {
		invSnap[k] = *v
	}
	saleSnap := make([]entity.Sale, len(tx.sales.rows))
	for i, s := range tx.sales.rows {
		saleSnap[i] = *s
	}
	movCount := len(tx.movs.rows)

	if err := fn(tx.inv, tx.sales, tx.movs); err != nil {
		tx.inv.rows = map[string]*entity.ModuleInventory{}
		for k, v := range invSnap {
			v := v
			tx.inv.rows[k] = &v
		}
		tx.sales.rows = tx.sales.rows[:0]
		for i := range saleSnap {
			s := saleSnap[i]
			tx.sales.rows = append(tx.sales.rows, &s)
		}
		tx.movs.rows = tx.movs.rows[:movCount]
		return err
	}
	return nil
}

type memChips struct {
	mu   sync.Mutex
	rows map[string]*entity.ChipSale
	// afterGet simula otra petición que modifica el chip entre la lectura y la escritura.
	afterGet func(c *entity.ChipSale)
}

func newMemChips(rows ...*entity.ChipSale) *memChips {
	m := &memChips{rows: map[string]*entity.ChipSale{}}
	for _, c := range rows {
		m.rows[c.ID] = c
	}
	return m
}

func (m *memChips) Create(_ context.Context, c *entity.ChipSale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[c.ID] = c
	return nil
}

func (m *memChips) GetByID(_ context.Context, id string) (*entity.ChipSale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.rows[id]
	if c == nil {
		return nil, nil
	}
	cp := *c
	if m.afterGet != nil {
		m.afterGet(c)
		m.afterGet = nil
	}
	return &cp, nil
}

func (m *memChips) MarkValidated(_ context.Context, c *entity.ChipSale) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.rows[c.ID]
	if cur == nil || cur.Validated || cur.RejectionReason != nil {
		return false, nil
	}
	cp := *c
	m.rows[c.ID] = &cp
	return true, nil
}

func (m *memChips) SetRejection(_ context.Context, id string, reason *string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.rows[id]
	if c == nil || c.Validated || (reason == nil && c.RejectionReason == nil) {
		return false, nil
	}
	c.RejectionReason = reason
	return true, nil
}

func (m *memChips) List(_ context.Context, f repository.ChipFilter) ([]*entity.ChipSale, error) {
	var out []*entity.ChipSale
	for _, c := range m.rows {
		if f.Pending && (c.Validated || c.RejectionReason != nil) {
			continue
		}
		if f.Rejected && (c.Validated || c.RejectionReason == nil) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ── Reglas y notificador ─────────────────────────────────────────────────────

type staticRules struct {
	rs *domcommission.RuleSet
}

func (s staticRules) Snapshot(context.Context) (*domcommission.RuleSet, error) { return s.rs, nil }

type captureNotifier struct {
	mu      sync.Mutex
	tickets []sales.Ticket
	fail    bool
}

func (n *captureNotifier) NotifySale(_ context.Context, t sales.Ticket) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("smtp caído")
	}
	n.tickets = append(n.tickets, t)
	return nil
}

type memCuts struct {
	rows []*entity.DailyCut
	last repository.DailyCutFilter
}

func (m *memCuts) Create(_ context.Context, c *entity.DailyCut) error {
	for _, r := range m.rows {
		if r.ModuleID == c.ModuleID && r.Date.Equal(c.Date) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memCuts) List(_ context.Context, f repository.DailyCutFilter) ([]*entity.DailyCut, error) {
	m.last = f
	var out []*entity.DailyCut
	for _, c := range m.rows {
		if f.ModuleID != "" && c.ModuleID != f.ModuleID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
