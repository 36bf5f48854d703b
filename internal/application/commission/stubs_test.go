package commission_test

import (
	"context"
	"sort"
	"sync"

	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// ── Repositorios en memoria ──────────────────────────────────────────────────

type memSales struct {
	mu   sync.Mutex
	rows []*entity.Sale
}

func (m *memSales) Create(_ context.Context, s *entity.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, s)
	return nil
}

func (m *memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range m.rows {
		if s.ID == id {
			return s, nil
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
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Sale
	for _, s := range m.rows {
		if f.EmployeeID != "" && s.EmployeeID != f.EmployeeID {
			continue
		}
		if !f.IncludeCancelled && s.Cancelled {
			continue
		}
		if s.Date.Before(f.From) || s.Date.After(f.To) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type memChips struct {
	rows []*entity.ChipSale
}

func (m *memChips) Create(_ context.Context, c *entity.ChipSale) error {
	m.rows = append(m.rows, c)
	return nil
}

func (m *memChips) GetByID(_ context.Context, id string) (*entity.ChipSale, error) {
	for _, c := range m.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memChips) MarkValidated(_ context.Context, c *entity.ChipSale) (bool, error) {
	return false, nil
}

func (m *memChips) SetRejection(_ context.Context, _ string, _ *string) (bool, error) {
	return true, nil
}

func (m *memChips) List(_ context.Context, f repository.ChipFilter) ([]*entity.ChipSale, error) {
	var out []*entity.ChipSale
	for _, c := range m.rows {
		if f.EmployeeID != "" && c.EmployeeID != f.EmployeeID {
			continue
		}
		if f.ValidatedOnly && !c.Validated {
			continue
		}
		if c.Date.Before(f.From) || c.Date.After(f.To) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type memEmployees struct {
	rows map[string]*entity.Employee
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.rows[e.ID] = e
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return m.rows[id], nil
}

func (m *memEmployees) GetByUsername(_ context.Context, username string) (*entity.Employee, error) {
	for _, e := range m.rows {
		if e.Username == username {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	m.rows[e.ID] = e
	return nil
}

func (m *memEmployees) ListActive(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.rows {
		if e.Active {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *memEmployees) List(ctx context.Context, _, _ int) ([]*entity.Employee, error) {
	return m.ListActive(ctx)
}

type staticRules struct {
	rs *domcommission.RuleSet
}

func (s staticRules) Snapshot(context.Context) (*domcommission.RuleSet, error) { return s.rs, nil }

var (
	_ repository.SaleRepository     = (*memSales)(nil)
	_ repository.ChipSaleRepository = (*memChips)(nil)
	_ repository.EmployeeRepository = (*memEmployees)(nil)
)

type memRules struct {
	rows []*entity.CommissionRule
}

func (m *memRules) Create(_ context.Context, r *entity.CommissionRule) error {
	m.rows = append(m.rows, r)
	return nil
}

func (m *memRules) GetByID(_ context.Context, id string) (*entity.CommissionRule, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRules) Update(_ context.Context, r *entity.CommissionRule) error { return nil }

func (m *memRules) Delete(_ context.Context, id string) error {
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRules) List(context.Context) ([]*entity.CommissionRule, error) { return m.rows, nil }

type memTiers struct {
	byType map[string][]*entity.ChipCommissionTier
}

func (m *memTiers) List(context.Context) ([]*entity.ChipCommissionTier, error) {
	keys := make([]string, 0, len(m.byType))
	for k := range m.byType {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []*entity.ChipCommissionTier
	for _, k := range keys {
		out = append(out, m.byType[k]...)
	}
	return out, nil
}

func (m *memTiers) Replace(_ context.Context, chipType string, tiers []*entity.ChipCommissionTier) error {
	if len(tiers) == 0 {
		delete(m.byType, chipType)
		return nil
	}
	m.byType[chipType] = tiers
	return nil
}

type memBonuses struct {
	rows map[string]*entity.SaleTypeBonus
}

func (m *memBonuses) List(context.Context) ([]*entity.SaleTypeBonus, error) {
	var out []*entity.SaleTypeBonus
	for _, b := range m.rows {
		out = append(out, b)
	}
	return out, nil
}

func (m *memBonuses) Upsert(_ context.Context, b *entity.SaleTypeBonus) error {
	m.rows[b.SaleType] = b
	return nil
}

func (m *memBonuses) Delete(_ context.Context, saleType string) error {
	delete(m.rows, saleType)
	return nil
}

var (
	_ repository.CommissionRuleRepository = (*memRules)(nil)
	_ repository.ChipTierRepository       = (*memTiers)(nil)
	_ repository.SaleTypeBonusRepository  = (*memBonuses)(nil)
)
