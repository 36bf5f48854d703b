package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase alta y mantenimiento de empleados (solo admin).
type EmployeeUseCase struct {
	repo    repository.EmployeeRepository
	modules repository.ModuleRepository
}

// NewEmployeeUseCase construye el caso de uso con los puertos de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository, modules repository.ModuleRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, modules: modules}
}

// Create registra un empleado; el username es único y define el grupo de nómina por su inicial.
func (uc *EmployeeUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := access.Require(actor, access.ManageEmployees); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.Invalid("username obligatorio")
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.Invalid("rol %q inválido", in.Role)
	}
	if in.BaseSalary.IsNegative() {
		return nil, domain.Invalid("sueldo base negativo")
	}
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkModule(ctx, in.ModuleID); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.Employee{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		ModuleID:     in.ModuleID,
		BaseSalary:   in.BaseSalary,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := entityToEmployeeResponse(e)
	return &out, nil
}

// Update aplica cambios parciales. ModuleID vacío desasigna el módulo.
func (uc *EmployeeUseCase) Update(ctx context.Context, actor access.Actor, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := access.Require(actor, access.ManageEmployees); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("empleado")
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.Invalid("rol %q inválido", *in.Role)
		}
		e.Role = *in.Role
	}
	if in.ModuleID != nil {
		if err := uc.checkModule(ctx, *in.ModuleID); err != nil {
			return nil, err
		}
		e.ModuleID = *in.ModuleID
	}
	if in.BaseSalary != nil {
		if in.BaseSalary.IsNegative() {
			return nil, domain.Invalid("sueldo base negativo")
		}
		e.BaseSalary = *in.BaseSalary
	}
	if in.Active != nil {
		e.Active = *in.Active
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.PasswordHash = string(hash)
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := entityToEmployeeResponse(e)
	return &out, nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, actor access.Actor, page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	if err := access.Require(actor, access.ManageEmployees); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, entityToEmployeeResponse(e))
	}
	return out, nil
}

func (uc *EmployeeUseCase) checkModule(ctx context.Context, moduleID string) error {
	if moduleID == "" {
		return nil
	}
	m, err := uc.modules.GetByID(ctx, moduleID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.NotFound("módulo")
	}
	return nil
}

func entityToEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		Username:   e.Username,
		Role:       e.Role,
		ModuleID:   e.ModuleID,
		BaseSalary: e.BaseSalary,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
	}
}
