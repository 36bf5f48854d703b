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
)

// ModuleUseCase alta y consulta de módulos (tiendas).
type ModuleUseCase struct {
	repo repository.ModuleRepository
}

// NewModuleUseCase construye el caso de uso.
func NewModuleUseCase(repo repository.ModuleRepository) *ModuleUseCase {
	return &ModuleUseCase{repo: repo}
}

// Create crea un módulo activo.
func (uc *ModuleUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateModuleRequest) (*dto.ModuleResponse, error) {
	if err := access.Require(actor, access.ManageModules); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("nombre obligatorio")
	}
	m := &entity.Module{ID: uuid.New().String(), Name: name, Active: true, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toModuleResponse(m), nil
}

// GetByID obtiene un módulo por ID.
func (uc *ModuleUseCase) GetByID(ctx context.Context, id string) (*dto.ModuleResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("módulo")
	}
	return toModuleResponse(m), nil
}

// List todos los módulos.
func (uc *ModuleUseCase) List(ctx context.Context) ([]dto.ModuleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModuleResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toModuleResponse(m))
	}
	return out, nil
}

func toModuleResponse(m *entity.Module) *dto.ModuleResponse {
	return &dto.ModuleResponse{ID: m.ID, Name: m.Name, Active: m.Active, CreatedAt: m.CreatedAt}
}
