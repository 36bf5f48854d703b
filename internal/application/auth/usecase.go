package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de empleados y consulta del empleado autenticado.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employees: employees, jwtCfg: jwtCfg}
}

// Login verifica username/password y genera un JWT con id, username, rol y módulo.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := uc.employees.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !emp.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		UserID:   emp.ID,
		Username: emp.Username,
		Role:     emp.Role,
		ModuleID: emp.ModuleID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Employee: toEmployeeResponse(emp)}, nil
}

// Me datos actuales del empleado del token.
func (uc *AuthUseCase) Me(ctx context.Context, actor access.Actor) (*dto.EmployeeResponse, error) {
	emp, err := uc.employees.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.NotFound("empleado")
	}
	out := toEmployeeResponse(emp)
	return &out, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
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
