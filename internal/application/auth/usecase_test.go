package auth_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/auth"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

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

func (m *memEmployees) ListActive(_ context.Context) ([]*entity.Employee, error) { return nil, nil }

func (m *memEmployees) List(_ context.Context, _, _ int) ([]*entity.Employee, error) { return nil, nil }

const secret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memEmployees) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &memEmployees{rows: map[string]*entity.Employee{
		"e-1": {ID: "e-1", Username: "Ana", PasswordHash: string(hash), Role: entity.RoleAsesor, ModuleID: "m-1", BaseSalary: decimal.NewFromInt(5000), Active: true},
		"e-9": {ID: "e-9", Username: "Baja", PasswordHash: string(hash), Role: entity.RoleAsesor, Active: false},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "nomina-api"}), repo
}

func TestLogin_IssuesTokenWithIdentity(t *testing.T) {
	uc, _ := newAuth(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: " Ana ", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "e-1", out.Employee.ID)

	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "e-1", id.UserID)
	assert.Equal(t, "Ana", id.Username)
	assert.Equal(t, entity.RoleAsesor, id.Role)
	assert.Equal(t, "m-1", id.ModuleID)
}

func TestLogin_Failures(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "Ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "Nadie", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "mismo error que password incorrecto")

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "Baja", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	uc, _ := newAuth(t)

	out, err := uc.Me(context.Background(), access.Actor{EmployeeID: "e-1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Username)

	_, err = uc.Me(context.Background(), access.Actor{EmployeeID: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
