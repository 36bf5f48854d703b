package jwt_test

import (
	"testing"

	"github.com/jhoicas/Nomina-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	in := jwt.Identity{UserID: "e-1", Username: "ana", Role: "encargado", ModuleID: "m-1"}
	tok, err := jwt.Generate(secret, "nomina-api-test", 60, in)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "nomina-api-test", -1, jwt.Identity{UserID: "e-1", Role: "admin"})
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := jwt.Generate(secret, "nomina-api-test", 60, jwt.Identity{UserID: "e-1", Role: "admin"})
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "x", 60, jwt.Identity{UserID: "e-1"})
	assert.Error(t, err)
	_, err = jwt.Parse("", "abc")
	assert.Error(t, err)
}
