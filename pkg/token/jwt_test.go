package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 1)
	identity := utils.Identity{Email: "user@example.com", Role: "user"}

	tokenString, err := j.Generate(identity)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, identity, got)
}

func TestJWT_AdminRoleCarried(t *testing.T) {
	j := NewJWT("secret", 1)

	tokenString, err := j.Generate(utils.Identity{Email: "admin@example.com", Role: "admin"})
	require.NoError(t, err)

	got, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, "admin", got.Role)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT("secret-a", 1)
	verifier := NewJWT("secret-b", 1)

	tokenString, err := issuer.Generate(utils.Identity{Email: "user@example.com", Role: "user"})
	require.NoError(t, err)

	_, err = verifier.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	j := NewJWT("secret", 1)

	_, err := j.Parse("not-a-token")
	require.Error(t, err)
}

func TestJWT_Tampered(t *testing.T) {
	j := NewJWT("secret", 1)

	tokenString, err := j.Generate(utils.Identity{Email: "user@example.com", Role: "user"})
	require.NoError(t, err)

	_, err = j.Parse(tokenString + "x")
	require.Error(t, err)
}
