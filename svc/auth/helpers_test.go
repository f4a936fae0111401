package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/svc/auth"
)

const testSecret = "test-secret"

type fixture struct {
	storage *auth.MemoryStorage
	hasher  *password.Hasher
	issuer  *jwt.Issuer
	service *auth.Service
}

func newFixture(t *testing.T, opts ...auth.ServiceOption) *fixture {
	t.Helper()

	issuer, err := jwt.NewIssuer(testSecret)
	require.NoError(t, err)

	f := &fixture{
		storage: auth.NewMemoryStorage(),
		hasher:  password.New(password.WithCost(bcrypt.MinCost)),
		issuer:  issuer,
	}
	f.service = auth.NewService(f.storage, f.hasher, f.issuer, opts...)
	return f
}
