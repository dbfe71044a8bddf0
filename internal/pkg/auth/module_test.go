package auth

import (
	"context"
	"testing"

	"github.com/MicahParks/jwkset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/storefront/internal/config"
)

func TestModuleProvidesVerifierAndGate(t *testing.T) {
	cfg := &config.Config{
		JWTIssuer:   testIssuer,
		JWTAudience: testAudience,
		AdminRoleID: "admin-role",
	}

	var (
		verifier Verifier
		gate     *RoleGate
		keys     *KeySet
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(func() context.Context { return context.Background() }),
		fx.Provide(func() jwkset.Storage { return jwkset.NewMemoryStorage() }),
		Module,
		fx.Populate(&verifier, &gate, &keys),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, verifier)
	assert.IsType(t, &JWTVerifier{}, verifier)
	assert.NotNil(t, gate)

	n, err := keys.Len(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewKeySetUsesStorage(t *testing.T) {
	priv := newRSAKey(t)
	storage := newMemoryStorage(t, newJWK(t, "k1", &priv.PublicKey))

	keys, err := newKeySet(keySetParams{Ctx: context.Background(), Storage: storage})
	require.NoError(t, err)

	n, err := keys.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
