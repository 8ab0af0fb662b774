package devauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanlystaffing/jobboard-api/internal/ports"
)

func TestProviderBeginAndExchange(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(Config{
		UserID:          "dev-employer",
		Email:           "dev@humanlystaffing.com",
		Groups:          []string{"jobboard-employers"},
		SessionDuration: time.Hour,
	})
	require.NoError(t, err)

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{RedirectURL: "/auth/callback"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=dev&state="))
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)

	identity, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	require.NoError(t, err)
	assert.Equal(t, "dev-employer", identity.UserID)
	assert.Equal(t, []string{"jobboard-employers"}, identity.Groups)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestNewProviderRequiresIdentity(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(Config{Email: "dev@humanlystaffing.com"})
	assert.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev-user"})
	assert.Error(t, err)
}
