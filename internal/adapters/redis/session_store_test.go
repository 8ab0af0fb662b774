package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/testutil"
)

func testSession(id string, expiresIn time.Duration) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "user-1",
		FirstName: "Ada",
		LastName:  "Ngo",
		Email:     "ada.ngo@example.com",
		Role:      domainauth.RoleEmployer,
		ExpiresAt: time.Now().Add(expiresIn),
	}
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession("sess-1", time.Hour)
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Role, got.Role)

	// Redis key carries the session TTL.
	ttl := client.TTL(ctx, "session:sess-1").Val()
	assert.True(t, ttl > 0 && ttl <= time.Hour)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_RejectsExpiredAndEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, testSession("sess-expired", -time.Minute)))
	assert.Error(t, store.Save(ctx, domainauth.Session{ExpiresAt: time.Now().Add(time.Hour)}))

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "jobboard:sess:")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-2", time.Hour)))
	exists := client.Exists(ctx, "jobboard:sess:sess-2").Val()
	assert.Equal(t, int64(1), exists)
}
