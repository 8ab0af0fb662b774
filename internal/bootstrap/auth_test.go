package bootstrap

import (
	"testing"

	"github.com/humanlystaffing/jobboard-api/config"
	"github.com/redis/go-redis/v9"
)

// The client never dials during construction, so a placeholder is enough.
func placeholderRedis() redis.UniversalClient {
	return redis.NewClient(&redis.Options{Addr: "localhost:0"})
}

func TestBuildAuthService_NilRedisDisablesAuth(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth:   config.AuthConfig{Mode: config.AuthModeMock},
		Logger: discardLogger(),
	})
	if svc != nil {
		t.Fatal("BuildAuthService without redis returned a service, want nil")
	}
}

func TestBuildAuthService_MockMode(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeMock,
			DevAuth: config.DevAuthConfig{
				UserID: "dev-user",
				Email:  "dev@humanlystaffing.com",
				Groups: []string{"admins"},
			},
		},
		RedisClient: placeholderRedis(),
		Logger:      discardLogger(),
	})
	if svc == nil {
		t.Fatal("BuildAuthService in mock mode returned nil")
	}
}

func TestBuildAuthService_MockModeMissingIdentity(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth:        config.AuthConfig{Mode: config.AuthModeMock},
		RedisClient: placeholderRedis(),
		Logger:      discardLogger(),
	})
	if svc != nil {
		t.Fatal("BuildAuthService without a dev identity returned a service, want nil")
	}
}

func TestBuildAuthService_OAuthMissingConfigDisablesAuth(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeOAuth,
			OAuth: config.OAuthConfig{
				ClientID: "jobboard", // no discovery URL or secret
			},
		},
		RedisClient: placeholderRedis(),
		Logger:      discardLogger(),
	})
	if svc != nil {
		t.Fatal("BuildAuthService with incomplete OAuth config returned a service, want nil")
	}
}
