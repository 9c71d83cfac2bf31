//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gin-auction-service/internal/pkg/clock"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already an hour in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, issuedAt)
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}
