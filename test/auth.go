package test

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/auth"
	"github.com/stretchr/testify/require"
)

func signingKey(t *testing.T) string {
	key, ok := os.LookupEnv("JWT_SECRET")
	if !ok {
		require.FailNow(t, "environment variable JWT_SECRET must be set")
	}
	return key
}

// Token returns a signed bearer token for the role.
func Token(t *testing.T, role string, sourceID uuid.UUID) string {
	token, err := auth.NewJWT(signingKey(t)).Sign(role, sourceID, time.Hour)
	require.Nil(t, err, "Token could not be signed")
	return token
}

// AuthHeader returns the Authorization header for the role.
func AuthHeader(t *testing.T, role string, sourceID uuid.UUID) map[string]string {
	return map[string]string{"Authorization": "Bearer " + Token(t, role, sourceID)}
}

// AdminHeader authenticates requests as the unrestricted role.
func AdminHeader(t *testing.T) map[string]string {
	return AuthHeader(t, access.UnrestrictedRole, uuid.Nil)
}

// ScopedHeader authenticates requests as a role bound to the source.
func ScopedHeader(t *testing.T, sourceID uuid.UUID) map[string]string {
	return AuthHeader(t, "Source operator", sourceID)
}
