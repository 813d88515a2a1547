// Package auth verifies the bearer tokens issued by the sign-in service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims are the claims of an access token.
type Claims struct {
	Role     string `json:"role"`
	SourceID string `json:"sourceId,omitempty"`
	jwt.RegisteredClaims
}

// JWT verifies HMAC signed access tokens.
type JWT struct {
	signingKey []byte
}

func NewJWT(signingKey string) *JWT {
	return &JWT{
		signingKey: []byte(signingKey),
	}
}

// Sign creates a signed token for a role. sourceID is uuid.Nil for the
// unrestricted role.
func (j *JWT) Sign(role string, sourceID uuid.UUID, expiresIn time.Duration) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}

	if sourceID != uuid.Nil {
		claims.SourceID = sourceID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.signingKey)
}

// Authenticate implements access.Authenticator.
func (j *JWT) Authenticate(token string) (access.Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return j.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return access.Session{}, ErrTokenExpired
		}
		return access.Session{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return access.Session{}, ErrTokenInvalid
	}

	session := access.Session{RoleName: claims.Role}
	if claims.SourceID != "" {
		sourceID, err := uuid.Parse(claims.SourceID)
		if err != nil {
			return access.Session{}, fmt.Errorf("%w: sourceId is not a valid UUID", ErrTokenInvalid)
		}
		session.SourceID = sourceID
	}

	if session.Unrestricted() {
		session.SourceID = uuid.Nil
	}

	return session, nil
}
