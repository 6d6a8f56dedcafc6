package service

import (
	"time"

	"pos/internal/domain/entity"

	"github.com/google/uuid"
)

// Session is the identity carried by a verified access token.
type Session struct {
	UserID  uuid.UUID
	Role    entity.Role // RoleUnknown when the claim is missing or unrecognized
	RawRole string      // The role claim exactly as issued
}

// TokenService verifies access tokens issued by the authentication provider.
type TokenService interface {
	// VerifyAccessToken validates the signature and expiry of tokenString and extracts the session.
	VerifyAccessToken(tokenString string) (*Session, error)

	// IssueAccessToken signs a token for local development and tests.
	IssueAccessToken(userID uuid.UUID, role string, ttl time.Duration) (string, error)
}
