// Package auth verifies access tokens issued by the hosted authentication provider.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pos/config"
	"pos/internal/domain/entity"
	"pos/internal/domain/service"
	"pos/internal/errors"
)

const appMetadataClaim = "app_metadata"

// jwtService is a concrete implementation of the TokenService interface for HS256 tokens
// signed with the provider's shared secret.
type jwtService struct {
	secret    []byte
	roleClaim string
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		roleClaim: cfg.Auth.RoleClaim,
		now:       time.Now,
	}, nil
}

// VerifyAccessToken validates tokenString and extracts the caller's session.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.Session, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "failed to verify token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	rawRole := s.roleFromClaims(claims)

	return &service.Session{
		UserID:  userID,
		Role:    entity.ParseRole(rawRole),
		RawRole: rawRole,
	}, nil
}

// IssueAccessToken signs a token carrying userID and role.
func (s *jwtService) IssueAccessToken(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if role != "" {
		claims[appMetadataClaim] = map[string]any{s.roleClaim: role}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// roleFromClaims reads the role claim at the top level, then inside app_metadata.
func (s *jwtService) roleFromClaims(claims jwt.MapClaims) string {
	if role, ok := claims[s.roleClaim].(string); ok && role != "" {
		return role
	}

	metadata, ok := claims[appMetadataClaim].(map[string]any)
	if !ok {
		return ""
	}

	role, _ := metadata[s.roleClaim].(string)

	return role
}
