package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pos/config"
	"pos/internal/domain/entity"
	"pos/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// devtoken signs an access token with the configured secret so the API can be called
// locally without the hosted authentication provider.
//
//	go run ./cmd/devtoken -role staff
func main() {
	role := flag.String("role", entity.RoleCustomer.String(), "Role claim to embed (admin, staff, customer or any other value)")
	user := flag.String("user", "", "User ID (UUID); a random one is generated when empty")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	token, userID, err := issue(*role, *user, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "user=%s role=%s ttl=%s\n", userID, *role, *ttl)
	fmt.Println(token)
}

func issue(role, user string, ttl time.Duration) (string, uuid.UUID, error) {
	if ttl <= 0 {
		return "", uuid.Nil, errors.New("ttl must be positive")
	}

	userID := uuid.New()
	if user != "" {
		parsed, err := uuid.Parse(user)
		if err != nil {
			return "", uuid.Nil, errors.Wrap(err, "invalid user ID")
		}
		userID = parsed
	}

	cfg, err := config.New()
	if err != nil {
		return "", uuid.Nil, errors.Wrap(err, "load config")
	}

	tokenService, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", uuid.Nil, err
	}

	token, err := tokenService.IssueAccessToken(userID, role, ttl)
	if err != nil {
		return "", uuid.Nil, err
	}

	return token, userID, nil
}
