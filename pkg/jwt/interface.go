package jwt

import (
	"fmt"

	"analytics-srv/pkg/scope"
)

// IManager verifies and issues HS256 tokens. Implementations are safe for concurrent use.
type IManager interface {
	scope.Manager
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a JWT manager.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return nil
}
