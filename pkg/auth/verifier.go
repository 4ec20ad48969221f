package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/shopassist-backend/pkg/config"
)

// NewVerifier selects the verifier for the configured provider.
func NewVerifier(ctx context.Context, cfg *config.Config) (Verifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Auth.Provider)) {
	case config.AuthProviderJWT:
		return NewJWTVerifier(cfg.JWT)
	case config.AuthProviderFirebase:
		return NewFirebaseVerifier(ctx, cfg.Firebase)
	default:
		return nil, fmt.Errorf("unsupported auth provider %q", cfg.Auth.Provider)
	}
}
