// Package auth verifies the bearer tokens presented on API requests.
// Verification is a single static API token; identity management beyond
// that lives outside this service.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/shivbooks/books/internal/config"
	"go.uber.org/fx"
)

var ErrInvalidToken = errors.New("invalid_token")

type TokenVerifier interface {
	Verify(ctx context.Context, token string) error
}

type staticVerifier struct {
	token string
}

// NewVerifier builds a verifier for the configured API token. An empty
// configured token disables authentication; intended for local runs only.
func NewVerifier(cfg config.Config) TokenVerifier {
	return &staticVerifier{token: cfg.APIToken}
}

func (v *staticVerifier) Verify(_ context.Context, token string) error {
	if v.token == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(v.token), []byte(token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

var Module = fx.Module("auth",
	fx.Provide(NewVerifier),
)
