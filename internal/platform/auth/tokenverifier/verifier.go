// Package tokenverifier validates HS256 bearer tokens issued by the auth
// provider and extracts the stable account subject.
package tokenverifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	clockport "github.com/uf-sase-hacks/registration-api/internal/ports/out/clock"
	"github.com/uf-sase-hacks/registration-api/internal/platform/config"
)

// ErrUnauthorized is returned for any token that fails verification. Callers
// should not leak the underlying reason to clients.
var ErrUnauthorized = errors.New("unauthorized")

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// New builds a verifier for the given config. clk drives expiry checks so
// tests can pin time; pass nil to use the wall clock.
func New(cfg config.JWTConfig, clk clockport.Clock) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithLeeway(cfg.ClockSkew),
		jwt.WithExpirationRequired(),
	}
	if clk != nil {
		opts = append(opts, jwt.WithTimeFunc(clk.Now))
	}
	return &Verifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
	}
}

// Verify checks the raw token and returns its subject claim.
func (v *Verifier) Verify(_ context.Context, raw string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	return claims.Subject, nil
}
