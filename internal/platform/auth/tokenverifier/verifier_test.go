package tokenverifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	memclock "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/clock"
	"github.com/uf-sase-hacks/registration-api/internal/platform/config"
)

const testSecret = "test-secret-please-rotate"

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    testSecret,
		Issuer:    "https://auth.test",
		Audience:  "registration-portal",
		ClockSkew: 30 * time.Second,
	}
}

func signToken(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func baseClaims(now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "acct-1",
		Issuer:    "https://auth.test",
		Audience:  jwt.ClaimStrings{"registration-portal"},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func TestVerifier_ValidToken(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0).UTC()
	clk := memclock.NewManualClock(now)
	v := New(testConfig(), clk)

	sub, err := v.Verify(context.Background(), signToken(t, baseClaims(now), testSecret))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sub != "acct-1" {
		t.Fatalf("sub = %q", sub)
	}
}

func TestVerifier_Rejections(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0).UTC()

	cases := []struct {
		name  string
		token func(t *testing.T) string
		at    time.Time
	}{
		{"wrong secret", func(t *testing.T) string {
			return signToken(t, baseClaims(now), "other-secret")
		}, now},
		{"wrong issuer", func(t *testing.T) string {
			c := baseClaims(now)
			c.Issuer = "https://evil.test"
			return signToken(t, c, testSecret)
		}, now},
		{"wrong audience", func(t *testing.T) string {
			c := baseClaims(now)
			c.Audience = jwt.ClaimStrings{"other-app"}
			return signToken(t, c, testSecret)
		}, now},
		{"expired beyond skew", func(t *testing.T) string {
			return signToken(t, baseClaims(now), testSecret)
		}, now.Add(time.Hour + time.Minute)},
		{"missing expiry", func(t *testing.T) string {
			c := baseClaims(now)
			c.ExpiresAt = nil
			return signToken(t, c, testSecret)
		}, now},
		{"missing subject", func(t *testing.T) string {
			c := baseClaims(now)
			c.Subject = ""
			return signToken(t, c, testSecret)
		}, now},
		{"garbage token", func(t *testing.T) string {
			return "not.a.jwt"
		}, now},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := New(testConfig(), memclock.NewManualClock(tc.at))
			_, err := v.Verify(context.Background(), tc.token(t))
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("err = %v, want ErrUnauthorized", err)
			}
		})
	}
}

func TestVerifier_ClockSkewTolerated(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0).UTC()
	// Expired 10s ago: within the 30s leeway.
	clk := memclock.NewManualClock(now.Add(time.Hour + 10*time.Second))
	v := New(testConfig(), clk)

	if _, err := v.Verify(context.Background(), signToken(t, baseClaims(now), testSecret)); err != nil {
		t.Fatalf("token inside leeway rejected: %v", err)
	}
}
