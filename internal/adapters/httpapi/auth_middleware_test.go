package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/uf-sase-hacks/registration-api/internal/platform/auth/tokenverifier"
	"github.com/uf-sase-hacks/registration-api/internal/platform/config"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// probeHandler reports whether the middleware placed a subject in context.
func probeHandler(t *testing.T, wantSub string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, ok := SubjectFromContext(r.Context())
		if !ok || sub != wantSub {
			t.Errorf("subject = %q ok=%v, want %q", sub, ok, wantSub)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func decodeErrorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var er ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&er); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return er.Error.Code
}

func TestAuthMiddleware_ValidBearer(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0).UTC()
	cfg := config.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "test-iss",
		Audience: "test-aud",
	}
	v := tokenverifier.New(cfg, fixedClock{t: now})
	mw := NewAuthMiddleware(v)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "acct-1",
		Issuer:    "test-iss",
		Audience:  jwt.ClaimStrings{"test-aud"},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/portal/registration", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	mw(probeHandler(t, "acct-1")).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	t.Parallel()

	v := tokenverifier.New(config.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "test-iss",
		Audience: "test-aud",
	}, fixedClock{t: time.Unix(1_700_000_000, 0).UTC()})
	mw := NewAuthMiddleware(v)

	cases := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer   "},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/v1/portal/registration", nil)
			if tc.authz != "" {
				req.Header.Set("Authorization", tc.authz)
			}
			rr := httptest.NewRecorder()
			mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler reached without auth")
			})).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rr.Code)
			}
			if code := decodeErrorCode(t, rr); code != "NOT_AUTHENTICATED" {
				t.Fatalf("code = %q", code)
			}
		})
	}
}

func TestAuthMiddleware_PublicPathsBypass(t *testing.T) {
	t.Parallel()

	v := tokenverifier.New(config.JWTConfig{Secret: "s", Issuer: "i", Audience: "a"}, nil)
	mw := NewAuthMiddleware(v)

	for _, path := range []string{"/healthz", "/metrics", "/v1/faq"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s blocked by auth: %d", path, rr.Code)
		}
	}
}

func TestDevAuthMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("header subject wins", func(t *testing.T) {
		t.Parallel()
		mw := NewDevAuthMiddleware("fallback")
		req := httptest.NewRequest(http.MethodGet, "/v1/portal/registration", nil)
		req.Header.Set("X-Debug-Subject", "acct-7")
		rr := httptest.NewRecorder()
		mw(probeHandler(t, "acct-7")).ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()
		mw := NewDevAuthMiddleware("dev|local")
		req := httptest.NewRequest(http.MethodGet, "/v1/portal/registration", nil)
		rr := httptest.NewRecorder()
		mw(probeHandler(t, "dev|local")).ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
	})

	t.Run("401 with no subject at all", func(t *testing.T) {
		t.Parallel()
		mw := NewDevAuthMiddleware("")
		req := httptest.NewRequest(http.MethodGet, "/v1/portal/registration", nil)
		rr := httptest.NewRecorder()
		mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler reached without subject")
		})).ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})
}
