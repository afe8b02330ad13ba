package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/platefit/platefit/internal/config"
	"github.com/platefit/platefit/internal/userctx"
)

func testConfig() *config.Config {
	return &config.Config{
		AuthMode:      "dev",
		AuthRequired:  true,
		JWTSecret:     "test-secret",
		JWTIssuer:     "platefit",
		JWTTTLMinutes: 60,
	}
}

func TestHandleDevLogin(t *testing.T) {
	h := NewHandlers(NewService(testConfig()))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/dev-login", strings.NewReader(`{"user_id":"alice"}`))
	w := httptest.NewRecorder()

	h.HandleDevLogin(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp DevAuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}
	if resp.TokenType != "Bearer" {
		t.Fatalf("expected Bearer token type, got %q", resp.TokenType)
	}
	if resp.UserID != "alice" {
		t.Fatalf("expected user_id alice, got %q", resp.UserID)
	}
}

func TestHandleDevLogin_DefaultUser(t *testing.T) {
	h := NewHandlers(NewService(testConfig()))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/dev-login", nil)
	w := httptest.NewRecorder()

	h.HandleDevLogin(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp DevAuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UserID != defaultDevUserID {
		t.Fatalf("expected default dev user, got %q", resp.UserID)
	}
}

func TestVerifyJWT_RoundTrip(t *testing.T) {
	svc := NewService(testConfig())

	resp, err := svc.SignInDev(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, err := svc.VerifyJWT(resp.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "bob" {
		t.Fatalf("expected sub bob, got %q", sub)
	}
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	issued, err := NewService(testConfig()).SignInDev(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	otherCfg := testConfig()
	otherCfg.JWTSecret = "other-secret"

	if _, err := NewService(otherCfg).VerifyJWT(issued.AccessToken); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestRequireAuth(t *testing.T) {
	cfg := testConfig()
	svc := NewService(cfg)
	mw := NewMiddleware(cfg, svc)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = userctx.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.RequireAuth(next)

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token passes through", func(t *testing.T) {
		resp, err := svc.SignInDev(context.Background(), "carol")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotUserID != "carol" {
			t.Fatalf("expected user carol in context, got %q", gotUserID)
		}
	})

	t.Run("public path skips auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
