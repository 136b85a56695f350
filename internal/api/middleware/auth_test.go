package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
	"github.com/atcnextgen/catalog-api/internal/core/service"
	"github.com/atcnextgen/catalog-api/internal/infrastructure/db/memory"
)

func setup(t *testing.T) (*service.TokenService, *memory.UserRepository, *domain.User) {
	t.Helper()
	tokens := service.NewTokenService("secret", time.Hour)
	users := memory.NewUserRepository()
	user, err := users.Insert(context.Background(), &domain.User{
		Username:     "alice",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return tokens, users, user
}

func runGuard(t *testing.T, tokens *service.TokenService, users *memory.UserRepository, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, users)(next)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, users, user := setup(t)

	token, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec := runGuard(t, tokens, users, "Bearer "+token, func(c echo.Context) error {
		called = true
		got, ok := c.Get("user").(*domain.User)
		if !ok || got.ID != user.ID {
			t.Fatalf("user not injected into context")
		}
		if c.Get("username") != "alice" || c.Get("role") != domain.RoleAdmin {
			t.Fatalf("identity fields not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func failNext(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, users, _ := setup(t)

	rec := runGuard(t, tokens, users, "", failNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens, users, user := setup(t)

	token, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, header := range []string{"Basic " + token, token, "bearer " + token} {
		rec := runGuard(t, tokens, users, header, failNext(t))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens, users, user := setup(t)

	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec := runGuard(t, tokens, users, "Bearer "+expired, failNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	tokens, users, user := setup(t)

	forged, err := service.NewTokenService("other-secret", time.Hour).Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := runGuard(t, tokens, users, "Bearer "+forged, failNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	tokens, _, user := setup(t)

	token, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// A valid token whose subject no longer exists must be rejected.
	emptyUsers := memory.NewUserRepository()
	rec := runGuard(t, tokens, emptyUsers, "Bearer "+token, failNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
