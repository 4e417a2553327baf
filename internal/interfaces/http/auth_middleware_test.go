package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/shophub/shophub-api/internal/interfaces/http"
	pkgjwt "github.com/shophub/shophub-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "user@example.com"
	testIssuer    = "shophub-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with one token-protected route and
// one admin-only route, each returning the identity the middleware loaded.
func buildTestApp() *fiber.App {
	app := fiber.New()
	identity := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": apphttp.GetUserID(c),
			"email":  apphttp.GetEmail(c),
			"role":   apphttp.GetRole(c),
		})
	}
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), identity)
	app.Get("/admin", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireAdmin(), identity)
	return app
}

// tokenForRole signs a JWT carrying the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest performs a GET against the app and returns the response.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenForRole(t, "user"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "user", body["role"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenForRole(t, "user")+"x")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_UserRejected(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", tokenForRole(t, "user"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
