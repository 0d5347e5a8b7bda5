package serverutils

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"hr-assist-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"employee_id": "HR-0001",
		"role":        "hr_admin",
		"email":       "citra.dewi@company.com",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(c *fiber.Ctx) error {
		employeeID, _ := c.Locals("employee_id").(string)
		return c.SendString(employeeID)
	})
	return app
}

func clearJWTSecretEnv(t *testing.T) {
	t.Helper()
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		os.Unsetenv("JWT_SECRET")
		t.Cleanup(func() { os.Setenv("JWT_SECRET", v) })
	}
}

func TestJWTSecretFallsBackToConfigDefault(t *testing.T) {
	clearJWTSecretEnv(t)

	assert.Equal(t, config.DefaultJWTSecret, string(JWTSecret()))
}

func TestJWTSecretPrefersEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	assert.Equal(t, "from-env", string(JWTSecret()))
}

// Tokens signed with the loader's default secret must pass verification
// when JWT_SECRET is unset, so a fresh install can log in out of the box.
func TestJwtMiddlewareAcceptsTokenSignedWithDefaultSecret(t *testing.T) {
	clearJWTSecretEnv(t)

	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, config.DefaultJWTSecret))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareAcceptsTokenSignedWithEnvSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "rotated-secret")

	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "rotated-secret"))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsForeignSecret(t *testing.T) {
	clearJWTSecretEnv(t)

	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "some-other-secret"))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
