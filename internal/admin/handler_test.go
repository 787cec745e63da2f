package admin

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

const testSecret = "test-secret"

// newTestApp mirrors the production wiring: the sign-in route is public, the
// probe route sits behind the JWT middleware and the role check.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	service, err := NewService("swordfish", testSecret)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	app.Get("/api/v1/protected", func(c *fiber.Ctx) error {
		if err := RequireAdmin(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.SendString("ok")
	})
	return app
}

func TestSignIn_WrongPassword(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"password": "nope"})
	req := httptest.NewRequest("POST", "/api/v1/admin/sign-in", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSignIn_TokenOpensProtectedRoutes(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"password": "swordfish"})
	req := httptest.NewRequest("POST", "/api/v1/admin/sign-in", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var signedIn struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signedIn); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if signedIn.Token == "" {
		t.Fatal("sign-in must return a token")
	}

	probe := httptest.NewRequest("GET", "/api/v1/protected", nil)
	probe.Header.Set("Authorization", "Bearer "+signedIn.Token)
	resp, err = app.Test(probe)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected token to open the protected route, got %d", resp.StatusCode)
	}
}

func TestProtectedRoute_RejectsMissingToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestServiceAcceptsBcryptHash(t *testing.T) {
	// A bcrypt hash of "swordfish" passed via configuration is used as-is.
	first, err := NewService("swordfish", testSecret)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	hashed, err := NewService(string(first.passwordHash), testSecret)
	if err != nil {
		t.Fatalf("service from hash: %v", err)
	}
	if _, err := hashed.Authenticate("swordfish"); err != nil {
		t.Fatalf("hash-configured service must accept the password: %v", err)
	}
	if _, err := hashed.Authenticate("wrong"); err != ErrInvalidPassword {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}
