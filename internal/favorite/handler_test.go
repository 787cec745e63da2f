package favorite

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "favorites.json"))
	handler := NewHandler(NewService(repo))

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app
}

func TestAddAndListFavorites(t *testing.T) {
	app := newTestApp(t)

	body := `{"id":"a","flavorName":"Apple Burst","variants":[{"size":"60ml","price":20,"type":"E-Liquid","nicLevels":[3]}]}`
	req := httptest.NewRequest("POST", "/api/v1/favorites", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/favorites", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got []flavor.Flavor
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("favorite not listed: %+v", got)
	}
}

func TestAddFavorite_MissingID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/favorites", bytes.NewBufferString(`{"flavorName":"No ID"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", resp.StatusCode)
	}
}

func TestRemoveFavorite_NotFavorited(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/favorites/ghost", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
