package favorite

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

// Handler keeps favorite-specific HTTP routing isolated from the flavor
// handler.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/favorites", h.getFavorites)
	app.Post("/api/v1/favorites", h.addFavorite)
	app.Delete("/api/v1/favorites/:id", h.removeFavorite)
}

func (h *Handler) getFavorites(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) addFavorite(c *fiber.Ctx) error {
	rec := flavor.Record{}
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	favorites, err := h.service.Add(rec)
	if err != nil {
		if err == ErrMissingID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid flavor id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(favorites)
}

func (h *Handler) removeFavorite(c *fiber.Ctx) error {
	favorites, err := h.service.Remove(c.Params("id"))
	if err != nil {
		switch err {
		case ErrMissingID:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid flavor id"})
		case ErrNotFavorite:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "flavor not in favorites"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(favorites)
}
