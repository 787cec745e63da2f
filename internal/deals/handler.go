package deals

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/deals", h.getDeals)
	app.Get("/api/v1/manufacturers", h.getManufacturers)
}

func (h *Handler) getDeals(c *fiber.Ctx) error {
	flavors, err := h.service.LineOfTheMonth()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(flavors)
}

func (h *Handler) getManufacturers(c *fiber.Ctx) error {
	manufacturers, err := h.service.Manufacturers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(manufacturers)
}
