package flavor

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vaporhub/vape-shop-backend/internal/admin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/flavors", h.getFlavors)
	app.Get("/api/v1/flavors/new", h.getNewFlavors)
	app.Get("/api/v1/flavors/search", h.searchFlavors)
	app.Get("/api/v1/flavors/category", h.getFlavorsByCategory)
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/flavor/:id", h.getFlavor)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/flavors", h.createFlavor)
	app.Put("/api/v1/flavor/:id", h.updateFlavor)
	app.Patch("/api/v1/flavor/:id", h.patchFlavor)
	app.Delete("/api/v1/flavor/:id", h.deleteFlavor)
}

func (h *Handler) getFlavors(c *fiber.Ctx) error {
	flavors, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(flavors)
}

func (h *Handler) getFlavor(c *fiber.Ctx) error {
	f, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Flavor not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(f)
}

func (h *Handler) getFlavorsByCategory(c *fiber.Ctx) error {
	variantType := c.Query("type")
	category := c.Query("category")
	if variantType == "" || category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "type and category are required"})
	}
	flavors, err := h.service.ListByTypeAndCategory(variantType, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(flavors)
}

func (h *Handler) getNewFlavors(c *fiber.Ctx) error {
	limit := 12
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	flavors, err := h.service.ListNewest(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(flavors)
}

func (h *Handler) searchFlavors(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.JSON([]Flavor{})
	}
	flavors, err := h.service.Search(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(flavors)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(Categories)
}

func (h *Handler) createFlavor(c *fiber.Ctx) error {
	if err := admin.RequireAdmin(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	sub := new(Submission)
	if err := c.BodyParser(sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	f, err := sub.Validate()
	if err != nil {
		return validationResponse(c, err)
	}

	created, err := h.service.Create(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateFlavor(c *fiber.Ctx) error {
	if err := admin.RequireAdmin(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	sub := new(Submission)
	if err := c.BodyParser(sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	f, err := sub.Validate()
	if err != nil {
		return validationResponse(c, err)
	}

	updated, err := h.service.Update(c.Params("id"), f)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Flavor not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

// patchFlavor applies a raw partial record; unknown keys and the id are
// dropped by the storage transform.
func (h *Handler) patchFlavor(c *fiber.Ctx) error {
	if err := admin.RequireAdmin(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	rec := Record{}
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Patch(c.Params("id"), rec)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Flavor not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteFlavor(c *fiber.Ctx) error {
	if err := admin.RequireAdmin(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(c.Params("id")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Flavor not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Flavor deleted")
}

func validationResponse(c *fiber.Ctx, err error) error {
	if ve, ok := err.(*ValidationError); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"field": ve.Field, "message": ve.Reason})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
}
