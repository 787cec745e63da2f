package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service *Service
}

type signInRequest struct {
	Password string `json:"password"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/sign-in", h.signIn)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	token, err := h.service.Authenticate(payload.Password)
	if err != nil {
		if err == ErrInvalidPassword {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// RequireAdmin reads the JWT placed on the context by the auth middleware and
// verifies the admin role claim. Handlers behind the middleware call this
// before mutating anything.
func RequireAdmin(c *fiber.Ctx) error {
	u := c.Locals("user")
	if u == nil {
		return fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return fiber.ErrUnauthorized
	}
	return nil
}
