package catalog

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

// Handler serves the engine over HTTP.
type Handler struct {
	service *flavor.Service
}

func NewHandler(service *flavor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/flavors/browse", h.browseFlavors)
}

// browseItem is a catalog entry enriched with the card display values for
// the requested category context.
type browseItem struct {
	flavor.Flavor
	DisplaySize  string `json:"displaySize"`
	DisplayPrice string `json:"displayPrice"`
}

// browseFlavors runs the filter/sort engine server-side and returns the
// ordered subset together with the facet domains for the filter controls.
// Facets always come from the full catalog list, not the filtered subset.
func (h *Handler) browseFlavors(c *fiber.Ctx) error {
	flavors, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	categoryType := c.Query("type", flavor.TypeELiquid)
	sortKey := SortKey(c.Query("sort", string(SortNameAsc)))
	filter := parseFilter(c)

	facets := DeriveFacets(flavors)
	result := Apply(flavors, filter, sortKey, categoryType)

	items := make([]browseItem, 0, len(result))
	for _, f := range result {
		items = append(items, browseItem{
			Flavor:       f,
			DisplaySize:  DisplaySize(f, categoryType),
			DisplayPrice: DisplayPrice(f, categoryType),
		})
	}

	return c.JSON(fiber.Map{"flavors": items, "facets": facets})
}

func parseFilter(c *fiber.Ctx) Filter {
	filter := Filter{
		Sizes:      splitCSV(c.Query("sizes")),
		VGPGRatios: splitCSV(c.Query("vgPgRatios")),
	}
	for _, part := range splitCSV(c.Query("nicLevels")) {
		if level, err := strconv.Atoi(part); err == nil {
			filter.NicLevels = append(filter.NicLevels, level)
		}
	}
	minStr, maxStr := c.Query("priceMin"), c.Query("priceMax")
	if minStr != "" || maxStr != "" {
		pr := PriceRange{Min: 0, Max: maxUnbounded}
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			pr.Min = v
		}
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			pr.Max = v
		}
		filter.PriceRange = &pr
	}
	return filter
}

// maxUnbounded stands in for an omitted upper price bound.
const maxUnbounded = 1 << 30

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
