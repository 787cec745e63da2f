package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

// variantFor returns the first variant matching the page's category context.
func variantFor(f flavor.Flavor, categoryType string) (flavor.Variant, bool) {
	for _, v := range f.Variants {
		if v.Type == categoryType {
			return v, true
		}
	}
	return flavor.Variant{}, false
}

// DisplaySize renders the card size for a flavor in the given category
// context: the matching variant's size with an "ml" suffix appended when the
// stored value lacks one, or "N/A" when no variant matches.
func DisplaySize(f flavor.Flavor, categoryType string) string {
	v, ok := variantFor(f, categoryType)
	if !ok || v.Size == "" {
		return "N/A"
	}
	if !strings.Contains(strings.ToLower(v.Size), "ml") {
		return v.Size + "ml"
	}
	return v.Size
}

// DisplayPrice renders the card price: the matching variant's price rounded
// to the nearest integer with a "$" prefix, or "N/A" when no variant matches.
func DisplayPrice(f flavor.Flavor, categoryType string) string {
	v, ok := variantFor(f, categoryType)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("$%d", int(math.Round(v.Price)))
}
