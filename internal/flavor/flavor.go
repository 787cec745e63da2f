package flavor

import "time"

// Variant type literals. A flavor's overall Type additionally allows TypeBoth,
// which is derived when both variant families are present.
const (
	TypeELiquid = "E-Liquid"
	TypeSaltNic = "Salt Nic"
	TypeBoth    = "Both"
)

// Variant is one purchasable SKU of a flavor: a size/price pairing scoped to
// a nicotine-delivery format with its valid strengths.
type Variant struct {
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Type      string  `json:"type"`
	NicLevels []int   `json:"nicLevels"`
}

// Flavor is a catalog entry. JSON tags follow the camelCase convention used
// by the storefront clients and match the `flavors` table column names.
type Flavor struct {
	ID               string    `json:"id"`
	FlavorName       string    `json:"flavorName"`
	Manufacturer     string    `json:"manufacturer"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Type             string    `json:"type"`
	Categories       []string  `json:"categories"`
	Variants         []Variant `json:"variants"`
	VGPGRatio        string    `json:"vgPgRatio"`
	ImageURL         *string   `json:"imageURL"`
	DateAdded        time.Time `json:"dateAdded"`
}

// Categories contains the closed category vocabulary supported across the app.
var Categories = []string{
	"Fruit",
	"Dessert",
	"Breakfast",
	"Candy",
	"Drinks",
	"Menthol",
	"Tobacco",
	"Nuts",
	"Other",
}

// ELiquidNicLevels and SaltNicLevels are the strengths offered by the admin
// form per variant type. They are UI choices, not storage constraints.
var (
	ELiquidNicLevels = []int{0, 3, 6, 9, 12, 18, 24}
	SaltNicLevels    = []int{10, 15, 20, 24, 25, 28, 30, 35, 48, 50, 55}
)

// DeriveType computes the overall flavor type from its variants: TypeBoth when
// both families are present, otherwise the single family found. Empty variant
// lists yield an empty string; callers reject those before storage.
func DeriveType(variants []Variant) string {
	hasELiquid := false
	hasSaltNic := false
	for _, v := range variants {
		switch v.Type {
		case TypeELiquid:
			hasELiquid = true
		case TypeSaltNic:
			hasSaltNic = true
		}
	}
	switch {
	case hasELiquid && hasSaltNic:
		return TypeBoth
	case hasELiquid:
		return TypeELiquid
	case hasSaltNic:
		return TypeSaltNic
	default:
		return ""
	}
}
