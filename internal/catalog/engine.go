// Package catalog implements the filter/sort/facet engine behind the
// storefront grid. The engine is a pure function of (catalog list, filter
// state, sort key, category context); it keeps no state between calls.
package catalog

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
)

// PriceRange is an inclusive [Min, Max] bound on variant prices.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filter holds the active filter selections. Empty selections (and a nil
// price range) are vacuously satisfied.
type Filter struct {
	Sizes      []string
	NicLevels  []int
	PriceRange *PriceRange
	VGPGRatios []string
}

// Facets are the value domains available for filter controls, derived from
// the base catalog list (not from a filtered subset, so controls don't
// flicker as filters change).
type Facets struct {
	Sizes      []string `json:"sizes"`
	NicLevels  []int    `json:"nicLevels"`
	VGPGRatios []string `json:"vgPgRatios"`
	MaxPrice   float64  `json:"maxPrice"`
}

// newNameCollator builds the locale collator used for name ordering.
// Collators keep internal iterator state across comparisons and are not safe
// for concurrent use, so each sort gets its own instance.
func newNameCollator() *collate.Collator {
	return collate.New(language.English)
}

// DeriveFacets computes the facet domains for a catalog list. The max price
// is floored at 1 so a slider keeps a usable upper bound even for an empty
// or all-zero catalog.
func DeriveFacets(flavors []flavor.Flavor) Facets {
	sizeSet := map[string]struct{}{}
	levelSet := map[int]struct{}{}
	ratioSet := map[string]struct{}{}
	maxPrice := 1.0

	for _, f := range flavors {
		for _, v := range f.Variants {
			sizeSet[v.Size] = struct{}{}
			for _, level := range v.NicLevels {
				levelSet[level] = struct{}{}
			}
			if v.Price > maxPrice {
				maxPrice = v.Price
			}
		}
		if f.VGPGRatio != "" {
			ratioSet[f.VGPGRatio] = struct{}{}
		}
	}

	sizes := make([]string, 0, len(sizeSet))
	for s := range sizeSet {
		sizes = append(sizes, s)
	}
	sort.Strings(sizes)

	levels := make([]int, 0, len(levelSet))
	for l := range levelSet {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	ratios := make([]string, 0, len(ratioSet))
	for r := range ratioSet {
		ratios = append(ratios, r)
	}
	sort.Strings(ratios)

	return Facets{Sizes: sizes, NicLevels: levels, VGPGRatios: ratios, MaxPrice: maxPrice}
}

// Apply filters and sorts a catalog list. Filtering is catalog-wide (every
// predicate clause looks at the whole variant list), while price sorting is
// scoped to categoryType: a user filtering by nicotine strength should see a
// flavor even when the match is on its Salt Nic variant while browsing the
// E-Liquid section, but price ordering in that section must reflect the
// E-Liquid price.
func Apply(flavors []flavor.Flavor, filter Filter, key SortKey, categoryType string) []flavor.Flavor {
	out := make([]flavor.Flavor, 0, len(flavors))
	for _, f := range flavors {
		if filter.matches(f) {
			out = append(out, f)
		}
	}
	sortFlavors(out, key, categoryType)
	return out
}

func (ft Filter) matches(f flavor.Flavor) bool {
	if len(ft.Sizes) > 0 {
		found := false
		for _, v := range f.Variants {
			if containsString(ft.Sizes, v.Size) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(ft.NicLevels) > 0 {
		found := false
		for _, v := range f.Variants {
			for _, level := range v.NicLevels {
				if containsInt(ft.NicLevels, level) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	if ft.PriceRange != nil {
		found := false
		for _, v := range f.Variants {
			if v.Price >= ft.PriceRange.Min && v.Price <= ft.PriceRange.Max {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(ft.VGPGRatios) > 0 {
		if f.VGPGRatio == "" || !containsString(ft.VGPGRatios, f.VGPGRatio) {
			return false
		}
	}

	return true
}

// sortFlavors orders the list in place. All orderings are stable so flavors
// equal under the active comparator keep their input order.
func sortFlavors(flavors []flavor.Flavor, key SortKey, categoryType string) {
	switch key {
	case SortNameAsc:
		coll := newNameCollator()
		sort.SliceStable(flavors, func(i, j int) bool {
			return coll.CompareString(flavors[i].FlavorName, flavors[j].FlavorName) < 0
		})
	case SortNameDesc:
		coll := newNameCollator()
		sort.SliceStable(flavors, func(i, j int) bool {
			return coll.CompareString(flavors[j].FlavorName, flavors[i].FlavorName) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(flavors, func(i, j int) bool {
			return minPrice(flavors[i], categoryType) < minPrice(flavors[j], categoryType)
		})
	case SortPriceDesc:
		sort.SliceStable(flavors, func(i, j int) bool {
			return minPrice(flavors[j], categoryType) < minPrice(flavors[i], categoryType)
		})
	case SortNewest:
		sort.SliceStable(flavors, func(i, j int) bool {
			return flavors[i].DateAdded.After(flavors[j].DateAdded)
		})
	}
}

// minPrice is the cheapest price among variants matching categoryType.
// Flavors with no matching variant price as +Inf: last ascending, first
// descending.
func minPrice(f flavor.Flavor, categoryType string) float64 {
	min := math.Inf(1)
	for _, v := range f.Variants {
		if categoryType != "" && v.Type != categoryType {
			continue
		}
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, n := range haystack {
		if n == needle {
			return true
		}
	}
	return false
}
