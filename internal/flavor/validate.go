package flavor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Submission is the admin create/update payload before validation. Variant
// prices arrive as json.Number so both string and numeric form inputs parse.
type Submission struct {
	FlavorName       string              `json:"flavorName"`
	Manufacturer     string              `json:"manufacturer"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"shortDescription"`
	Categories       []string            `json:"categories"`
	Variants         []VariantSubmission `json:"variants"`
	VGPGRatio        string              `json:"vgPgRatio"`
	ImageURL         string              `json:"imageURL"`
}

type VariantSubmission struct {
	Size      string      `json:"size"`
	Price     json.Number `json:"price"`
	Type      string      `json:"type"`
	NicLevels []int       `json:"nicLevels"`
}

// ValidationError reports the first violation found in a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var bareIntSize = regexp.MustCompile(`^\d+$`)

// Validate checks a submission and, on success, returns the finished Flavor:
// fields trimmed, short description defaulted from the description prefix,
// variant sizes normalized to carry an "ml" suffix, nic levels sorted, and
// the overall type derived from the variants. The first violation aborts.
func (s Submission) Validate() (Flavor, error) {
	required := []struct{ field, value string }{
		{"flavorName", s.FlavorName},
		{"manufacturer", s.Manufacturer},
		{"description", s.Description},
		{"vgPgRatio", s.VGPGRatio},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Flavor{}, &ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if len(s.Categories) == 0 {
		return Flavor{}, &ValidationError{Field: "categories", Reason: "select at least one category"}
	}

	if len(s.Variants) == 0 {
		return Flavor{}, &ValidationError{Field: "variants", Reason: "add at least one product variant (size/price/type)"}
	}

	variants := make([]Variant, 0, len(s.Variants))
	for i, v := range s.Variants {
		field := fmt.Sprintf("variants[%d]", i)

		size := strings.TrimSpace(v.Size)
		if size == "" {
			return Flavor{}, &ValidationError{Field: field + ".size", Reason: "size is required"}
		}
		if !strings.Contains(strings.ToLower(size), "ml") && !bareIntSize.MatchString(size) {
			return Flavor{}, &ValidationError{Field: field + ".size", Reason: `size should be a number (e.g. 60) or include "ml" (e.g. 60ml)`}
		}

		price, err := v.Price.Float64()
		if v.Price.String() == "" || err != nil || price < 0 {
			return Flavor{}, &ValidationError{Field: field + ".price", Reason: "price must be a valid non-negative number"}
		}

		if v.Type != TypeELiquid && v.Type != TypeSaltNic {
			return Flavor{}, &ValidationError{Field: field + ".type", Reason: "type (E-Liquid/Salt Nic) must be selected"}
		}

		if len(v.NicLevels) == 0 {
			return Flavor{}, &ValidationError{Field: field + ".nicLevels", Reason: "select at least one nic level for " + v.Type}
		}

		if bareIntSize.MatchString(size) {
			size += "ml"
		}

		levels := make([]int, len(v.NicLevels))
		copy(levels, v.NicLevels)
		sort.Ints(levels)

		variants = append(variants, Variant{
			Size:      size,
			Price:     price,
			Type:      v.Type,
			NicLevels: levels,
		})
	}

	shortDesc := strings.TrimSpace(s.ShortDescription)
	if shortDesc == "" {
		desc := s.Description
		// Truncate on a rune boundary so multi-byte text stays valid.
		if runes := []rune(desc); len(runes) > 100 {
			desc = string(runes[:100])
		}
		shortDesc = strings.TrimSpace(desc)
	}

	f := Flavor{
		FlavorName:       strings.TrimSpace(s.FlavorName),
		Manufacturer:     strings.TrimSpace(s.Manufacturer),
		Description:      strings.TrimSpace(s.Description),
		ShortDescription: shortDesc,
		Categories:       s.Categories,
		Variants:         variants,
		VGPGRatio:        strings.TrimSpace(s.VGPGRatio),
		Type:             DeriveType(variants),
	}
	if url := strings.TrimSpace(s.ImageURL); url != "" {
		f.ImageURL = &url
	}
	return f, nil
}
