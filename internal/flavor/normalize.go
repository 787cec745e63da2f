package flavor

import (
	"encoding/json"
	"strconv"
	"time"
)

// Record is the loosely-typed row shape exchanged with the storage layer and
// with clients sending partial updates. Values may be missing, null, or
// stringly typed; FromRecord absorbs all of that.
type Record map[string]any

// storableKeys are the columns a record may carry into storage. Anything else
// (including "id", since identity is managed by the storage layer) is dropped.
var storableKeys = []string{
	"flavorName",
	"manufacturer",
	"description",
	"shortDescription",
	"type",
	"categories",
	"variants",
	"vgPgRatio",
	"imageURL",
	"dateAdded",
}

// FromRecord maps an arbitrarily-shaped record into a fully-populated Flavor.
// It never fails: every field gets a best-effort coercion or its default.
func FromRecord(rec Record) Flavor {
	f := Flavor{
		ID:               asString(rec["id"]),
		FlavorName:       asString(rec["flavorName"]),
		Manufacturer:     asString(rec["manufacturer"]),
		Description:      asString(rec["description"]),
		ShortDescription: asString(rec["shortDescription"]),
		Type:             asString(rec["type"]),
		Categories:       asStringSlice(rec["categories"]),
		Variants:         asVariants(rec["variants"]),
		VGPGRatio:        asString(rec["vgPgRatio"]),
	}

	if f.Type == "" {
		f.Type = TypeBoth
	}

	if url := asString(rec["imageURL"]); url != "" {
		f.ImageURL = &url
	}

	f.DateAdded = asTime(rec["dateAdded"])

	return f
}

// ToRecord prepares a (possibly partial) record for storage: only known
// columns survive, the id is always stripped, and date fields are serialized
// to RFC 3339 strings. No validation happens here.
func ToRecord(rec Record) Record {
	out := Record{}
	for _, key := range storableKeys {
		value, ok := rec[key]
		if !ok {
			continue
		}
		if key == "dateAdded" {
			if t, isTime := value.(time.Time); isTime {
				value = t.UTC().Format(time.RFC3339)
			}
		}
		out[key] = value
	}
	return out
}

// Record converts a Flavor into its full storage record, id excluded.
func (f Flavor) Record() Record {
	rec := Record{
		"flavorName":       f.FlavorName,
		"manufacturer":     f.Manufacturer,
		"description":      f.Description,
		"shortDescription": f.ShortDescription,
		"type":             f.Type,
		"categories":       f.Categories,
		"variants":         f.Variants,
		"vgPgRatio":        f.VGPGRatio,
	}
	if f.ImageURL != nil {
		rec["imageURL"] = *f.ImageURL
	} else {
		rec["imageURL"] = nil
	}
	if !f.DateAdded.IsZero() {
		rec["dateAdded"] = f.DateAdded.UTC().Format(time.RFC3339)
	}
	return rec
}

func asVariants(value any) []Variant {
	switch vs := value.(type) {
	case []Variant:
		out := make([]Variant, 0, len(vs))
		for _, v := range vs {
			out = append(out, normalizeVariant(v))
		}
		return out
	case []any:
		out := make([]Variant, 0, len(vs))
		for _, raw := range vs {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, normalizeVariant(Variant{
				Size:      asString(m["size"]),
				Price:     asNumber(m["price"]),
				Type:      asString(m["type"]),
				NicLevels: asIntSlice(m["nicLevels"]),
			}))
		}
		return out
	default:
		return []Variant{}
	}
}

func normalizeVariant(v Variant) Variant {
	if v.Type != TypeELiquid && v.Type != TypeSaltNic {
		v.Type = TypeELiquid
	}
	if v.Price < 0 {
		v.Price = 0
	}
	if v.NicLevels == nil {
		v.NicLevels = []int{}
	}
	return v
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func asStringSlice(value any) []string {
	switch vs := value.(type) {
	case []string:
		out := make([]string, len(vs))
		copy(out, vs)
		return out
	case []any:
		out := make([]string, 0, len(vs))
		for _, raw := range vs {
			if s, ok := raw.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func asIntSlice(value any) []int {
	switch vs := value.(type) {
	case []int:
		out := make([]int, len(vs))
		copy(out, vs)
		return out
	case []any:
		out := make([]int, 0, len(vs))
		for _, raw := range vs {
			switch n := raw.(type) {
			case float64:
				out = append(out, int(n))
			case int:
				out = append(out, n)
			case json.Number:
				if v, err := n.Int64(); err == nil {
					out = append(out, int(v))
				}
			}
		}
		return out
	default:
		return []int{}
	}
}

func asTime(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
