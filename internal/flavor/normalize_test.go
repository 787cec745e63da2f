package flavor

import (
	"reflect"
	"testing"
	"time"
)

func TestFromRecord_CoercesLooseShapes(t *testing.T) {
	rec := Record{
		"id":         "f1",
		"flavorName": "Mango Tango",
		"categories": []any{"Fruit", 42, "Candy"},
		"variants": []any{
			map[string]any{
				"size":      "60ml",
				"price":     24.99,
				"type":      TypeELiquid,
				"nicLevels": []any{float64(0), float64(3), "x"},
			},
			map[string]any{
				"size":  "30ml",
				"price": "15",
				"type":  "bogus",
			},
		},
		"vgPgRatio": "70/30",
		"imageURL":  "https://example.com/mango.png",
		"dateAdded": "2024-04-01T10:00:00Z",
	}

	f := FromRecord(rec)

	if f.ID != "f1" || f.FlavorName != "Mango Tango" {
		t.Fatalf("unexpected identity fields: %+v", f)
	}
	if f.Manufacturer != "" || f.Description != "" || f.ShortDescription != "" {
		t.Fatalf("missing text fields must default to empty: %+v", f)
	}
	if !reflect.DeepEqual(f.Categories, []string{"Fruit", "Candy"}) {
		t.Fatalf("non-string categories must be dropped: %v", f.Categories)
	}
	if len(f.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(f.Variants))
	}
	if !reflect.DeepEqual(f.Variants[0].NicLevels, []int{0, 3}) {
		t.Fatalf("non-numeric nic levels must be dropped: %v", f.Variants[0].NicLevels)
	}
	if f.Variants[1].Price != 15 {
		t.Fatalf("numeric string price must coerce, got %v", f.Variants[1].Price)
	}
	if f.Variants[1].Type != TypeELiquid {
		t.Fatalf("invalid variant type must default to E-Liquid, got %q", f.Variants[1].Type)
	}
	if f.Variants[1].NicLevels == nil || len(f.Variants[1].NicLevels) != 0 {
		t.Fatalf("missing nic levels must default to empty list: %v", f.Variants[1].NicLevels)
	}
	if f.ImageURL == nil || *f.ImageURL != "https://example.com/mango.png" {
		t.Fatalf("unexpected imageURL: %v", f.ImageURL)
	}
	want := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	if !f.DateAdded.Equal(want) {
		t.Fatalf("unexpected dateAdded: %v", f.DateAdded)
	}
}

func TestFromRecord_IsTotalOverEmptyInput(t *testing.T) {
	f := FromRecord(Record{})
	if f.Type != TypeBoth {
		t.Fatalf("missing type must default to Both, got %q", f.Type)
	}
	if f.Categories == nil || f.Variants == nil {
		t.Fatalf("collections must never be nil: %+v", f)
	}
	if f.ImageURL != nil {
		t.Fatalf("missing imageURL must stay nil")
	}
	if f.DateAdded.IsZero() {
		t.Fatalf("missing dateAdded must default to now")
	}
}

func TestFromRecord_UnparseableDateDefaultsToNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	f := FromRecord(Record{"dateAdded": "not a date"})
	if f.DateAdded.Before(before) {
		t.Fatalf("unparseable dateAdded should substitute now, got %v", f.DateAdded)
	}
}

func TestToRecord_StripsIDAndUnknownKeys(t *testing.T) {
	out := ToRecord(Record{
		"id":         "should-go",
		"flavorName": "Berry",
		"bogusKey":   "nope",
		"dateAdded":  time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
	})

	if _, ok := out["id"]; ok {
		t.Fatalf("id must be stripped")
	}
	if _, ok := out["bogusKey"]; ok {
		t.Fatalf("unknown keys must be dropped")
	}
	if out["flavorName"] != "Berry" {
		t.Fatalf("provided keys must survive: %v", out)
	}
	if out["dateAdded"] != "2024-04-01T10:00:00Z" {
		t.Fatalf("dates must serialize to RFC 3339, got %v", out["dateAdded"])
	}
}

func TestToRecord_OmitsAbsentKeys(t *testing.T) {
	out := ToRecord(Record{"manufacturer": "Cloud Co"})
	if len(out) != 1 {
		t.Fatalf("only provided keys may appear, got %v", out)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	url := "https://example.com/img.png"
	original := Flavor{
		ID:               "keep",
		FlavorName:       "Peach Ice",
		Manufacturer:     "Frost Labs",
		Description:      "A long peach description",
		ShortDescription: "Peach",
		Type:             TypeBoth,
		Categories:       []string{"Fruit", "Menthol"},
		Variants: []Variant{
			{Size: "60ml", Price: 22.5, Type: TypeELiquid, NicLevels: []int{0, 3, 6}},
			{Size: "30ml", Price: 18, Type: TypeSaltNic, NicLevels: []int{25, 50}},
		},
		VGPGRatio: "70/30",
		ImageURL:  &url,
		DateAdded: time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC),
	}

	rec := original.Record()
	rec["id"] = original.ID // identity is managed outside the transform
	restored := FromRecord(rec)

	if !restored.DateAdded.Equal(original.DateAdded) {
		t.Fatalf("dateAdded changed: %v vs %v", restored.DateAdded, original.DateAdded)
	}
	restored.DateAdded = original.DateAdded
	if !reflect.DeepEqual(restored, original) {
		t.Fatalf("round trip changed the flavor:\n got %+v\nwant %+v", restored, original)
	}
}
