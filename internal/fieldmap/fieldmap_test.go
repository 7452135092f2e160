package fieldmap

import (
	"reflect"
	"testing"
)

func TestProductTableToStore(t *testing.T) {
	in := map[string]interface{}{
		"title":         "Wireless Mouse",
		"reviewSummary": "great",
		"affiliateLink": "https://example.com/p/1",
		"publishDate":   "2024-05-01T00:00:00Z",
	}
	got := ProductTable.ToStore(in).(map[string]interface{})
	want := map[string]interface{}{
		"title":          "Wireless Mouse",
		"review_summary": "great",
		"affiliate_link": "https://example.com/p/1",
		"publish_date":   "2024-05-01T00:00:00Z",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToStore = %v, want %v", got, want)
	}
}

func TestRoundTripNested(t *testing.T) {
	in := map[string]interface{}{
		"id":     "42",
		"title":  "Monitor",
		"images": []interface{}{"data:image/jpeg;base64,a", "data:image/jpeg;base64,b"},
		"variants": []interface{}{
			map[string]interface{}{
				"reviewSummary": "nested",
				"publishDate":   "2024-01-01",
			},
		},
	}
	out := ProductTable.ToApp(ProductTable.ToStore(in))
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip changed value: %v != %v", out, in)
	}
}

func TestUnknownKeysPassThrough(t *testing.T) {
	in := map[string]interface{}{
		"some_vendor_field": 1,
		"AnotherOddKey":     "x",
	}
	stored := ProductTable.ToStore(in).(map[string]interface{})
	if !reflect.DeepEqual(stored, in) {
		t.Fatalf("unknown keys must pass through unchanged, got %v", stored)
	}
	back := ProductTable.ToApp(stored).(map[string]interface{})
	if !reflect.DeepEqual(back, in) {
		t.Fatalf("unknown keys must pass through in reverse, got %v", back)
	}
}

func TestScalarAndNilInputs(t *testing.T) {
	if got := ProductTable.ToStore(nil); got != nil {
		t.Fatalf("nil should pass through, got %v", got)
	}
	if got := ProductTable.ToApp("publishDate"); got != "publishDate" {
		t.Fatalf("scalar values are not keys, got %v", got)
	}
}
