package catalog

import (
	"testing"
	"time"

	"github.com/saiswarup426503/amazon/internal/domain"
)

func TestToStoreRowNaming(t *testing.T) {
	p := sampleProduct("camera")
	p.ID = 7
	p.ReviewSummary = "sharp"
	p.PublishDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	row, err := ToStoreRow(p)
	if err != nil {
		t.Fatalf("to store row: %v", err)
	}
	for _, key := range []string{"review_summary", "affiliate_link", "publish_date", "created_at"} {
		if _, ok := row[key]; !ok {
			t.Fatalf("missing store key %q in %v", key, row)
		}
	}
	if _, ok := row["reviewSummary"]; ok {
		t.Fatal("app-convention key leaked into store row")
	}
}

func TestFromStoreRowRoundTrip(t *testing.T) {
	p := sampleProduct("tripod")
	p.ID = 99
	p.Status = domain.StatusPublished
	p.PublishDate = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	row, err := ToStoreRow(p)
	if err != nil {
		t.Fatalf("to store row: %v", err)
	}
	back, err := FromStoreRow(row)
	if err != nil {
		t.Fatalf("from store row: %v", err)
	}
	if back.ID != 99 || back.Title != "tripod" || back.Status != domain.StatusPublished {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if !back.PublishDate.Equal(p.PublishDate) {
		t.Fatalf("publish date mismatch: %v != %v", back.PublishDate, p.PublishDate)
	}
	if len(back.Images) != 1 || back.Images[0] != p.Images[0] {
		t.Fatalf("images mismatch: %v", back.Images)
	}
}

func TestFromStoreRowFlexibleDates(t *testing.T) {
	row := map[string]interface{}{
		"title":        "lens",
		"rating":       "4.5",
		"status":       "Draft",
		"publish_date": "2024-05-01",
	}
	p, err := FromStoreRow(row)
	if err != nil {
		t.Fatalf("from store row: %v", err)
	}
	if p.Rating != 4.5 {
		t.Fatalf("weakly typed rating not converted: %v", p.Rating)
	}
	if p.PublishDate.Year() != 2024 || p.PublishDate.Month() != time.May {
		t.Fatalf("date not parsed: %v", p.PublishDate)
	}
}
