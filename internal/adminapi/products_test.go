package adminapi

import (
	"net/http"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/saiswarup426503/amazon/internal/domain"
)

func TestBuildProductValidation(t *testing.T) {
	if _, err := buildProduct(&productPayload{Title: "  "}); err == nil {
		t.Fatal("blank title must be rejected")
	}
	if _, err := buildProduct(&productPayload{Title: "x", Status: "Live"}); err == nil {
		t.Fatal("unknown status must be rejected")
	}
	if _, err := buildProduct(&productPayload{Title: "x", AffiliateLink: "not a url"}); err == nil {
		t.Fatal("malformed affiliate link must be rejected")
	}
	if _, err := buildProduct(&productPayload{Title: "x", AffiliateLink: "ftp://example.com"}); err == nil {
		t.Fatal("non-http scheme must be rejected")
	}
	if _, err := buildProduct(&productPayload{Title: "x", PublishDate: "not a date"}); err == nil {
		t.Fatal("unparseable publish date must be rejected")
	}
}

func TestBuildProductDefaultsAndClamp(t *testing.T) {
	p, err := buildProduct(&productPayload{Title: "Widget", Rating: 7.3, AffiliateLink: "#"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p.Status != domain.StatusDraft {
		t.Fatalf("status must default to Draft, got %q", p.Status)
	}
	if p.Rating != 5 {
		t.Fatalf("rating must clamp to 5, got %v", p.Rating)
	}
	if p.PublishDate.IsZero() || time.Since(p.PublishDate) > time.Minute {
		t.Fatalf("publish date must default to now, got %v", p.PublishDate)
	}
	if p.Images == nil {
		t.Fatal("images must never be nil")
	}

	low, err := buildProduct(&productPayload{Title: "Widget", Rating: -2})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if low.Rating != 0 {
		t.Fatalf("rating must clamp to 0, got %v", low.Rating)
	}
}

func TestBuildProductFlexibleDates(t *testing.T) {
	p, err := buildProduct(&productPayload{Title: "Widget", PublishDate: "2024-05-01"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p.PublishDate.Year() != 2024 || p.PublishDate.Month() != time.May || p.PublishDate.Day() != 1 {
		t.Fatalf("date not parsed: %v", p.PublishDate)
	}
}

func TestCreateProductHandler(t *testing.T) {
	application := testApp(t)

	body := `{"title":"Wireless Mouse","price":"₹6639","rating":4.8,"status":"Published","publishDate":"2024-05-01T00:00:00Z","affiliateLink":"https://example.com/p/1"}`
	c, rec := jsonRequest(t, application, http.MethodPost, "/api/products", body)
	if err := createProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var p domain.Product
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("created product must carry a store-assigned id")
	}

	var stored domain.Product
	if err := application.DB().First(&stored, p.ID).Error; err != nil {
		t.Fatalf("stored record missing: %v", err)
	}
	if stored.Title != "Wireless Mouse" || stored.Status != domain.StatusPublished {
		t.Fatalf("stored record mismatch: %+v", stored)
	}
}

func TestCreateProductRejectsInvalid(t *testing.T) {
	application := testApp(t)

	c, rec := jsonRequest(t, application, http.MethodPost, "/api/products", `{"price":"₹1"}`)
	if err := createProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var count int64
	application.DB().Model(&domain.Product{}).Count(&count)
	if count != 0 {
		t.Fatal("invalid payload must not be persisted")
	}
}

func TestUpdateProductMissingReturns404(t *testing.T) {
	application := testApp(t)

	body := `{"title":"Ghost","status":"Draft"}`
	c, rec := jsonRequest(t, application, http.MethodPut, "/api/products/12345", body)
	c.SetParamNames("id")
	c.SetParamValues("12345")
	if err := updateProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
