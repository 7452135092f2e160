package adminapi

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saiswarup426503/amazon/internal/app"
	"github.com/saiswarup426503/amazon/internal/catalog"
	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/internal/webserver"
)

type productPayload struct {
	Title         string   `json:"title"`
	Price         string   `json:"price"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"`
	ReviewSummary string   `json:"reviewSummary"`
	Images        []string `json:"images"`
	AffiliateLink string   `json:"affiliateLink"`
	Status        string   `json:"status"`
	PublishDate   string   `json:"publishDate"`
}

// registerProductRoutes registers product CRUD and image endpoints.
// Reads live on the public surface; every mutation requires a token.
func registerProductRoutes() {
	webserver.ApiPOST("/api/products", createProduct)
	webserver.ApiPUT("/api/products/:id", updateProduct)
	webserver.ApiDELETE("/api/products/:id", deleteProduct)
	webserver.ApiPOST("/api/products/:id/images", uploadProductImages)
	webserver.ApiDELETE("/api/products/:id/images/:index", removeProductImage)
}

// buildProduct validates a payload and maps it onto a Product. Rating
// is clamped to [0,5] at this boundary; price stays a display string.
func buildProduct(payload *productPayload) (*domain.Product, error) {
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	status, err := domain.ParseStatus(payload.Status)
	if err != nil {
		return nil, err
	}

	rating := payload.Rating
	if rating < 0 {
		rating = 0
	} else if rating > 5 {
		rating = 5
	}

	link := strings.TrimSpace(payload.AffiliateLink)
	if link != "" && link != "#" {
		u, err := url.Parse(link)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, errors.New("affiliate link must be an absolute http(s) URL")
		}
	}

	publishDate := time.Now()
	if s := strings.TrimSpace(payload.PublishDate); s != "" {
		publishDate, err = dateparse.ParseAny(s)
		if err != nil {
			return nil, errors.Wrap(err, "invalid publish date")
		}
	}

	images := domain.ImageList{}
	if payload.Images != nil {
		images = domain.ImageList(payload.Images)
	}

	return &domain.Product{
		Title:         title,
		Price:         strings.TrimSpace(payload.Price),
		Description:   payload.Description,
		Rating:        rating,
		ReviewSummary: payload.ReviewSummary,
		Images:        images,
		AffiliateLink: link,
		Status:        status,
		PublishDate:   publishDate,
	}, nil
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse product")
	}
	p, err := buildProduct(&payload)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	repo := catalog.NewRepository(webserver.GetDB(c))
	if err := repo.Create(c.Request().Context(), p); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	webserver.GetApp(c).Bus().Publish(app.EventProductCreated, operatorName(c), p.Title)
	return created(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product ID")
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse product")
	}
	p, err := buildProduct(&payload)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	repo := catalog.NewRepository(webserver.GetDB(c))
	updated, err := repo.Replace(c.Request().Context(), id, p)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	webserver.GetApp(c).Bus().Publish(app.EventProductUpdated, operatorName(c), updated.Title)
	return ok(c, updated)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product ID")
	}
	repo := catalog.NewRepository(webserver.GetDB(c))
	err = repo.Delete(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	webserver.GetApp(c).Bus().Publish(app.EventProductDeleted, operatorName(c), c.Param("id"))
	return ok(c, map[string]interface{}{"message": "Product deleted"})
}
