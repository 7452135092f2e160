// Package catalogapi exposes the public, read-only storefront surface.
package catalogapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saiswarup426503/amazon/internal/catalog"
	"github.com/saiswarup426503/amazon/internal/webserver"
)

// RegisterRoutes attaches the visitor endpoints
func RegisterRoutes() {
	webserver.PubGET("/api/products", listProducts)
	webserver.PubGET("/api/products/:id", getProduct)
}

// listProducts returns the catalog newest-first. With ?visible=1 only
// products whose lifecycle permits display right now are included,
// which is what the storefront page requests.
func listProducts(c echo.Context) error {
	repo := catalog.NewRepository(webserver.GetDB(c))
	ctx := c.Request().Context()

	visible := c.QueryParam("visible")
	if visible == "1" || visible == "true" {
		products, err := repo.ListVisible(ctx, time.Now())
		if err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := repo.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product ID")
	}
	repo := catalog.NewRepository(webserver.GetDB(c))
	p, err := repo.Get(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{"message": message})
}
