package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/saiswarup426503/amazon/internal/catalog"
	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/internal/webserver"
)

// registerImportExportRoutes registers the bulk surface. Import
// supersedes the old unauthenticated seed endpoint; both speak the
// store's snake_case convention so dumps can move between installs.
func registerImportExportRoutes() {
	webserver.ApiGET("/api/admin/products/export", exportProducts)
	webserver.ApiPOST("/api/admin/products/import", importProducts)
}

func exportProducts(c echo.Context) error {
	repo := catalog.NewRepository(webserver.GetDB(c))
	products, err := repo.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	rows := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		row, err := catalog.ToStoreRow(&products[i])
		if err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
		rows = append(rows, row)
	}
	return ok(c, rows)
}

// importProducts inserts a batch of store-convention rows. The batch is
// validated up front and written in one transaction, so a bad row means
// nothing is persisted.
func importProducts(c echo.Context) error {
	var rows []map[string]interface{}
	if err := c.Bind(&rows); err != nil {
		return fail(c, http.StatusBadRequest, "array of product rows expected")
	}
	if len(rows) == 0 {
		return fail(c, http.StatusBadRequest, "no rows submitted")
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := catalog.FromStoreRow(row)
		if err != nil {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		if strings.TrimSpace(p.Title) == "" {
			return fail(c, http.StatusBadRequest, "row missing title")
		}
		if p.PublishDate.IsZero() {
			p.PublishDate = time.Now()
		}
		products = append(products, p)
	}

	ctx := c.Request().Context()
	err := webserver.GetDB(c).Transaction(func(tx *gorm.DB) error {
		repo := catalog.NewRepository(tx)
		for _, p := range products {
			if err := repo.Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]interface{}{"message": "Products imported", "count": len(products)})
}
