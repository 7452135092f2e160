package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes attaches every admin endpoint to the web server
func RegisterRoutes() {
	registerAuthRoutes()
	registerProductRoutes()
	registerImportExportRoutes()
	registerLinkCheckRoutes()
}

// ok responds with the raw value; the admin UI consumes entities and
// arrays directly, without an envelope.
func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// fail responds with {message} at the given status
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{"message": message})
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
