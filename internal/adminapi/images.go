package adminapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saiswarup426503/amazon/internal/app"
	"github.com/saiswarup426503/amazon/internal/catalog"
	"github.com/saiswarup426503/amazon/internal/imagepipe"
	"github.com/saiswarup426503/amazon/internal/webserver"
)

// uploadProductImages runs a multipart batch through the optimization
// pipeline and appends the results to the product's image sequence.
// The batch is all-or-nothing: one corrupt file fails the request and
// the sequence is left untouched.
func uploadProductImages(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "multipart form expected")
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		return fail(c, http.StatusBadRequest, "no image files submitted")
	}

	files := make([][]byte, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return fail(c, http.StatusBadRequest, "unable to read uploaded file "+h.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fail(c, http.StatusBadRequest, "unable to read uploaded file "+h.Filename)
		}
		files = append(files, data)
	}

	settings := webserver.GetApp(c).Settings()
	pipe := imagepipe.New(
		settings.GetIntDefault("catalog", "image_max_edge", imagepipe.DefaultMaxEdge),
		settings.GetIntDefault("catalog", "image_jpeg_quality", imagepipe.DefaultQuality),
	)
	encoded, err := pipe.OptimizeAll(c.Request().Context(), files)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	repo := catalog.NewRepository(webserver.GetDB(c))
	updated, err := repo.AppendImages(c.Request().Context(), id, encoded)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	webserver.GetApp(c).Bus().Publish(app.EventProductUpdated, operatorName(c), updated.Title)
	return ok(c, updated)
}

// removeProductImage drops one image by position; the remainder keeps
// its relative order and position 0 stays the main image.
func removeProductImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product ID")
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid image index")
	}

	repo := catalog.NewRepository(webserver.GetDB(c))
	updated, err := repo.RemoveImage(c.Request().Context(), id, index)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "product not found")
	}
	if errors.Is(err, catalog.ErrBadImageIndex) {
		return fail(c, http.StatusBadRequest, "image index out of range")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	webserver.GetApp(c).Bus().Publish(app.EventProductUpdated, operatorName(c), updated.Title)
	return ok(c, updated)
}
