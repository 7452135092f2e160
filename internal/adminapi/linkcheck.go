package adminapi

import (
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/saiswarup426503/amazon/internal/catalog"
	"github.com/saiswarup426503/amazon/internal/webserver"
)

func registerLinkCheckRoutes() {
	webserver.ApiPOST("/api/admin/products/:id/checklink", checkAffiliateLink)
}

// checkAffiliateLink probes the product's outbound link so an operator
// can spot dead marketplace listings before publishing
func checkAffiliateLink(c echo.Context) error {
	id, err := parseIDParam(c, "id")
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
	if p.AffiliateLink == "" || p.AffiliateLink == "#" {
		return fail(c, http.StatusBadRequest, "product has no affiliate link")
	}

	timeout := webserver.GetApp(c).Settings().GetIntDefault("catalog", "link_probe_timeout_sec", 10)

	var code int
	probeErr := gout.GET(p.AffiliateLink).
		SetTimeout(time.Duration(timeout) * time.Second).
		Code(&code).
		Do()

	result := map[string]interface{}{
		"affiliateLink": p.AffiliateLink,
		"status":        code,
		"reachable":     probeErr == nil && code >= 200 && code < 400,
	}
	if probeErr != nil {
		result["message"] = probeErr.Error()
	}
	return ok(c, result)
}
