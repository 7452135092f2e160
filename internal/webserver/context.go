package webserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/saiswarup426503/amazon/internal/app"
)

// GetApp returns the Application bound to the request context
func GetApp(c echo.Context) *app.Application {
	return c.Get(AppContextKey).(*app.Application)
}

// GetDB returns the request's database handle
func GetDB(c echo.Context) *gorm.DB {
	return GetApp(c).DB()
}
