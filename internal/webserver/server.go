package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/saiswarup426503/amazon/internal/app"
)

// AppContextKey is the echo context key holding the Application
const AppContextKey = "appctx"

type WebServer struct {
	root *echo.Echo
	app  *app.Application
	jwt  echo.MiddlewareFunc
}

var server *WebServer

// Init builds the global web server instance
func Init(application *app.Application) {
	server = NewWebServer(application)
}

func NewWebServer(application *app.Application) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = &JsoniterSerializer{}
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(zapRequestLogger())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(AppContextKey, application)
			return next(c)
		}
	})

	s := &WebServer{root: e, app: application}
	s.jwt = echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(application.Config().Web.JwtSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
	return s
}

// Listen starts the global server and blocks
func Listen() error {
	cfg := server.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("web server listening on %s", addr)
	return server.root.Start(addr)
}

// Shutdown stops the global server gracefully
func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

func zapRequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			res := c.Response()
			zap.L().Info("http request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.String("ip", c.RealIP()),
				zap.Duration("latency", time.Since(start)))
			return nil
		}
	}
}

// PubGET registers an unauthenticated GET route
func PubGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// PubPOST registers an unauthenticated POST route
func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

// ApiGET registers a token-protected GET route
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h, server.jwt)
}

// ApiPOST registers a token-protected POST route
func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h, server.jwt)
}

// ApiPUT registers a token-protected PUT route
func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT(path, h, server.jwt)
}

// ApiDELETE registers a token-protected DELETE route
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(path, h, server.jwt)
}
