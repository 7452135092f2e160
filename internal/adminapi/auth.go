package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/internal/webserver"
	"github.com/saiswarup426503/amazon/pkg/common"
)

const tokenLifetime = 12 * time.Hour

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/api/admin/login", adminLogin)
	webserver.ApiGET("/api/admin/logins", listLoginLogs)
}

// adminLogin verifies credentials against the operator table and, on
// success, records an audit row and issues a signed token. The token is
// the only authorization state; nothing client-held is trusted.
func adminLogin(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse login request")
	}
	email := strings.TrimSpace(strings.ToLower(payload.Email))

	var operator domain.SysOpr
	err := webserver.GetDB(c).
		Where("email = ? and status = ?", email, common.ENABLED).
		First(&operator).Error
	if err != nil || !common.VerifyPassword(payload.Password, common.GetSecretSalt(), operator.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	now := time.Now()
	audit := domain.SysLoginLog{
		ID:        common.UUIDint64(),
		Email:     email,
		Ipaddr:    c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		LoginTime: now,
	}
	if err := webserver.GetDB(c).Create(&audit).Error; err != nil {
		// the audit row is part of the login contract
		zap.L().Error("failed to record admin login", zap.Error(err))
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	webserver.GetDB(c).Model(&domain.SysOpr{}).
		Where("id = ?", operator.ID).
		Update("last_login", now)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   email,
		"level": operator.Level,
		"exp":   now.Add(tokenLifetime).Unix(),
		"iat":   now.Unix(),
	})
	signed, err := token.SignedString([]byte(webserver.GetApp(c).Config().Web.JwtSecret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	zap.L().Info("admin login", zap.String("email", email), zap.String("ip", audit.Ipaddr))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   signed,
	})
}

// listLoginLogs returns the login audit trail, newest first
func listLoginLogs(c echo.Context) error {
	var logs []domain.SysLoginLog
	err := webserver.GetDB(c).
		Order("login_time DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, logs)
}

// operatorName extracts the authenticated operator email from the JWT,
// empty on unauthenticated routes
func operatorName(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
