package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saiswarup426503/amazon/config"
	"github.com/saiswarup426503/amazon/internal/app"
	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/internal/webserver"
	"github.com/saiswarup426503/amazon/pkg/common"
)

func testApp(t *testing.T) *app.Application {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(domain.Tables...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	application := app.NewApplication(config.DefaultAppConfig)
	application.OverrideDB(db)
	return application
}

func seedOperator(t *testing.T, application *app.Application, email, password string) {
	t.Helper()
	err := application.DB().Create(&domain.SysOpr{
		ID:       common.UUIDint64(),
		Realname: "administrator",
		Email:    email,
		Password: common.Sha256HashWithSalt(password, common.GetSecretSalt()),
		Level:    "super",
		Status:   common.ENABLED,
	}).Error
	if err != nil {
		t.Fatalf("seed operator: %v", err)
	}
}

func jsonRequest(t *testing.T, application *app.Application, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "go-test-agent")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(webserver.AppContextKey, application)
	return c, rec
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	application := testApp(t)
	seedOperator(t, application, "admin@example.com", "password")

	c, rec := jsonRequest(t, application, http.MethodPost, "/api/admin/login",
		`{"email":"admin@example.com","password":"wrong"}`)
	if err := adminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var count int64
	application.DB().Model(&domain.SysLoginLog{}).Count(&count)
	if count != 0 {
		t.Fatal("failed logins must not be audited as successes")
	}
}

func TestAdminLoginIssuesTokenAndAudits(t *testing.T) {
	application := testApp(t)
	seedOperator(t, application, "admin@example.com", "password")

	c, rec := jsonRequest(t, application, http.MethodPost, "/api/admin/login",
		`{"email":"admin@example.com","password":"password"}`)
	if err := adminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("expected success with token, got %+v", resp)
	}

	var audit domain.SysLoginLog
	if err := application.DB().First(&audit).Error; err != nil {
		t.Fatalf("audit row missing: %v", err)
	}
	if audit.Email != "admin@example.com" || audit.UserAgent != "go-test-agent" {
		t.Fatalf("audit row incomplete: %+v", audit)
	}
}

func TestListLoginLogsNewestFirst(t *testing.T) {
	application := testApp(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := application.DB().Create(&domain.SysLoginLog{
			ID:        common.UUIDint64(),
			Email:     "admin@example.com",
			LoginTime: base.Add(time.Duration(i) * time.Hour),
		}).Error
		if err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	c, rec := jsonRequest(t, application, http.MethodGet, "/api/admin/logins", "")
	if err := listLoginLogs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var logs []domain.SysLoginLog
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &logs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	if !logs[0].LoginTime.After(logs[2].LoginTime) {
		t.Fatalf("logs not newest-first: %v %v", logs[0].LoginTime, logs[2].LoginTime)
	}
}
