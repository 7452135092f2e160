package app

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/pkg/common"
)

func (a *Application) checkSuper() {
	const superEmail = "admin@example.com"
	const defaultPassword = "password"

	hashedPassword := common.Sha256HashWithSalt(defaultPassword, common.GetSecretSalt())

	var operator domain.SysOpr
	err := a.gormDB.Where("email = ?", superEmail).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Email:     superEmail,
			Password:  hashedPassword,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("email", superEmail))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetStatus := !strings.EqualFold(operator.Status, common.ENABLED)
	if !resetPassword && !resetStatus {
		return
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if resetPassword {
		updates["password"] = hashedPassword
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}
	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}
	zap.L().Warn("repaired default super admin account",
		zap.String("email", superEmail),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("statusEnabled", resetStatus))
}

type settingSchema struct {
	Key         string
	Default     string
	Description string
}

var settingSchemas = []settingSchema{
	{Key: SettingsImageMaxEdge, Default: "1024", Description: "Longest edge of optimized product images, px"},
	{Key: SettingsImageJpegQuality, Default: "82", Description: "JPEG quality for optimized product images"},
	{Key: SettingsLinkProbeTimeoutSec, Default: "10", Description: "Timeout for affiliate link probes, seconds"},
	{Key: SettingsLoginLogRetainDays, Default: "365", Description: "Days to keep admin login audit records"},
	{Key: SettingsOpLogRetainDays, Default: "365", Description: "Days to keep operation log records"},
}

func (a *Application) checkSettings() {
	for sortid, schema := range settingSchemas {
		parts := strings.SplitN(schema.Key, ".", 2)
		if len(parts) != 2 {
			zap.L().Warn("invalid config key format", zap.String("key", schema.Key))
			continue
		}
		category := parts[0]
		name := parts[1]

		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				Sort:   sortid,
				Type:   category,
				Name:   name,
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized config",
				zap.String("key", schema.Key),
				zap.String("default", schema.Default))
		}
	}
}

// checkProducts seeds a couple of demo listings so a fresh install has
// something on the storefront
func (a *Application) checkProducts() {
	defaultProducts := []domain.Product{
		{
			Title:         "High-Performance Wireless Mouse",
			Price:         "₹6639",
			Description:   "Ergonomic wireless mouse with long-lasting battery, customizable buttons and ultra-fast response time.",
			Rating:        4.8,
			ReviewSummary: `"The best mouse I've ever owned. The battery life is incredible." - Verified Purchaser`,
			Images:        domain.ImageList{"https://picsum.photos/id/1/800/600", "https://picsum.photos/id/1074/800/600"},
			AffiliateLink: "#",
			Status:        domain.StatusPublished,
			PublishDate:   time.Now(),
		},
		{
			Title:         "Mechanical Keyboard with RGB Lighting",
			Price:         "₹10789",
			Description:   "Premium mechanical keyboard with tactile switches, customizable RGB backlighting and a durable aluminum frame.",
			Rating:        4.9,
			ReviewSummary: `"A dream to type on! Worth every penny." - Tech Enthusiast`,
			Images:        domain.ImageList{"https://picsum.photos/id/2/800/600", "https://picsum.photos/id/274/800/600"},
			AffiliateLink: "#",
			Status:        domain.StatusPublished,
			PublishDate:   time.Now(),
		},
		{
			Title:         "4K Ultra HD Monitor (Draft)",
			Price:         "₹29049",
			Description:   "27-inch 4K UHD monitor with vibrant colors, sharp text and a bezel-less design.",
			Rating:        4.7,
			ReviewSummary: `"The picture quality is breathtaking." - Creative Pro`,
			Images:        domain.ImageList{"https://picsum.photos/id/3/800/600"},
			AffiliateLink: "#",
			Status:        domain.StatusDraft,
			PublishDate:   time.Now().AddDate(0, 0, 10),
		},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("title = ?", p.Title).Count(&count)
		if count == 0 {
			p.ID = common.UUIDint64()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("title", p.Title), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("title", p.Title))
			}
		}
	}
}
