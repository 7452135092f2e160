package app

import (
	"errors"
	"sync"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saiswarup426503/amazon/internal/domain"
)

// Well-known settings keys, seeded by checkSettings
const (
	SettingsImageMaxEdge        = "catalog.image_max_edge"
	SettingsImageJpegQuality    = "catalog.image_jpeg_quality"
	SettingsLoginLogRetainDays  = "system.login_log_retain_days"
	SettingsOpLogRetainDays     = "system.op_log_retain_days"
	SettingsLinkProbeTimeoutSec = "catalog.link_probe_timeout_sec"
)

const settingsCacheTTL = 60 * time.Second

type settingsEntry struct {
	value    string
	loadedAt time.Time
}

// SettingsManager reads SysConfig values with a short-lived cache so
// hot paths (the image pipeline) do not hit the store per request.
type SettingsManager struct {
	db    *gorm.DB
	mu    sync.RWMutex
	cache map[string]settingsEntry
}

func NewSettingsManager(db *gorm.DB) *SettingsManager {
	return &SettingsManager{db: db, cache: make(map[string]settingsEntry)}
}

func (m *SettingsManager) GetString(category, name string) string {
	key := category + "." + name
	m.mu.RLock()
	entry, ok := m.cache[key]
	m.mu.RUnlock()
	if ok && time.Since(entry.loadedAt) < settingsCacheTTL {
		return entry.value
	}

	var cfg domain.SysConfig
	err := m.db.Where("type = ? and name = ?", category, name).First(&cfg).Error
	if err != nil {
		if !errorsIsNotFound(err) {
			zap.S().Warnf("settings read failed for %s: %v", key, err)
		}
		return ""
	}

	m.mu.Lock()
	m.cache[key] = settingsEntry{value: cfg.Value, loadedAt: time.Now()}
	m.mu.Unlock()
	return cfg.Value
}

func (m *SettingsManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(m.GetString(category, name))
}

func (m *SettingsManager) GetInt(category, name string) int {
	return cast.ToInt(m.GetString(category, name))
}

func (m *SettingsManager) GetBool(category, name string) bool {
	return cast.ToBool(m.GetString(category, name))
}

// GetIntDefault returns the setting or def when unset/invalid
func (m *SettingsManager) GetIntDefault(category, name string, def int) int {
	if v := m.GetInt(category, name); v > 0 {
		return v
	}
	return def
}

// Set writes a settings value and refreshes the cache
func (m *SettingsManager) Set(category, name, value string) error {
	var cfg domain.SysConfig
	err := m.db.Where("type = ? and name = ?", category, name).First(&cfg).Error
	if errorsIsNotFound(err) {
		err = m.db.Create(&domain.SysConfig{Type: category, Name: name, Value: value}).Error
	} else if err == nil {
		err = m.db.Model(&domain.SysConfig{}).Where("id = ?", cfg.ID).
			Update("value", value).Error
	}
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.cache[category+"."+name] = settingsEntry{value: value, loadedAt: time.Now()}
	m.mu.Unlock()
	return nil
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
