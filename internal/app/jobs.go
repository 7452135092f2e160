package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/saiswarup426503/amazon/internal/catalog"
	"github.com/saiswarup426503/amazon/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@daily", func() {
		a.purgeAuditLogs()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@every 1h", func() {
		a.logCatalogStats()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// purgeAuditLogs trims login and operation audit tables to the
// configured retention window
func (a *Application) purgeAuditLogs() {
	loginDays := a.settings.GetIntDefault("system", "login_log_retain_days", 365)
	opDays := a.settings.GetIntDefault("system", "op_log_retain_days", 365)

	res := a.gormDB.
		Where("login_time < ?", time.Now().AddDate(0, 0, -loginDays)).
		Delete(&domain.SysLoginLog{})
	if res.Error != nil {
		zap.L().Error("login log purge failed", zap.Error(res.Error))
	} else if res.RowsAffected > 0 {
		zap.L().Info("purged login audit records", zap.Int64("count", res.RowsAffected))
	}

	res = a.gormDB.
		Where("opt_time < ?", time.Now().AddDate(0, 0, -opDays)).
		Delete(&domain.SysOpLog{})
	if res.Error != nil {
		zap.L().Error("op log purge failed", zap.Error(res.Error))
	} else if res.RowsAffected > 0 {
		zap.L().Info("purged operation log records", zap.Int64("count", res.RowsAffected))
	}
}

func (a *Application) logCatalogStats() {
	repo := catalog.NewRepository(a.gormDB)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		zap.L().Error("catalog stats failed", zap.Error(err))
		return
	}
	zap.L().Info("catalog stats",
		zap.Int64("draft", counts[domain.StatusDraft]),
		zap.Int64("scheduled", counts[domain.StatusScheduled]),
		zap.Int64("published", counts[domain.StatusPublished]))
}
