package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/pkg/common"
)

// Event topics published by the admin API after successful mutations
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// initEvents wires mutation events to the operation log writer
func (a *Application) initEvents() {
	writer := func(action string) func(oprName, desc string) {
		return func(oprName, desc string) {
			if err := a.gormDB.Create(&domain.SysOpLog{
				ID:        common.UUIDint64(),
				OprName:   oprName,
				OptAction: action,
				OptDesc:   desc,
				OptTime:   time.Now(),
			}).Error; err != nil {
				zap.L().Error("failed to write op log", zap.String("action", action), zap.Error(err))
			}
		}
	}

	for topic, action := range map[string]string{
		EventProductCreated: "create",
		EventProductUpdated: "update",
		EventProductDeleted: "delete",
	} {
		if err := a.bus.SubscribeAsync(topic, writer(action), false); err != nil {
			zap.L().Error("event subscribe failed", zap.String("topic", topic), zap.Error(err))
		}
	}
}
