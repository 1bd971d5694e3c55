package migration

import (
	"github.com/relaycrm/relay/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(cfg config.Config, conn *gorm.DB) error {
		if cfg.DB.Driver == "sqlite" {
			return AutoMigrate(conn)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
