// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/resources"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after back-end wiring
// is complete, but before the HTTP handler is built. It is the place to
// load shared resources (like templates) or perform app-wide setup that
// depends on config.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}

	return nil
}
