// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/directory"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the app's back-end dependencies. There is no database
// here; the "connection" is the HTTP gateway to the driver API, plus the
// in-process notification bus and user directory built on top of it.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	gw := gateway.New(gateway.Config{
		BaseURL: appCfg.APIBaseURL,
		Timeout: appCfg.APITimeout,
	}, logger)

	bus := notify.NewBus(appCfg.NoticeTTL)
	dir := directory.New(gw, bus, logger)

	return Deps{
		Gateway:   gw,
		Bus:       bus,
		Directory: dir,
	}, nil
}

// EnsureSchema has no schema to ensure; it probes the API once so an
// unreachable upstream is visible in the startup log. The probe is
// advisory: the console still starts, pages just surface fetch errors.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	probeCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := deps.Gateway.Ping(probeCtx); err != nil {
		logger.Warn("driver API not reachable at startup",
			zap.String("api_base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("driver API reachable", zap.String("api_base_url", appCfg.APIBaseURL))
	}

	return nil
}
