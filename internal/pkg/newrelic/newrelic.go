package newrelic

import (
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// ignoredStatusCodes are driver rejections, not service failures
var ignoredStatusCodes = []int{
	http.StatusPaymentRequired,
	http.StatusConflict,
	http.StatusUnprocessableEntity,
}

// InitNewRelic starts the agent. It returns nil when New Relic is disabled
// or fails to start; every caller treats a nil application as tracing off.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	nr := configs.NewRelic
	if !nr.Enabled || nr.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := nr.AppName
	if appName == "" {
		appName = configs.App.Name
	}
	logger.Info("Initializing New Relic",
		logger.String("app_name", appName),
		logger.Bool("forward_logs", nr.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(nr.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
		applyServiceConfig(configs.App),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}

func applyServiceConfig(app models.AppConfig) newrelic.ConfigOption {
	return func(cfg *newrelic.Config) {
		cfg.Labels = map[string]string{
			"environment": app.Environment,
			"version":     app.Version,
		}
		cfg.ErrorCollector.IgnoreStatusCodes = append(cfg.ErrorCollector.IgnoreStatusCodes, ignoredStatusCodes...)
	}
}
