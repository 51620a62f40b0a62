package config

import (
	"strings"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig reads configPath when APP_ENV is local, then overlays the
// process environment.
func InitConfig(configPath string) *models.Config {
	return initConfig(configPath, false)
}

// InitConfigFromFile always reads configPath, whatever APP_ENV says
func InitConfigFromFile(configPath string) *models.Config {
	return initConfig(configPath, true)
}

func initConfig(configPath string, force bool) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" && (force || v.GetString("APP_ENV") == "local") {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logger.Warn("Error loading config from file",
				logger.String("path", configPath),
				logger.Err(err))
		}
	}

	return Load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "driver-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_ENABLED", false)
	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_ENABLED", false)
	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DRIVER_MIN_DEPOSIT", 50000)
	v.SetDefault("DRIVER_PLATFORM_FEE", 1000)
	v.SetDefault("DRIVER_REVIEW_DELAY", "0s")
	v.SetDefault("DRIVER_DEPOSIT_CONFIRM_DELAY", "0s")

	v.SetDefault("PAYMENT_METHODS", "bank,credit_card,crypto,pi")
	v.SetDefault("PAYMENT_CRYPTO_ASSETS", "")
	v.SetDefault("PAYMENT_PI_SANDBOX", true)

	v.SetDefault("DISPATCH_SEED_ENABLED", true)
	v.SetDefault("DISPATCH_SIMULATE_INTERVAL", "0s")

	v.SetDefault("STORAGE_REGION", "ap-southeast-1")
	v.SetDefault("STORAGE_PREFIX", "driver-documents")

	v.SetDefault("RETRY_MAX_RETRIES", 3)
	v.SetDefault("RETRY_BASE_DELAY", "100ms")
	v.SetDefault("RETRY_MAX_DELAY", "2s")
	v.SetDefault("RETRY_BREAKER_THRESHOLD", 5)
	v.SetDefault("RETRY_BREAKER_COOLDOWN", "30s")

	v.SetDefault("LOCATION_GEOHASH_PRECISION", 7)
}

// Load builds the config from an already populated viper instance
func Load(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Enabled = v.GetBool("DB_ENABLED")
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Enabled = v.GetBool("REDIS_ENABLED")
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.Enabled = v.GetBool("NATS_ENABLED")
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// API keys for internal callers
	configs.APIKey.DispatchService = v.GetString("API_KEY_DISPATCH_SERVICE")
	configs.APIKey.PaymentService = v.GetString("API_KEY_PAYMENT_SERVICE")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Driver rules
	configs.Driver.MinDeposit = v.GetInt64("DRIVER_MIN_DEPOSIT")
	configs.Driver.PlatformFee = v.GetInt64("DRIVER_PLATFORM_FEE")
	if configs.Driver.PlatformFee < 0 {
		logger.Warn("Negative platform fee, trips will not be charged",
			logger.Int64("fee", configs.Driver.PlatformFee))
		configs.Driver.PlatformFee = 0
	}
	configs.Driver.ReviewDelay = v.GetDuration("DRIVER_REVIEW_DELAY")
	configs.Driver.DepositConfirmDelay = v.GetDuration("DRIVER_DEPOSIT_CONFIRM_DELAY")

	// Payment channels
	configs.Payment.Methods = splitList(v.GetString("PAYMENT_METHODS"))
	configs.Payment.CryptoAddresses = make(map[string]string)
	configs.Payment.CryptoMinimums = make(map[string]string)
	for _, asset := range splitList(v.GetString("PAYMENT_CRYPTO_ASSETS")) {
		asset = strings.ToUpper(asset)
		if addr := v.GetString("PAYMENT_CRYPTO_ADDRESS_" + asset); addr != "" {
			configs.Payment.CryptoAddresses[asset] = addr
		}
		if min := v.GetString("PAYMENT_CRYPTO_MIN_" + asset); min != "" {
			configs.Payment.CryptoMinimums[asset] = min
		}
	}
	configs.Payment.PiAPIKey = v.GetString("PAYMENT_PI_API_KEY")
	configs.Payment.PiSandbox = v.GetBool("PAYMENT_PI_SANDBOX")

	// Dispatch feed
	configs.Dispatch.SeedEnabled = v.GetBool("DISPATCH_SEED_ENABLED")
	configs.Dispatch.SimulateInterval = v.GetDuration("DISPATCH_SIMULATE_INTERVAL")

	// Document storage
	configs.Storage.Bucket = v.GetString("STORAGE_BUCKET")
	configs.Storage.Region = v.GetString("STORAGE_REGION")
	configs.Storage.Endpoint = v.GetString("STORAGE_ENDPOINT")
	configs.Storage.Prefix = v.GetString("STORAGE_PREFIX")

	// Retry of best-effort calls
	configs.Retry.MaxRetries = v.GetInt("RETRY_MAX_RETRIES")
	configs.Retry.BaseDelay = v.GetDuration("RETRY_BASE_DELAY")
	configs.Retry.MaxDelay = v.GetDuration("RETRY_MAX_DELAY")
	configs.Retry.BreakerThreshold = v.GetInt("RETRY_BREAKER_THRESHOLD")
	configs.Retry.BreakerCooldown = v.GetDuration("RETRY_BREAKER_COOLDOWN")

	configs.Location.GeohashPrecision = v.GetUint("LOCATION_GEOHASH_PRECISION")

	return configs
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Duration is a small helper for callers that convert seconds from config
func Duration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
