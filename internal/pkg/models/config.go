package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Driver   DriverConfig
	Payment  PaymentConfig
	Dispatch DispatchConfig
	Storage  StorageConfig
	Retry    RetryConfig
	Location LocationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Enabled   bool
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	Enabled bool
	URL     string
}

// JWTConfig contains JWT verification configuration.
// Tokens are issued by the auth service; this service only verifies them.
type JWTConfig struct {
	Secret string
	Issuer string
}

// APIKeyConfig holds the keys accepted on internal routes
type APIKeyConfig struct {
	DispatchService string
	PaymentService  string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// DriverConfig holds the trip and balance rules
type DriverConfig struct {
	MinDeposit          int64         // smallest accepted deposit, in rupiah
	PlatformFee         int64         // fee debited per completed trip, in rupiah
	ReviewDelay         time.Duration // simulated document review; 0 approves synchronously
	DepositConfirmDelay time.Duration // simulated gateway confirmation; 0 confirms synchronously
}

// PaymentConfig holds deposit channel configuration.
// PiAPIKey is a secret and must never be returned to clients.
type PaymentConfig struct {
	Methods         []string
	CryptoAddresses map[string]string
	CryptoMinimums  map[string]string
	PiAPIKey        string
	PiSandbox       bool
}

// DispatchConfig controls the mocked dispatch feed
type DispatchConfig struct {
	SeedEnabled      bool
	SimulateInterval time.Duration
}

// StorageConfig holds object storage settings for verification documents
type StorageConfig struct {
	Bucket   string
	Region   string
	Endpoint string
	Prefix   string
}

// RetryConfig controls retries of best-effort persistence calls and the
// per-target circuit breaker around them
type RetryConfig struct {
	MaxRetries       int
	BaseDelay        time.Duration
	MaxDelay         time.Duration
	BreakerThreshold int // consecutive failures that open the breaker; 0 disables it
	BreakerCooldown  time.Duration
}

// LocationConfig controls location sharing
type LocationConfig struct {
	GeohashPrecision uint
}
