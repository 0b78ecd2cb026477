// internal/pkg/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Redis
	Redis RedisConfig

	// Asynq
	Asynq AsynqConfig

	// ERP transport
	ERP ERPConfig

	// WMS filesystem exchange
	WMS WMSConfig

	// Scheduling
	Sync SyncConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	Concurrency     int
	Queues          map[string]int // queue name -> priority
	StrictPriority  bool
	RetryMax        int
	ShutdownTimeout time.Duration
}

// ERPConfig holds ERP API connection configuration
type ERPConfig struct {
	BaseURL           string
	APIToken          string
	Timeout           time.Duration
	RequestsPerSecond float64
	RateBurst         int
}

// WMSConfig holds the shared filesystem layout for the warehouse exchange
type WMSConfig struct {
	ReturnsDir        string
	OrdersDir         string
	PurchaseOrdersDir string
	ItemsDir          string
	OutboundRetention time.Duration
}

// SyncConfig holds the scheduling intervals for the background jobs
type SyncConfig struct {
	ReconcileInterval   time.Duration
	ItemSyncInterval    time.Duration
	OrderExportInterval time.Duration
	SweepInterval       time.Duration
	PassLockTTL         time.Duration
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	// Initialize viper
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	// Set defaults
	setDefaults()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "wms-sync"),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "json"),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
		},
		Asynq: AsynqConfig{
			RedisAddr:       fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379")),
			RedisPassword:   getEnv("REDIS_PASSWORD", ""),
			RedisDB:         getIntEnv("ASYNQ_REDIS_DB", 0),
			Concurrency:     getIntEnv("ASYNQ_CONCURRENCY", 4),
			Queues:          parseQueues(getEnv("ASYNQ_QUEUES", "default:1")),
			StrictPriority:  getBoolEnv("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:        getIntEnv("ASYNQ_RETRY_MAX", 0),
			ShutdownTimeout: getDurationEnv("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		ERP: ERPConfig{
			BaseURL:           getEnv("ERP_BASE_URL", "http://localhost:9090"),
			APIToken:          getEnv("ERP_API_TOKEN", ""),
			Timeout:           getDurationEnv("ERP_TIMEOUT", 30*time.Second),
			RequestsPerSecond: getFloatEnv("ERP_REQUESTS_PER_SECOND", 10),
			RateBurst:         getIntEnv("ERP_RATE_BURST", 5),
		},
		WMS: WMSConfig{
			ReturnsDir:        getEnv("WMS_RETURNS_DIR", "/var/wms/returns"),
			OrdersDir:         getEnv("WMS_ORDERS_DIR", "/var/wms/orders"),
			PurchaseOrdersDir: getEnv("WMS_PURCHASE_ORDERS_DIR", "/var/wms/purchase_orders"),
			ItemsDir:          getEnv("WMS_ITEMS_DIR", "/var/wms/items"),
			OutboundRetention: getDurationEnv("WMS_OUTBOUND_RETENTION", 14*24*time.Hour),
		},
		Sync: SyncConfig{
			ReconcileInterval:   getDurationEnv("SYNC_RECONCILE_INTERVAL", time.Minute),
			ItemSyncInterval:    getDurationEnv("SYNC_ITEMS_INTERVAL", 15*time.Minute),
			OrderExportInterval: getDurationEnv("SYNC_EXPORT_INTERVAL", time.Minute),
			SweepInterval:       getDurationEnv("SYNC_SWEEP_INTERVAL", 24*time.Hour),
			PassLockTTL:         getDurationEnv("SYNC_PASS_LOCK_TTL", 10*time.Minute),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ERP.BaseURL == "" {
		return fmt.Errorf("erp base url is required")
	}
	if c.ERP.APIToken == "" && c.IsProduction() {
		return fmt.Errorf("erp api token must be set in production")
	}
	if c.WMS.ReturnsDir == "" || c.WMS.OrdersDir == "" || c.WMS.PurchaseOrdersDir == "" || c.WMS.ItemsDir == "" {
		return fmt.Errorf("all wms exchange directories are required")
	}
	if c.Sync.ReconcileInterval <= 0 || c.Sync.ItemSyncInterval <= 0 || c.Sync.OrderExportInterval <= 0 {
		return fmt.Errorf("sync intervals must be positive")
	}
	if c.ERP.RequestsPerSecond <= 0 {
		return fmt.Errorf("erp requests per second must be positive")
	}
	return nil
}

// GetRedisAddr returns the formatted redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("app.name", "wms-sync")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	pairs := strings.Split(queuesStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
