package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App        `mapstructure:",squash"`
	Server        Server     `mapstructure:",squash"`
	Database      Database   `mapstructure:",squash"`
	Seller        Seller     `mapstructure:",squash"`
	Ingest        Ingest     `mapstructure:",squash"`
	LedgerSync    LedgerSync `mapstructure:",squash"`
	Auth          Auth       `mapstructure:",squash"`
	EncryptionKey string     `mapstructure:"encryption_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Seller configures the marketplace seller API and the environment-level
// credential fallback used when a project has no stored configuration.
type Seller struct {
	BaseURL        string `mapstructure:"seller_base_url"`
	AuthMode       string `mapstructure:"seller_auth_mode"`
	APIKey         string `mapstructure:"seller_api_key"`
	APIKeys        string `mapstructure:"seller_api_keys"`
	CampaignID     string `mapstructure:"seller_campaign_id"`
	CampaignIDs    string `mapstructure:"seller_campaign_ids"`
	BusinessID     string `mapstructure:"seller_business_id"`
	BusinessAPIKey string `mapstructure:"seller_business_api_key"`
	ReturnType     string `mapstructure:"seller_returns_type"`
	ReturnStatuses string `mapstructure:"seller_returns_statuses"`

	UseOrdersAPI         bool `mapstructure:"seller_use_orders_api"`
	UseBusinessOrdersAPI bool `mapstructure:"seller_use_business_orders_api"`
}

// Ingest tunes the reconciliation aggregator.
type Ingest struct {
	// AcquiringRate synthesizes an acquiring cost as revenue*rate for
	// orders that report none.
	AcquiringRate float64 `mapstructure:"acquiring_rate"`
	SkipPayouts   bool    `mapstructure:"skip_payouts"`
	// ReturnNullifyRatio: a delivered order whose returns reach this share
	// of its revenue no longer counts as delivered. Inherited heuristic,
	// pending product confirmation.
	ReturnNullifyRatio float64 `mapstructure:"return_nullify_ratio"`
}

type LedgerSync struct {
	CronSchedule        string `mapstructure:"ledger_sync_cron"`
	LookbackDays        int    `mapstructure:"ledger_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"ledger_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"ledger_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ledger")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SELLER_BASE_URL", "https://api.partner.market.yandex.ru")
	viper.SetDefault("SELLER_AUTH_MODE", "api-key")
	viper.SetDefault("SELLER_USE_ORDERS_API", false)
	viper.SetDefault("SELLER_USE_BUSINESS_ORDERS_API", false)

	viper.SetDefault("ACQUIRING_RATE", 0.01)
	viper.SetDefault("SKIP_PAYOUTS", false)
	viper.SetDefault("RETURN_NULLIFY_RATIO", 0.9)

	viper.SetDefault("LEDGER_SYNC_CRON", "0 3 * * *") // daily, after the marketplace settles the previous day
	viper.SetDefault("LEDGER_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("LEDGER_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("LEDGER_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "change_me")
	viper.SetDefault("ENCRYPTION_KEY", "dev-encryption-key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("no .env readable by viper, relying on environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from ", location)
			return
		}
	}
}
