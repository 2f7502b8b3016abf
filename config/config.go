package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Market   MarketConfig   `mapstructure:"market"`
	Finnhub  FinnhubConfig  `mapstructure:"finnhub"`
	Log      LogConfig      `mapstructure:"log"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// MarketConfig drives the tick pipeline: which symbols are tracked, how
// much history the rolling window keeps and the alert thresholds.
type MarketConfig struct {
	Symbols      []string             `mapstructure:"symbols"`       // tracked instruments, e.g. ["NVDA"]
	PriceWindow  int                  `mapstructure:"price_window"`  // rolling price capacity (default 100)
	TradeWindow  int                  `mapstructure:"trade_window"`  // rolling trade capacity (default 1000)
	SpikePercent float64              `mapstructure:"spike_percent"` // price_spike threshold in percent (default 2.0)
	Thresholds   map[string]Threshold `mapstructure:"thresholds"`    // per-symbol price bounds
	PersistQueue int                  `mapstructure:"persist_queue"` // background writer queue size
}

type Threshold struct {
	High float64 `mapstructure:"high"`
	Low  float64 `mapstructure:"low"`
}

type FinnhubConfig struct {
	BaseURL    string        `mapstructure:"base_url"`    // REST API base, e.g. "https://finnhub.io/api/v1"
	WSURL      string        `mapstructure:"ws_url"`      // trade stream, e.g. "wss://ws.finnhub.io"
	APIKey     string        `mapstructure:"api_key"`     // X-Finnhub-Token value
	WebhookURL string        `mapstructure:"webhook_url"` // public callback URL to register
	Timeout    time.Duration `mapstructure:"timeout"`
	Stream     bool          `mapstructure:"stream"` // also consume the WebSocket trade stream
}

// Options defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Support environment variables with dot notation (e.g., FINNHUB_API_KEY)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
