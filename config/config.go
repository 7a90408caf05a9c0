package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intent registry and classification specifics
	Registry   RegistryConfig
	Classifier ClassifierConfig
	Sheets     SheetsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RegistryConfig struct {
	// StorePath is where the active registry is persisted between restarts.
	StorePath string
	// SeedPath points at the JSON record set used when no persisted registry
	// exists yet.
	SeedPath string
	// DefaultThreshold applies to records without their own confidence
	// threshold. Must be in (0, 1].
	DefaultThreshold      float64
	MinTrainingUtterances int
	SimilarityWarnFloor   float64
}

type ClassifierConfig struct {
	AmbiguityMargin    float64
	ConsiderationFloor float64
	TopCandidates      int
	CacheSize          int
	CacheTTL           time.Duration
	RateLimitPerMin    int
}

type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReadRange       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/intent-classifier/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/intent-classifier/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Registry
	cfg.Registry.StorePath = viper.GetString("registry.store_path")
	cfg.Registry.SeedPath = viper.GetString("registry.seed_path")
	cfg.Registry.DefaultThreshold = viper.GetFloat64("registry.default_threshold")
	cfg.Registry.MinTrainingUtterances = viper.GetInt("registry.min_training_utterances")
	cfg.Registry.SimilarityWarnFloor = viper.GetFloat64("registry.similarity_warn_floor")
	if storePath := viper.GetString("registry_store_path"); storePath != "" {
		cfg.Registry.StorePath = storePath
	}

	// Classifier
	cfg.Classifier.AmbiguityMargin = viper.GetFloat64("classifier.ambiguity_margin")
	cfg.Classifier.ConsiderationFloor = viper.GetFloat64("classifier.consideration_floor")
	cfg.Classifier.TopCandidates = viper.GetInt("classifier.top_candidates")
	cfg.Classifier.CacheSize = viper.GetInt("classifier.cache_size")
	cfg.Classifier.CacheTTL = viper.GetDuration("classifier.cache_ttl")
	cfg.Classifier.RateLimitPerMin = viper.GetInt("classifier.rate_limit_per_min")

	// Google Sheets import (optional)
	cfg.Sheets.CredentialsPath = viper.GetString("sheets.credentials_path")
	cfg.Sheets.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")
	cfg.Sheets.ReadRange = viper.GetString("sheets.read_range")
	if sheetsCreds := viper.GetString("google_sheets_credentials"); sheetsCreds != "" {
		cfg.Sheets.CredentialsPath = sheetsCreds
	}
	if spreadsheetID := viper.GetString("sheets_spreadsheet_id"); spreadsheetID != "" {
		cfg.Sheets.SpreadsheetID = spreadsheetID
	}

	if cfg.Registry.DefaultThreshold <= 0 || cfg.Registry.DefaultThreshold > 1 {
		return nil, fmt.Errorf("registry.default_threshold must be in (0, 1], got %v", cfg.Registry.DefaultThreshold)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("registry.store_path", "data/registry.json")
	viper.SetDefault("registry.seed_path", "config/intents.seed.json")
	viper.SetDefault("registry.default_threshold", 0.70)
	viper.SetDefault("registry.min_training_utterances", 5)
	viper.SetDefault("registry.similarity_warn_floor", 0.82)

	viper.SetDefault("classifier.ambiguity_margin", 0.15)
	viper.SetDefault("classifier.consideration_floor", 0.25)
	viper.SetDefault("classifier.top_candidates", 3)
	viper.SetDefault("classifier.cache_size", 2048)
	viper.SetDefault("classifier.cache_ttl", "5m")
	viper.SetDefault("classifier.rate_limit_per_min", 120)

	viper.SetDefault("sheets.read_range", "Intents!A1:H")
}
