package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// EventSnap specifics
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	Storage        StorageConfig
	Share          ShareConfig
	Extract        ExtractConfig
	CORS           CORSConfig

	Timezone string
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

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type StorageConfig struct {
	Path string
}

type ShareConfig struct {
	Command  string
	Args     []string
	SpoolDir string
}

type ExtractConfig struct {
	RateLimitPerMin int
	CacheSize       int
	MaxUploadBytes  int64
}

type CORSConfig struct {
	Origins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	// EventSnap specifics
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Storage.Path = viper.GetString("storage.path")

	cfg.Share.Command = viper.GetString("share.command")
	cfg.Share.SpoolDir = viper.GetString("share.spool_dir")
	if rawArgs := viper.GetString("share.args"); rawArgs != "" {
		for _, arg := range strings.Split(rawArgs, ",") {
			arg = strings.TrimSpace(arg)
			if arg != "" {
				cfg.Share.Args = append(cfg.Share.Args, arg)
			}
		}
	}

	cfg.Extract.RateLimitPerMin = viper.GetInt("extract.rate_limit_per_min")
	cfg.Extract.CacheSize = viper.GetInt("extract.cache_size")
	cfg.Extract.MaxUploadBytes = viper.GetInt64("extract.max_upload_bytes")

	// Split origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.Origins = origins

	cfg.Timezone = viper.GetString("timezone")

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
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("storage.path", "eventsnap.db")
	viper.SetDefault("share.spool_dir", "shared")
	viper.SetDefault("extract.rate_limit_per_min", 30)
	viper.SetDefault("extract.cache_size", 128)
	viper.SetDefault("extract.max_upload_bytes", 10<<20)
	viper.SetDefault("cors.origins", "*")
	viper.SetDefault("timezone", "UTC")
}
