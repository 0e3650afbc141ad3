package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        App        `mapstructure:"app"`
	AI         AI         `mapstructure:"ai"`
	Generation Generation `mapstructure:"generation"`
	Insights   Insights   `mapstructure:"insights"`
	Server     Server     `mapstructure:"server"`
	Logging    Logging    `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	DataDir    string `mapstructure:"data_dir"`
	ConfigFile string `mapstructure:"config_file"`
}

// AI holds AI provider configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration. An empty APIKey is a
// valid state: text features fall back to offline placeholders.
type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	VideoModel string `mapstructure:"video_model"`
	ImageModel string `mapstructure:"image_model"`
	EditModel  string `mapstructure:"edit_model"`
	Timeout    string `mapstructure:"timeout"`
}

// Generation holds retry and video polling configuration
type Generation struct {
	MaxAttempts         int    `mapstructure:"max_attempts"`
	BaseDelay           string `mapstructure:"base_delay"`
	MaxJitter           string `mapstructure:"max_jitter"`
	VideoSubmitAttempts int    `mapstructure:"video_submit_attempts"`
	PollInterval        string `mapstructure:"poll_interval"`
	PollDeadline        string `mapstructure:"poll_deadline"`
}

// Insights holds personal insights aggregation configuration
type Insights struct {
	MinTracked   int `mapstructure:"min_tracked"`
	LikedSamples int `mapstructure:"liked_samples"`
}

// Server holds HTTP API server configuration
type Server struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    string   `mapstructure:"read_timeout"`
	WriteTimeout   string   `mapstructure:"write_timeout"`
	RequestTimeout string   `mapstructure:"request_timeout"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	// Configure viper
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".reelcraft")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvironmentVariables()

	// Enable automatic environment variable reading
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into struct
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Apply post-processing
	if err := postProcessConfig(config); err != nil {
		return nil, fmt.Errorf("error post-processing config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.data_dir", "~/.reelcraft")

	// AI defaults
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.video_model", "veo-2.0-generate-001")
	viper.SetDefault("ai.gemini.image_model", "imagen-4.0-generate-001")
	viper.SetDefault("ai.gemini.edit_model", "gemini-2.5-flash-image-preview")
	viper.SetDefault("ai.gemini.timeout", "60s")

	// Generation defaults
	viper.SetDefault("generation.max_attempts", 5)
	viper.SetDefault("generation.base_delay", "2s")
	viper.SetDefault("generation.max_jitter", "1s")
	viper.SetDefault("generation.video_submit_attempts", 3)
	viper.SetDefault("generation.poll_interval", "10s")
	viper.SetDefault("generation.poll_deadline", "10m")

	// Insights defaults
	viper.SetDefault("insights.min_tracked", 3)
	viper.SetDefault("insights.liked_samples", 2)

	// Server defaults
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8787)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "15m")
	viper.SetDefault("server.request_timeout", "15m")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	// Gemini API key - support multiple formats
	bindEnvKeys("ai.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	// General settings
	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"REELCRAFT_DEBUG",
	})

	bindEnvKeys("app.data_dir", []string{
		"REELCRAFT_DATA_DIR",
	})

	bindEnvKeys("server.port", []string{
		"REELCRAFT_PORT",
		"PORT",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// postProcessConfig applies post-processing to configuration values
func postProcessConfig(config *Config) error {
	// Expand paths
	if config.App.DataDir != "" {
		config.App.DataDir = expandPath(config.App.DataDir)
	}

	// Validate durations
	durations := map[string]string{
		"ai.gemini.timeout":        config.AI.Gemini.Timeout,
		"generation.base_delay":    config.Generation.BaseDelay,
		"generation.max_jitter":    config.Generation.MaxJitter,
		"generation.poll_interval": config.Generation.PollInterval,
		"generation.poll_deadline": config.Generation.PollDeadline,
		"server.read_timeout":      config.Server.ReadTimeout,
		"server.write_timeout":     config.Server.WriteTimeout,
		"server.request_timeout":   config.Server.RequestTimeout,
	}

	for key, duration := range durations {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				return fmt.Errorf("invalid duration for %s: %s", key, duration)
			}
		}
	}

	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// validateConfig ensures configuration values are usable. A missing
// Gemini API key is allowed: the application then runs in offline mode.
func validateConfig(config *Config) error {
	var errors []string

	if config.Server.Port < 0 || config.Server.Port > 65535 {
		errors = append(errors, fmt.Sprintf("server port out of range: %d", config.Server.Port))
	}

	if config.Generation.MaxAttempts < 1 {
		errors = append(errors, "generation.max_attempts must be at least 1")
	}

	if config.Insights.MinTracked < 1 {
		errors = append(errors, "insights.min_tracked must be at least 1")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Convenience getters for commonly used configuration values
func GetApp() App               { return Get().App }
func GetAI() AI                 { return Get().AI }
func GetGeneration() Generation { return Get().Generation }
func GetInsights() Insights     { return Get().Insights }
func GetServer() Server         { return Get().Server }
func GetLogging() Logging       { return Get().Logging }

// Specific convenience getters for frequently accessed values
func GetGeminiAPIKey() string { return Get().AI.Gemini.APIKey }
func GetGeminiModel() string  { return Get().AI.Gemini.Model }
func GetDataDir() string      { return Get().App.DataDir }
func IsDebugMode() bool       { return Get().App.Debug }

// HasGeminiAPIKey reports whether a usable Gemini API key is configured
func HasGeminiAPIKey() bool {
	return isValidAPIKey(GetGeminiAPIKey())
}

// ParseDuration parses a duration field, falling back when empty or
// invalid. Load already validated durations, so the fallback only covers
// hand-built configs.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// isValidAPIKey checks if an API key is valid (not empty and not a placeholder)
func isValidAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	// Check for common placeholder values
	placeholders := []string{
		"your-api-key", "your-gemini-key", "your-gemini-api-key",
		"YOUR_API_KEY", "PLACEHOLDER", "TODO", "CHANGE_ME",
	}

	for _, placeholder := range placeholders {
		if apiKey == placeholder {
			return false
		}
	}

	return true
}

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
