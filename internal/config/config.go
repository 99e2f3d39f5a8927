package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       App       `mapstructure:"app"`
	AI        AI        `mapstructure:"ai"`
	Affiliate Affiliate `mapstructure:"affiliate"`
	Webhook   Webhook   `mapstructure:"webhook"`
	Scheduler Scheduler `mapstructure:"scheduler"`
	Logging   Logging   `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level"`
	DataDir    string `mapstructure:"data_dir"`
	ConfigFile string `mapstructure:"config_file"`
}

// AI holds AI/LLM configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     string  `mapstructure:"timeout"`
	MaxTokens   int32   `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// Affiliate holds affiliate link configuration
type Affiliate struct {
	DefaultTag string `mapstructure:"default_tag"`
}

// Webhook holds outbound webhook delivery configuration
type Webhook struct {
	URL        string `mapstructure:"url"`
	Timeout    string `mapstructure:"timeout"`
	BatchDelay string `mapstructure:"batch_delay"`
}

// Scheduler holds scheduled generation configuration
type Scheduler struct {
	Timezone           string `mapstructure:"timezone"`
	FailureThreshold   int    `mapstructure:"failure_threshold"`
	EmptyTickIsSuccess bool   `mapstructure:"empty_tick_is_success"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
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
		viper.SetConfigName(".promocast")
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

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	config.App.ConfigFile = viper.ConfigFileUsed()
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
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".promocast-data")

	// AI defaults
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash-preview-05-20")
	viper.SetDefault("ai.gemini.timeout", "30s")
	viper.SetDefault("ai.gemini.max_tokens", 4096)
	viper.SetDefault("ai.gemini.temperature", 0.7)

	// Affiliate defaults
	viper.SetDefault("affiliate.default_tag", "")

	// Webhook defaults
	viper.SetDefault("webhook.timeout", "10s")
	viper.SetDefault("webhook.batch_delay", "500ms")

	// Scheduler defaults
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.failure_threshold", 5)
	viper.SetDefault("scheduler.empty_tick_is_success", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	// Gemini API key - support multiple formats
	bindEnvKeys("ai.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	// Webhook endpoint
	bindEnvKeys("webhook.url", []string{
		"PROMOCAST_WEBHOOK_URL",
		"WEBHOOK_URL",
	})

	// Affiliate tag
	bindEnvKeys("affiliate.default_tag", []string{
		"AMAZON_AFFILIATE_TAG",
		"AMAZON_ASSOCIATE_TAG",
	})
}

// bindEnvKeys binds the first non-empty environment variable to a config key
func bindEnvKeys(configKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(configKey, value)
			return
		}
	}
}

// validateConfig performs sanity checks on loaded values
func validateConfig(config *Config) error {
	if config.Webhook.URL != "" {
		parsed, err := url.Parse(config.Webhook.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("webhook.url must be a valid http(s) URL, got %q", config.Webhook.URL)
		}
	}

	if config.Scheduler.FailureThreshold < 1 {
		return fmt.Errorf("scheduler.failure_threshold must be at least 1, got %d", config.Scheduler.FailureThreshold)
	}

	return nil
}
