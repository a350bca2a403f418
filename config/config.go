package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode

	// Generation Configuration
	OpenAIKey         string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `mapstructure:"OPENAI_BASE_URL"` // Optional OpenAI-compatible endpoint
	AnthropicKey      string        `mapstructure:"ANTHROPIC_API_KEY"`
	DefaultModel      string        `mapstructure:"DEFAULT_MODEL"`      // Used when a generate request names no model
	MaxTokens         int           `mapstructure:"MAX_TOKENS"`         // Completion budget per generation
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"` // e.g., "60s"
}

var defaults = map[string]any{
	"SERVER_ADDRESS":     ":8080",
	"APP_ENV":            "development",
	"OPENAI_API_KEY":     "",
	"OPENAI_BASE_URL":    "",
	"ANTHROPIC_API_KEY":  "",
	"DEFAULT_MODEL":      "gpt-4o",
	"MAX_TOKENS":         2048,
	"GENERATION_TIMEOUT": "60s",
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	// Defaults double as the key list AutomaticEnv needs for Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = v.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" && config.AnthropicKey == "" {
		log.Println("WARN: neither OPENAI_API_KEY nor ANTHROPIC_API_KEY is set. Prompt assembly works, generation will fail.")
	}
	if config.MaxTokens <= 0 {
		return Config{}, fmt.Errorf("MAX_TOKENS must be positive, got %d", config.MaxTokens)
	}

	return
}
