package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string          `mapstructure:"port"`
	AIProvider   string          `mapstructure:"ai_provider"`
	AIEndpoint   string          `mapstructure:"ai_endpoint"`
	Model        string          `mapstructure:"model"`
	OpenAIAPIKey string          `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string          `mapstructure:"GEMINI_API_KEY"`
	DataFile     string          `mapstructure:"data_file"`
	Discourse    DiscourseConfig `mapstructure:"discourse"`
}

// DiscourseConfig names the scraper's knobs instead of burying them as
// literals: MaxPages is a safety bound against runaway pagination and
// FetchDelay is a politeness throttle between topic fetches.
type DiscourseConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	CategoryPath string        `mapstructure:"category_path"`
	CategoryID   int           `mapstructure:"category_id"`
	UserAgent    string        `mapstructure:"user_agent"`
	MaxPages     int           `mapstructure:"max_pages"`
	FetchDelay   time.Duration `mapstructure:"fetch_delay"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file; the file is optional since everything has a
	// default or an environment override.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("port", "PORT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("model", "gpt-3.5-turbo-0125")
	v.SetDefault("data_file", "scraped_discourse_data.json")
	v.SetDefault("discourse.base_url", "https://discourse.onlinedegree.iitm.ac.in")
	v.SetDefault("discourse.category_path", "degree-programs/tools-in-data-science")
	v.SetDefault("discourse.category_id", 123)
	v.SetDefault("discourse.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("discourse.max_pages", 10)
	v.SetDefault("discourse.fetch_delay", "500ms")
}
