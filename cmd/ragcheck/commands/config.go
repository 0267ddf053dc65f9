package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Fixtures  string          `mapstructure:"fixtures"`
	Scorer    string          `mapstructure:"scorer"`
	Workers   int             `mapstructure:"workers"`
	Output    string          `mapstructure:"output"`
	Format    string          `mapstructure:"format"`
	LogDir    string          `mapstructure:"log_dir"`
	LogFormat string          `mapstructure:"log_format"`
	Provider  string          `mapstructure:"provider"`
	CacheDir  string          `mapstructure:"cache_dir"`
	Answerer  AnswererConfig  `mapstructure:"answerer"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Ollama    OllamaConfig    `mapstructure:"ollama"`
}

type AnswererConfig struct {
	Model      string `mapstructure:"model"`
	MockAnswer string `mapstructure:"mock_answer"`
	MockPage   int    `mapstructure:"mock_page"`
}

type OpenAIConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

type AnthropicConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
	MaxTokens      int    `mapstructure:"max_tokens"`
}

type OllamaConfig struct {
	Model          string `mapstructure:"model"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".ragcheck")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
