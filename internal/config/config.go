package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config/config.toml"

type PromptTemplates struct {
	Cleansing  string `toml:"cleansing"`
	Duplicates string `toml:"duplicates"`
}

type LLMConfig struct {
	Provider string   `toml:"provider"`
	Model    string   `toml:"model"`
	APIKey   string   `toml:"api_key"`
	BaseURL  string   `toml:"base_url"`
	Timeout  Duration `toml:"timeout"`
}

type ServerConfig struct {
	Port        string  `toml:"port"`
	Mode        string  `toml:"mode"`
	AIRateLimit float64 `toml:"ai_rate_limit"`
	AIBurst     int     `toml:"ai_burst"`
}

type DuplicatesConfig struct {
	EnforcePolicy bool `toml:"enforce_policy"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Server     ServerConfig     `toml:"server"`
	Prompts    PromptTemplates  `toml:"prompts"`
	Duplicates DuplicatesConfig `toml:"duplicates"`
	Logging    LoggingConfig    `toml:"logging"`
}

// Duration decodes TOML strings such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns a configuration that talks to a local Ollama instance.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "ollama",
			Model:    "gpt-oss:latest",
			BaseURL:  "http://localhost:11434",
			Timeout:  Duration{60 * time.Second},
		},
		Server: ServerConfig{
			Port:        "8080",
			Mode:        "release",
			AIRateLimit: 5,
			AIBurst:     10,
		},
		Duplicates: DuplicatesConfig{EnforcePolicy: true},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// Load reads the TOML file at path on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv resolves CONFIG_PATH, falls back to defaults when the file does not
// exist and applies environment overrides.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() error {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DUPLICATES_ENFORCE_POLICY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DUPLICATES_ENFORCE_POLICY %q: %w", v, err)
		}
		c.Duplicates.EnforcePolicy = b
	}
	return nil
}

var providers = map[string]bool{"openai": true, "ollama": true, "claude": true, "gemini": true}

var serverModes = map[string]bool{"": true, gin.DebugMode: true, gin.ReleaseMode: true, gin.TestMode: true}

func (c *Config) Validate() error {
	if !providers[strings.ToLower(c.LLM.Provider)] {
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm model is required")
	}
	if c.LLM.Timeout.Duration < 0 {
		return fmt.Errorf("llm timeout must not be negative")
	}
	if c.Server.AIRateLimit < 0 || c.Server.AIBurst < 0 {
		return fmt.Errorf("server rate limit settings must not be negative")
	}
	if !serverModes[c.Server.Mode] {
		return fmt.Errorf("unsupported server mode: %q (want %s, %s or %s)", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	return nil
}
