// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type SFTPConfig struct {
	Enabled               bool   `yaml:"enabled"`
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	User                  string `yaml:"user"`
	Pass                  string `yaml:"-" env:"SFTP_PASS"`
	RemoteDir             string `yaml:"remote_dir"`
	InsecureIgnoreHostKey bool   `yaml:"insecure_ignore_host_key"`
}

type Config struct {
	//Input
	InputDir      string   `yaml:"input_dir" env:"JOB_RESULTS_DIR"`
	InputPatterns []string `yaml:"input_patterns"`
	//Output
	OutputDir string   `yaml:"output_dir" env:"COMPILED_RESULTS_DIR"`
	Formats   []string `yaml:"formats"`
	//Platform name -> base URL, used for relative links
	Platforms map[string]string `yaml:"platforms"`
	//Run history
	History   bool   `yaml:"history"`
	CachePath string `yaml:"cache_path"`
	//Optional outputs
	TelegramToken  string     `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64      `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	DatabaseURL    string     `yaml:"database_url" env:"DATABASE_URL"`
	SFTP           SFTPConfig `yaml:"sftp"`
}

// Load reads DefaultPath and exits on an invalid configuration.
func Load() *Config {
	cfg, err := LoadFrom(DefaultPath)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	return cfg
}

// LoadFrom reads .env, then the YAML file at path (a missing file only
// warns), applies env overrides and defaults, and validates the result.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Could not read %s: %v. Using defaults.", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if dir := os.Getenv("JOB_RESULTS_DIR"); dir != "" {
		cfg.InputDir = dir
	}
	if dir := os.Getenv("COMPILED_RESULTS_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if pass := os.Getenv("SFTP_PASS"); pass != "" {
		cfg.SFTP.Pass = pass
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "job_results"
	}
	if len(cfg.InputPatterns) == 0 {
		cfg.InputPatterns = []string{"*.txt", "*.json"}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "compiled_results"
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"txt", "json"}
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if cfg.SFTP.Port == 0 {
		cfg.SFTP.Port = 22
	}
	if cfg.SFTP.RemoteDir == "" {
		cfg.SFTP.RemoteDir = "/"
	}
}

var knownFormats = map[string]bool{"txt": true, "text": true, "json": true, "html": true, "csv": true, "pdf": true}

// Validate reports every problem at once.
func Validate(cfg *Config) error {
	var errs []string

	for i, f := range cfg.Formats {
		if !knownFormats[strings.ToLower(strings.TrimSpace(f))] {
			errs = append(errs, fmt.Sprintf("formats[%d]: unknown format %q", i, f))
		}
	}
	for i, p := range cfg.InputPatterns {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Sprintf("input_patterns[%d] cannot be empty", i))
		}
	}
	if (cfg.TelegramToken == "") != (cfg.TelegramChatID == 0) {
		errs = append(errs, "telegram needs both TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}
	if cfg.SFTP.Enabled && (cfg.SFTP.Host == "" || cfg.SFTP.User == "") {
		errs = append(errs, "sftp.host and sftp.user are required when sftp.enabled=true")
	}
	if cfg.SFTP.Port <= 0 || cfg.SFTP.Port > 65535 {
		errs = append(errs, "sftp.port must be 1..65535")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// TelegramEnabled reports whether the summary should be sent to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// HasFormat reports whether a report format was requested.
func (c *Config) HasFormat(name string) bool {
	for _, f := range c.Formats {
		if strings.EqualFold(strings.TrimSpace(f), name) {
			return true
		}
	}
	return false
}
