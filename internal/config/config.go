// Package config handles configuration for zamani-demo.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	apierrors "github.com/zamanilabs/zamani-demo/internal/errors"
	"github.com/zamanilabs/zamani-demo/internal/models"
)

// Environment variables that override the config file
const (
	EnvHome      = "ZAMANI_DEMO_HOME"
	EnvModel     = "ZAMANI_DEMO_MODEL"
	EnvRoute     = "ZAMANI_DEMO_ROUTE"
	EnvTheme     = "ZAMANI_DEMO_THEME"
	EnvLogLevel  = "ZAMANI_DEMO_LOG_LEVEL"
	EnvLogFile   = "ZAMANI_DEMO_LOG_FILE"
	EnvClipboard = "ZAMANI_DEMO_COPY_TO_CLIPBOARD"
)

// MarkdownConfig configures markdown rendering of assistant replies
type MarkdownConfig struct {
	Style            string `json:"style" jsonschema:"description=glamour style: dark or light or a path to a JSON theme"`
	EnableEmoji      bool   `json:"enable_emoji"`
	PreserveNewLines bool   `json:"preserve_newlines"`
}

// Config represents the user configuration
type Config struct {
	// DefaultModel is the model selected when the demo mounts.
	DefaultModel string `json:"default_model" jsonschema:"description=model selected at mount time"`
	// InitialRoute is the location the bottom navigation starts on.
	InitialRoute    string         `json:"initial_route" jsonschema:"description=path highlighted in the bottom navigation at mount time"`
	TUITheme        string         `json:"tui_theme,omitempty"`
	LogLevel        string         `json:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	LogFile         string         `json:"log_file,omitempty" jsonschema:"description=log destination for the interactive demo; defaults to demo.log in the config directory"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultModel:    models.DefaultModel(),
		InitialRoute:    models.PathHome,
		TUITheme:        "zamani",
		LogLevel:        "info",
		CopyToClipboard: true,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".zamani-demo"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns where the interactive demo writes its log
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "demo.log"), nil
}

// LoadConfig loads the configuration from disk, then applies .env and
// ZAMANI_DEMO_* overrides.
func LoadConfig() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	if err := LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	cfg = ApplyEnv(cfg)
	return cfg, Validate(cfg)
}

// LoadFile loads only the config file, without environment overrides
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), apierrors.NewParseError(fmt.Sprintf("failed to parse config file: %v", err), configPath)
	}

	return cfg, nil
}

// LoadDotEnv loads path into the process environment if it exists.
// Variables already set are left alone.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return apierrors.NewParseError(fmt.Sprintf("failed to load env file: %v", err), path)
	}
	return nil
}

// ApplyEnv overlays ZAMANI_DEMO_* variables on cfg
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv(EnvModel); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv(EnvRoute); v != "" {
		cfg.InitialRoute = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.TUITheme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvClipboard); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CopyToClipboard = b
		}
	}
	return cfg
}

// Validate checks values that would otherwise be silently replaced
func Validate(cfg Config) error {
	if cfg.DefaultModel != "" && !models.IsCatalogModel(cfg.DefaultModel) {
		return apierrors.NewConfigError("default_model",
			fmt.Sprintf("%q is not one of: %s", cfg.DefaultModel, strings.Join(models.ModelCatalog(), ", ")))
	}
	if cfg.InitialRoute != "" && !strings.HasPrefix(cfg.InitialRoute, "/") {
		return apierrors.NewConfigError("initial_route", fmt.Sprintf("%q must start with /", cfg.InitialRoute))
	}
	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			return apierrors.NewConfigError("log_level", err.Error())
		}
	}
	return nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Schema returns the JSON schema of the config file
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "zamani-demo configuration"
	schema.Description = "Schema for ~/.zamani-demo/config.json."
	schema.Required = nil

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// AvailableModels returns the model catalog
func AvailableModels() []string {
	return models.ModelCatalog()
}
