package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Theme modes for UIConfig.Theme
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Config represents the application configuration
type Config struct {
	UI   UIConfig   `json:"ui"`
	Data DataConfig `json:"data"`

	// snapshots taken by LoadConfig before and after CALC_* overrides
	file   *Config
	loaded *Config
}

// UIConfig represents UI configuration
type UIConfig struct {
	Theme          string `json:"theme"`       // light, dark or system
	ColorTheme     string `json:"color_theme"` // theme-blue, theme-purple, ...
	Language       string `json:"language"`
	FontSize       int    `json:"font_size"`
	WindowWidth    int    `json:"window_width"`
	WindowHeight   int    `json:"window_height"`
	MinimizeToTray bool   `json:"minimize_to_tray"`
	StartAdvanced  bool   `json:"start_advanced"`
}

// DataConfig represents data storage configuration
type DataConfig struct {
	PersistHistory bool   `json:"persist_history"`
	DBPath         string `json:"db_path"`
}

// DefaultConfig returns the configuration written on first start
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:          ThemeSystem,
			ColorTheme:     "theme-blue",
			Language:       "ar",
			FontSize:       14,
			WindowWidth:    380,
			WindowHeight:   640,
			MinimizeToTray: false,
			StartAdvanced:  false,
		},
		Data: DataConfig{
			PersistHistory: false,
			DBPath:         "./data/history.db",
		},
	}
}

// LoadConfig loads configuration from file and applies environment overrides
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.Data.DBPath = expandPath(config.Data.DBPath)
	file := config.snapshot()

	config.ApplyEnv()
	config.Data.DBPath = expandPath(config.Data.DBPath)

	config.file = file
	config.loaded = config.snapshot()
	return config, nil
}

func (c *Config) snapshot() *Config {
	return &Config{UI: c.UI, Data: c.Data}
}

// persisted returns the config as it should be written back. A setting
// still holding the value a CALC_* variable gave it is written with the
// file's own value, so environment overrides never end up on disk.
func (c *Config) persisted() *Config {
	out := c.snapshot()
	if c.file == nil || c.loaded == nil {
		return out
	}

	keepFileValue(&out.UI.Theme, c.loaded.UI.Theme, c.file.UI.Theme)
	keepFileValue(&out.UI.ColorTheme, c.loaded.UI.ColorTheme, c.file.UI.ColorTheme)
	keepFileValue(&out.UI.Language, c.loaded.UI.Language, c.file.UI.Language)
	keepFileValue(&out.UI.FontSize, c.loaded.UI.FontSize, c.file.UI.FontSize)
	keepFileValue(&out.Data.PersistHistory, c.loaded.Data.PersistHistory, c.file.Data.PersistHistory)
	keepFileValue(&out.Data.DBPath, c.loaded.Data.DBPath, c.file.Data.DBPath)
	return out
}

// OverrideLanguage switches the language for this session only
func (c *Config) OverrideLanguage(lang string) {
	c.UI.Language = lang
	if c.loaded != nil {
		c.loaded.UI.Language = lang
	}
}

func keepFileValue[T comparable](current *T, loaded, file T) {
	if *current == loaded && loaded != file {
		*current = file
	}
}

// LoadDotEnv loads .env and then .env.local from the working directory.
// Missing files are not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")
}

// ApplyEnv overrides settings from CALC_* environment variables
func (c *Config) ApplyEnv() {
	get := func(key string) (string, bool) {
		v := strings.TrimSpace(os.Getenv(key))
		return v, v != ""
	}

	if v, ok := get("CALC_THEME"); ok {
		c.UI.Theme = strings.ToLower(v)
	}
	if v, ok := get("CALC_COLOR_THEME"); ok {
		c.UI.ColorTheme = v
	}
	if v, ok := get("CALC_LANGUAGE"); ok {
		c.UI.Language = strings.ToLower(v)
	}
	if v, ok := get("CALC_FONT_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.FontSize = n
		}
	}
	if v, ok := get("CALC_PERSIST_HISTORY"); ok {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			c.Data.PersistHistory = true
		default:
			c.Data.PersistHistory = false
		}
	}
	if v, ok := get("CALC_DB_PATH"); ok {
		c.Data.DBPath = v
	}
}

// SaveConfig saves configuration to file
func SaveConfig(configPath string, config *Config) error {
	data, err := json.MarshalIndent(config.persisted(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandPath expands ~ and relative paths
func expandPath(path string) string {
	if len(path) == 0 {
		return path
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	absPath, err := filepath.Abs(path)
	if err == nil {
		return absPath
	}

	return path
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./config/default.json"
	}

	return filepath.Join(configDir, "light-calculator", "config.json")
}

// EnsureDefaultConfig creates a default config file if it doesn't exist
func EnsureDefaultConfig() (string, error) {
	return ensureConfigAt(GetConfigPath())
}

func ensureConfigAt(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := SaveConfig(configPath, DefaultConfig()); err != nil {
		return "", err
	}

	return configPath, nil
}
