package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// EnvConfig overrides the config file location
	EnvConfig = "CONTENTMGR_CONFIG"
	// EnvRoot overrides the project root stored in the config file
	EnvRoot = "CONTENTMGR_ROOT_DIRECTORY"

	keyRoot     = "root_directory"
	keyDarkMode = "dark_mode"
)

// ErrInvalidRoot reports a project root that is not an existing directory
var ErrInvalidRoot = errors.New("invalid project root")

// Config is the persisted editor preference record
type Config struct {
	RootDirectory string `mapstructure:"root_directory"`
	DarkMode      bool   `mapstructure:"dark_mode"`
}

// DefaultPath returns the config file location: $CONTENTMGR_CONFIG, or
// contentmgr/config.json under the user config directory.
func DefaultPath() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "contentmgr.json")
	}
	return filepath.Join(dir, "contentmgr", "config.json")
}

// Load reads the config record at path. A missing, unreadable or corrupt
// file yields the zero Config; anything other than a missing file is
// logged as a warning.
func Load(path string, logger *zap.Logger) Config {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			logger.Warn("failed to read config, using defaults", zap.String("path", path), zap.Error(err))
		}
		return Config{}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Warn("invalid config, using defaults", zap.String("path", path), zap.Error(err))
		return Config{}
	}
	return cfg
}

// Save writes cfg to path, creating its directory
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)
	v.Set(keyRoot, cfg.RootDirectory)
	v.Set(keyDarkMode, cfg.DarkMode)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(keyRoot, "")
	v.SetDefault(keyDarkMode, false)
	return v
}

// ProjectRoot returns the directory documents live under:
// $CONTENTMGR_ROOT_DIRECTORY, then the configured root, then the
// working directory.
func ProjectRoot(cfg Config) string {
	if env := os.Getenv(EnvRoot); env != "" {
		return env
	}
	if cfg.RootDirectory != "" {
		return cfg.RootDirectory
	}
	return "."
}

// RootConfigured reports whether the environment or cfg names a project
// root, as opposed to ProjectRoot falling back to the working directory
func RootConfigured(cfg Config) bool {
	return os.Getenv(EnvRoot) != "" || cfg.RootDirectory != ""
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// CheckRoot expands and absolutizes root and checks that it names an
// existing directory. The returned path is what stores should open.
func CheckRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("%w: no directory given", ErrInvalidRoot)
	}
	abs, err := filepath.Abs(ExpandHome(strings.TrimSpace(root)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s does not exist", ErrInvalidRoot, abs)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, abs)
	}
	return abs, nil
}
