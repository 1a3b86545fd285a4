package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "SHINYELECTRON"

const (
	keyCacheDir       = "cache_dir"
	keyPackageManager = "package_manager"
	keyRVersion       = "r_version"
	keyDevPort        = "dev_port"
	keyLogFormat      = "log_format"
	keyTerminal       = "terminal"
)

// SettingsLoader layers defaults, an optional config file and SHINYELECTRON_* variables.
type SettingsLoader struct {
	configDir string
}

// NewSettingsLoader creates a loader reading config.{yaml,json,toml} from configDir.
// An empty configDir disables the config file.
func NewSettingsLoader(configDir string) *SettingsLoader {
	return &SettingsLoader{configDir: configDir}
}

// DefaultConfigDir returns the platform user config directory joined with shinyelectron.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, domain.CacheAppDirName)
}

// Load resolves the settings. A missing config file is not an error.
func (l *SettingsLoader) Load() (*domain.Settings, error) {
	v := viper.New()

	defaults := domain.DefaultSettings()
	v.SetDefault(keyCacheDir, defaults.CacheDir)
	v.SetDefault(keyPackageManager, strings.Join(defaults.PackageManager, " "))
	v.SetDefault(keyRVersion, defaults.RVersion)
	v.SetDefault(keyDevPort, defaults.DevPort)
	v.SetDefault(keyLogFormat, defaults.LogFormat)
	v.SetDefault(keyTerminal, defaults.Terminal)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if l.configDir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(l.configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "dir", l.configDir)
			}
		}
	}

	pm, err := SplitCommand(v.GetString(keyPackageManager))
	if err != nil {
		return nil, err
	}

	settings := &domain.Settings{
		CacheDir:       v.GetString(keyCacheDir),
		PackageManager: pm,
		RVersion:       v.GetString(keyRVersion),
		DevPort:        v.GetInt(keyDevPort),
		LogFormat:      v.GetString(keyLogFormat),
		Terminal:       v.GetString(keyTerminal),
	}

	if err := domain.ValidateVersion(settings.RVersion); err != nil {
		return nil, zerr.With(err, "setting", keyRVersion)
	}
	if err := domain.ValidatePort(settings.DevPort); err != nil {
		return nil, zerr.With(err, "setting", keyDevPort)
	}

	return settings, nil
}

// SplitCommand splits a command line into words using POSIX shell quoting rules.
// Environment references are expanded from the process environment.
func SplitCommand(s string) ([]string, error) {
	fields, err := shell.Fields(s, os.Getenv)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPackageManager.Error()), "command", s)
	}
	if len(fields) == 0 {
		return nil, zerr.With(domain.ErrInvalidPackageManager, "command", s)
	}
	return fields, nil
}
