// Package settings loads process-wide options from settings.yaml and MCVM_*
// environment variables.
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	envPrefix = "MCVM"

	// DefaultHTTPTimeout bounds every download.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultLanguage is the game language assumed when none is configured.
	DefaultLanguage = "en_us"
)

// Dirs are the platform directories settings default to.
type Dirs struct {
	Data   string
	Config string
	Cache  string
}

// DefaultDirs returns the per-user directories for the current platform.
func DefaultDirs() (Dirs, error) {
	configRoot, err := os.UserConfigDir()
	if err != nil {
		return Dirs{}, err
	}
	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		return Dirs{}, err
	}
	dataRoot := os.Getenv("XDG_DATA_HOME")
	if dataRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}, err
		}
		dataRoot = filepath.Join(home, ".local", "share")
	}
	return Dirs{
		Data:   filepath.Join(dataRoot, domain.AppDirName),
		Config: filepath.Join(configRoot, domain.AppDirName),
		Cache:  filepath.Join(cacheRoot, domain.AppDirName),
	}, nil
}

// Loader reads settings with viper.
type Loader struct {
	v        *viper.Viper
	validate *validator.Validate
}

// NewLoader creates a loader whose directories default to dirs.
func NewLoader(dirs Dirs) *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", dirs.Data)
	v.SetDefault("config_dir", dirs.Config)
	v.SetDefault("cache_dir", dirs.Cache)
	v.SetDefault("json_logs", false)
	v.SetDefault("debug", false)
	v.SetDefault("assume_yes", false)
	v.SetDefault("http_timeout", DefaultHTTPTimeout)
	v.SetDefault("language", DefaultLanguage)

	return &Loader{v: v, validate: validator.New()}
}

// Load reads settings.yaml from the config directory if present, then
// applies environment overrides. A missing settings file is not an error.
func (l *Loader) Load() (*domain.Settings, error) {
	configDir := l.v.GetString("config_dir")
	l.v.SetConfigFile(filepath.Join(configDir, domain.SettingsFileName))
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "config_dir", configDir)
		}
	}

	var s domain.Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	if err := l.validate.Struct(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	return &s, nil
}

// Set overrides a setting, taking precedence over file and environment.
// Command line flags use it.
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}
