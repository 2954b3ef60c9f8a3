package domain

import "time"

// Settings are the process-wide options of the tool.
type Settings struct {
	DataDir     string        `mapstructure:"data_dir" validate:"required"`
	ConfigDir   string        `mapstructure:"config_dir" validate:"required"`
	CacheDir    string        `mapstructure:"cache_dir" validate:"required"`
	JSONLogs    bool          `mapstructure:"json_logs"`
	Debug       bool          `mapstructure:"debug"`
	AssumeYes   bool          `mapstructure:"assume_yes"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout" validate:"gt=0"`
	Language    Language      `mapstructure:"language"`
}
