// Package config resolves tool settings from flags, LOGFIRE_SETUP_*
// environment variables, and defaults. The tool itself requires no config
// file; every setting has a working default.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces this tool's environment variables, e.g.
// LOGFIRE_SETUP_LOG_LEVEL.
const EnvPrefix = "LOGFIRE_SETUP"

// Settings holds the resolved runtime configuration.
type Settings struct {
	// ProjectDir is the project being set up.
	ProjectDir string `mapstructure:"project_dir"`

	// Debug enables verbose error output and debug logging.
	Debug bool `mapstructure:"debug"`

	// LogLevel is the minimum level written to the log sinks.
	LogLevel string `mapstructure:"log_level"`

	// LogFile is the JSON log destination; empty disables file logging.
	LogFile string `mapstructure:"log_file"`

	// APITimeout bounds the project-listing request.
	APITimeout time.Duration `mapstructure:"api_timeout"`
}

// newViper builds a viper instance with env binding and defaults applied.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("project_dir", ".")
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("api_timeout", 10*time.Second)

	return v
}

// Load resolves settings from environment and defaults, with the given
// flag set (may be nil) taking highest priority.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	v := newViper()

	if flags != nil {
		// Flag names use dashes; viper keys use underscores.
		bindings := map[string]string{
			"project_dir": "project-dir",
			"debug":       "debug",
			"log_level":   "log-level",
			"log_file":    "log-file",
			"api_timeout": "api-timeout",
		}
		for key, name := range bindings {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	if settings.ProjectDir == "" || settings.ProjectDir == "." {
		if cwd, err := os.Getwd(); err == nil {
			settings.ProjectDir = cwd
		}
	}

	return &settings, nil
}

// current holds the settings loaded by the root command so subcommands can
// reach them without re-parsing flags.
var current = &Settings{ProjectDir: "."}

// Set stores the loaded settings for later access via Get.
func Set(settings *Settings) {
	current = settings
}

// Get returns the most recently loaded settings.
func Get() *Settings {
	return current
}

// defaultLogFile places the log under the user cache directory so the
// wizard's interactive output stays clean by default.
func defaultLogFile() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cache, "logfire-setup", "logfire-setup.log")
}
