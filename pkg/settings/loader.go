package settings

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. QUEUESIM_DISPLAY_PACE.
const EnvPrefix = "QUEUESIM"

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Simulation: Simulation{MaxWait: 60, Window: 1000},
		Display:    Display{Pace: 30, Every: 1, Width: 50, Clear: true},
		Batch:      Batch{Replications: 8},
		Logger:     Logger{LogLevel: "info", MaxSize: 10, MaxBackups: 3, MaxAge: 28},
	}
}

// Load merges defaults, the optional config file at path, QUEUESIM_* environment
// variables and the given flags (keyed by config key, e.g. "display.pace"),
// in increasing order of precedence.
func Load(path string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "bind flag %s", key)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// setDefaults registers every key so environment variables can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("simulation.arrival_rate", d.Simulation.ArrivalRate)
	v.SetDefault("simulation.service_rate", d.Simulation.ServiceRate)
	v.SetDefault("simulation.max_wait", d.Simulation.MaxWait)
	v.SetDefault("simulation.window", d.Simulation.Window)
	v.SetDefault("simulation.departures", d.Simulation.Departures)
	v.SetDefault("simulation.seed", d.Simulation.Seed)

	v.SetDefault("display.pace", d.Display.Pace)
	v.SetDefault("display.every", d.Display.Every)
	v.SetDefault("display.width", d.Display.Width)
	v.SetDefault("display.clear", d.Display.Clear)

	v.SetDefault("batch.replications", d.Batch.Replications)
	v.SetDefault("batch.parallel", d.Batch.Parallel)

	v.SetDefault("logger.log_level", d.Logger.LogLevel)
	v.SetDefault("logger.file_log_name", d.Logger.FileLogName)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.compress", d.Logger.Compress)
}
