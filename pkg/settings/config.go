package settings

type Config struct {
	Simulation Simulation `mapstructure:"simulation"`
	Display    Display    `mapstructure:"display"`
	Batch      Batch      `mapstructure:"batch"`
	Logger     Logger     `mapstructure:"logger"`
}

// Simulation is the configuration for the M/M/1 simulation
type Simulation struct {
	ArrivalRate float64 `mapstructure:"arrival_rate"` // lambda
	ServiceRate float64 `mapstructure:"service_rate"` // mu
	MaxWait     int     `mapstructure:"max_wait" validate:"gte=0"`
	Window      int     `mapstructure:"window" validate:"gte=0"`
	Departures  int64   `mapstructure:"departures" validate:"gte=0"` // 0 runs until interrupted
	Seed        uint64  `mapstructure:"seed"`                         // 0 picks a time-based seed
}

// Display is the configuration for the text display
type Display struct {
	Pace  int  `mapstructure:"pace" validate:"gte=0"`  // Milliseconds between frames
	Every int  `mapstructure:"every" validate:"gte=1"` // Render every N departures
	Width int  `mapstructure:"width" validate:"gte=1"` // Widest histogram bar
	Clear bool `mapstructure:"clear"`
}

// Batch is the configuration for replicated runs
type Batch struct {
	Replications int `mapstructure:"replications" validate:"gte=1"`
	Parallel     int `mapstructure:"parallel" validate:"gte=0"` // 0 uses GOMAXPROCS
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}
