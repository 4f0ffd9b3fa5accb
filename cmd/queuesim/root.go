package main

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/huynhanx03/queuesim/pkg/logger"
	"github.com/huynhanx03/queuesim/pkg/settings"
	"github.com/huynhanx03/queuesim/pkg/simulation/mm1"
)

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	cfg        *settings.Config
	logger     *zap.Logger
	runID      string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logger.NewNop()}

	root := &cobra.Command{
		Use:          "queuesim",
		Short:        "Single-server queue simulation",
		SilenceUsage: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	defaults := settings.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.String("log-level", defaults.Logger.LogLevel, "log level (debug, info, warn, error)")
	pf.String("log-file", "", "also write JSON logs to this rotated file")

	root.AddCommand(newRunCmd(a), newBatchCmd(a), newToBeCmd())
	return root
}

// setup loads configuration with the command's flags bound by config key,
// applies positional rates and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string, bindings map[string]string) error {
	flags := map[string]*pflag.Flag{
		"logger.log_level":     cmd.Flags().Lookup("log-level"),
		"logger.file_log_name": cmd.Flags().Lookup("log-file"),
	}
	for key, name := range bindings {
		flags[key] = cmd.Flags().Lookup(name)
	}

	cfg, err := settings.Load(a.configPath, flags)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		lambda, mu, err := parseRates(args)
		if err != nil {
			return err
		}
		cfg.Simulation.ArrivalRate = lambda
		cfg.Simulation.ServiceRate = mu
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = uint64(time.Now().UnixNano())
	}

	l, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.logger = l.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))
	return nil
}

func (a *app) simConfig() mm1.Config {
	return mm1.Config{
		ArrivalRate: a.cfg.Simulation.ArrivalRate,
		ServiceRate: a.cfg.Simulation.ServiceRate,
		MaxWait:     a.cfg.Simulation.MaxWait,
		Window:      a.cfg.Simulation.Window,
	}
}

// ratesArgs accepts either no positional arguments (rates come from config)
// or exactly LAMBDA and MU.
func ratesArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return errors.Errorf("expected LAMBDA MU, got %d argument(s)", len(args))
	}
	return nil
}

func parseRates(args []string) (lambda, mu float64, err error) {
	lambda, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse arrival rate %q", args[0])
	}
	mu, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse service rate %q", args[1])
	}
	return lambda, mu, nil
}
