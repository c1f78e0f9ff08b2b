// Package cli wires configuration, logging and the terminal UI behind the
// divgrid command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"divgrid/internal/config"
	"divgrid/internal/eventbus"
	"divgrid/internal/logging"
	"divgrid/internal/sequence"
	"divgrid/internal/ui"
	"divgrid/internal/validator"
)

// flags holds values given on the command line. Only flags the user set
// override the config file.
type flags struct {
	configPath string
	maximum    int
	start      int
	columns    int
	seed       uint64
	logFile    string
	debug      bool
}

// app holds what every command shares once flags are parsed. The logger
// exists before the config file is read so loading it is logged too.
type app struct {
	logger *zap.Logger
	bus    eventbus.EventBus
	flags  *flags
}

func newApp(f *flags) (*app, error) {
	logger, err := logging.New(f.logFile, f.debug)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		event := e.(eventbus.ConfigLoadedEvent)
		logger.Info("config loaded",
			zap.String("path", event.Path),
			zap.Int("maximum", event.Maximum),
			zap.Int("start", event.Start))
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		logger.Info("config saved", zap.String("path", e.(eventbus.ConfigSavedEvent).Path))
	})
	bus.Subscribe(eventbus.EventBoundChanged, func(e eventbus.DomainEvent) {
		event := e.(eventbus.BoundChangedEvent)
		logger.Info("bound changed", zap.Int("from", event.From), zap.Int("to", event.To))
	})

	return &app{logger: logger, bus: bus, flags: f}, nil
}

// configService reads and writes the file named by --config
func (a *app) configService() config.ConfigService {
	return config.NewConfigService(a.flags.configPath, a.bus)
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// withApp builds the shared app around a command body
func withApp(f *flags, body func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(f)
		if err != nil {
			return err
		}
		defer a.close()
		return body(cmd, a, args)
	}
}

// runFunc starts the interactive UI; tests replace it
type runFunc func(ctx context.Context, a *app, cfg *config.Config) error

// NewRootCommand builds the divgrid command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(runUI)
}

func newRootCommand(run runFunc) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "divgrid",
		Short: "Shuffled number grid that highlights divisors on hover",
		Long: `divgrid shows the numbers 1..N in a random order. Hovering a number with
the mouse, or moving the cursor onto it, highlights every number in the grid
that divides it.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: withApp(f, func(cmd *cobra.Command, a *app, args []string) error {
			cfg, err := resolveConfig(cmd, a)
			if err != nil {
				return err
			}
			return run(cmd.Context(), a, cfg)
		}),
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&f.logFile, "log-file", logging.DefaultFile, "log file (empty disables logging)")
	pf.BoolVar(&f.debug, "debug", false, "log at debug level")
	root.Flags().IntVarP(&f.maximum, "max", "m", config.DefaultMaximum, "largest accepted number")
	root.Flags().IntVarP(&f.start, "start", "s", config.DefaultStart, "number shown at startup")
	root.Flags().IntVar(&f.columns, "columns", 0, "fixed number of grid columns (0 fits the terminal)")
	root.Flags().Uint64Var(&f.seed, "seed", 0, "shuffle seed (0 picks a random one)")

	root.AddCommand(newConfigCommand(f), newShuffleCommand(f))
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// resolveConfig loads the config file and applies explicitly set flags
func resolveConfig(cmd *cobra.Command, a *app) (*config.Config, error) {
	cfg, err := a.configService().Load()
	if err != nil {
		return nil, err
	}

	f := a.flags
	changed := cmd.Flags().Changed
	if changed("max") {
		cfg.Maximum = f.maximum
	}
	if changed("start") {
		cfg.Start = f.start
	}
	if changed("columns") {
		cfg.Grid.Columns = f.columns
	}
	if changed("seed") {
		cfg.Grid.Seed = f.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runUI(ctx context.Context, a *app, cfg *config.Config) error {
	logger := a.logger

	model, err := ui.NewModel(ui.Options{
		Config: cfg,
		Bus:    a.bus,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	logger.Info("starting UI",
		zap.Int("maximum", cfg.Maximum),
		zap.Int("start", cfg.Start),
		zap.Uint64("seed", cfg.Grid.Seed))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

func newConfigCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: withApp(f, func(cmd *cobra.Command, a *app, args []string) error {
			svc := a.configService()
			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", svc.Path())
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svc.Path())
			return nil
		}),
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigService(f.configPath, nil).Path())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func newShuffleCommand(f *flags) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "shuffle N",
		Short: "Print one shuffled run of 1..N",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(f, func(cmd *cobra.Command, a *app, args []string) error {
			cfg, err := a.configService().Load()
			if err != nil {
				return err
			}

			outcome := validator.Validate(args[0], cfg.Maximum)
			if !outcome.IsValid() {
				if msg := outcome.Message(); msg != "" {
					return errors.New(msg)
				}
				return errors.New("a number is required")
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Grid.Seed
			}
			return writeSequence(cmd.OutOrStdout(), sequence.Generate(outcome.Bound, sequence.NewSource(seed)))
		}),
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed (0 picks a random one)")
	return cmd
}

func writeSequence(w io.Writer, seq []int) error {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
