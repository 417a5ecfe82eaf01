package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/holiday-clock/internal/calendar"
	"github.com/username/holiday-clock/internal/clock"
	"github.com/username/holiday-clock/internal/config"
	"github.com/username/holiday-clock/internal/daemon"
	"github.com/username/holiday-clock/internal/properties"
	"github.com/username/holiday-clock/internal/state"
	"github.com/username/holiday-clock/internal/style"
	"github.com/username/holiday-clock/pkg/dateutil"
)

var (
	configPath string
	logger     = zap.NewNop()
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "holiday-clock",
		Short:         "Desktop clock with a holiday countdown",
		Long:          "A clock widget that shows the time, date, ISO week and a countdown to the next holiday",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err != nil {
				initLogger("info") // Default console logger
				return
			}
			if cfg.Daemon.LogFile != "" {
				logger, err = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
				if err == nil {
					return
				}
			}
			initLogger(cfg.Daemon.LogLevel) // Console logger
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml, ~/.holiday-clock, /etc/holiday-clock)")

	root.AddCommand(runCmd())
	root.AddCommand(nextCmd())
	root.AddCommand(holidaysCmd())
	root.AddCommand(easterCmd())
	root.AddCommand(weekCmd())
	root.AddCommand(positionCmd())
	root.AddCommand(presetCmd())

	return root
}

func runCmd() *cobra.Command {
	var propsFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clock, redrawing every tick",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			s := cfg.Clock

			// Restore saved position
			positions := state.NewPositionStore(cfg.State.PositionFile, state.PositionOf(s), logger)
			if err := positions.Load(); err != nil {
				logger.Warn("Failed to load clock position, using defaults", zap.Error(err))
			}
			positions.Position().ApplyTo(&s)

			// Apply host properties
			if propsFile == "" {
				propsFile = cfg.Properties.File
			}
			if propsFile != "" {
				if err := applyPropertiesFile(&s, propsFile, properties.Merge(cfg.Properties.Keys)); err != nil {
					return err
				}
			}

			c := clock.NewClock(s, loadHolidays(cfg), logger)
			d := daemon.NewDaemon(c, style.NewRenderer(cmd.OutOrStdout()), cmd.OutOrStdout(), daemon.Options{
				Interval:    cfg.Daemon.GetTickInterval(),
				Location:    cfg.Daemon.GetLocation(),
				SystemTray:  cfg.Daemon.SystemTray,
				ClearScreen: isTerminal(os.Stdout),
			}, logger)

			return d.Start()
		},
	}

	cmd.Flags().StringVar(&propsFile, "properties", "", "JSON properties file to apply (overrides properties.file)")

	return cmd
}

func nextCmd() *cobra.Command {
	var format string
	var noIcons bool
	var at string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the countdown to the next holiday",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			now, err := resolveNow(at, cfg.Daemon.GetLocation())
			if err != nil {
				return err
			}

			f := cfg.Clock.HolidayFormat
			if format != "" {
				f = calendar.ParseFormat(format)
			}

			line := calendar.FormatCountdown(loadHolidays(cfg), now, f, noIcons || cfg.Clock.DisableIcons)
			if line == "" {
				return fmt.Errorf("no holidays configured")
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Countdown format: days, dhm, dh, w, h, m, s, date")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "Omit holiday emoji")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate at this time instead of now (YYYY-MM-DD or YYYY-MM-DD HH:MM)")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List holidays resolved for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			loc := cfg.Daemon.GetLocation()
			if year == 0 {
				year = time.Now().In(loc).Year()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📅 Holidays in %d\n", year)
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			for _, r := range calendar.InYear(loadHolidays(cfg), year, loc) {
				emoji := r.Emoji
				if emoji == "" || cfg.Clock.DisableIcons {
					emoji = " "
				}
				fmt.Fprintf(out, "  %s  %s  %-3s  %s\n", r.Date.Format("2006-01-02"), emoji, r.Date.Format("Mon"), r.Name)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list (default: current year)")

	return cmd
}

func easterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easter YEAR",
		Short: "Print the date of Western Easter for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), calendar.Easter(year, time.UTC).Format("2006-01-02 (Mon)"))
			return nil
		},
	}
}

func weekCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the ISO week and day of year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			now, err := resolveNow(at, cfg.Daemon.GetLocation())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Week %d · Day %d\n", dateutil.ISOWeek(now), dateutil.DayOfYear(now))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Evaluate at this date instead of today (YYYY-MM-DD)")

	return cmd
}

// loadHolidays builds the catalog from the configured sources, in order
func loadHolidays(cfg *config.Config) []calendar.Holiday {
	var sources []calendar.Source
	for _, name := range cfg.Calendar.Sources {
		switch name {
		case config.SourceBuiltin:
			sources = append(sources, calendar.BuiltinSource{})
		case config.SourceUSFederal:
			sources = append(sources, calendar.USFederalSource{})
		case config.SourceFile:
			sources = append(sources, calendar.NewFileSource(cfg.Calendar.CustomFile, logger))
		case config.SourceICS:
			sources = append(sources, calendar.NewICSSource(cfg.Calendar.ICSFile, logger))
		}
	}

	composite := calendar.NewCompositeSource(logger, sources...)
	if err := composite.Load(); err != nil {
		logger.Warn("Some holiday sources failed to load, continuing with the rest", zap.Error(err))
	}

	return composite.Holidays()
}

// resolveNow returns the current time in loc, or the wall time given by at
func resolveNow(at string, loc *time.Location) (time.Time, error) {
	if at == "" {
		return time.Now().In(loc), nil
	}

	t, err := dateutil.ParseDate(at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value: %w", err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

func applyPropertiesFile(s *clock.State, path string, keys properties.Keys) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open properties file: %w", err)
	}
	defer f.Close()

	props, err := properties.Decode(f)
	if err != nil {
		return err
	}

	if editor := properties.Apply(s, props, keys); editor != nil {
		logger.Info("Widget editor toggle received", zap.Bool("visible", *editor))
	}
	logger.Info("Properties applied", zap.String("file", path), zap.Int("count", len(props)))

	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		config.Level = lvl
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
