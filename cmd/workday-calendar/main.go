package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/internal/calculator"
	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/internal/config"
	"github.com/username/workday-calendar/internal/holidays"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logFile    string
	logLevel   string
	logger     = zap.NewNop()

	appConfig *config.Config
	configErr error
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workday-calendar",
		Short:         "Workday calendar calculator",
		Long:          "Add or subtract fractional workdays from a point in time, skipping weekends and holidays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config to get log settings; flags take precedence
			appConfig, configErr = config.Load(configPath)
			file, level := logFile, logLevel
			if configErr == nil {
				if file == "" {
					file = appConfig.Log.File
				}
				if level == "" {
					level = appConfig.Log.GetLevel().String()
				}
			}

			var err error
			if file != "" {
				logger, err = initFileLogger(file, level)
			} else {
				logger, err = initLogger(level)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml, $HOME/.workday-calendar, /etc/workday-calendar)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to a rotated file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides log.level")

	rootCmd.AddCommand(incrementCmd())
	rootCmd.AddCommand(promptCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(workdaysCmd())

	return rootCmd
}

// initializeCalculator loads the configuration and all holiday sources
func initializeCalculator(ctx context.Context) (*calculator.Calculator, error) {
	if configErr != nil {
		return nil, fmt.Errorf("failed to load config: %w", configErr)
	}

	cfg := appConfig
	if cfg == nil {
		cfg = config.Default()
	}

	cal, err := buildCalendar(ctx, cfg)
	if err != nil {
		return nil, err
	}

	window, _ := cal.Window()
	logger.Info("Workday calendar configured",
		zap.String("work_window", window.String()),
		zap.Int("holidays", len(cal.Holidays())),
		zap.Int("recurring_holidays", len(cal.RecurringHolidays())))

	return calculator.NewCalculator(cal, logger), nil
}

func buildCalendar(ctx context.Context, cfg *config.Config) (calendar.Calendar, error) {
	cal, err := cfg.WorkWindow.Calendar()
	if err != nil {
		return calendar.Calendar{}, fmt.Errorf("invalid work window: %w", err)
	}

	sources := holidays.NewCompositeSource(logger).
		Add(&holidays.StaticSource{
			Specific:  cfg.Holidays.Specific,
			Recurring: cfg.Holidays.Recurring,
		})

	for _, path := range cfg.Holidays.Files {
		sources.Add(holidays.NewFileSource(path, logger))
	}

	if preset := cfg.Holidays.Preset; preset.Country != "" {
		src, err := holidays.NewPresetSource(preset.Country, preset.FromYear, preset.ToYear)
		if err != nil {
			return calendar.Calendar{}, err
		}
		logger.Info("Using national holiday preset",
			zap.String("country", preset.Country),
			zap.Int("from_year", preset.FromYear),
			zap.Int("to_year", preset.ToYear))
		sources.Add(src)
	}

	if isdayoff := cfg.Holidays.IsDayOff; isdayoff.Enabled {
		logger.Info("Using isdayoff.ru calendar API")
		src := holidays.NewIsDayOffSource(isdayoff.BaseURL, isdayoff.Country, isdayoff.FromYear, isdayoff.ToYear, logger)
		if isdayoff.Optional {
			sources.AddOptional(src)
		} else {
			sources.Add(src)
		}
	}

	set, err := sources.Load(ctx)
	if err != nil {
		return calendar.Calendar{}, err
	}

	return set.Apply(cal), nil
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}
