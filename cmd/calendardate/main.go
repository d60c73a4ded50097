package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/calendardate/internal/config"
	"github.com/username/calendardate/pkg/calendardate"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath   string
	outputFormat string
	cfg          *config.Config
	location     = time.Local
	logger       = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calendardate",
		Short:         "Calendar date toolkit",
		Long:          "Parse, validate, compare and shift ISO calendar dates. Unrecognized input is healed to today.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("output") {
				loaded.Output = outputFormat
				if err := loaded.Validate(); err != nil {
					return fmt.Errorf("invalid --output: %w", err)
				}
			}

			loc, err := loaded.GetLocation()
			if err != nil {
				return err
			}
			cfg = loaded
			location = loc

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				logger, err = initLogger(cfg.Log.Level)
				if err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", config.OutputText, "Output format: text, json or yaml")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(shiftCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(infoCmd())

	return rootCmd
}

// dateOptions returns the construction options shared by every command
func dateOptions() []calendardate.Option {
	return []calendardate.Option{
		calendardate.WithLocation(location),
		calendardate.WithLogger(logger.Named("calendardate")),
	}
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
