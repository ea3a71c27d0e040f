// Package main is the entry point for the vkscout detection agent.
// It initializes configuration, wires the real hardware probes into
// the detection policy, and prints which device will execute shaders.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vkscout/agent/internal/config"
	"github.com/vkscout/agent/internal/detect"
	"github.com/vkscout/agent/internal/display"
	"github.com/vkscout/agent/internal/hardware"
	"github.com/vkscout/agent/internal/probe"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	configPath  = flag.String("config", "", "Path to configuration file (default: auto-discover)")
	showVersion = flag.Bool("version", false, "Show version and exit")
	jsonOutput  = flag.Bool("json", false, "Emit the platform record as JSON instead of a summary")
	timeout     = flag.Duration("timeout", 0, "Probe timeout (overrides config)")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("vkscout %s\n", version)
		os.Exit(0)
	}

	// Load configuration (explicit path, or auto-discovered)
	path := *configPath
	if path == "" {
		path = config.Locate()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags take precedence over config and environment
	if *jsonOutput {
		cfg.Output.Format = "json"
	}
	if *timeout > 0 {
		cfg.Probe.Timeout.Duration = *timeout
	}

	// Initialize logger
	logger := initLogger(cfg)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Info("Starting vkscout",
		zap.String("version", version),
		zap.Duration("probe_timeout", cfg.Probe.Timeout.Duration))

	// Handle OS signals; bound the whole detection pass by the
	// configured timeout (the detection policy has none of its own).
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Probe.Timeout.Duration)
	defer cancel()

	platform, err := detect.AutoDetect(ctx,
		probe.NewRuntimeOSProbe(),
		probe.NewNvidiaGPUProbe(cfg.Probe.NvidiaSMIPath),
		probe.NewGopsutilCPUProbe(),
	)
	if err != nil {
		logger.Fatal("Hardware detection failed", zap.Error(err))
	}

	logger.Info("Detection complete",
		zap.String("platform", platform.String()),
		zap.Int("gpus", len(platform.AvailableHardware[hardware.GPU])))

	if cfg.Output.Format == "json" {
		if err := display.JSON(os.Stdout, platform); err != nil {
			logger.Fatal("Failed to encode platform", zap.Error(err))
		}
		return
	}

	details := probe.CollectHostDetails(ctx)
	display.Summary(os.Stdout, platform, &details)
}

// initLogger creates a zap logger based on the configuration.
// It outputs to both console (human-readable) and optionally a JSON log file.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Console output (human-readable) goes to stderr so the report on
	// stdout stays machine-parseable.
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	// File output (structured JSON, if configured)
	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
