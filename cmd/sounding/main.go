// Command sounding computes a wind and temperature profile from one balloon
// flight and prints both coded bulletins.
//
// Usage:
//
//	go run ./cmd/sounding -wind data/wind.csv -temp data/temp.csv
//
// Settings not given as flags come from the environment (see internal/config).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/sounding-etl/internal/adapter/csvfile"
	kafkaadapter "github.com/couchcryptid/sounding-etl/internal/adapter/kafka"
	"github.com/couchcryptid/sounding-etl/internal/adapter/textdump"
	"github.com/couchcryptid/sounding-etl/internal/config"
	"github.com/couchcryptid/sounding-etl/internal/observability"
	"github.com/couchcryptid/sounding-etl/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	windFile := flag.String("wind", "", "radar tracking file (overrides SOUNDING_WIND_FILE)")
	tempFile := flag.String("temp", "", "temperature channel file (overrides SOUNDING_TEMP_FILE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	if *windFile != "" {
		cfg.WindFile = *windFile
	}
	if *tempFile != "" {
		cfg.TempFile = *tempFile
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	loaders := []pipeline.Loader{textdump.NewWriter(os.Stdout)}

	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		loaders = append(loaders, writer)
		logger.Info("bulletin publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaBulletinTopic)
	}

	source := csvfile.NewSource(cfg.WindFile, cfg.TempFile, logger)
	transformer := pipeline.NewTransformer(pipeline.NewSession(), cfg.Calibration.Constants(), logger)
	p := pipeline.New(source, transformer, loaders, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, runErr := p.Run(ctx)
	if runErr != nil {
		logger.Error("sounding cycle failed", "error", runErr)
	}

	if writer != nil {
		if err := closeWithin(writer, cfg); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("write metrics textfile failed", "error", err, "path", cfg.MetricsTextfile)
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}

// closeWithin flushes and closes the writer, giving up after SHUTDOWN_TIMEOUT.
func closeWithin(w *kafkaadapter.Writer, cfg *config.Config) error {
	done := make(chan error, 1)
	go func() { done <- w.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
