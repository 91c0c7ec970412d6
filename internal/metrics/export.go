package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// WriteTextfile writes every registered metric to path in the text
// exposition format, atomically, for the node exporter textfile collector.
func WriteTextfile(ctx context.Context, path string) error {
	return writeTextfile(ctx, path, prometheus.DefaultGatherer)
}

func writeTextfile(ctx context.Context, path string, gatherer prometheus.Gatherer) error {
	log := logger.FromContext(ctx)

	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		log.Error(LogMsgMetricsWriteFailed, "path", path, "error", err)
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	log.Info(LogMsgMetricsWritten, "path", path)
	return nil
}
