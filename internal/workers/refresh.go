// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/config"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/service"
)

// RefreshWorker reloads every collection from the server on a ticker so the
// local mirror picks up changes made by other clients.
type RefreshWorker struct {
	loaders  []service.Loader
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshWorker creates a RefreshWorker. If interval is zero or negative
// it defaults to config.DefaultRefreshInterval.
func NewRefreshWorker(loaders []service.Loader, interval time.Duration, log *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	return &RefreshWorker{loaders: loaders, interval: interval, logger: log}
}

// Run implements Worker. A failed load is logged and retried on the next
// tick; Run itself only returns when ctx is done.
func (w *RefreshWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("refresh worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("refresh worker stopped")
			return nil
		case <-t.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	for _, l := range w.loaders {
		if ctx.Err() != nil {
			return
		}
		if err := l.Load(ctx); err != nil {
			w.logger.Err(err).
				Str("func", "RefreshWorker.refresh").
				Str("entity", l.Entity().String()).
				Msg("refresh failed")
		}
	}
}
