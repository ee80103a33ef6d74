package scheduler

import (
	"context"
	"log/slog"
	"time"

	"cookit/internal/domain"
)

// Importer is implemented by the catalog import service.
type Importer interface {
	Import(ctx context.Context) (*domain.ImportStats, error)
}

type Scheduler struct {
	importer Importer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// DefaultTimeout bounds a single import run when no timeout is given.
const DefaultTimeout = 5 * time.Minute

func NewScheduler(importer Importer, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scheduler{
		importer: importer,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start runs an import right away and then once per interval until ctx is
// done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runImport(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runImport(ctx)
		}
	}
}

func (s *Scheduler) runImport(ctx context.Context) {
	importCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.importer.Import(importCtx); err != nil {
		s.logger.Error("import failed", "error", err)
	}
}
