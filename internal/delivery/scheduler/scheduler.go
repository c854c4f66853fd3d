package scheduler

import (
	"context"
	"log/slog"
	"time"

	"voluntree/config"
	"voluntree/internal/delivery"
	"voluntree/internal/usecase"
	"voluntree/internal/util"

	"go.uber.org/fx"
)

type batchScheduler struct {
	interval time.Duration
	logger   *slog.Logger
	uc       usecase.MatchingUsecase
	stop     chan struct{}
	done     chan struct{}
}

// SchedulerParams holds dependencies for the batch matching scheduler
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Uc     usecase.MatchingUsecase
}

// NewScheduler creates the periodic batch matching sweep. A zero or negative
// interval disables it.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Matching != nil {
		interval = params.Cfg.Matching.BatchInterval
	}

	s := &batchScheduler{
		interval: interval,
		logger:   params.Logger,
		uc:       params.Uc,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s, nil
}

// Serve runs the sweep loop until shutdown
func (s *batchScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("Batch matching scheduler disabled")

		return nil
	}

	s.logger.Info("Starting batch matching scheduler",
		slog.String("interval", util.FormatDuration(s.interval)),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// First sweep runs immediately so a restart does not delay the backlog
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *batchScheduler) runOnce(ctx context.Context) {
	report, err := s.uc.RunBatchMatching(ctx)
	if err != nil {
		s.logger.Error("Batch matching sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Batch matching sweep finished",
		slog.Int("requests_scanned", report.RequestsScanned),
		slog.Int("requests_matched", report.RequestsMatched),
		slog.Int("matches_created", report.MatchesCreated),
		slog.Int("failures", len(report.Failures)),
		slog.String("elapsed", util.FormatDuration(report.Elapsed)),
	)
}

func (s *batchScheduler) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down batch matching scheduler")
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
