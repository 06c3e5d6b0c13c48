package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/service"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Scheduler runs the background jobs. The only job today is the periodic
// analytics cache refresh, which keeps the admin dashboard warm.
type Scheduler struct {
	scheduler gocron.Scheduler
	analytics service.AnalyticsService
	logger    zerolog.Logger
}

// NewScheduler creates a scheduler with the analytics refresh job registered.
func NewScheduler(analytics service.AnalyticsService, interval time.Duration, logger zerolog.Logger) (*Scheduler, error) {
	gs, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{
		scheduler: gs,
		analytics: analytics,
		logger:    logger.With().Str("component", "scheduler").Logger(),
	}

	_, err = gs.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.refreshAnalytics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register analytics refresh job: %w", err)
	}

	return s, nil
}

// Start begins running registered jobs.
func (s *Scheduler) Start() {
	s.logger.Info().Msg("starting background job scheduler")
	s.scheduler.Start()
}

// Shutdown stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Shutdown() error {
	s.logger.Info().Msg("stopping background job scheduler")
	return s.scheduler.Shutdown()
}

func (s *Scheduler) refreshAnalytics() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.analytics.RefreshDashboard(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("analytics refresh failed")
		return
	}

	s.logger.Debug().Msg("analytics refresh completed")
}
