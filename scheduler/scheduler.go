package scheduler

import (
	"context"
	"fmt"
	"time"

	"gridiron/roster"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Reloader swaps in a fresh roster snapshot.
type Reloader interface {
	Reload(ctx context.Context) (*roster.Dataset, error)
}

// Scheduler reloads the roster dataset on a cron schedule
type Scheduler struct {
	schedule string
	reloader Reloader
	cron     *cron.Cron
}

func NewScheduler(schedule string, reloader Reloader) *Scheduler {
	return &Scheduler{
		schedule: schedule,
		reloader: reloader,
		cron:     cron.New(),
	}
}

// Start registers the reload job and starts the cron runner. Jobs stop
// reloading once ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule roster reload: %w", err)
	}

	s.cron.Start()
	log.Info().
		Str("schedule", s.schedule).
		Msg("Roster reload scheduled")
	return nil
}

// Stop stops the cron runner and waits for a running reload to finish
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")
	<-s.cron.Stop().Done()
	log.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	ds, err := s.reloader.Reload(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Scheduled roster reload failed")
		return
	}
	log.Info().
		Int("rows", ds.Len()).
		Dur("duration", time.Since(start)).
		Msg("Scheduled roster reload complete")
}
