// Package scheduler runs periodic background jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/guttosm/grimoire-service/internal/logger"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/service/cache"
)

// MetricsSource reports cache metrics.
type MetricsSource interface {
	Metrics() cache.Metrics
}

// Scheduler wraps a cron runner holding the service's periodic jobs.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates an empty Scheduler. Panicking jobs are recovered and logged,
// and a run is skipped while the previous run of the same job is still going.
func New() *Scheduler {
	log := logger.Component("scheduler")
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		log:  log,
	}
}

// Every schedules job to run at a fixed interval.
func (s *Scheduler) Every(name string, interval time.Duration, job func()) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler: job %q needs a positive interval, got %s", name, interval)
	}
	_, err := s.cron.AddFunc("@every "+interval.String(), job)
	if err != nil {
		return fmt.Errorf("scheduler: add job %q: %w", name, err)
	}
	s.log.Debug().Str("job", name).Dur("interval", interval).Msg("Job scheduled")
	return nil
}

// ScheduleCacheStats publishes source's metrics to the cache gauges every interval.
func (s *Scheduler) ScheduleCacheStats(source MetricsSource, interval time.Duration) error {
	return s.Every("cache-stats", interval, func() {
		PublishCacheStats(source)
	})
}

// PublishCacheStats copies one snapshot of source's metrics into the prometheus gauges.
func PublishCacheStats(source MetricsSource) {
	m := source.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity, m.Hits, m.Misses)
}

// Len returns the number of scheduled jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", s.Len()).Msg("Scheduler started")
}

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info().Msg("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
