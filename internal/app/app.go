// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/grimoire-service/config"
	"github.com/guttosm/grimoire-service/internal/http"
	"github.com/guttosm/grimoire-service/internal/middleware"
	"github.com/guttosm/grimoire-service/internal/scheduler"
)

// Application holds the wired router and the components that need an orderly shutdown.
type Application struct {
	Router    *gin.Engine
	Services  *ServiceComponents
	Database  *DatabaseComponents
	Scheduler *scheduler.Scheduler
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimiter
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	InitializeLogger(cfg.Log)

	services := InitializeServices(cfg)
	dbComponents := InitializeDatabase(cfg.Database)
	routerComponents := InitializeRouter(services, dbComponents, cfg)

	sched := scheduler.New()
	if err := sched.ScheduleCacheStats(services.ResponseCache, cfg.Server.CacheStatsInterval); err != nil {
		log.Warn().Err(err).Msg("Cache stats job not scheduled")
	}
	scheduler.PublishCacheStats(services.ResponseCache)

	return &Application{
		Router:      http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services:    services,
		Database:    dbComponents,
		Scheduler:   sched,
		RateLimiter: routerComponents.RateLimiter,
	}
}

// Start launches background jobs.
func (a *Application) Start() {
	a.Scheduler.Start()
}

// Shutdown stops background work and closes connections. It waits for
// in-flight prefetch walks until ctx is done.
func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.Scheduler.Stop(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.RateLimiter != nil {
		a.RateLimiter.Stop()
	}

	if a.Services.Prefetcher != nil {
		done := make(chan struct{})
		go func() {
			a.Services.Prefetcher.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			log.Warn().Msg("Prefetch walks still running at shutdown")
			errs = append(errs, ctx.Err())
		}
	}

	if a.Services.RedisClient != nil {
		if err := a.Services.RedisClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.Database != nil {
		if err := a.Database.DB.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
