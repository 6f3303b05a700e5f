package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const (
	JobIdempotencyCleanup = "idempotency_cleanup"
	JobGiftCardExpiry     = "gift_card_expiry"
	JobBirthdayGrant      = "birthday_grant"

	jobTimeout = 5 * time.Minute
)

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	cfg    config.SchedulerConfig
	maint  commands.MaintenanceCommands
	logger *slog.Logger
	jobs   map[string]func(context.Context) (int64, error)
	// wrapped holds each job behind the recover and skip-if-running chain.
	// Scheduled entries and the boot run share the same instance.
	wrapped map[string]cron.Job
	boot    sync.WaitGroup
}

func New(cfg config.SchedulerConfig, maint commands.MaintenanceCommands, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron:    cron.New(cron.WithLogger(cl)),
		cfg:     cfg,
		maint:   maint,
		logger:  logger,
		wrapped: make(map[string]cron.Job),
	}

	s.jobs = map[string]func(context.Context) (int64, error){
		JobIdempotencyCleanup: maint.PurgeExpiredIdempotencyKeys,
		JobGiftCardExpiry:     maint.ExpireGiftCards,
		JobBirthdayGrant: func(ctx context.Context) (int64, error) {
			n, err := maint.GrantBirthdayDiscounts(ctx)
			return int64(n), err
		},
	}
	for name := range s.jobs {
		name := name
		s.wrapped[name] = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).
			Then(cron.FuncJob(func() { s.Run(context.Background(), name) }))
	}

	specs := map[string]string{
		JobIdempotencyCleanup: cfg.IdempotencyCleanup,
		JobGiftCardExpiry:     cfg.GiftCardExpiry,
		JobBirthdayGrant:      cfg.BirthdayGrant,
	}
	for name, spec := range specs {
		if spec == "" {
			continue
		}
		sched, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule for %s: %w", name, err)
		}
		s.cron.Schedule(sched, s.wrapped[name])
	}

	return s, nil
}

// Run executes a single job synchronously and records its outcome.
func (s *Scheduler) Run(ctx context.Context, name string) bool {
	job, ok := s.jobs[name]
	if !ok {
		s.logger.Warn("unknown scheduler job", "job", name)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	started := time.Now()
	affected, err := job(ctx)
	metrics.RecordSchedulerRun(name, err == nil)
	if err != nil {
		s.logger.Error("scheduler job failed", "job", name, "error", err.Error())
		return false
	}

	s.logger.Info("scheduler job completed",
		"job", name,
		"affected", affected,
		"duration_ms", time.Since(started).Milliseconds())
	return true
}

func (s *Scheduler) Start() {
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled")
		return
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "entries", len(s.cron.Entries()))

	if s.cfg.GrantBirthdayOnBoot {
		job := s.wrapped[JobBirthdayGrant]
		s.boot.Add(1)
		go func() {
			defer s.boot.Done()
			job.Run()
		}()
	}
}

// Stop waits for running jobs, the boot run included, to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}
	cronDone := s.cron.Stop()
	bootDone := make(chan struct{})
	go func() {
		s.boot.Wait()
		close(bootDone)
	}()

	for _, done := range []<-chan struct{}{cronDone.Done(), bootDone} {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.logger.Info("scheduler stopped")
	return nil
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
