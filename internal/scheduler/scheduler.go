// Package scheduler runs named maintenance tasks on cron specs.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

// Scheduler wraps robfig/cron. Tasks get the context passed to Start and a
// task still running when its next tick arrives is skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger

	mu    sync.Mutex
	tasks []namedTask
}

type namedTask struct {
	name string
	spec string
	task Task
}

func New(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:  log,
	}
}

// Add registers task under spec ("@every 24h", "0 3 * * *", ...).
func (s *Scheduler) Add(name, spec string, task Task) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, namedTask{name: name, spec: spec, task: task})
	return nil
}

// Start runs every task once immediately, then on its schedule until ctx is
// done. It blocks until ctx is done and running tasks have returned.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	tasks := append([]namedTask(nil), s.tasks...)
	s.mu.Unlock()

	for _, t := range tasks {
		if _, err := s.cron.AddFunc(t.spec, func() { s.run(ctx, t) }); err != nil {
			return fmt.Errorf("cron.AddFunc %s: %w", t.name, err)
		}
	}

	s.cron.Start()
	s.log.Info("[scheduler] cron started", zap.Int("tasks", len(tasks)))

	// run immediately
	for _, t := range tasks {
		s.run(ctx, t)
	}

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("[scheduler] cron stopped")
	return nil
}

func (s *Scheduler) run(ctx context.Context, t namedTask) {
	if ctx.Err() != nil {
		return
	}
	if err := t.task(ctx); err != nil {
		s.log.Warn("[scheduler] task failed", zap.String("task", t.name), zap.Error(err))
		return
	}
	s.log.Debug("[scheduler] task done", zap.String("task", t.name))
}
