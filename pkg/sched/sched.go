package sched

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Handle is a cancellable scheduled task owned by exactly one component.
type Handle interface {
	// Cancel stops the task. Safe to call more than once.
	Cancel()

	// Active reports whether the task can still fire.
	Active() bool
}

// Runner schedules background tasks and hands back cancellable handles.
type Runner interface {
	// Every runs task on a fixed interval until the handle is cancelled.
	Every(interval time.Duration, task func()) (Handle, error)

	// EveryLimited runs task on a fixed interval for at most runs executions.
	// The handle reports inactive once the run limit is reached.
	EveryLimited(interval time.Duration, runs int, task func()) (Handle, error)

	// After runs task once after delay.
	After(delay time.Duration, task func()) (Handle, error)

	// Shutdown stops the runner and every task it still owns.
	Shutdown() error
}

type gocronRunner struct {
	scheduler gocron.Scheduler
}

// NewRunner creates a Runner backed by a gocron scheduler and starts it.
func NewRunner() (Runner, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	scheduler.Start()
	return &gocronRunner{scheduler: scheduler}, nil
}

func (r *gocronRunner) Every(interval time.Duration, task func()) (Handle, error) {
	handle := newGocronHandle(r.scheduler)
	job, err := r.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
	)
	if err != nil {
		return nil, err
	}
	handle.id = job.ID()
	return handle, nil
}

func (r *gocronRunner) EveryLimited(interval time.Duration, runs int, task func()) (Handle, error) {
	handle := newGocronHandle(r.scheduler)
	var executed atomic.Int64
	wrapped := func() {
		task()
		if executed.Add(1) >= int64(runs) {
			handle.finished.Store(true)
		}
	}

	job, err := r.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(wrapped),
		gocron.WithLimitedRuns(uint(runs)),
	)
	if err != nil {
		return nil, err
	}
	handle.id = job.ID()
	return handle, nil
}

func (r *gocronRunner) After(delay time.Duration, task func()) (Handle, error) {
	handle := newGocronHandle(r.scheduler)
	wrapped := func() {
		task()
		handle.finished.Store(true)
	}

	job, err := r.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(delay))),
		gocron.NewTask(wrapped),
	)
	if err != nil {
		return nil, err
	}
	handle.id = job.ID()
	return handle, nil
}

func (r *gocronRunner) Shutdown() error {
	return r.scheduler.Shutdown()
}

type gocronHandle struct {
	scheduler gocron.Scheduler
	id        uuid.UUID
	finished  atomic.Bool
	once      sync.Once
}

func newGocronHandle(scheduler gocron.Scheduler) *gocronHandle {
	return &gocronHandle{scheduler: scheduler}
}

func (h *gocronHandle) Cancel() {
	h.once.Do(func() {
		h.finished.Store(true)
		// The job may already be gone when a limited run completed first.
		_ = h.scheduler.RemoveJob(h.id)
	})
}

func (h *gocronHandle) Active() bool {
	return !h.finished.Load()
}
