// Package worker runs fire-and-forget side effects on a single background
// goroutine fed by a bounded queue.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"repairshop/internal/pkg/logger"
)

// ErrQueueFull is returned by Submit when the queue has no free slot.
var ErrQueueFull = errors.New("worker queue is full")

// ErrStopped is returned by Submit after Stop has been called.
var ErrStopped = errors.New("worker is stopped")

// Task is one unit of background work. Its error is logged, never propagated.
type Task func(ctx context.Context) error

type job struct {
	name string
	task Task
}

// Worker drains a bounded queue of tasks in submission order.
type Worker struct {
	name        string
	queue       chan job
	taskTimeout time.Duration
	logger      logger.Logger

	mu      sync.RWMutex
	stopped bool
	done    chan struct{}
}

// New creates a worker with room for size pending tasks. Each task runs with
// its own context bounded by taskTimeout.
func New(name string, size int, taskTimeout time.Duration, log logger.Logger) *Worker {
	if size <= 0 {
		size = 1
	}
	if taskTimeout <= 0 {
		taskTimeout = 30 * time.Second
	}
	return &Worker{
		name:        name,
		queue:       make(chan job, size),
		taskTimeout: taskTimeout,
		logger:      log.With(logger.String("component", name)),
		done:        make(chan struct{}),
	}
}

// Start launches the consuming goroutine.
func (w *Worker) Start() {
	go w.run()
	w.logger.Info("worker started", logger.Int("queue_size", cap(w.queue)))
}

func (w *Worker) run() {
	defer close(w.done)
	for j := range w.queue {
		w.execute(j)
	}
}

func (w *Worker) execute(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), w.taskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("task panicked", logger.String("task", j.name), logger.Any("panic", r))
		}
	}()

	if err := j.task(ctx); err != nil {
		w.logger.Warn("task failed", logger.String("task", j.name), logger.Error(err))
	}
}

// Submit enqueues a task without blocking.
func (w *Worker) Submit(name string, task Task) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		return ErrStopped
	}

	select {
	case w.queue <- job{name: name, task: task}:
		return nil
	default:
		w.logger.Warn("dropping task, queue full", logger.String("task", name))
		return ErrQueueFull
	}
}

// Stop refuses new tasks and waits for queued ones to finish or for ctx to end.
func (w *Worker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.queue)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		w.logger.Info("worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
