package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/api/metrics"
	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrorReporter receives task failures, e.g. to forward them to Sentry.
type ErrorReporter interface {
	CaptureError(err error, tags map[string]string)
}

// Dispatcher routes tasks to a fixed set of workers using consistent hashing
// on the user id, so the tasks of one user are handled in order.
type Dispatcher struct {
	workers  []chan domain.Task
	service  ports.TaskService
	reporter ErrorReporter
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. reporter may be nil.
func NewDispatcher(numWorkers int, service ports.TaskService, reporter ErrorReporter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.Task, numWorkers),
		service:  service,
		reporter: reporter,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Task, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or when Close has been called and their channel is drained.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a task to the worker responsible for its user.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(task domain.Task) {
	idx := d.shardIndex(task.UserID)
	d.workers[idx] <- task
	metrics.TasksQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// Close stops accepting tasks and waits for the workers to finish what is
// already buffered.
func (d *Dispatcher) Close() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Task) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-ch:
			if !ok {
				return
			}
			metrics.TasksQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.process(ctx, id, task)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, task domain.Task) {
	start := time.Now()
	err := d.service.Process(ctx, task)
	metrics.TaskProcessingDuration.WithLabelValues(string(task.Type)).Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.TasksProcessedTotal.WithLabelValues(string(task.Type)).Inc()
		return
	}

	metrics.TasksErrorsTotal.WithLabelValues(string(task.Type)).Inc()
	d.log.Error().Err(err).
		Str("task_id", task.ID).
		Str("task_type", string(task.Type)).
		Str("user_id", task.UserID).
		Int("worker_id", id).
		Msg("task processing failed")
	if d.reporter != nil {
		d.reporter.CaptureError(err, map[string]string{
			"task_type": string(task.Type),
			"worker_id": strconv.Itoa(id),
		})
	}
}
