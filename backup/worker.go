package backup

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Snapshotter writes a consistent copy of the archive to a local file
type Snapshotter interface {
	Snapshot(ctx context.Context, path string) error
}

// Uploader stores snapshots off-site and trims old ones
type Uploader interface {
	Upload(ctx context.Context, name string, content io.Reader) (string, error)
	Prune(ctx context.Context, keep int) (int, error)
}

// Options configures a Worker
type Options struct {
	Interval     time.Duration
	RetryBackoff time.Duration
	Keep         int
	TempDir      string
}

// Status reports the outcome of recent backup runs
type Status struct {
	Enabled             bool       `json:"enabled"`
	Running             bool       `json:"running"`
	Interval            string     `json:"interval,omitempty"`
	LastAttemptAt       *time.Time `json:"last_attempt_at,omitempty"`
	LastSuccessAt       *time.Time `json:"last_success_at,omitempty"`
	LastFileID          string     `json:"last_file_id,omitempty"`
	LastError           string     `json:"last_error,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
}

// Worker periodically snapshots the database and uploads the copy
// See:
// - executor.go: a single snapshot and upload pass
// - retry.go: delay between attempts after failures
type Worker struct {
	db       Snapshotter
	uploader Uploader
	opts     Options
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
	status   Status
}

// NewWorker creates a new backup worker instance
func NewWorker(db Snapshotter, uploader Uploader, opts Options, logger *slog.Logger) *Worker {
	if opts.Interval <= 0 {
		opts.Interval = 24 * time.Hour
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Worker{
		db:       db,
		uploader: uploader,
		opts:     opts,
		logger:   logger.With("component", "backup"),
		now:      time.Now,
	}
}

// Start begins the background backup loop
func (w *Worker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})
	w.mu.Unlock()

	w.logger.Info("starting backup worker", "interval", w.opts.Interval, "keep", w.opts.Keep)

	go w.run(w.stopChan, w.done)
}

// Stop signals the loop to exit and waits for an in-flight run to finish
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	done := w.done
	w.mu.Unlock()

	w.logger.Info("stopping backup worker")
	<-done
}

// Status returns a copy of the latest backup state
func (w *Worker) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.status
	s.Enabled = true
	s.Running = w.running
	s.Interval = w.opts.Interval.String()
	return s
}

func (w *Worker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Run immediately on start
	delay := w.nextDelay(w.RunOnce(ctx))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			delay = w.nextDelay(w.RunOnce(ctx))
			timer.Reset(delay)
		case <-stop:
			return
		}
	}
}

func (w *Worker) nextDelay(err error) time.Duration {
	if err == nil {
		return w.opts.Interval
	}

	w.mu.Lock()
	failures := w.status.ConsecutiveFailures
	w.mu.Unlock()

	if isTokenExpiredError(err) {
		w.logger.Warn("drive credentials rejected, waiting a full interval", "error", err)
		return w.opts.Interval
	}

	delay := retryDelay(failures, w.opts.RetryBackoff, w.opts.Interval)
	w.logger.Info("scheduling backup retry", "delay", delay, "failures", failures)
	return delay
}
