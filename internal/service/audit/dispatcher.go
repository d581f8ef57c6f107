package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/audit"
	"github.com/google/uuid"
)

// Config holds audit dispatcher configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 2 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

// Dispatcher records audit facts in the background. Publish never blocks and
// never fails the caller.
type Dispatcher struct {
	sink   audit.Sink
	config Config
	now    func() time.Time

	queue    chan audit.Fact
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once

	// mu orders every enqueue before the close of stopCh, so workers drain
	// all accepted facts.
	mu      sync.RWMutex
	stopped bool
}

var _ audit.Publisher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher with background workers
func NewDispatcher(sink audit.Sink, cfg Config) *Dispatcher {
	// Set defaults
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}

	d := &Dispatcher{
		sink:   sink,
		config: cfg,
		now:    time.Now,
		queue:  make(chan audit.Fact, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	slog.Info("Audit dispatcher started",
		"workers", cfg.WorkerCount, "batch_size", cfg.BatchSize, "flush_interval", cfg.FlushInterval)

	return d
}

// Publish stamps and queues facts. A full queue drops the fact with a warning.
func (d *Dispatcher) Publish(ctx context.Context, facts ...audit.Fact) {
	for _, f := range facts {
		if f.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				slog.Error("Failed to generate audit id", "action", f.Action, "error", err)
				continue
			}
			f.ID = id.String()
		}
		if f.OccurredAt.IsZero() {
			f.OccurredAt = d.now()
		}

		d.enqueue(f)
	}
}

func (d *Dispatcher) enqueue(f audit.Fact) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		slog.Warn("Audit dispatcher stopped, fact dropped", "action", f.Action, "entity_id", f.EntityID)
		return
	}

	select {
	case d.queue <- f:
	default:
		slog.Warn("Audit queue full, fact dropped", "action", f.Action, "entity_id", f.EntityID)
	}
}

// Stop signals workers to flush what is queued and waits for them to exit.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.stopCh)
		d.mu.Unlock()
	})
	d.wg.Wait()
	slog.Info("Audit dispatcher stopped")
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	batch := make([]audit.Fact, 0, d.config.BatchSize)
	ticker := time.NewTicker(d.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := d.sink.CreateBatch(ctx, batch); err != nil {
			slog.Error("Failed to record audit facts", "worker", id, "count", len(batch), "error", err)
		} else {
			slog.Debug("Recorded audit facts", "worker", id, "count", len(batch))
		}

		batch = make([]audit.Fact, 0, d.config.BatchSize)
	}

	for {
		select {
		case f := <-d.queue:
			batch = append(batch, f)
			if len(batch) >= d.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-d.stopCh:
			// Drain whatever is still queued.
			for {
				select {
				case f := <-d.queue:
					batch = append(batch, f)
					if len(batch) >= d.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}
