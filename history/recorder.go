// Package history persists completed intervals and forwards them to notifiers.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Thiht/transactor"
	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/pomomo-tui"
)

const (
	defaultQueueSize = 16
	processTimeout   = 10 * time.Second
)

var ErrQueueFull = errors.New("history queue full")

type Notifier interface {
	NotifyComplete(context.Context, pomomo.CompletedInterval) error
}

type Recorder struct {
	repo      pomomo.IntervalRepo
	tx        transactor.Transactor
	notifiers []Notifier
	queue     chan pomomo.CompletedInterval
	l         *log.Logger
}

func NewRecorder(repo pomomo.IntervalRepo, tx transactor.Transactor, logger *log.Logger, notifiers ...Notifier) *Recorder {
	if repo == nil {
		panic("missing repo")
	}
	if tx == nil {
		panic("missing transactor")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		repo:      repo,
		tx:        tx,
		notifiers: notifiers,
		queue:     make(chan pomomo.CompletedInterval, defaultQueueSize),
		l:         logger,
	}
}

// Handle enqueues c for Run. It never blocks, so it is safe to call from a
// timer notification.
func (r *Recorder) Handle(c pomomo.CompletedInterval) {
	if err := r.Enqueue(c); err != nil {
		r.l.Warn("dropped completed interval", "mode", c.Mode, "err", err)
	}
}

func (r *Recorder) Enqueue(c pomomo.CompletedInterval) error {
	select {
	case r.queue <- c:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run records queued intervals until ctx is done, then drains what is left.
// Each interval is written against a context detached from ctx, so shutdown
// never aborts a write that has already been dequeued.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case c := <-r.queue:
			r.process(ctx, c)
		case <-ctx.Done():
			r.drain(ctx)
			return
		}
	}
}

func (r *Recorder) drain(ctx context.Context) {
	for {
		select {
		case c := <-r.queue:
			r.process(ctx, c)
		default:
			return
		}
	}
}

func (r *Recorder) process(parent context.Context, c pomomo.CompletedInterval) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), processTimeout)
	defer cancel()

	if err := r.Record(ctx, c); err != nil {
		r.l.Error("failed to record interval", "mode", c.Mode, "err", err)
		return
	}
	for _, n := range r.notifiers {
		if err := n.NotifyComplete(ctx, c); err != nil {
			r.l.Error("failed to notify", "mode", c.Mode, "err", err)
		}
	}
}

func (r *Recorder) Record(ctx context.Context, c pomomo.CompletedInterval) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := r.repo.InsertInterval(ctx, c.Record())
		if err != nil {
			return fmt.Errorf("failed to insert interval: %w", err)
		}
		r.l.Debug("recorded interval", "id", existing.ID, "mode", existing.Mode, "duration", existing.Duration)
		return nil
	})
}

// Summary counts completed intervals per mode since the given time.
func (r *Recorder) Summary(ctx context.Context, since time.Time) (map[pomomo.Mode]int, error) {
	summary := make(map[pomomo.Mode]int, len(pomomo.Modes))
	for _, m := range pomomo.Modes {
		n, err := r.repo.CountIntervals(ctx, m, since)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s intervals: %w", m, err)
		}
		summary[m] = n
	}
	return summary, nil
}
