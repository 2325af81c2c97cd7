// Package persist mirrors the session and room registry slices to a
// snapshot store and restores them at startup.
package persist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
)

const (
	defaultDebounce = 200 * time.Millisecond
	writeTimeout    = 5 * time.Second
)

// Option configures a Persister.
type Option func(*Persister)

// WithKey overrides the snapshot key.
func WithKey(key string) Option {
	return func(p *Persister) { p.key = key }
}

// WithDebounce sets how long the worker waits after a change before writing.
func WithDebounce(d time.Duration) Option {
	return func(p *Persister) { p.debounce = d }
}

// WithMigrations replaces the migration table used on rehydrate.
func WithMigrations(m Migrations) Option {
	return func(p *Persister) { p.migrations = m }
}

type flushRequest struct {
	ctx  context.Context
	done chan error
}

// Persister keeps a snapshot store in sync with the state store.
type Persister struct {
	store      *state.Store
	snapshots  model.SnapshotStore
	logger     *logger.Logger
	key        string
	debounce   time.Duration
	migrations Migrations

	dirty   chan struct{}
	flushes chan flushRequest
	stop    chan struct{}
	stopped chan struct{}

	mu          sync.Mutex
	running     bool
	closed      bool
	unsubscribe func()
}

// NewPersister creates a Persister. Call Rehydrate before Start.
func NewPersister(store *state.Store, snapshots model.SnapshotStore, logger *logger.Logger, opts ...Option) *Persister {
	p := &Persister{
		store:      store,
		snapshots:  snapshots,
		logger:     logger,
		key:        DefaultKey,
		debounce:   defaultDebounce,
		migrations: DefaultMigrations(),
		dirty:      make(chan struct{}, 1),
		flushes:    make(chan flushRequest),
		stop:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rehydrate loads the persisted record and merges it into the state store.
// A missing, unreadable or unsupported record leaves the store empty; the
// latter two are deleted so they are not read again.
func (p *Persister) Rehydrate(ctx context.Context) error {
	p.logger.Debug("Persister: rehydrating", "key", p.key)

	data, err := p.snapshots.Load(ctx, p.key)
	if errors.Is(err, model.ErrNotFound) {
		p.logger.Info("Persister: no snapshot found, starting empty", "key", p.key)
		return nil
	}
	if err != nil {
		p.logger.Error("Persister: failed to load snapshot", "key", p.key, "error", err)
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	rec, err := Decode(data, p.migrations)
	if err != nil {
		p.logger.Error("Persister: discarding snapshot", "key", p.key, "error", err)
		if err := p.snapshots.Delete(ctx, p.key); err != nil {
			p.logger.Warn("Persister: failed to delete discarded snapshot", "key", p.key, "error", err)
		}
		return nil
	}

	p.store.Dispatch(state.Hydrated{
		Session: rec.Session,
		Rooms:   sanitize(rec.Rooms),
	})

	p.logger.Info("Persister: rehydrated", "key", p.key,
		"authenticated", rec.Session.Authenticated, "buckets", len(rec.Rooms))
	return nil
}

// Start subscribes to the state store and launches the write worker.
// A Persister is single-use: Start after Close does nothing.
func (p *Persister) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || p.closed {
		return
	}
	p.running = true
	p.unsubscribe = p.store.Subscribe(p.onChange)

	go p.run()
}

func (p *Persister) onChange(c state.Change) {
	if !c.Touches(state.SliceSession) && !c.Touches(state.SliceRooms) {
		return
	}
	select {
	case p.dirty <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.stopped)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending bool
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
		timerC = nil
	}

	for {
		select {
		case <-p.dirty:
			pending = true
			if timerC == nil {
				timer = time.NewTimer(p.debounce)
				timerC = timer.C
			}

		case <-timerC:
			timerC = nil
			if pending {
				pending = false
				ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
				_ = p.write(ctx)
				cancel()
			}

		case req := <-p.flushes:
			stopTimer()
			select {
			case <-p.dirty:
			default:
			}
			pending = false
			req.done <- p.write(req.ctx)

		case <-p.stop:
			stopTimer()
			return
		}
	}
}

func (p *Persister) write(ctx context.Context) error {
	snap := p.store.Snapshot()

	data, err := Encode(snap.Session, snap.Rooms)
	if err != nil {
		p.logger.Error("Persister: failed to encode state", "error", err)
		return err
	}

	err = p.snapshots.Save(ctx, p.key, data)
	if err != nil {
		p.logger.Error("Persister: failed to save snapshot", "key", p.key, "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	p.logger.Debug("Persister: snapshot saved", "key", p.key, "bytes", len(data))
	return nil
}

// Flush writes the current state immediately and waits for the write.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()

	if !running {
		return p.write(ctx)
	}

	req := flushRequest{ctx: ctx, done: make(chan error, 1)}
	select {
	case p.flushes <- req:
	case <-p.stopped:
		return p.write(ctx)
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending changes and stops the worker.
func (p *Persister) Close(ctx context.Context) error {
	err := p.Flush(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.running {
		p.running = false
		p.unsubscribe()
		close(p.stop)
		<-p.stopped
	}

	return err
}
