package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/directory"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
)

const directoryFlight = "directory"

// Directory serves the dialing-code directory, fetching it at most once
// until it is reset.
type Directory struct {
	store  *state.Store
	source model.DirectorySource
	logger *logger.Logger
	group  singleflight.Group
}

func NewDirectory(store *state.Store, source model.DirectorySource, logger *logger.Logger) *Directory {
	return &Directory{store: store, source: source, logger: logger}
}

// Load fetches the directory if it is idle. Callers arriving while a fetch is
// in flight wait for it and share its result. A failed load stays failed until Reset.
func (d *Directory) Load(ctx context.Context) (state.DirectoryState, error) {
	if cur := d.store.Directory(); settled(cur.Status) {
		return cur, nil
	}

	ch := d.group.DoChan(directoryFlight, func() (any, error) {
		if d.store.Directory().Status != model.StatusIdle {
			return nil, nil
		}

		d.logger.Debug("Directory service: loading directory")
		d.store.Dispatch(state.DirectoryLoading{})

		// The fetch is shared, so one caller going away must not cancel it for the rest.
		entries, err := d.source.Fetch(context.WithoutCancel(ctx))
		if err != nil {
			d.store.Dispatch(state.DirectoryFailed{Error: err.Error()})
			d.logger.Error("Directory service: failed to load directory", "error", err.Error())
			return nil, fmt.Errorf("failed to load directory: %w", err)
		}

		d.store.Dispatch(state.DirectoryLoaded{Entries: entries})
		d.logger.Info("Directory service: directory loaded", "entries", len(entries))
		return nil, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			d.logger.Debug("Directory service: joined in-flight load")
		}
		return d.store.Directory(), res.Err
	case <-ctx.Done():
		return d.store.Directory(), ctx.Err()
	}
}

func settled(status model.LoadStatus) bool {
	return status == model.StatusSucceeded || status == model.StatusFailed
}

// List loads the directory if needed and filters it by term.
func (d *Directory) List(ctx context.Context, term string) ([]model.DirectoryEntry, state.DirectoryState, error) {
	cur, err := d.Load(ctx)
	if err != nil {
		return nil, cur, err
	}
	return directory.Search(cur.Entries, term), cur, nil
}

// Reset returns the directory to idle so the next Load fetches again.
func (d *Directory) Reset() {
	d.store.Dispatch(state.DirectoryReset{})
	d.logger.Info("Directory service: directory reset")
}

// Default returns the preselected entry of a loaded directory.
func (d *Directory) Default() (model.DirectoryEntry, bool) {
	return directory.Default(d.store.Directory().Entries)
}
