// Package query keeps one list view's filter/sort/pagination state in sync
// with outbound fetches. Every state change issues exactly one fetch; a fetch
// superseded by a newer change has its response discarded, so the rendered
// data always reflects the latest state.
package query

import (
	"context"
	"log/slog"
	"maps"
	"strconv"
	"sync"
)

// View scopes a fetch to one presentation of the shared filter state.
type View string

const (
	ViewRecords  View = "records"
	ViewCalendar View = "calendar"
	ViewSummary  View = "summary"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	defaultPage  = 1
	defaultLimit = 20
)

// State is a list view's complete query state. It is mutated only through
// the coordinator; every mutation resets Page to 1 unless the mutation is
// a page change alone.
type State struct {
	View      View              `json:"view"`
	Search    string            `json:"search,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	SortBy    string            `json:"sortBy,omitempty"`
	SortOrder string            `json:"sortOrder,omitempty"`
}

func (s State) clone() State {
	s.Filters = maps.Clone(s.Filters)
	return s
}

// scoped strips the keys a view does not understand. The calendar and
// summary views cover a whole month, so status filtering and pagination
// do not apply to them.
func (s State) scoped() State {
	out := s.clone()
	if out.View == ViewCalendar || out.View == ViewSummary {
		delete(out.Filters, "status")
		out.Page = 0
		out.Limit = 0
		out.Search = ""
	}
	return out
}

// Fetcher executes one list query for the given state.
type Fetcher interface {
	Fetch(ctx context.Context, state State) (any, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, state State) (any, error)

func (f FetchFunc) Fetch(ctx context.Context, state State) (any, error) {
	return f(ctx, state)
}

// Result is delivered to the handler once a fetch settles, but only when no
// newer state change superseded it in the meantime.
type Result struct {
	State State
	Data  any
	Err   error
}

// Coordinator serializes state changes for one view and enforces
// last-state-wins on their fetches.
type Coordinator struct {
	fetcher Fetcher
	handler func(Result)

	mu    sync.Mutex
	state State
	seq   uint64
	wg    sync.WaitGroup

	// deliverMu serializes the staleness check with the handler call, so a
	// fetch that passed the check cannot deliver after a newer one already has.
	deliverMu sync.Mutex
}

func NewCoordinator(view View, fetcher Fetcher, handler func(Result)) *Coordinator {
	return &Coordinator{
		fetcher: fetcher,
		handler: handler,
		state: State{
			View:    view,
			Filters: make(map[string]string),
			Page:    defaultPage,
			Limit:   defaultLimit,
		},
	}
}

// State returns a copy of the current query state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// UpdateFilter merges patch into the state and fetches. Page resets to 1
// unless the patch contains only a page change. The reserved keys "search",
// "page" and "limit" address their named fields; everything else lands in
// Filters, with an empty value deleting the key.
func (c *Coordinator) UpdateFilter(ctx context.Context, patch map[string]string) State {
	c.mu.Lock()
	pageOnly := len(patch) == 1
	if _, ok := patch["page"]; !ok {
		pageOnly = false
	}

	for key, value := range patch {
		switch key {
		case "search":
			c.state.Search = value
		case "page":
			if page, err := strconv.Atoi(value); err == nil && page > 0 {
				c.state.Page = page
			}
		case "limit":
			if limit, err := strconv.Atoi(value); err == nil && limit > 0 {
				c.state.Limit = limit
			}
		default:
			if value == "" {
				delete(c.state.Filters, key)
			} else {
				c.state.Filters[key] = value
			}
		}
	}
	if !pageOnly {
		c.state.Page = defaultPage
	}
	return c.dispatchLocked(ctx)
}

// UpdateSort sets the sort key and fetches. Repeating the current key
// toggles the direction; a new key starts ascending. Sorting resets Page.
func (c *Coordinator) UpdateSort(ctx context.Context, key string) State {
	c.mu.Lock()
	if c.state.SortBy == key {
		if c.state.SortOrder == SortAsc {
			c.state.SortOrder = SortDesc
		} else {
			c.state.SortOrder = SortAsc
		}
	} else {
		c.state.SortBy = key
		c.state.SortOrder = SortAsc
	}
	c.state.Page = defaultPage
	return c.dispatchLocked(ctx)
}

// SwitchView changes the presentation without touching the shared filters
// and fetches with the subset relevant to the new view.
func (c *Coordinator) SwitchView(ctx context.Context, view View) State {
	c.mu.Lock()
	c.state.View = view
	return c.dispatchLocked(ctx)
}

// Refresh re-issues a fetch for the current state.
func (c *Coordinator) Refresh(ctx context.Context) State {
	c.mu.Lock()
	return c.dispatchLocked(ctx)
}

// dispatchLocked snapshots the state, bumps the sequence, and launches the
// single fetch for this change. The caller must hold mu; it is released here.
func (c *Coordinator) dispatchLocked(ctx context.Context) State {
	c.seq++
	seq := c.seq
	snapshot := c.state.scoped()
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		data, err := c.fetcher.Fetch(ctx, snapshot)

		c.deliverMu.Lock()
		defer c.deliverMu.Unlock()

		c.mu.Lock()
		stale := seq != c.seq
		c.mu.Unlock()
		if stale {
			// A newer state change superseded this fetch; its result
			// must not reach the render.
			slog.Debug("discarding superseded fetch", "view", snapshot.View, "seq", seq)
			return
		}
		if c.handler != nil {
			c.handler(Result{State: snapshot, Data: data, Err: err})
		}
	}()

	return snapshot
}

// Wait blocks until all issued fetches have settled.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
