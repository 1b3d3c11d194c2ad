// Package store holds the observable state behind the listings screen:
// fetch status, the fetched listings and a one-shot selection signal.
package store

import (
	"context"
	"sync"

	"github.com/immolist/immo-cli/internal/models"
)

// Status is the fetch-lifecycle state surfaced to the UI.
type Status int

const (
	// StatusLoading means a fetch is in flight
	StatusLoading Status = iota
	// StatusError means the last fetch failed
	StatusError
	// StatusDone means the last fetch succeeded
	StatusDone
	// StatusNoConnection means no network was available at construction
	StatusNoConnection
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusDone:
		return "done"
	case StatusNoConnection:
		return "no connection"
	default:
		return "unknown"
	}
}

// Service fetches listings from the remote API.
type Service interface {
	FetchListings(ctx context.Context, filter models.Filter) ([]models.Listing, error)
}

// ConnectivityProbe reports whether network connectivity is currently
// available. Queried once, synchronously, at construction.
type ConnectivityProbe interface {
	IsConnected() bool
}

// Store owns the listings screen state. All mutation goes through its
// fetch-completion and selection handlers; the UI holds read-only views.
type Store struct {
	svc    Service
	probe  ConnectivityProbe
	cancel context.CancelFunc

	status   *Value[Status]
	items    *Value[[]models.Listing]
	selected *Value[*models.Listing]

	mu       sync.Mutex
	ctx      context.Context
	filter   models.Filter
	gen      int
	disposed bool
}

// Option configures the Store.
type Option func(*Store)

// WithFilter sets the filter used for the initial fetch.
func WithFilter(f models.Filter) Option {
	return func(s *Store) {
		s.filter = f
	}
}

// New creates a Store and kicks off the initial fetch. If the probe reports
// no connectivity the status becomes StatusNoConnection and no fetch is made;
// a later SetFilter still fetches unconditionally.
func New(svc Service, probe ConnectivityProbe, opts ...Option) *Store {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Store{
		svc:      svc,
		probe:    probe,
		ctx:      ctx,
		cancel:   cancel,
		status:   NewValue(StatusLoading),
		items:    NewValue[[]models.Listing](nil),
		selected: NewValue[*models.Listing](nil),
	}
	for _, opt := range opts {
		opt(s)
	}

	if !probe.IsConnected() {
		s.status.Set(StatusNoConnection)
		return s
	}

	s.startFetch(s.filter)
	return s
}

// Status returns the observable fetch status.
func (s *Store) Status() *Value[Status] { return s.status }

// Items returns the observable listings list.
func (s *Store) Items() *Value[[]models.Listing] { return s.items }

// Selected returns the one-shot selection signal. Non-nil after Select,
// nil again after AcknowledgeSelection.
func (s *Store) Selected() *Value[*models.Listing] { return s.selected }

// Filter returns the filter of the most recently requested fetch.
func (s *Store) Filter() models.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Select publishes l as the selected listing.
func (s *Store) Select(l models.Listing) {
	s.selected.Set(&l)
}

// AcknowledgeSelection clears the selection signal. The UI must call this
// after acting on a selection, otherwise re-observation would navigate again.
func (s *Store) AcknowledgeSelection() {
	s.selected.Set(nil)
}

// SetFilter starts a new fetch with f. The connectivity probe is not
// re-queried; a fetch already in flight is superseded, its result discarded.
func (s *Store) SetFilter(f models.Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	s.startFetch(f)
}

// Refresh re-runs the fetch with the current filter.
func (s *Store) Refresh() {
	s.startFetch(s.Filter())
}

// Dispose cancels any in-flight fetch. No status or items update is
// published after Dispose returns.
func (s *Store) Dispose() {
	s.mu.Lock()
	s.disposed = true
	s.mu.Unlock()
	s.cancel()
}

// startFetch publishes StatusLoading and runs the fetch in the background.
// The generation counter makes the last requested fetch win: a superseded
// fetch that completes late never overwrites newer state.
func (s *Store) startFetch(filter models.Filter) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	ctx := s.ctx
	s.status.Set(StatusLoading)
	s.mu.Unlock()

	go func() {
		listings, err := s.svc.FetchListings(ctx, filter)
		s.publishResult(gen, listings, err)
	}()
}

// publishResult applies a fetch outcome if it is still the current one.
func (s *Store) publishResult(gen int, listings []models.Listing, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed || gen != s.gen {
		return
	}
	if err != nil {
		s.status.Set(StatusError)
		s.items.Set(nil)
		return
	}
	s.status.Set(StatusDone)
	s.items.Set(listings)
}
