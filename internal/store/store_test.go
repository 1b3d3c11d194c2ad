package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/testutil"
)

type fakeProbe bool

func (p fakeProbe) IsConnected() bool { return bool(p) }

// serviceFunc adapts a function to the Service interface.
type serviceFunc func(ctx context.Context, filter models.Filter) ([]models.Listing, error)

func (fn serviceFunc) FetchListings(ctx context.Context, filter models.Filter) ([]models.Listing, error) {
	return fn(ctx, filter)
}

func sampleListings() []models.Listing {
	return []models.Listing{
		{ID: 1, Subject: "Квартира в Минске"},
		{ID: 2, Subject: "Дом под Брестом"},
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

// recv receives one update or fails the test.
func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		panic("unreachable")
	}
}

func TestNew_Disconnected(t *testing.T) {
	var calls atomic.Int32
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		calls.Add(1)
		return sampleListings(), nil
	})

	s := New(svc, fakeProbe(false))
	defer s.Dispose()

	testutil.AssertEqual(t, s.Status().Get(), StatusNoConnection)
	testutil.AssertLen(t, s.Items().Get(), 0)
	testutil.AssertTrue(t, s.Selected().Get() == nil)
	testutil.AssertEqual(t, calls.Load(), int32(0))
}

func TestNew_FetchSuccess(t *testing.T) {
	release := make(chan struct{})
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		<-release
		return sampleListings(), nil
	})

	s := New(svc, fakeProbe(true))
	defer s.Dispose()

	// Loading is published synchronously before the fetch runs
	testutil.AssertEqual(t, s.Status().Get(), StatusLoading)

	statusSub := s.Status().Subscribe()
	itemsSub := s.Items().Subscribe()
	close(release)

	testutil.AssertEqual(t, recv(t, statusSub), StatusDone)
	items := recv(t, itemsSub)
	testutil.AssertLen(t, items, 2)
	testutil.AssertEqual(t, items[0].ID, int64(1))
	testutil.AssertEqual(t, items[1].ID, int64(2))

	// Selection is untouched by fetch completion
	testutil.AssertTrue(t, s.Selected().Get() == nil)
}

func TestNew_FetchFailure(t *testing.T) {
	release := make(chan struct{})
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		<-release
		return nil, errors.New("boom")
	})

	s := New(svc, fakeProbe(true))
	defer s.Dispose()

	statusSub := s.Status().Subscribe()
	close(release)

	testutil.AssertEqual(t, recv(t, statusSub), StatusError)
	testutil.AssertLen(t, s.Items().Get(), 0)
	testutil.AssertTrue(t, s.Selected().Get() == nil)
}

func TestSetFilter_NoConnectivityRecheck(t *testing.T) {
	var calls atomic.Int32
	var gotFilter atomic.Value
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		calls.Add(1)
		gotFilter.Store(f)
		return sampleListings(), nil
	})

	s := New(svc, fakeProbe(false))
	defer s.Dispose()

	testutil.AssertEqual(t, s.Status().Get(), StatusNoConnection)
	testutil.AssertEqual(t, calls.Load(), int32(0))

	statusSub := s.Status().Subscribe()
	s.SetFilter(models.FilterRent)

	// Loading then Done, no probe involved
	testutil.AssertEqual(t, recv(t, statusSub), StatusLoading)
	testutil.AssertEqual(t, recv(t, statusSub), StatusDone)
	testutil.AssertEqual(t, calls.Load(), int32(1))
	testutil.AssertEqual(t, gotFilter.Load().(models.Filter), models.FilterRent)
	testutil.AssertEqual(t, s.Filter(), models.FilterRent)
}

func TestSelect_Acknowledge(t *testing.T) {
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		return nil, nil
	})
	s := New(svc, fakeProbe(false))
	defer s.Dispose()

	sub := s.Selected().Subscribe()

	listing := models.Listing{ID: 7, Subject: "Гараж"}
	s.Select(listing)
	s.AcknowledgeSelection()

	first := recv(t, sub)
	testutil.AssertTrue(t, first != nil)
	testutil.AssertEqual(t, first.ID, int64(7))

	second := recv(t, sub)
	testutil.AssertTrue(t, second == nil)
	testutil.AssertTrue(t, s.Selected().Get() == nil)
}

func TestDispose_SuppressesLatePublish(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		defer close(done)
		<-release
		return sampleListings(), nil
	})

	s := New(svc, fakeProbe(true))
	testutil.AssertEqual(t, s.Status().Get(), StatusLoading)

	statusSub := s.Status().Subscribe()
	itemsSub := s.Items().Subscribe()

	s.Dispose()
	close(release)
	<-done

	// Give the goroutine a chance to (incorrectly) publish
	time.Sleep(20 * time.Millisecond)

	testutil.AssertEqual(t, s.Status().Get(), StatusLoading)
	select {
	case <-statusSub:
		t.Fatal("status published after Dispose")
	case <-itemsSub:
		t.Fatal("items published after Dispose")
	default:
	}
}

func TestDispose_CancelsContext(t *testing.T) {
	ctxErr := make(chan error, 1)
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		<-ctx.Done()
		ctxErr <- ctx.Err()
		return nil, ctx.Err()
	})

	s := New(svc, fakeProbe(true))
	s.Dispose()

	testutil.AssertEqual(t, recv(t, ctxErr), context.Canceled)
}

func TestSetFilter_LastRequestedWins(t *testing.T) {
	stale := []models.Listing{{ID: 100, Subject: "stale"}}
	releaseFirst := make(chan struct{})
	var calls atomic.Int32

	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		if calls.Add(1) == 1 {
			<-releaseFirst
			return stale, nil
		}
		return sampleListings(), nil
	})

	s := New(svc, fakeProbe(true))
	defer s.Dispose()

	// Supersede the blocked initial fetch
	s.SetFilter(models.FilterBuy)
	waitFor(t, func() bool { return s.Status().Get() == StatusDone })
	testutil.AssertLen(t, s.Items().Get(), 2)

	// Late completion of the superseded fetch must not overwrite
	close(releaseFirst)
	time.Sleep(20 * time.Millisecond)

	items := s.Items().Get()
	testutil.AssertLen(t, items, 2)
	testutil.AssertEqual(t, items[0].ID, int64(1))
	testutil.AssertEqual(t, s.Status().Get(), StatusDone)
}

func TestRefresh(t *testing.T) {
	var calls atomic.Int32
	svc := serviceFunc(func(ctx context.Context, f models.Filter) ([]models.Listing, error) {
		calls.Add(1)
		return sampleListings(), nil
	})

	s := New(svc, fakeProbe(true), WithFilter(models.FilterRent))
	defer s.Dispose()

	waitFor(t, func() bool { return s.Status().Get() == StatusDone })
	s.Refresh()
	waitFor(t, func() bool { return calls.Load() == 2 })
	testutil.AssertEqual(t, s.Filter(), models.FilterRent)
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusLoading, "loading"},
		{StatusError, "error"},
		{StatusDone, "done"},
		{StatusNoConnection, "no connection"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.status.String(), tt.want)
	}
}
