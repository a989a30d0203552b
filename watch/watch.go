// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package watch re-lists attach candidates on an interval and reports which
// processes appeared or went away between refreshes.
//
// Refreshes, including manual ones, pass through a rate limiter. Listing runs
// inside a circuit breaker so a machine where the listing command keeps
// failing is not hammered with new processes every tick.
package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jongio/azd-attach/attach"
	"github.com/jongio/azd-attach/logutil"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// DefaultInterval is used when Options.Interval is not positive.
const DefaultInterval = 2 * time.Second

// ErrSuspended wraps listing attempts rejected by the open circuit breaker.
var ErrSuspended = errors.New("listing suspended after repeated failures")

// Lister produces the current ranked attach candidates.
type Lister interface {
	GetAttachItems(ctx context.Context) ([]attach.AttachItem, error)
}

// Options configures a Watcher.
type Options struct {
	Interval time.Duration
	// RateLimit caps refreshes per second. Zero means unlimited.
	RateLimit float64
	// BreakerFailures consecutive failures open the breaker. Zero disables it.
	BreakerFailures int
	// BreakerTimeout is how long the breaker stays open before a trial listing.
	BreakerTimeout time.Duration
	// Filter narrows every listing before diffing. Nil keeps everything.
	Filter func([]attach.AttachItem) []attach.AttachItem
}

// Snapshot is the outcome of one refresh.
type Snapshot struct {
	Seq  int       `json:"seq"`
	Time time.Time `json:"time"`
	// Initial is set on the first successful refresh, whose Added holds
	// every item.
	Initial bool                `json:"initial"`
	Items   []attach.AttachItem `json:"items"`
	Added   []attach.AttachItem `json:"added"`
	Removed []attach.AttachItem `json:"removed"`
	Err     error               `json:"-"`
}

// Changed reports whether the refresh found any difference.
func (s Snapshot) Changed() bool {
	return len(s.Added) > 0 || len(s.Removed) > 0
}

// Watcher polls a Lister. Poll and Run must not be called concurrently;
// Refresh may be called from any goroutine.
type Watcher struct {
	lister  Lister
	opts    Options
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	log     *logutil.ComponentLogger

	refresh chan struct{}

	mu       sync.Mutex
	seq      int
	previous []attach.AttachItem
	primed   bool
}

// New creates a Watcher.
func New(lister Lister, opts Options) *Watcher {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	w := &Watcher{
		lister:  lister,
		opts:    opts,
		log:     logutil.NewLogger("watch"),
		refresh: make(chan struct{}, 1),
	}

	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit * 2)
		if burst < 1 {
			burst = 1
		}
		w.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	if opts.BreakerFailures > 0 {
		threshold := uint32(opts.BreakerFailures)
		w.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "process-list",
			MaxRequests: 1,
			Timeout:     opts.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				w.log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
				recordBreakerState(to)
			},
		})
		recordBreakerState(gobreaker.StateClosed)
	}

	return w
}

// Refresh requests an immediate refresh from Run. Requests made while one is
// already pending are merged.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Poll lists once and diffs the result against the previous successful
// listing. The first successful poll reports every item as added. A failed
// poll leaves the previous listing in place and sets Snapshot.Err.
func (w *Watcher) Poll(ctx context.Context) Snapshot {
	w.mu.Lock()
	w.seq++
	snap := Snapshot{Seq: w.seq, Time: time.Now()}
	w.mu.Unlock()

	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			snap.Err = fmt.Errorf("waiting for refresh slot: %w", err)
			return snap
		}
	}

	items, err := w.list(ctx)
	if err != nil {
		refreshTotal.WithLabelValues(refreshResult(err)).Inc()
		w.log.Warn("refresh failed", "seq", snap.Seq, "error", err)
		snap.Err = err
		return snap
	}
	if w.opts.Filter != nil {
		items = w.opts.Filter(items)
	}

	w.mu.Lock()
	previous, primed := w.previous, w.primed
	w.previous = items
	w.primed = true
	w.mu.Unlock()

	snap.Initial = !primed
	snap.Items = items
	snap.Added, snap.Removed = Diff(previous, items)

	refreshTotal.WithLabelValues(resultOK).Inc()
	processesGauge.Set(float64(len(items)))
	changesTotal.WithLabelValues("added").Add(float64(len(snap.Added)))
	changesTotal.WithLabelValues("removed").Add(float64(len(snap.Removed)))

	w.log.Debug("refreshed", "seq", snap.Seq, "items", len(items), "added", len(snap.Added), "removed", len(snap.Removed))
	return snap
}

func (w *Watcher) list(ctx context.Context) ([]attach.AttachItem, error) {
	if w.breaker == nil {
		return w.lister.GetAttachItems(ctx)
	}

	out, err := w.breaker.Execute(func() (interface{}, error) {
		return w.lister.GetAttachItems(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrSuspended, err)
		}
		return nil, err
	}

	items, ok := out.([]attach.AttachItem)
	if !ok {
		return nil, fmt.Errorf("unexpected listing result type %T", out)
	}
	return items, nil
}

// Run polls immediately, then on every interval tick or Refresh call, passing
// each snapshot to handle. It returns nil when ctx is canceled.
func (w *Watcher) Run(ctx context.Context, handle func(Snapshot)) error {
	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	for {
		snap := w.Poll(ctx)
		if ctx.Err() != nil {
			return nil
		}
		handle(snap)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-w.refresh:
		}
	}
}

// Current returns the last successful listing, or false before the first one.
func (w *Watcher) Current() ([]attach.AttachItem, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.previous, w.primed
}

// BreakerState returns the circuit breaker state, or StateClosed when the
// breaker is disabled.
func (w *Watcher) BreakerState() gobreaker.State {
	if w.breaker == nil {
		return gobreaker.StateClosed
	}
	return w.breaker.State()
}

// Diff returns the items of next that are not in prev and the items of prev
// that are not in next. Two items are the same process when pid, name and
// command line all match, so a reused pid shows up as one removal and one
// addition. Added keeps the order of next and removed the order of prev.
func Diff(prev, next []attach.AttachItem) (added, removed []attach.AttachItem) {
	key := func(item attach.AttachItem) processKey {
		return processKey{pid: item.PID, name: item.ProcessName, commandLine: item.CommandLine}
	}

	before := make(map[processKey]struct{}, len(prev))
	for _, item := range prev {
		before[key(item)] = struct{}{}
	}
	after := make(map[processKey]struct{}, len(next))
	for _, item := range next {
		after[key(item)] = struct{}{}
	}

	added = []attach.AttachItem{}
	for _, item := range next {
		if _, ok := before[key(item)]; !ok {
			added = append(added, item)
		}
	}
	removed = []attach.AttachItem{}
	for _, item := range prev {
		if _, ok := after[key(item)]; !ok {
			removed = append(removed, item)
		}
	}
	return added, removed
}

type processKey struct {
	pid         int
	name        string
	commandLine string
}
