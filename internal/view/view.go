// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view holds the search page's state machine: the query being typed,
// the results of the last search, the busy flag, and the error message.
// Submitting a query moves the state through Begin and then exactly one of
// Succeed or Fail; subscribers see every change.
package view

import (
	"context"
	"strings"
	"sync"

	"github.com/pdiddy/moment-search/internal/logger"
	"github.com/pdiddy/moment-search/internal/moment"
	"github.com/pdiddy/moment-search/pkg/types"
)

// ConfirmKey is the KeyboardEvent.key value that submits the query.
const ConfirmKey = "Enter"

// Searcher runs one backend query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]types.Result, error)
}

// Options configures a View.
type Options struct {
	// EmbedHost is the video provider host used in player locators.
	EmbedHost string

	// DropStale discards responses from submissions that were superseded
	// by a newer one. When false, whichever response settles last wins.
	DropStale bool

	// SessionID tags log lines.
	SessionID string
}

// View is one search page session. It is safe for concurrent use.
type View struct {
	searcher Searcher
	opts     Options
	log      logger.Entry

	mu      sync.Mutex
	state   State
	seq     uint64 // sequence number of the latest submission
	subs    map[int]func(State)
	nextSub int
}

// New returns a View with empty state.
func New(searcher Searcher, opts Options) *View {
	return &View{
		searcher: searcher,
		opts:     opts,
		log:      logger.WithSession(opts.SessionID),
		subs:     make(map[int]func(State)),
	}
}

// State returns a snapshot of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Subscribe registers fn to receive a snapshot after every state change and
// returns a function that unregisters it. fn runs with the View locked, so it
// must return quickly and must not call back into the View.
func (v *View) Subscribe(fn func(State)) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// SetQuery replaces the query text with text as typed.
func (v *View) SetQuery(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Query == text {
		return
	}
	v.state.Query = text
	v.notifyLocked()
}

// HandleKey submits the query when key is the confirm key and blocks until
// the submission settles. Any other key is ignored.
func (v *View) HandleKey(ctx context.Context, key string) Outcome {
	return <-v.StartKey(ctx, key)
}

// StartKey is HandleKey without the wait.
func (v *View) StartKey(ctx context.Context, key string) <-chan Outcome {
	if key != ConfirmKey {
		return settled(OutcomeNoop)
	}
	return v.Start(ctx)
}

// Submit searches for the current query and blocks until the response is
// applied or discarded. A blank query is a no-op: no request and no state
// change. The query is sent exactly as typed.
func (v *View) Submit(ctx context.Context) Outcome {
	return <-v.Start(ctx)
}

// Start begins a submission and returns at once. The precondition check and
// the Begin transition happen before Start returns; the request runs on its
// own goroutine and its outcome is delivered on the returned channel, which
// never blocks the sender.
func (v *View) Start(ctx context.Context) <-chan Outcome {
	v.mu.Lock()
	query := v.state.Query
	if strings.TrimSpace(query) == "" {
		v.mu.Unlock()
		return settled(OutcomeNoop)
	}
	v.seq++
	seq := v.seq
	v.state = v.state.Begin()
	v.notifyLocked()
	v.mu.Unlock()

	done := make(chan Outcome, 1)
	go func() {
		done <- v.run(ctx, seq, query)
	}()
	return done
}

func (v *View) run(ctx context.Context, seq uint64, query string) Outcome {
	v.log.Info("searching for %q (request %d)", query, seq)
	results, err := v.searcher.Search(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.opts.DropStale && seq != v.seq {
		v.log.Debug("discarding response to request %d, request %d is newer", seq, v.seq)
		return OutcomeStale
	}

	if err != nil {
		v.log.Error("search for %q failed: %v", query, err)
		v.state = v.state.Fail(FailureMessage)
		v.notifyLocked()
		return OutcomeFailure
	}

	v.state = v.state.Succeed(moment.Augment(results, v.opts.EmbedHost))
	v.log.Info("request %d returned %d results", seq, len(results))
	v.notifyLocked()
	return OutcomeSuccess
}

func settled(o Outcome) <-chan Outcome {
	done := make(chan Outcome, 1)
	done <- o
	return done
}

func (v *View) notifyLocked() {
	for _, fn := range v.subs {
		fn(v.state)
	}
}
