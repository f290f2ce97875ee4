// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import "github.com/pdiddy/moment-search/pkg/types"

// FailureMessage is the only error text a user ever sees. Transport errors,
// bad statuses, and malformed bodies all collapse into it.
const FailureMessage = "Something went wrong. Is the backend running?"

// State is everything the search page renders.
type State struct {
	Query   string
	Results []types.Moment
	Busy    bool
	Error   string
}

// Begin marks a search as started: busy, no error, no results.
func (s State) Begin() State {
	s.Busy = true
	s.Error = ""
	s.Results = nil
	return s
}

// Succeed replaces the results wholesale and clears busy.
func (s State) Succeed(results []types.Moment) State {
	s.Results = results
	s.Busy = false
	return s
}

// Fail sets the error message, drops any results, and clears busy.
func (s State) Fail(msg string) State {
	s.Error = msg
	s.Results = nil
	s.Busy = false
	return s
}

// Outcome is how a submission ended.
type Outcome int

const (
	// OutcomeNoop means nothing happened: blank query or a non-confirm key.
	OutcomeNoop Outcome = iota
	// OutcomeSuccess means results were applied.
	OutcomeSuccess
	// OutcomeFailure means the failure message was applied.
	OutcomeFailure
	// OutcomeStale means a newer submission was issued first, so this
	// response was discarded.
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoop:
		return "noop"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeStale:
		return "stale"
	default:
		return "unknown"
	}
}
