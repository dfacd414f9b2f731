package share

import (
	"context"
	"errors"
)

// Payload is what gets shared: a short title, the human-readable summary
// text, and the calendar deep link.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// Outcome reports how a share attempt concluded. Callers show a "shared"
// affordance for OutcomeShared, a "copied" affordance for OutcomeCopied,
// and nothing for OutcomeCancelled.
type Outcome string

const (
	OutcomeShared    Outcome = "shared"
	OutcomeCopied    Outcome = "copied"
	OutcomeCancelled Outcome = "cancelled"
)

var (
	// ErrCancelled is returned by a strategy when the user dismissed the
	// share flow. It is a silent no-op, not a failure.
	ErrCancelled = errors.New("share cancelled by user")

	// ErrExhausted is returned when every strategy was unavailable or failed.
	ErrExhausted = errors.New("no share method available")
)

// Strategy is one capability-gated way of getting the payload to the user.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Outcome is what a successful attempt via this strategy means.
	Outcome() Outcome

	// Available reports whether the strategy can run in this environment.
	Available() bool

	// Share attempts delivery. ErrCancelled means the user backed out.
	Share(ctx context.Context, p Payload) error
}
