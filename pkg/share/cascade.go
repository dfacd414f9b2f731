package share

import (
	"context"
	"fmt"
)

// Cascade tries an ordered list of strategies until one succeeds. Strategies
// that report themselves unavailable are skipped without counting as
// failures; a cancelled share stops the cascade silently.
type Cascade struct {
	strategies []Strategy
}

// NewCascade creates a cascade over the given strategies, tried in order.
func NewCascade(strategies ...Strategy) *Cascade {
	return &Cascade{strategies: strategies}
}

// DefaultCascade wires the built-in strategy order: platform share command,
// clipboard, spool-file fallback.
func DefaultCascade(command string, commandArgs []string, spoolDir string) *Cascade {
	return NewCascade(
		&CommandStrategy{Command: command, Args: commandArgs},
		&ClipboardStrategy{},
		&SpoolStrategy{Dir: spoolDir},
	)
}

// Share runs the cascade. It returns the outcome of the first strategy that
// succeeds, OutcomeCancelled when the user backed out, and ErrExhausted when
// every strategy was unavailable or errored.
func (c *Cascade) Share(ctx context.Context, p Payload) (Outcome, error) {
	var lastErr error

	for _, s := range c.strategies {
		if !s.Available() {
			continue
		}
		err := s.Share(ctx, p)
		if err == nil {
			return s.Outcome(), nil
		}
		if err == ErrCancelled {
			return OutcomeCancelled, nil
		}
		lastErr = fmt.Errorf("%s: %w", s.Name(), err)
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrExhausted, lastErr)
	}
	return "", ErrExhausted
}
