package intent

import "fmt"

// Outcome is the result of intent resolution: the canonical intent, the path
// that produced it, and an optional degradation warning. Constructed once per
// request and immutable thereafter.
type Outcome struct {
	intent  Intent
	mode    Mode
	warning string
}

// NewOutcome creates a resolution outcome.
func NewOutcome(it Intent, mode Mode, warning string) (Outcome, error) {
	if !mode.IsValid() {
		return Outcome{}, fmt.Errorf("invalid resolution mode: %q", mode)
	}
	return Outcome{intent: it, mode: mode, warning: warning}, nil
}

// Intent returns the resolved intent.
func (o Outcome) Intent() Intent { return o.intent }

// Mode returns the extraction path that produced the intent.
func (o Outcome) Mode() Mode { return o.mode }

// Warning returns the degradation warning ("" when the preferred path succeeded).
func (o Outcome) Warning() string { return o.warning }
