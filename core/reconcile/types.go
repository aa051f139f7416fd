package reconcile

import (
	"fmt"
	"strings"

	"ledger-manager/core/directory"
)

// TrackedObject is a ledger entry: an object and its outstanding quantity.
type TrackedObject = directory.TrackedObject

// Flow is one of the two directions of movement.
type Flow string

const (
	// FlowReceived tracks units coming in.
	FlowReceived Flow = "received"
	// FlowShipped tracks units going out.
	FlowShipped Flow = "shipped"
)

// Opposite returns the flow that offsets f.
func (f Flow) Opposite() Flow {
	if f == FlowReceived {
		return FlowShipped
	}
	return FlowReceived
}

// IsValid reports whether f is a known flow.
func (f Flow) IsValid() bool {
	switch f {
	case FlowReceived, FlowShipped:
		return true
	default:
		return false
	}
}

// ParseFlow converts user input into a Flow.
// Both the ledger names and the verbs used by the adapters are accepted.
func ParseFlow(s string) (Flow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "received", "receive", "in":
		return FlowReceived, nil
	case "shipped", "ship", "out":
		return FlowShipped, nil
	default:
		return "", fmt.Errorf("unknown flow: %q", s)
	}
}

// FlowOf maps the received/shipped boolean used by event sources to a Flow.
func FlowOf(isReceived bool) Flow {
	if isReceived {
		return FlowReceived
	}
	return FlowShipped
}
