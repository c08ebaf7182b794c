package runner

import (
	"fmt"
	"strings"
)

// Policy decides what happens to the rest of a run after a launch fails.
type Policy int

const (
	// FailFast stops at the first failed launch and skips the remainder.
	FailFast Policy = iota
	// BestEffort launches every scenario and reports all failures together.
	BestEffort
)

// ParsePolicy parses a configured policy name. An empty name selects FailFast.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fail-fast":
		return FailFast, nil
	case "best-effort":
		return BestEffort, nil
	default:
		return FailFast, fmt.Errorf("unknown failure policy '%s' (want fail-fast or best-effort)", name)
	}
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	default:
		return "fail-fast"
	}
}
