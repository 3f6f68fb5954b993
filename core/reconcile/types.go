package reconcile

import (
	"fmt"
	"strings"
)

// Policy decides what happens to an optimistic value when persistence fails.
type Policy string

const (
	// PolicyRetain keeps the optimistic value and only warns.
	PolicyRetain Policy = "retain"
	// PolicyRevert restores the value that was there before the mutation.
	PolicyRevert Policy = "revert"
)

// ParsePolicy parses a policy name. An empty name means PolicyRetain.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyRetain:
		return PolicyRetain, nil
	case PolicyRevert:
		return PolicyRevert, nil
	default:
		return "", fmt.Errorf("unknown persist failure policy %q (want retain or revert)", name)
	}
}
