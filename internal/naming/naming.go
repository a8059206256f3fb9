// Package naming provides the naming conventions for droplets created in
// bulk: a prefix followed by a zero-padded sequence number.
//
// These rules are shared by create (to pick names) and by the collision
// check that guards against reusing names of existing droplets.
package naming

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// DefaultPrefix is the name prefix used when none is given.
	DefaultPrefix = "node"

	// DefaultSuffixLength is the zero-padded width of the sequence number.
	DefaultSuffixLength = 2
)

// NodeName formats a single droplet name.
// Numbers wider than suffixLength are not truncated.
//
// Example: NodeName(7, "node", 2) → node07, NodeName(100, "node", 2) → node100
func NodeName(number int, prefix string, suffixLength int) (string, error) {
	if suffixLength <= 0 {
		return "", fmt.Errorf("suffix length must be > 0, got %d", suffixLength)
	}
	if number <= 0 {
		return "", fmt.Errorf("node number must be > 0, got %d", number)
	}

	return fmt.Sprintf("%s%0*d", prefix, suffixLength, number), nil
}

// NodeNames returns the names for droplets 1..count using DefaultSuffixLength.
//
// Example: NodeNames("web", 3) → [web01 web02 web03]
func NodeNames(prefix string, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}

	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		name, err := NodeName(i, prefix, DefaultSuffixLength)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Collisions returns the names present in both requested and existing,
// sorted and without duplicates.
func Collisions(requested, existing []string) []string {
	existingSet := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	seen := make(map[string]struct{})
	var dups []string
	for _, name := range requested {
		if _, ok := existingSet[name]; !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		dups = append(dups, name)
	}

	slices.Sort(dups)
	return dups
}

// JoinNames joins names for display, one per line.
func JoinNames(names []string) string {
	return strings.Join(names, "\n")
}
