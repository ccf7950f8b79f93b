package calculator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DefaultStorageKey is the store slot holding the serialized badge list
const DefaultStorageKey = "prime_badges"

// DecodeBadges parses a stored badge list. An empty slot decodes to nil.
func DecodeBadges(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var values []int64
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decode prime badges: %w", err)
	}
	return values, nil
}

// EncodeBadges serializes a badge set as an ascending JSON array
func EncodeBadges(primes map[int64]struct{}) string {
	values := sortedBadges(primes)
	data, err := json.Marshal(values)
	if err != nil {
		// []int64 always marshals
		return "[]"
	}
	return string(data)
}

// sortedBadges returns the set members in ascending order
func sortedBadges(primes map[int64]struct{}) []int64 {
	values := make([]int64, 0, len(primes))
	for p := range primes {
		values = append(values, p)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}
