package calculator

// Package calculator implements the calculator engine: the digit/operator state
// machine with immediate left-to-right evaluation, prime detection on every
// evaluated result, and the persisted collection of discovered prime badges.
