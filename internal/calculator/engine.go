package calculator

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/prime-calculator/internal/model"
)

// Prime check tuning
const (
	// LargeValueThreshold is the result above which the prime check is delayed
	LargeValueThreshold = 1_000_000

	// DefaultPrimeCheckDelay is the simulated latency for large prime checks
	DefaultPrimeCheckDelay = 500 * time.Millisecond

	// SessionIDPrefix prefixes engine session identifiers in logs
	SessionIDPrefix = "calc-"
)

// Engine holds the calculator state machine and the discovered prime badges
type Engine struct {
	sessionID string
	store     Store
	storeKey  string

	primeDelay     time.Duration
	largeThreshold float64
	after          func(time.Duration) <-chan time.Time // delay timer, replaced in tests

	mu                 sync.RWMutex
	display            string
	pendingOperand     *float64
	pendingOperator    model.Operator
	awaitingFreshEntry bool
	busy               bool
	primes             map[int64]struct{}

	onUpdate func(model.CalculatorState) // callback for UI updates
	onBadge  func(prime int64)           // callback for newly discovered badges
}

// NewEngine creates a calculator engine and loads the badge set from store.
// An empty storeKey selects DefaultStorageKey.
func NewEngine(store Store, storeKey string) *Engine {
	if storeKey == "" {
		storeKey = DefaultStorageKey
	}

	e := &Engine{
		sessionID:      SessionIDPrefix + uuid.NewString(),
		store:          store,
		storeKey:       storeKey,
		primeDelay:     DefaultPrimeCheckDelay,
		largeThreshold: LargeValueThreshold,
		after:          time.After,
		display:        model.DefaultDisplay,
		primes:         make(map[int64]struct{}),
	}
	e.loadBadges()

	log.Printf("Calculator %s started with %d prime badges", e.sessionID, len(e.primes))
	return e
}

// SessionID returns the identifier used in log lines for this engine
func (e *Engine) SessionID() string {
	return e.sessionID
}

// SetUpdateCallback sets the callback invoked after every state change
func (e *Engine) SetUpdateCallback(callback func(model.CalculatorState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = callback
}

// SetBadgeCallback sets the callback invoked once per newly discovered prime
func (e *Engine) SetBadgeCallback(callback func(prime int64)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onBadge = callback
}

// SetPrimeCheckDelay sets the simulated latency for large results. Zero disables it.
func (e *Engine) SetPrimeCheckDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.primeDelay = delay
}

// PrimeCheckDelay returns the configured simulated latency
func (e *Engine) PrimeCheckDelay() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.primeDelay
}

// InputDigit enters one digit "0".."9"
func (e *Engine) InputDigit(d string) {
	e.mutate("digit "+d, func() (float64, bool) {
		switch {
		case e.awaitingFreshEntry:
			e.display = d
			e.awaitingFreshEntry = false
		case e.display == model.DefaultDisplay:
			e.display = d
		default:
			e.display += d
		}
		return 0, false
	})
}

// InputDecimalPoint appends "." unless the display already has one
func (e *Engine) InputDecimalPoint() {
	e.mutate("decimal point", func() (float64, bool) {
		if e.awaitingFreshEntry {
			e.display = model.DefaultDisplay + "."
			e.awaitingFreshEntry = false
			return 0, false
		}
		if !strings.Contains(e.display, ".") {
			e.display += "."
		}
		return 0, false
	})
}

// ToggleSign negates the displayed value
func (e *Engine) ToggleSign() {
	e.mutate("toggle sign", func() (float64, bool) {
		e.display = FormatNumber(-ParseDisplay(e.display))
		return 0, false
	})
}

// SetOperator records op, first evaluating any pending operation left to right
func (e *Engine) SetOperator(op model.Operator) {
	if !op.IsValid() {
		log.Printf("Calculator %s: ignoring unknown operator %q", e.sessionID, op)
		return
	}

	e.mutate("operator "+op.String(), func() (float64, bool) {
		value := ParseDisplay(e.display)
		result, evaluated := 0.0, false

		if e.pendingOperand == nil {
			e.pendingOperand = &value
		} else if e.pendingOperator.IsValid() {
			result = e.pendingOperator.Apply(*e.pendingOperand, value)
			e.display = FormatNumber(result)
			e.pendingOperand = &result
			evaluated = true
		}

		e.pendingOperator = op
		e.awaitingFreshEntry = true
		return result, evaluated
	})
}

// Evaluate completes the pending operation, if any
func (e *Engine) Evaluate() {
	e.mutate("equals", func() (float64, bool) {
		if e.pendingOperand == nil || !e.pendingOperator.IsValid() {
			return 0, false
		}

		result := e.pendingOperator.Apply(*e.pendingOperand, ParseDisplay(e.display))
		e.display = FormatNumber(result)
		e.pendingOperand = nil
		e.pendingOperator = model.OperatorNone
		e.awaitingFreshEntry = true
		return result, true
	})
}

// ClearAll resets the display and any pending operation
func (e *Engine) ClearAll() {
	e.mutate("clear all", func() (float64, bool) {
		e.display = model.DefaultDisplay
		e.pendingOperand = nil
		e.pendingOperator = model.OperatorNone
		e.awaitingFreshEntry = false
		return 0, false
	})
}

// ClearEntry resets only the display
func (e *Engine) ClearEntry() {
	e.mutate("clear entry", func() (float64, bool) {
		e.display = model.DefaultDisplay
		return 0, false
	})
}

// CopyDisplay places the display text on clip
func (e *Engine) CopyDisplay(clip Clipboard) error {
	if clip == nil {
		return ErrClipboardUnavailable
	}

	e.mu.RLock()
	text := e.display
	e.mu.RUnlock()

	if err := clip.WriteText(text); err != nil {
		return fmt.Errorf("copy display: %w", err)
	}
	return nil
}

// State returns a snapshot of the calculator state
func (e *Engine) State() model.CalculatorState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// BadgeCount returns the number of distinct primes discovered
func (e *Engine) BadgeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.primes)
}

// Badges returns the discovered primes in ascending order
func (e *Engine) Badges() []int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedBadges(e.primes)
}

// mutate runs fn under the state lock unless a prime check is in flight.
// When fn reports an evaluated result, prime detection runs on it.
func (e *Engine) mutate(intent string, fn func() (result float64, evaluated bool)) {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		log.Printf("Calculator %s: ignoring %s while prime check is in flight", e.sessionID, intent)
		return
	}

	result, evaluated := fn()
	var discovered []int64
	if evaluated {
		discovered = e.detectPrimeLocked(result)
	}
	state := e.snapshotLocked()
	onUpdate, onBadge := e.onUpdate, e.onBadge
	e.mu.Unlock()

	notify(onUpdate, onBadge, state, discovered)
}

// detectPrimeLocked tests result and records it as a badge when prime.
// Large results are tested after the configured delay on a separate goroutine.
func (e *Engine) detectPrimeLocked(result float64) []int64 {
	n, ok := primeCandidate(result)
	if !ok {
		return nil
	}

	if float64(n) > e.largeThreshold && e.primeDelay > 0 {
		e.busy = true
		log.Printf("Calculator %s: delaying prime check of %d by %s", e.sessionID, n, e.primeDelay)
		go e.checkLater(n, e.after(e.primeDelay))
		return nil
	}

	if IsPrime(n) && e.addBadgeLocked(n) {
		return []int64{n}
	}
	return nil
}

// checkLater completes a delayed prime check. The timer is not cancellable.
func (e *Engine) checkLater(n int64, timer <-chan time.Time) {
	<-timer

	e.mu.Lock()
	var discovered []int64
	if IsPrime(n) && e.addBadgeLocked(n) {
		discovered = []int64{n}
	}
	e.busy = false
	state := e.snapshotLocked()
	onUpdate, onBadge := e.onUpdate, e.onBadge
	e.mu.Unlock()

	log.Printf("Calculator %s: prime check of %d finished", e.sessionID, n)
	notify(onUpdate, onBadge, state, discovered)
}

// addBadgeLocked inserts n and persists the full set.
// Returns true if n was not discovered before.
func (e *Engine) addBadgeLocked(n int64) bool {
	_, seen := e.primes[n]
	e.primes[n] = struct{}{}
	e.persistLocked()

	if !seen {
		log.Printf("Calculator %s: discovered prime badge %d", e.sessionID, n)
	}
	return !seen
}

// persistLocked overwrites the store slot with the whole badge set
func (e *Engine) persistLocked() {
	if e.store == nil {
		return
	}
	e.store.SetString(e.storeKey, EncodeBadges(e.primes))
}

// loadBadges seeds the badge set from the store, discarding malformed data
func (e *Engine) loadBadges() {
	if e.store == nil {
		return
	}

	values, err := DecodeBadges(e.store.String(e.storeKey))
	if err != nil {
		log.Printf("Calculator %s: discarding stored badges: %v", e.sessionID, err)
		return
	}

	for _, v := range values {
		if !IsPrime(v) {
			log.Printf("Calculator %s: dropping stored non-prime badge %d", e.sessionID, v)
			continue
		}
		e.primes[v] = struct{}{}
	}
}

// snapshotLocked copies the current state
func (e *Engine) snapshotLocked() model.CalculatorState {
	state := model.CalculatorState{
		Display:            e.display,
		PendingOperand:     e.pendingOperand,
		PendingOperator:    e.pendingOperator,
		AwaitingFreshEntry: e.awaitingFreshEntry,
		Busy:               e.busy,
		BadgeCount:         len(e.primes),
	}
	return state.Clone()
}

// notify calls the update and badge callbacks if set
func notify(onUpdate func(model.CalculatorState), onBadge func(int64), state model.CalculatorState, discovered []int64) {
	if onBadge != nil {
		for _, p := range discovered {
			onBadge(p)
		}
	}
	if onUpdate != nil {
		onUpdate(state)
	}
}
