package model

// DefaultDisplay is the display text of a fresh or cleared calculator
const DefaultDisplay = "0"

// CalculatorState is a point-in-time copy of the calculator engine state
type CalculatorState struct {
	Display            string   // current entry or last result, never empty
	PendingOperand     *float64 // left-hand operand, nil when absent
	PendingOperator    Operator // OperatorNone when absent
	AwaitingFreshEntry bool     // next digit starts a new number
	Busy               bool     // delayed prime check in flight
	BadgeCount         int      // number of distinct primes discovered
}

// NewCalculatorState returns the state of a freshly created calculator
func NewCalculatorState() CalculatorState {
	return CalculatorState{Display: DefaultDisplay}
}

// HasPendingOperation returns true if both an operand and an operator are pending
func (s CalculatorState) HasPendingOperation() bool {
	return s.PendingOperand != nil && s.PendingOperator.IsValid()
}

// Clone returns a copy that does not share the pending operand pointer
func (s CalculatorState) Clone() CalculatorState {
	if s.PendingOperand != nil {
		v := *s.PendingOperand
		s.PendingOperand = &v
	}
	return s
}
