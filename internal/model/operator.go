package model

// Operator represents a pending binary arithmetic operation
type Operator string

const (
	// OperatorNone means no operator is pending
	OperatorNone Operator = ""

	// OperatorAdd adds the entered value to the pending operand
	OperatorAdd Operator = "+"

	// OperatorSubtract subtracts the entered value from the pending operand
	OperatorSubtract Operator = "-"

	// OperatorMultiply multiplies the pending operand by the entered value
	OperatorMultiply Operator = "×"

	// OperatorDivide divides the pending operand by the entered value
	OperatorDivide Operator = "÷"
)

// String returns the string representation of Operator
func (op Operator) String() string {
	return string(op)
}

// IsValid returns true for the four arithmetic operators
func (op Operator) IsValid() bool {
	return op == OperatorAdd || op == OperatorSubtract || op == OperatorMultiply || op == OperatorDivide
}

// Apply evaluates "first op second" with IEEE double semantics.
// Division by zero yields a signed infinity, 0/0 yields NaN.
// An unknown operator returns second unchanged.
func (op Operator) Apply(first, second float64) float64 {
	switch op {
	case OperatorAdd:
		return first + second
	case OperatorSubtract:
		return first - second
	case OperatorMultiply:
		return first * second
	case OperatorDivide:
		return first / second
	default:
		return second
	}
}

// ParseOperator maps button and keyboard symbols to an Operator.
// Both "*" and "×" map to multiply, both "/" and "÷" map to divide.
func ParseOperator(symbol string) (Operator, bool) {
	switch symbol {
	case "+":
		return OperatorAdd, true
	case "-", "−":
		return OperatorSubtract, true
	case "*", "×", "x":
		return OperatorMultiply, true
	case "/", "÷":
		return OperatorDivide, true
	default:
		return OperatorNone, false
	}
}
