package calculator

import (
	"github.com/ytget/prime-calculator/internal/model"
)

// Calculator defines the interface the presentation layer drives.
type Calculator interface {
	SetUpdateCallback(func(model.CalculatorState))
	SetBadgeCallback(func(prime int64))

	InputDigit(d string)
	InputDecimalPoint()
	ToggleSign()
	SetOperator(op model.Operator)
	Evaluate()
	ClearAll()
	ClearEntry()
	CopyDisplay(clip Clipboard) error

	State() model.CalculatorState
	BadgeCount() int
	Badges() []int64
}

// Store is the key-value slot the badge set is persisted into.
// fyne.Preferences satisfies it directly.
type Store interface {
	String(key string) string
	SetString(key string, value string)
}

// Clipboard receives the display text on copy requests.
type Clipboard interface {
	WriteText(text string) error
}
