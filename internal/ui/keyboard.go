package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/prime-calculator/internal/calculator"
	"github.com/ytget/prime-calculator/internal/model"
)

// IntentKind identifies a calculator input intent
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentDigit
	IntentDecimalPoint
	IntentToggleSign
	IntentOperator
	IntentEvaluate
	IntentClearAll
	IntentClearEntry
	IntentCopy
)

// Intent is one user action on the calculator
type Intent struct {
	Kind     IntentKind
	Digit    string
	Operator model.Operator
}

// KeyIntent maps a non-printable key to an intent
func KeyIntent(name fyne.KeyName) (Intent, bool) {
	switch name {
	case fyne.KeyEnter, fyne.KeyReturn:
		return Intent{Kind: IntentEvaluate}, true
	case fyne.KeyEscape:
		return Intent{Kind: IntentClearAll}, true
	case fyne.KeyBackspace, fyne.KeyDelete:
		return Intent{Kind: IntentClearEntry}, true
	}
	return Intent{}, false
}

// RuneIntent maps a typed character to an intent
func RuneIntent(r rune) (Intent, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Intent{Kind: IntentDigit, Digit: string(r)}, true
	case r == '.' || r == ',':
		return Intent{Kind: IntentDecimalPoint}, true
	case r == '=':
		return Intent{Kind: IntentEvaluate}, true
	}

	if op, ok := model.ParseOperator(string(r)); ok {
		return Intent{Kind: IntentOperator, Operator: op}, true
	}
	return Intent{}, false
}

// LabelIntent maps a keypad button label to an intent
func LabelIntent(label string) (Intent, bool) {
	switch label {
	case KeyLabelClearAll:
		return Intent{Kind: IntentClearAll}, true
	case KeyLabelClearEntry:
		return Intent{Kind: IntentClearEntry}, true
	case KeyLabelToggleSign:
		return Intent{Kind: IntentToggleSign}, true
	}

	runes := []rune(label)
	if len(runes) != 1 {
		return Intent{}, false
	}
	return RuneIntent(runes[0])
}

// Apply runs intent against calc. Copy intents return the clipboard error.
func Apply(calc calculator.Calculator, clip calculator.Clipboard, intent Intent) error {
	switch intent.Kind {
	case IntentDigit:
		calc.InputDigit(intent.Digit)
	case IntentDecimalPoint:
		calc.InputDecimalPoint()
	case IntentToggleSign:
		calc.ToggleSign()
	case IntentOperator:
		calc.SetOperator(intent.Operator)
	case IntentEvaluate:
		calc.Evaluate()
	case IntentClearAll:
		calc.ClearAll()
	case IntentClearEntry:
		calc.ClearEntry()
	case IntentCopy:
		return calc.CopyDisplay(clip)
	}
	return nil
}

// CopyShortcuts returns the shortcuts bound to copying the display.
// The driver maps Ctrl+C and Cmd+C to fyne.ShortcutCopy.
func CopyShortcuts() []fyne.Shortcut {
	return []fyne.Shortcut{&fyne.ShortcutCopy{}}
}
