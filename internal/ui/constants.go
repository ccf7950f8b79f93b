package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconTrophy   = "🏆"
	IconStar     = "🌟"
	IconSparkles = "✨"
	IconAbacus   = "🧮"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconSad      = "😢"
	IconDoor     = "🚪"
)

// Keypad labels
const (
	KeyLabelClearAll   = "C"
	KeyLabelClearEntry = "CE"
	KeyLabelToggleSign = "±"
	KeyLabelDecimal    = "."
	KeyLabelEquals     = "="
)

// KeypadRows is the keypad layout. The last row has a double-width zero.
var KeypadRows = [][]string{
	{KeyLabelClearAll, KeyLabelClearEntry, KeyLabelToggleSign, "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", KeyLabelDecimal, KeyLabelEquals},
}

// Text fragments
const (
	DisplaySuffix = " " + IconSparkles
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640

	HeadingTextSize  float32 = 26
	DisplayTextSize  float32 = 36
	DisplayMinHeight float32 = 80

	KeypadButtonHeight       float32 = 56
	MobileKeypadButtonHeight float32 = 70

	BadgeDialogWidth  float32 = 380
	BadgeDialogHeight float32 = 420

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 260
	ToastHeight   float32 = 48
	ToastMargin   float32 = 20
	ToastAutoHide         = 2 * time.Second
)
