// Package ui contains the Fyne-based user interface for the calculator.
// It wires keypad, keyboard and gesture input to the calculator engine and
// renders the display, badge chip, badge dialog, toasts, settings and the
// droplet background. All UI strings are localized via Localization.
package ui
