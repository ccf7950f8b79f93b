package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/prime-calculator/internal/calculator"
)

// Clipboard adapts the Fyne clipboard to calculator.Clipboard
type Clipboard struct {
	clip fyne.Clipboard
}

// NewClipboard wraps the clipboard of app. A nil app yields an unavailable clipboard.
func NewClipboard(app fyne.App) *Clipboard {
	if app == nil {
		return &Clipboard{}
	}
	return &Clipboard{clip: app.Clipboard()}
}

// WriteText places text on the system clipboard
func (c *Clipboard) WriteText(text string) error {
	if c == nil || c.clip == nil {
		return calculator.ErrClipboardUnavailable
	}
	c.clip.SetContent(text)
	return nil
}
