package model

import "strconv"

// ThemeMode selects the palette used by the UI and the droplet animation
type ThemeMode string

const (
	// ThemeSystem follows the platform preference; resolved by the UI
	ThemeSystem ThemeMode = "system"

	// ThemeLight is the light palette
	ThemeLight ThemeMode = "light"

	// ThemeDark is the dark palette
	ThemeDark ThemeMode = "dark"
)

// IsDark returns true for the dark palette
func (m ThemeMode) IsDark() bool {
	return m == ThemeDark
}

// FontSpec describes the font a droplet payload is drawn with
type FontSpec struct {
	Size      float32
	Monospace bool
}

// Droplet is one falling token on the animated background
type Droplet struct {
	ID      int
	X       float64
	Y       float64
	Speed   float64 // pixels per frame
	Value   int     // prime payload, meaningful when IsEmoji is false
	IsEmoji bool
	Emoji   string
}

// Text returns the glyphs the droplet renders
func (d Droplet) Text() string {
	if d.IsEmoji {
		return d.Emoji
	}
	return strconv.Itoa(d.Value)
}
