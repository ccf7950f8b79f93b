package animation

import (
	"image/color"
	"math"

	"github.com/ytget/prime-calculator/internal/model"
)

// Droplet fonts
var (
	PrimeFont = model.FontSpec{Size: 16, Monospace: true}
	EmojiFont = model.FontSpec{Size: 20}
)

// Droplet colors before opacity is applied
var (
	PrimeColorDark  = color.NRGBA{R: 144, G: 202, B: 249} // light blue
	PrimeColorLight = color.NRGBA{R: 25, G: 118, B: 210}  // dark blue
	EmojiColorDark  = color.NRGBA{R: 255, G: 255, B: 255}
	EmojiColorLight = color.NRGBA{R: 0, G: 0, B: 0}
)

// Opacity settings
const (
	EmojiOpacityDark    = 0.8
	EmojiOpacityLight   = 0.6
	PrimeOpacityBase    = 0.5
	PrimeOpacityFlicker = 0.6
)

// withOpacity returns c with alpha set from opacity, clamped to [0, 1]
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	c.A = uint8(math.Round(opacity * 255))
	return c
}

// emojiColor returns the emoji droplet color for mode
func emojiColor(mode model.ThemeMode) color.NRGBA {
	if mode.IsDark() {
		return withOpacity(EmojiColorDark, EmojiOpacityDark)
	}
	return withOpacity(EmojiColorLight, EmojiOpacityLight)
}

// primeColor returns the numeric droplet color for mode at the given opacity
func primeColor(mode model.ThemeMode, opacity float64) color.NRGBA {
	if mode.IsDark() {
		return withOpacity(PrimeColorDark, opacity)
	}
	return withOpacity(PrimeColorLight, opacity)
}
