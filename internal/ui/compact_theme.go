package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/prime-calculator/internal/model"
)

// CompactTheme defines a compact theme for the UI with reduced padding.
// A light or dark mode forces that variant regardless of the platform setting.
type CompactTheme struct {
	mode model.ThemeMode
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme(mode model.ThemeMode) fyne.Theme {
	return &CompactTheme{mode: mode}
}

// Mode returns the configured theme mode
func (t *CompactTheme) Mode() model.ThemeMode {
	return t.mode
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.variant(variant)

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for new badges
	case theme.ColorNameError:
		return color.RGBA{R: 211, G: 47, B: 47, A: 255} // Red for clear keys
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for badges
	case theme.ColorNamePrimary:
		if variant == theme.VariantDark {
			return color.RGBA{R: 144, G: 202, B: 249, A: 255}
		}
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// IsDark reports whether the theme renders dark for the given platform variant
func (t *CompactTheme) IsDark(variant fyne.ThemeVariant) bool {
	return t.variant(variant) == theme.VariantDark
}

// ResolveMode maps the system mode to light or dark for the current platform variant
func (t *CompactTheme) ResolveMode(variant fyne.ThemeVariant) model.ThemeMode {
	if t.IsDark(variant) {
		return model.ThemeDark
	}
	return model.ThemeLight
}

func (t *CompactTheme) variant(platform fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case model.ThemeDark:
		return theme.VariantDark
	case model.ThemeLight:
		return theme.VariantLight
	}
	return platform
}
