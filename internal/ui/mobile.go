package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific sizing for the keypad
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape reports a landscape orientation on mobile devices
func (m *MobileUI) IsLandscape() bool {
	return m.IsMobileDevice() && fyne.IsHorizontal(m.device.Orientation())
}

// KeypadButtonSize returns the minimum keypad button size, larger for touch targets
func (m *MobileUI) KeypadButtonSize() fyne.Size {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return fyne.NewSize(MobileKeypadButtonHeight, MobileKeypadButtonHeight)
	}
	return fyne.NewSize(KeypadButtonHeight, KeypadButtonHeight)
}
