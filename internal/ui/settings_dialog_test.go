package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/prime-calculator/internal/config"
	"github.com/ytget/prime-calculator/internal/model"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.delayEntry.Text != "500" {
		t.Errorf("Expected default delay 500, got %s", sd.delayEntry.Text)
	}

	sd.themeSelect.SetSelected(sd.themeLabels[model.ThemeLight])
	sd.languageSelect.SetSelected(sd.languageLabels["ru"])
	sd.storeSelect.SetSelected(sd.storeLabels[config.StoreSQLite])
	sd.delayEntry.SetText("0")
	sd.onSave(true)

	if !saved {
		t.Error("Expected save callback")
	}
	if mode := settings.GetThemeMode(); mode != model.ThemeLight {
		t.Errorf("Expected light theme, got %s", mode)
	}
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected ru, got %s", lang)
	}
	if backend := settings.GetBadgeStore(); backend != config.StoreSQLite {
		t.Errorf("Expected sqlite store, got %s", backend)
	}
	if delay := settings.GetPrimeCheckDelay(); delay != 0 {
		t.Errorf("Expected delay 0, got %s", delay)
	}
}

func TestSettingsDialog_RejectsBadDelay(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	sd.delayEntry.SetText("-5")
	sd.onSave(true)

	if saved {
		t.Error("Save callback should not run for an invalid delay")
	}
	if delay := settings.GetPrimeCheckDelay(); delay != 500*time.Millisecond {
		t.Errorf("Expected delay unchanged, got %s", delay)
	}
}

func TestParseDelayMillis(t *testing.T) {
	if d, err := parseDelayMillis(" 750 "); err != nil || d != 750*time.Millisecond {
		t.Errorf("Expected 750ms, got %s (%v)", d, err)
	}
	if _, err := parseDelayMillis("abc"); err == nil {
		t.Error("Expected error for non-numeric delay")
	}
}
