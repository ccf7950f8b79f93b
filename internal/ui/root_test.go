package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/prime-calculator/internal/calculator"
	"github.com/ytget/prime-calculator/internal/config"
	"github.com/ytget/prime-calculator/internal/model"
	"github.com/ytget/prime-calculator/internal/store"
)

func newTestRootUI(t *testing.T, delay time.Duration) (*RootUI, fyne.App, *calculator.Engine) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")

	calc := calculator.NewEngine(store.NewMemory(), "")
	calc.SetPrimeCheckDelay(delay)

	return NewRootUI(window, app, calc, settings, nil), app, calc
}

func tapKeys(t *testing.T, ui *RootUI, labels ...string) {
	t.Helper()
	for _, label := range labels {
		btn := ui.KeypadButton(label)
		if btn == nil {
			t.Fatalf("No keypad button %q", label)
		}
		test.Tap(btn)
	}
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _, _ := newTestRootUI(t, 0)

	if ui.DisplayText() != "0"+DisplaySuffix {
		t.Errorf("Expected display '0 ✨', got '%s'", ui.DisplayText())
	}
	if ui.BadgeChipText() != "Prime Badges: 0 🏆" {
		t.Errorf("Unexpected chip text '%s'", ui.BadgeChipText())
	}
	if ui.IsBusyShown() {
		t.Error("Busy indicator should be hidden")
	}

	for _, row := range KeypadRows {
		for _, label := range row {
			if ui.KeypadButton(label) == nil {
				t.Errorf("Missing keypad button %q", label)
			}
		}
	}
}

func TestRootUI_KeypadEvaluatesAndAwardsBadge(t *testing.T) {
	ui, _, calc := newTestRootUI(t, 0)

	tapKeys(t, ui, "2", "+", "3", "=")

	if ui.DisplayText() != "5"+DisplaySuffix {
		t.Errorf("Expected display '5 ✨', got '%s'", ui.DisplayText())
	}
	if ui.BadgeChipText() != "Prime Badges: 1 🏆" {
		t.Errorf("Unexpected chip text '%s'", ui.BadgeChipText())
	}
	if badges := calc.Badges(); len(badges) != 1 || badges[0] != 5 {
		t.Errorf("Expected badges [5], got %v", badges)
	}

	tapKeys(t, ui, "C")
	if ui.DisplayText() != "0"+DisplaySuffix {
		t.Errorf("Expected cleared display, got '%s'", ui.DisplayText())
	}
}

func TestRootUI_Keyboard(t *testing.T) {
	ui, _, _ := newTestRootUI(t, 0)
	c := ui.window.Canvas()

	test.TypeOnCanvas(c, "12*4")
	c.OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if ui.DisplayText() != "48"+DisplaySuffix {
		t.Errorf("Expected display '48 ✨', got '%s'", ui.DisplayText())
	}

	c.OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ui.DisplayText() != "0"+DisplaySuffix {
		t.Errorf("Expected cleared display, got '%s'", ui.DisplayText())
	}
}

func TestRootUI_CopyAndGestures(t *testing.T) {
	ui, app, _ := newTestRootUI(t, 0)

	tapKeys(t, ui, "4", "2")
	ui.onDisplayGesture(GestureLongPress)

	if content := app.Clipboard().Content(); content != "42" {
		t.Errorf("Expected clipboard '42', got '%s'", content)
	}

	ui.onDisplayGesture(GestureTap)
	if ui.DisplayText() != "42"+DisplaySuffix {
		t.Errorf("Tap should not change the display, got '%s'", ui.DisplayText())
	}

	ui.onDisplayGesture(GestureSwipeLeft)
	if ui.DisplayText() != "0"+DisplaySuffix {
		t.Errorf("Expected swipe to clear entry, got '%s'", ui.DisplayText())
	}
}

func TestRootUI_CopyShortcut(t *testing.T) {
	ui, app, _ := newTestRootUI(t, 0)

	tapKeys(t, ui, "7", "3")

	handler, ok := ui.window.Canvas().(fyne.Shortcutable)
	if !ok {
		t.Fatal("Expected the window canvas to handle shortcuts")
	}
	handler.TypedShortcut(&fyne.ShortcutCopy{})

	if content := app.Clipboard().Content(); content != "73" {
		t.Errorf("Expected clipboard '73', got '%s'", content)
	}
}

func TestRootUI_BusyDisablesKeypad(t *testing.T) {
	ui, _, calc := newTestRootUI(t, 100*time.Millisecond)

	// The test goroutine plays the UI thread: every widget update is queued
	// and run here, including those raised by the prime check goroutine.
	mainThread := make(chan func(), 64)
	ui.dispatch = func(fn func()) { mainThread <- fn }
	runQueued := func() {
		for {
			select {
			case fn := <-mainThread:
				fn()
			default:
				return
			}
		}
	}

	for _, label := range []string{"1", "0", "0", "0", "0", "0", "2", "+", "1", "="} {
		tapKeys(t, ui, label)
		runQueued()
	}

	equals := ui.KeypadButton(KeyLabelEquals)
	if !equals.Disabled() || !ui.IsBusyShown() {
		t.Fatal("Expected keypad disabled and busy indicator shown during prime check")
	}

	timeout := time.After(2 * time.Second)
	for equals.Disabled() {
		select {
		case fn := <-mainThread:
			fn()
		case <-timeout:
			t.Fatal("Expected keypad re-enabled after prime check")
		}
	}
	runQueued()

	if ui.IsBusyShown() {
		t.Error("Busy indicator should be hidden after prime check")
	}
	if calc.State().Busy {
		t.Error("Engine should not be busy after prime check")
	}
	if ui.BadgeChipText() != "Prime Badges: 1 🏆" {
		t.Errorf("Expected 1000003 to be awarded, got chip '%s'", ui.BadgeChipText())
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, app, _ := newTestRootUI(t, 0)

	ui.onLanguageChange("pt")

	if ui.BadgeChipText() != "Medalhas Primas: 0 🏆" {
		t.Errorf("Unexpected chip text '%s'", ui.BadgeChipText())
	}
	if stored := app.Preferences().String(config.KeyLanguage); stored != "pt" {
		t.Errorf("Expected stored language pt, got %s", stored)
	}
	if ui.window.Title() != "Calculadora Prima" {
		t.Errorf("Unexpected window title %s", ui.window.Title())
	}
}

func TestRootUI_SettingsApplyDelay(t *testing.T) {
	ui, _, calc := newTestRootUI(t, 0)

	ui.settings.SetPrimeCheckDelay(250 * time.Millisecond)
	ui.settings.SetThemeMode(model.ThemeDark)
	ui.onSettingsSaved()

	if delay := calc.PrimeCheckDelay(); delay != 250*time.Millisecond {
		t.Errorf("Expected delay 250ms, got %s", delay)
	}
	if compact, ok := ui.app.Settings().Theme().(*CompactTheme); !ok || compact.Mode() != model.ThemeDark {
		t.Error("Expected dark compact theme to be installed")
	}
}
