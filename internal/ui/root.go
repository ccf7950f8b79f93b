package ui

import (
	"context"
	"errors"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prime-calculator/internal/animation"
	"github.com/ytget/prime-calculator/internal/calculator"
	"github.com/ytget/prime-calculator/internal/config"
	"github.com/ytget/prime-calculator/internal/model"
	"github.com/ytget/prime-calculator/internal/platform"
)

// primeDelaySetter is implemented by calculators with a tunable busy phase
type primeDelaySetter interface {
	SetPrimeCheckDelay(time.Duration)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	calc         calculator.Calculator
	settings     *config.Settings
	localization *Localization
	clipboard    calculator.Clipboard
	mobile       *MobileUI

	// dispatch hops widget updates onto the UI thread
	dispatch func(func())

	heading     *canvas.Text
	badgeChip   *widget.Button
	display     *canvas.Text
	busySpinner *widget.ProgressBarInfinite
	busyLabel   *widget.Label
	busyRow     *fyne.Container
	keypad      map[string]*widget.Button

	// Droplet background
	droplets      *animation.Engine
	surface       *CanvasSurface
	stopAnimation context.CancelFunc
}

// NewRootUI creates and initializes the main UI.
// droplets may be nil to run without the animated background.
func NewRootUI(window fyne.Window, app fyne.App, calc calculator.Calculator, settings *config.Settings, droplets *animation.Engine) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		calc:         calc,
		settings:     settings,
		localization: localization,
		clipboard:    NewClipboard(app),
		mobile:       NewMobileUI(),
		dispatch:     fyne.Do,
		keypad:       make(map[string]*widget.Button),
		droplets:     droplets,
		surface:      NewCanvasSurface(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.applyTheme(settings.GetThemeMode())

	calc.SetUpdateCallback(ui.onStateUpdate)
	calc.SetBadgeCallback(ui.onBadgeDiscovered)

	ui.setupUI()
	ui.render(calc.State())

	log.Printf("RootUI initialized with %d prime badges", calc.BadgeCount())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.heading = canvas.NewText(ui.localization.GetText(KeyHeading), theme.Color(theme.ColorNamePrimary))
	ui.heading.Alignment = fyne.TextAlignCenter
	ui.heading.TextSize = HeadingTextSize
	ui.heading.TextStyle = fyne.TextStyle{Bold: true}

	ui.badgeChip = widget.NewButtonWithIcon("", theme.InfoIcon(), ui.onShowBadges)
	ui.badgeChip.Importance = widget.HighImportance

	ui.display = canvas.NewText(model.DefaultDisplay+DisplaySuffix, theme.Color(theme.ColorNameForeground))
	ui.display.Alignment = fyne.TextAlignTrailing
	ui.display.TextSize = DisplayTextSize
	ui.display.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}

	displayBackground := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	displayBackground.CornerRadius = theme.InputRadiusSize()
	displayBackground.SetMinSize(fyne.NewSize(0, DisplayMinHeight))
	displayBox := container.NewStack(displayBackground, container.NewPadded(container.NewBorder(nil, nil, nil, nil, ui.display)))
	displayArea := NewGestureArea(displayBox, ui.onDisplayGesture)

	ui.busySpinner = widget.NewProgressBarInfinite()
	ui.busyLabel = widget.NewLabel(ui.localization.GetText(KeyCheckingPrime))
	ui.busyRow = container.NewBorder(nil, nil, ui.busyLabel, nil, ui.busySpinner)
	ui.busyRow.Hide()

	content := container.NewVBox(
		ui.heading,
		container.NewCenter(ui.badgeChip),
		displayArea,
		ui.busyRow,
		ui.createKeypad(),
	)

	ui.window.SetContent(container.NewStack(
		ui.surface.Object(),
		container.NewPadded(container.NewBorder(nil, nil, nil, nil, content)),
	))

	ui.bindKeyboard()

	log.Printf("UI setup completed successfully")
}

// createKeypad builds the button grid; the bottom row has a double-width zero
func (ui *RootUI) createKeypad() fyne.CanvasObject {
	rows := make([]fyne.CanvasObject, 0, len(KeypadRows))
	for i, labels := range KeypadRows {
		cells := make([]fyne.CanvasObject, 0, len(labels))
		for _, label := range labels {
			cells = append(cells, ui.createKeypadButton(label))
		}

		if i == len(KeypadRows)-1 && len(cells) == 3 {
			rows = append(rows, container.NewGridWithColumns(2, cells[0], container.NewGridWithColumns(2, cells[1], cells[2])))
			continue
		}
		rows = append(rows, container.NewGridWithColumns(len(cells), cells...))
	}
	return container.NewVBox(rows...)
}

// createKeypadButton creates one keypad button sized for the current device
func (ui *RootUI) createKeypadButton(label string) fyne.CanvasObject {
	btn := widget.NewButton(label, func() { ui.onKeypad(label) })

	switch label {
	case KeyLabelClearAll, KeyLabelClearEntry, KeyLabelToggleSign:
		btn.Importance = widget.DangerImportance
	case KeyLabelEquals, "+", "-", "×", "÷":
		btn.Importance = widget.HighImportance
	default:
		btn.Importance = widget.MediumImportance
	}
	ui.keypad[label] = btn

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(ui.mobile.KeypadButtonSize())
	return container.NewStack(spacer, btn)
}

// bindKeyboard routes typed characters, keys and copy shortcuts to the calculator
func (ui *RootUI) bindKeyboard() {
	c := ui.window.Canvas()
	c.SetOnTypedRune(func(r rune) {
		if intent, ok := RuneIntent(r); ok {
			ui.handleIntent(intent)
		}
	})
	c.SetOnTypedKey(func(event *fyne.KeyEvent) {
		if intent, ok := KeyIntent(event.Name); ok {
			ui.handleIntent(intent)
		}
	})
	for _, shortcut := range CopyShortcuts() {
		c.AddShortcut(shortcut, func(fyne.Shortcut) { ui.handleIntent(Intent{Kind: IntentCopy}) })
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)
	dataFolderItem := fyne.NewMenuItem(l.GetText(KeyOpenDataFolder), ui.onOpenDataFolder)

	copyItem := fyne.NewMenuItem(l.GetText(KeyCopy), func() { ui.handleIntent(Intent{Kind: IntentCopy}) })
	badgesItem := fyne.NewMenuItem(l.GetText(KeyShowBadges), ui.onShowBadges)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(l.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), settingsItem, dataFolderItem),
		fyne.NewMenu(l.GetText(KeyEdit), copyItem, badgesItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onKeypad handles a keypad button press
func (ui *RootUI) onKeypad(label string) {
	intent, ok := LabelIntent(label)
	if !ok {
		log.Printf("Keypad: unknown button %q", label)
		return
	}
	ui.handleIntent(intent)
}

// handleIntent applies intent and reports copy results
func (ui *RootUI) handleIntent(intent Intent) {
	err := Apply(ui.calc, ui.clipboard, intent)
	if intent.Kind != IntentCopy {
		return
	}

	if err != nil {
		log.Printf("Copy failed: %v", err)
		ui.showToast(IconError + " " + ui.localization.GetText(KeyCopyFailed))
		return
	}
	ui.showToast(IconCopy + " " + ui.localization.GetText(KeyCopied))
}

// onDisplayGesture maps display gestures: swipe clears the entry, long press copies
func (ui *RootUI) onDisplayGesture(gesture GestureType) {
	switch {
	case gesture.IsSwipe():
		ui.handleIntent(Intent{Kind: IntentClearEntry})
	case gesture == GestureLongPress:
		ui.handleIntent(Intent{Kind: IntentCopy})
	}
}

// onStateUpdate receives engine updates, possibly from the prime check goroutine
func (ui *RootUI) onStateUpdate(state model.CalculatorState) {
	ui.dispatch(func() {
		ui.render(state)
	})
}

// onBadgeDiscovered announces a newly discovered prime
func (ui *RootUI) onBadgeDiscovered(prime int64) {
	ui.dispatch(func() {
		ui.showToast(ui.localization.Format(KeyNewBadge, prime))
	})
}

// render shows state on the widgets
func (ui *RootUI) render(state model.CalculatorState) {
	ui.display.Text = state.Display + DisplaySuffix
	ui.display.Refresh()

	ui.badgeChip.SetText(ui.localization.Format(KeyBadgeChip, state.BadgeCount))

	if state.Busy {
		ui.busyRow.Show()
		ui.busySpinner.Start()
	} else {
		ui.busySpinner.Stop()
		ui.busyRow.Hide()
	}

	for _, btn := range ui.keypad {
		if state.Busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// showToast shows a short-lived message at the top of the window
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabelWithStyle(message, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	toast := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos((canvasSize.Width-toastSize.Width)/2, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		ui.dispatch(toast.Hide)
	})
}

// onShowBadges opens the badge dialog
func (ui *RootUI) onShowBadges() {
	ShowBadgeDialog(ui.window, ui.localization, ui.calc.Badges())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the settings that take effect without a restart
func (ui *RootUI) onSettingsSaved() {
	ui.applyTheme(ui.settings.GetThemeMode())

	if setter, ok := ui.calc.(primeDelaySetter); ok {
		setter.SetPrimeCheckDelay(ui.settings.GetPrimeCheckDelay())
	}

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.heading.Text = ui.localization.GetText(KeyHeading)
	ui.heading.Refresh()
	ui.busyLabel.SetText(ui.localization.GetText(KeyCheckingPrime))
	ui.render(ui.calc.State())
}

// onOpenDataFolder reveals the application data directory
func (ui *RootUI) onOpenDataFolder() {
	dir, err := platform.GetAppDataDir()
	if err == nil {
		err = platform.CreateDirectoryIfNotExists(dir)
	}
	if err == nil {
		err = platform.OpenFolder(dir)
	}
	if err != nil {
		log.Printf("Open data folder failed: %v", err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningDir) + ": " + err.Error())
	}
}

// applyTheme installs the compact theme for mode and recolors the droplets
func (ui *RootUI) applyTheme(mode model.ThemeMode) {
	compact := NewCompactTheme(mode).(*CompactTheme)
	ui.app.Settings().SetTheme(compact)

	if ui.droplets != nil {
		ui.droplets.SetThemeMode(compact.ResolveMode(ui.app.Settings().ThemeVariant()))
	}
	if ui.display != nil {
		ui.display.Color = theme.Color(theme.ColorNameForeground)
		ui.display.Refresh()
		ui.heading.Color = theme.Color(theme.ColorNamePrimary)
		ui.heading.Refresh()
	}
}

// StartBackground runs the droplet animation until Stop or window close
func (ui *RootUI) StartBackground(fps int) {
	if ui.droplets == nil || ui.stopAnimation != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui.stopAnimation = cancel

	loop := animation.NewLoop(ui.droplets, ui.surface, animation.FrameInterval(fps), ui.dispatch)
	loop.SetFrameCallback(func([]model.Droplet) {
		ui.surface.Flush()
	})

	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Droplet animation ended: %v", err)
		}
	}()

	ui.window.SetOnClosed(ui.Stop)
}

// Stop halts the droplet animation
func (ui *RootUI) Stop() {
	if ui.stopAnimation != nil {
		ui.stopAnimation()
		ui.stopAnimation = nil
	}
}

// DisplayText returns the display text as shown, including the suffix
func (ui *RootUI) DisplayText() string {
	return ui.display.Text
}

// BadgeChipText returns the badge chip label
func (ui *RootUI) BadgeChipText() string {
	return ui.badgeChip.Text
}

// IsBusyShown reports whether the busy indicator is visible
func (ui *RootUI) IsBusyShown() bool {
	return ui.busyRow.Visible()
}

// KeypadButton returns the keypad button with label, or nil
func (ui *RootUI) KeypadButton(label string) *widget.Button {
	return ui.keypad[label]
}

// Localization returns the active localization
func (ui *RootUI) Localization() *Localization {
	return ui.localization
}

// Surface returns the droplet background surface
func (ui *RootUI) Surface() *CanvasSurface {
	return ui.surface
}
