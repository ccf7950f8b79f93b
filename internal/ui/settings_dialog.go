package ui

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prime-calculator/internal/config"
	"github.com/ytget/prime-calculator/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	themeSelect    *widget.Select
	languageSelect *widget.Select
	storeSelect    *widget.Select
	delayEntry     *widget.Entry

	// label <-> value lookups for the selects
	themeLabels    map[model.ThemeMode]string
	languageLabels map[string]string
	storeLabels    map[config.StoreBackend]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after settings are stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.themeLabels = map[model.ThemeMode]string{
		model.ThemeSystem: l.GetText(KeyThemeSystem),
		model.ThemeLight:  l.GetText(KeyThemeLight),
		model.ThemeDark:   l.GetText(KeyThemeDark),
	}
	themeOptions := []string{}
	for _, mode := range sd.settings.GetThemeModeOptions() {
		themeOptions = append(themeOptions, sd.themeLabels[mode])
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.languageLabels = sd.settings.GetLanguageOptions()
	languageOptions := []string{}
	for _, code := range []string{"system", "en", "ru", "pt"} {
		languageOptions = append(languageOptions, sd.languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.storeLabels = map[config.StoreBackend]string{
		config.StorePreferences: l.GetText(KeyStoragePrefs),
		config.StoreSQLite:      l.GetText(KeyStorageSQLite),
		config.StoreMemory:      l.GetText(KeyStorageMemoryOnly),
	}
	storeOptions := []string{}
	for _, backend := range sd.settings.GetStoreOptions() {
		storeOptions = append(storeOptions, sd.storeLabels[backend])
	}
	sd.storeSelect = widget.NewSelect(storeOptions, nil)

	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder("500")
	sd.delayEntry.Validator = func(text string) error {
		if _, err := parseDelayMillis(text); err != nil {
			return err
		}
		return nil
	}

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyPrimeDelay)+":"),
		sd.delayEntry,

		widget.NewLabel(l.GetText(KeyBadgeStorage)+":"),
		sd.storeSelect,
		widget.NewLabel(l.GetText(KeyRestartToApply)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeSelect.SetSelected(sd.themeLabels[sd.settings.GetThemeMode()])
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
	sd.storeSelect.SetSelected(sd.storeLabels[sd.settings.GetBadgeStore()])
	sd.delayEntry.SetText(strconv.FormatInt(sd.settings.GetPrimeCheckDelay().Milliseconds(), 10))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	delay, err := parseDelayMillis(sd.delayEntry.Text)
	if err != nil {
		dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeyInvalidDelay), sd.window)
		return
	}
	sd.settings.SetPrimeCheckDelay(delay)

	for mode, label := range sd.themeLabels {
		if label == sd.themeSelect.Selected {
			sd.settings.SetThemeMode(mode)
		}
	}

	for code, label := range sd.languageLabels {
		if label == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
		}
	}

	for backend, label := range sd.storeLabels {
		if label == sd.storeSelect.Selected {
			sd.settings.SetBadgeStore(backend)
		}
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// parseDelayMillis parses a non-negative whole number of milliseconds
func parseDelayMillis(text string) (time.Duration, error) {
	ms, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, strconv.ErrRange
	}
	return time.Duration(ms) * time.Millisecond, nil
}
