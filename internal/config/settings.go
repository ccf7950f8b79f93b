package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/prime-calculator/internal/animation"
	"github.com/ytget/prime-calculator/internal/calculator"
	"github.com/ytget/prime-calculator/internal/model"
)

// StoreBackend selects where the prime badges are persisted
type StoreBackend string

const (
	StorePreferences StoreBackend = "preferences"
	StoreSQLite      StoreBackend = "sqlite"
	StoreMemory      StoreBackend = "memory"
)

// Settings keys for Fyne preferences
const (
	KeyThemeMode       = "theme_mode"
	KeyLanguage        = "app_language"
	KeyPrimeCheckDelay = "prime_check_delay_ms"
	KeyBadgeStore      = "badge_store"
	KeyDatabasePath    = "database_path"
	KeyFrameRate       = "animation_fps"
)

// Default values
const (
	DefaultThemeMode = model.ThemeSystem
	DefaultLanguage  = "system"
	DefaultStore     = StorePreferences
	DefaultFrameRate = animation.DefaultFPS

	// MaxPrimeCheckDelay bounds the simulated latency accepted from settings
	MaxPrimeCheckDelay = 10 * time.Second
)

// Settings manages application configuration.
// Values from the environment take precedence over stored preferences.
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// WithEnv applies environment overrides and returns s
func (s *Settings) WithEnv(env Env) *Settings {
	s.env = env
	return s
}

// GetThemeMode returns the configured theme mode
func (s *Settings) GetThemeMode() model.ThemeMode {
	if mode, ok := parseThemeMode(s.env.Theme); ok {
		return mode
	}

	mode, ok := parseThemeMode(s.app.Preferences().String(KeyThemeMode))
	if !ok {
		s.SetThemeMode(DefaultThemeMode)
		return DefaultThemeMode
	}
	return mode
}

// SetThemeMode sets the theme mode
func (s *Settings) SetThemeMode(mode model.ThemeMode) {
	if _, ok := parseThemeMode(string(mode)); !ok {
		mode = DefaultThemeMode
	}
	s.app.Preferences().SetString(KeyThemeMode, string(mode))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	if s.env.Language != "" {
		return s.env.Language
	}

	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPrimeCheckDelay returns the simulated latency for large prime checks
func (s *Settings) GetPrimeCheckDelay() time.Duration {
	if s.env.PrimeDelay != nil {
		return clampDelay(*s.env.PrimeDelay)
	}

	ms := s.app.Preferences().IntWithFallback(KeyPrimeCheckDelay, int(calculator.DefaultPrimeCheckDelay/time.Millisecond))
	return clampDelay(time.Duration(ms) * time.Millisecond)
}

// SetPrimeCheckDelay sets the simulated latency. Zero disables the busy phase.
func (s *Settings) SetPrimeCheckDelay(delay time.Duration) {
	delay = clampDelay(delay)
	s.app.Preferences().SetInt(KeyPrimeCheckDelay, int(delay/time.Millisecond))
}

// GetBadgeStore returns the configured badge storage backend
func (s *Settings) GetBadgeStore() StoreBackend {
	if backend, ok := parseStoreBackend(s.env.Store); ok {
		return backend
	}

	backend, ok := parseStoreBackend(s.app.Preferences().String(KeyBadgeStore))
	if !ok {
		return DefaultStore
	}
	return backend
}

// SetBadgeStore sets the badge storage backend
func (s *Settings) SetBadgeStore(backend StoreBackend) {
	if _, ok := parseStoreBackend(string(backend)); !ok {
		backend = DefaultStore
	}
	s.app.Preferences().SetString(KeyBadgeStore, string(backend))
}

// GetDatabasePath returns the SQLite database path, "" for the platform default
func (s *Settings) GetDatabasePath() string {
	if s.env.DBPath != "" {
		return s.env.DBPath
	}
	return s.app.Preferences().String(KeyDatabasePath)
}

// SetDatabasePath sets the SQLite database path
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// GetFrameRate returns the background animation frame rate
func (s *Settings) GetFrameRate() int {
	if s.env.FPS > 0 {
		return clampFrameRate(s.env.FPS)
	}

	fps := s.app.Preferences().Int(KeyFrameRate)
	if fps <= 0 {
		return DefaultFrameRate
	}
	return clampFrameRate(fps)
}

// SetFrameRate sets the background animation frame rate
func (s *Settings) SetFrameRate(fps int) {
	s.app.Preferences().SetInt(KeyFrameRate, clampFrameRate(fps))
}

// GetThemeModeOptions returns available theme modes
func (s *Settings) GetThemeModeOptions() []model.ThemeMode {
	return []model.ThemeMode{model.ThemeSystem, model.ThemeLight, model.ThemeDark}
}

// GetStoreOptions returns available badge storage backends
func (s *Settings) GetStoreOptions() []StoreBackend {
	return []StoreBackend{StorePreferences, StoreSQLite, StoreMemory}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func parseThemeMode(value string) (model.ThemeMode, bool) {
	switch mode := model.ThemeMode(value); mode {
	case model.ThemeSystem, model.ThemeLight, model.ThemeDark:
		return mode, true
	}
	return "", false
}

func parseStoreBackend(value string) (StoreBackend, bool) {
	switch backend := StoreBackend(value); backend {
	case StorePreferences, StoreSQLite, StoreMemory:
		return backend, true
	}
	return "", false
}

func clampDelay(delay time.Duration) time.Duration {
	if delay < 0 {
		return 0
	}
	if delay > MaxPrimeCheckDelay {
		return MaxPrimeCheckDelay
	}
	return delay
}

func clampFrameRate(fps int) int {
	if fps < animation.MinFPS {
		return animation.MinFPS
	}
	if fps > animation.MaxFPS {
		return animation.MaxFPS
	}
	return fps
}
