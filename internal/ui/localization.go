package ui

import (
	"log"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localization manages UI text translations and locale-aware number formatting
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	printer         *message.Printer
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHeading           = "heading"
	KeyBadgeChip         = "badge_chip"
	KeyBadgeDialogTitle  = "badge_dialog_title"
	KeyNoBadges          = "no_badges"
	KeyNoBadgesHint      = "no_badges_hint"
	KeyBadgeEntry        = "badge_entry"
	KeyBadgeEntryDetail  = "badge_entry_detail"
	KeyClose             = "close"
	KeyCopy              = "copy"
	KeyCopied            = "copied"
	KeyCopyFailed        = "copy_failed"
	KeyNewBadge          = "new_badge"
	KeyCheckingPrime     = "checking_prime"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyEdit              = "edit"
	KeyShowBadges        = "show_badges"
	KeyOpenDataFolder    = "open_data_folder"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyThemeSystem       = "theme_system"
	KeyThemeLight        = "theme_light"
	KeyThemeDark         = "theme_dark"
	KeyPrimeDelay        = "prime_delay"
	KeyBadgeStorage      = "badge_storage"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidDelay      = "invalid_delay"
	KeyRestartToApply    = "restart_to_apply"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyStoragePrefs      = "storage_preferences"
	KeyStorageSQLite     = "storage_sqlite"
	KeyStorageMemoryOnly = "storage_memory"
)

// Fallback language when the requested one has no table
const FallbackLanguage = "en"

var supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: FallbackLanguage,
		texts:           make(map[string]map[string]string),
		printer:         message.NewPrinter(language.English),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the platform locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	code, tag := MatchLanguage(lang)
	if _, exists := l.texts[code]; !exists {
		log.Printf("Localization: no texts for %q, keeping %s", lang, l.currentLanguage)
		return
	}
	l.currentLanguage = code
	l.printer = message.NewPrinter(tag)
}

// MatchLanguage maps a BCP 47 language string to a supported language code
func MatchLanguage(lang string) (string, language.Tag) {
	requested, err := language.Parse(lang)
	if err != nil {
		return FallbackLanguage, language.English
	}

	_, index, confidence := languageMatcher.Match(requested)
	if confidence == language.No {
		return FallbackLanguage, language.English
	}
	tag := supportedLanguages[index]
	base, _ := tag.Base()
	return base.String(), tag
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format renders the localized template for key with locale-aware numbers
func (l *Localization) Format(key string, args ...any) string {
	return l.printer.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func systemLanguage() string {
	locale := lang.SystemLocale()
	if locale == "" {
		return FallbackLanguage
	}
	return locale.LanguageString()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Prime Calculator",
		KeyHeading:           IconAbacus + " Awesome Calculator",
		KeyBadgeChip:         "Prime Badges: %d " + IconTrophy,
		KeyBadgeDialogTitle:  IconTrophy + " Prime Number Badges " + IconTrophy,
		KeyNoBadges:          "No prime badges yet! " + IconSad,
		KeyNoBadgesHint:      "Try some calculations to discover prime numbers! 🔢" + IconSparkles,
		KeyBadgeEntry:        "Prime %d " + IconStar,
		KeyBadgeEntryDetail:  "Discovered this amazing prime number!",
		KeyClose:             "Close " + IconDoor,
		KeyCopy:              "Copy",
		KeyCopied:            "Copied to clipboard",
		KeyCopyFailed:        "Could not copy to clipboard",
		KeyNewBadge:          "New prime badge: %d " + IconStar,
		KeyCheckingPrime:     "Checking for primes...",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyEdit:              "Edit",
		KeyShowBadges:        "Prime Badges",
		KeyOpenDataFolder:    "Open Data Folder",
		KeyLanguage:          "Language",
		KeyTheme:             "Theme",
		KeyThemeSystem:       "System",
		KeyThemeLight:        "Light",
		KeyThemeDark:         "Dark",
		KeyPrimeDelay:        "Prime check delay (ms)",
		KeyBadgeStorage:      "Badge storage",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidDelay:      "Delay must be a whole number of milliseconds",
		KeyRestartToApply:    "Storage changes apply after restart",
		KeyErrorOpeningDir:   "Error opening folder",
		KeyStoragePrefs:      "Preferences",
		KeyStorageSQLite:     "SQLite database",
		KeyStorageMemoryOnly: "Memory only",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Простой калькулятор",
		KeyHeading:           IconAbacus + " Потрясающий калькулятор",
		KeyBadgeChip:         "Простые значки: %d " + IconTrophy,
		KeyBadgeDialogTitle:  IconTrophy + " Значки простых чисел " + IconTrophy,
		KeyNoBadges:          "Пока нет значков! " + IconSad,
		KeyNoBadgesHint:      "Посчитайте что-нибудь, чтобы найти простые числа! 🔢" + IconSparkles,
		KeyBadgeEntry:        "Простое %d " + IconStar,
		KeyBadgeEntryDetail:  "Найдено удивительное простое число!",
		KeyClose:             "Закрыть " + IconDoor,
		KeyCopy:              "Копировать",
		KeyCopied:            "Скопировано в буфер обмена",
		KeyCopyFailed:        "Не удалось скопировать",
		KeyNewBadge:          "Новый значок: %d " + IconStar,
		KeyCheckingPrime:     "Проверка на простоту...",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyEdit:              "Правка",
		KeyShowBadges:        "Простые значки",
		KeyOpenDataFolder:    "Открыть папку данных",
		KeyLanguage:          "Язык",
		KeyTheme:             "Тема",
		KeyThemeSystem:       "Системная",
		KeyThemeLight:        "Светлая",
		KeyThemeDark:         "Тёмная",
		KeyPrimeDelay:        "Задержка проверки (мс)",
		KeyBadgeStorage:      "Хранилище значков",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidDelay:      "Задержка должна быть целым числом миллисекунд",
		KeyRestartToApply:    "Смена хранилища вступит в силу после перезапуска",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
		KeyStoragePrefs:      "Настройки приложения",
		KeyStorageSQLite:     "База SQLite",
		KeyStorageMemoryOnly: "Только в памяти",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Calculadora Prima",
		KeyHeading:           IconAbacus + " Calculadora Incrível",
		KeyBadgeChip:         "Medalhas Primas: %d " + IconTrophy,
		KeyBadgeDialogTitle:  IconTrophy + " Medalhas de Números Primos " + IconTrophy,
		KeyNoBadges:          "Nenhuma medalha ainda! " + IconSad,
		KeyNoBadgesHint:      "Faça alguns cálculos para descobrir números primos! 🔢" + IconSparkles,
		KeyBadgeEntry:        "Primo %d " + IconStar,
		KeyBadgeEntryDetail:  "Você descobriu este incrível número primo!",
		KeyClose:             "Fechar " + IconDoor,
		KeyCopy:              "Copiar",
		KeyCopied:            "Copiado para a área de transferência",
		KeyCopyFailed:        "Não foi possível copiar",
		KeyNewBadge:          "Nova medalha: %d " + IconStar,
		KeyCheckingPrime:     "Verificando primos...",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyEdit:              "Editar",
		KeyShowBadges:        "Medalhas Primas",
		KeyOpenDataFolder:    "Abrir Pasta de Dados",
		KeyLanguage:          "Idioma",
		KeyTheme:             "Tema",
		KeyThemeSystem:       "Sistema",
		KeyThemeLight:        "Claro",
		KeyThemeDark:         "Escuro",
		KeyPrimeDelay:        "Atraso da verificação (ms)",
		KeyBadgeStorage:      "Armazenamento de medalhas",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidDelay:      "O atraso deve ser um número inteiro de milissegundos",
		KeyRestartToApply:    "A troca de armazenamento vale após reiniciar",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
		KeyStoragePrefs:      "Preferências",
		KeyStorageSQLite:     "Banco SQLite",
		KeyStorageMemoryOnly: "Somente memória",
	}
}
