package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/prime-calculator/internal/animation"
	"github.com/ytget/prime-calculator/internal/calculator"
	"github.com/ytget/prime-calculator/internal/config"
	"github.com/ytget/prime-calculator/internal/platform"
	"github.com/ytget/prime-calculator/internal/store"
	"github.com/ytget/prime-calculator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.prime-calculator"
	AppName = "Prime Calculator"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)

	env, err := config.LoadEnv()
	if err != nil {
		log.Printf("Ignoring environment overrides: %v", err)
	}
	settings := config.NewSettings(myApp).WithEnv(env)

	badgeStore, closeStore := openBadgeStore(myApp, settings)
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("failed to close badge store: %v", err)
		}
	}()

	calc := calculator.NewEngine(badgeStore, calculator.DefaultStorageKey)
	calc.SetPrimeCheckDelay(settings.GetPrimeCheckDelay())

	droplets := animation.NewEngine(nil, settings.GetThemeMode())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, calc, settings, droplets)
	root.StartBackground(settings.GetFrameRate())
	defer root.Stop()

	myWindow.ShowAndRun()
}

// openBadgeStore selects the configured badge backend.
// SQLite failures fall back to the Fyne preferences store.
func openBadgeStore(a fyne.App, settings *config.Settings) (calculator.Store, func() error) {
	noop := func() error { return nil }

	switch settings.GetBadgeStore() {
	case config.StoreMemory:
		log.Printf("Prime badges kept in memory only")
		return store.NewMemory(), noop
	case config.StoreSQLite:
		path := settings.GetDatabasePath()
		if path == "" {
			defaultPath, err := platform.DefaultDatabasePath()
			if err != nil {
				log.Printf("failed to resolve database path: %v", err)
				return a.Preferences(), noop
			}
			path = defaultPath
		}

		db, err := store.Open(path)
		if err != nil {
			log.Printf("failed to open badge database %s: %v", path, err)
			return a.Preferences(), noop
		}
		log.Printf("Prime badges stored in %s", path)
		return db, db.Close
	default:
		return a.Preferences(), noop
	}
}
