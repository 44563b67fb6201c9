package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"filepickers-sample/panel"
	"filepickers-sample/picker"
	"filepickers-sample/resultlog"
	"filepickers-sample/shared"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
)

type myTheme struct {
	fyne.Theme
}

func newMyTheme() *myTheme {
	return &myTheme{Theme: theme.LightTheme()}
}

func (m myTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.White
	}
	if name == theme.ColorNameForeground {
		return color.Black
	}
	return m.Theme.Color(name, variant)
}

// defaults reads the initial text of every input from the configuration.
// Choice errors are reported in the results log and the built-in JSON is used.
func defaults(cfg *shared.Config, results *resultlog.Log) panel.Defaults {
	openChoices, err := cfg.OpenChoices()
	if err != nil {
		results.Addf("Error loading open picker choices: %v", err)
	}
	saveChoices, err := cfg.SaveChoices()
	if err != nil {
		results.Addf("Error loading save picker choices: %v", err)
	}
	return panel.Defaults{
		CommitButtonText:     cfg.CommitButtonText(),
		StartFolder:          cfg.SuggestedStartFolder(),
		SuggestedFolder:      cfg.SuggestedFolder(),
		FileTypeFilter:       cfg.FileTypeFilter(),
		OpenChoices:          openChoices,
		SaveChoices:          saveChoices,
		SuggestedFileName:    cfg.SuggestedFileName(),
		DefaultFileExtension: cfg.DefaultFileExtension(),
	}
}

// selectBackend returns the picker called name and the name in use. An
// unusable name falls back to defaultBackend and is reported in err.
func selectBackend(name string, w fyne.Window) (picker.Picker, string, error) {
	p, err := picker.New(name, w)
	if err == nil {
		return p, name, nil
	}
	fallback, fallbackErr := picker.New(defaultBackend, w)
	if fallbackErr != nil {
		return nil, defaultBackend, errors.Join(err, fallbackErr)
	}
	return fallback, defaultBackend, err
}

func main() {
	shared.InitLogging(os.Stderr)
	log.Printf("Starting %s", shared.AppTitle())

	cfg, err := shared.LoadConfig(shared.ConfigPath())
	if err != nil {
		log.Printf("Configuration error, using defaults: %v", err)
		cfg = nil
	}

	a := app.NewWithID("app.filepickers.sample")
	a.Settings().SetTheme(newMyTheme())
	w := a.NewWindow(shared.AppTitle())
	w.Resize(fyne.NewSize(1200, 900))

	instance, err := shared.AcquireInstanceLock(shared.GetInstallDir())
	if err != nil {
		log.Printf("Instance lock: %v", err)
		if errors.Is(err, shared.ErrAlreadyRunning) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer instance.Release()

	results := resultlog.New()
	p, backend, err := selectBackend(cfg.Backend(defaultBackend), w)
	if err != nil {
		log.Printf("Picker backend unavailable, falling back to %s: %v", backend, err)
		results.Addf("Error selecting picker backend: %v", err)
	}
	log.Printf("Using %s picker backend", backend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := panel.NewRunner(p, results)
	tab := panel.NewTab(ctx, w, runner, defaults(cfg, results))
	w.SetContent(tab.Content)

	if results.Len() > 0 {
		dialog.ShowInformation("Configuration", "Some settings could not be loaded, see the results log.", w)
	}

	w.SetCloseIntercept(func() {
		cancel()
		w.Close()
	})

	w.ShowAndRun()
}
