// Package main is the entry point for the DermaScan desktop app.
package main

import (
	"os"

	"dermascan/application"
	"dermascan/config"
	"dermascan/core/eventbus"
	"dermascan/infrastructure/classifier"
	"dermascan/infrastructure/logging"
	"dermascan/presentation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

func main() {
	// Initialize logging (dev: console only, prod: rotating file)
	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		// Fallback to stderr if logging setup fails
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting DermaScan")

	// Load configuration (missing file falls back to defaults)
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize Fyne app
	fyneApp := app.New()

	// Load the trained model. Without it there is nothing to analyze, so
	// a load failure is fatal: show the error and exit instead of opening
	// a window whose Analyze can never work.
	clf, err := classifier.NewONNXClassifier(cfg.ClassifierConfig())
	if err != nil {
		logger.Error("Failed to load model", "path", cfg.ModelPath, "error", err)
		showFatalError(fyneApp, err)
		os.Exit(1)
	}
	defer clf.Close()

	logger.Info("Model loaded", "path", cfg.ModelPath, "input_size", cfg.InputSize)

	// Initialize event bus
	eventBus := eventbus.New(100)
	defer eventBus.Close()

	// Initialize analyzer
	analyzer := application.NewAnalyzer(&application.AnalyzerConfig{
		Classifier: clf,
		EventBus:   eventBus,
		Logger:     logger,
	})
	defer analyzer.Stop()

	// Initialize UI event bridge
	bridge := presentation.NewUIEventBridge(&presentation.BridgeConfig{
		Analyzer: analyzer,
		EventBus: eventBus,
		Logger:   logger,
	})
	defer bridge.Close()

	// Initialize main window
	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:    fyneApp,
		Bridge: bridge,
		Logger: logger,
		Title:  cfg.WindowTitle,
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
	})
	defer mainWindow.Cleanup()

	// Show and run
	mainWindow.Show()
	fyneApp.Run()

	logger.Info("Application shutdown complete")
}

// showFatalError opens a minimal window with the startup error and blocks
// until the user dismisses it.
func showFatalError(fyneApp fyne.App, err error) {
	win := fyneApp.NewWindow("DermaScan - Startup Error")
	win.Resize(fyne.NewSize(480, 200))

	d := dialog.NewError(err, win)
	d.SetOnClosed(fyneApp.Quit)

	win.Show()
	d.Show()
	fyneApp.Run()
}
