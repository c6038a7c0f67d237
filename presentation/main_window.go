package presentation

import (
	"image"
	"log/slog"
	"strings"
	"sync"

	"dermascan/core/state"
	"dermascan/domain/diagnosis"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// imageExtensions are the file types offered by the picker and accepted on drop.
var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// MainWindow is the main application window.
type MainWindow struct {
	window fyne.Window
	bridge *UIEventBridge
	logger *slog.Logger

	// UI components
	titleLabel      *widget.Label
	imageCanvas     *canvas.Image
	placeholder     *widget.Label
	uploadBtn       *widget.Button
	analyzeBtn      *widget.Button
	resultLabel     *widget.Label
	confidenceLabel *widget.Label
	progressBar     *widget.ProgressBarInfinite
	statusLabel     *widget.Label

	cleanupOnce sync.Once
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App    fyne.App
	Bridge *UIEventBridge
	Logger *slog.Logger
	Title  string
	Width  float32
	Height float32
}

// NewMainWindow creates a new main window.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Title == "" {
		cfg.Title = "DermaScan AI - Skin Cancer Detection"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1000
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}

	w := &MainWindow{
		window: cfg.App.NewWindow(cfg.Title),
		bridge: cfg.Bridge,
		logger: cfg.Logger,
	}

	w.init(cfg.Title, cfg.Width, cfg.Height)
	w.setupEventCallbacks()
	w.setupFileDrop()

	w.window.SetOnClosed(func() {
		w.Cleanup()
		cfg.App.Quit()
	})

	return w
}

func (w *MainWindow) init(title string, width, height float32) {
	w.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// Image display area; the placeholder shows until the first selection.
	w.imageCanvas = canvas.NewImageFromImage(nil)
	w.imageCanvas.FillMode = canvas.ImageFillContain
	w.imageCanvas.Hide()
	w.placeholder = widget.NewLabelWithStyle("Upload a skin lesion image to begin",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	imageArea := container.NewStack(w.imageCanvas, container.NewCenter(w.placeholder))

	w.uploadBtn = widget.NewButtonWithIcon("Upload Image", theme.FolderOpenIcon(), w.handleUpload)
	w.analyzeBtn = widget.NewButtonWithIcon("Analyze", theme.SearchIcon(), w.handleAnalyze)
	w.analyzeBtn.Disable()

	w.resultLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	w.confidenceLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	w.progressBar = widget.NewProgressBarInfinite()
	w.progressBar.Stop()
	w.progressBar.Hide()

	w.statusLabel = widget.NewLabel("Ready. Upload an image to begin.")

	buttons := container.NewHBox(w.uploadBtn, w.analyzeBtn)

	bottom := container.NewVBox(
		container.NewCenter(buttons),
		w.progressBar,
		w.resultLabel,
		w.confidenceLabel,
		widget.NewSeparator(),
		w.statusLabel,
	)

	content := container.NewBorder(w.titleLabel, bottom, nil, nil, imageArea)
	w.window.SetContent(content)
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setupEventCallbacks() {
	if w.bridge == nil {
		return
	}

	w.bridge.SetCallbacks(&UICallbacks{
		OnImageLoaded: func(path string, img image.Image) {
			w.logger.Info("Image displayed", "path", path)
			// UI update must run on main thread
			fyne.Do(func() {
				w.showImage(img)
				w.clearResult()
				w.analyzeBtn.Enable()
				w.setStatus("Image loaded. Click Analyze to run the classifier.")
			})
		},
		OnImageLoadFailed: func(path string, err error) {
			w.logger.Error("Image load failed", "path", path, "error", err)
			// UI update must run on main thread
			fyne.Do(func() {
				dialog.ShowError(err, w.window)
				w.setStatus("Could not load the selected image.")
			})
		},
		OnAnalysisStarted: func(path string) {
			fyne.Do(func() {
				w.analyzeBtn.Disable()
				w.uploadBtn.Disable()
				w.clearResult()
				w.progressBar.Show()
				w.progressBar.Start()
				w.setStatus("Analyzing image...")
			})
		},
		OnAnalysisCompleted: func(path string, result diagnosis.Assessment) {
			fyne.Do(func() {
				w.stopProgress()
				w.showResult(result)
			})
		},
		OnAnalysisFailed: func(path string, err error) {
			w.logger.Error("Analysis failed", "path", path, "error", err)
			fyne.Do(func() {
				w.stopProgress()
				dialog.ShowError(err, w.window)
				w.setStatus("Analysis failed. Select an image and try again.")
			})
		},
		OnStateChanged: func(oldState, newState state.AppState) {
			w.logger.Debug("State changed", "from", oldState, "to", newState)
		},
	})
}

// setupFileDrop accepts an image dragged onto the window, equivalent to
// picking it through the dialog.
func (w *MainWindow) setupFileDrop() {
	w.window.SetOnDropped(func(pos fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}

		// Only handle the first dropped file
		path := uris[0].Path()
		if !hasImageExtension(path) {
			w.setStatus("Unsupported file type. Use JPG or PNG.")
			return
		}

		w.loadImage(path)
	})
}

func (w *MainWindow) handleUpload() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.window)
			return
		}
		if reader == nil {
			// Dialog cancelled; nothing changes.
			return
		}
		defer reader.Close()

		w.loadImage(reader.URI().Path())
	}, w.window)

	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fd.Show()
}

func (w *MainWindow) handleAnalyze() {
	if err := w.bridge.Analyze(); err != nil {
		w.logger.Error("Failed to start analysis", "error", err)
		dialog.ShowError(err, w.window)
	}
}

func (w *MainWindow) loadImage(path string) {
	if err := w.bridge.LoadImage(path); err != nil {
		// The bridge already published ImageLoadFailed for decode errors;
		// this also covers rejection while an analysis is in flight.
		w.logger.Warn("Image selection rejected", "path", path, "error", err)
	}
}

func (w *MainWindow) showImage(img image.Image) {
	w.imageCanvas.Image = img
	w.imageCanvas.Show()
	w.imageCanvas.Refresh()
	w.placeholder.Hide()
}

func (w *MainWindow) showResult(result diagnosis.Assessment) {
	w.resultLabel.SetText("Prediction: " + result.Label)
	w.confidenceLabel.SetText("Confidence: " + result.ConfidencePercent())
	w.setStatus(result.StatusLine())
	w.analyzeBtn.Enable()
	w.uploadBtn.Enable()
}

func (w *MainWindow) clearResult() {
	w.resultLabel.SetText("")
	w.confidenceLabel.SetText("")
}

func (w *MainWindow) stopProgress() {
	w.progressBar.Stop()
	w.progressBar.Hide()
	w.analyzeBtn.Enable()
	w.uploadBtn.Enable()
}

func (w *MainWindow) setStatus(text string) {
	w.statusLabel.SetText(text)
}

func hasImageExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Public methods

// Show displays the main window.
func (w *MainWindow) Show() {
	w.window.Show()
}

// Cleanup releases resources.
func (w *MainWindow) Cleanup() {
	w.cleanupOnce.Do(func() {
		w.logger.Info("Starting cleanup...")

		if w.bridge != nil {
			w.bridge.Close()
		}

		w.logger.Info("Cleanup completed")
	})
}
