// Package application provides the application layer orchestrating analysis.
package application

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"sync"
	"time"

	"dermascan/core/command"
	"dermascan/core/event"
	"dermascan/core/eventbus"
	"dermascan/core/state"
	"dermascan/domain/diagnosis"
	"dermascan/infrastructure/classifier"
)

// Analyzer owns the application state machine and drives the
// classification pipeline. Commands arrive from the presentation layer;
// results flow back as events.
//
// Analysis runs on a worker goroutine so the UI thread never blocks on
// inference. It is non-reentrant: an Analyze command while one is in
// flight is ignored.
type Analyzer struct {
	classifier classifier.Classifier
	eventBus   eventbus.EventBus
	logger     *slog.Logger

	mu        sync.RWMutex
	state     state.AppState
	imagePath string
	image     image.Image
	result    *diagnosis.Assessment

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// AnalyzerConfig holds configuration for the Analyzer.
type AnalyzerConfig struct {
	Classifier classifier.Classifier
	EventBus   eventbus.EventBus
	Logger     *slog.Logger
}

// NewAnalyzer creates a new Analyzer in the Idle state.
func NewAnalyzer(cfg *AnalyzerConfig) *Analyzer {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Analyzer{
		classifier: cfg.Classifier,
		eventBus:   cfg.EventBus,
		logger:     cfg.Logger,
		state:      state.StateIdle,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Dispatch sends a command to the appropriate handler.
func (a *Analyzer) Dispatch(cmd command.Command) error {
	a.logger.Debug("Dispatching command", "command", cmd.CommandName())

	switch cmd := cmd.(type) {
	case *command.LoadImage:
		return a.handleLoadImage(cmd)
	case *command.Analyze:
		return a.handleAnalyze()
	default:
		return fmt.Errorf("unknown command: %s", cmd.CommandName())
	}
}

// Stop cancels any in-flight analysis and waits for the worker to finish.
func (a *Analyzer) Stop() {
	a.cancel()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("Analyzer stopped")
	case <-time.After(3 * time.Second):
		a.logger.Warn("Analyzer stop timeout")
	}
}

// State returns the current application state.
func (a *Analyzer) State() state.AppState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// ImagePath returns the path of the currently loaded image, if any.
func (a *Analyzer) ImagePath() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.imagePath
}

// Result returns the most recent assessment, or nil if none is displayed.
func (a *Analyzer) Result() *diagnosis.Assessment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.result == nil {
		return nil
	}
	res := *a.result
	return &res
}

// handleLoadImage decodes the selected file for display. On failure the
// state machine does not move and the previous image stays current.
func (a *Analyzer) handleLoadImage(cmd *command.LoadImage) error {
	a.mu.Lock()
	if !a.state.CanLoadImage() {
		a.mu.Unlock()
		return state.NewTransitionError(a.state, state.StateImageLoaded, "analysis in progress")
	}
	a.mu.Unlock()

	img, err := decodeImageFile(cmd.Path)
	if err != nil {
		a.logger.Error("Failed to load image", "path", cmd.Path, "error", err)
		a.publish(&event.ImageLoadFailed{Path: cmd.Path, Error: err})
		return err
	}

	a.mu.Lock()
	// A new selection discards the previous image and any stale result.
	a.imagePath = cmd.Path
	a.image = img
	a.result = nil
	a.setStateLocked(state.StateImageLoaded)
	a.mu.Unlock()

	a.logger.Info("Image loaded", "path", cmd.Path)
	a.publish(&event.ImageLoaded{Path: cmd.Path, Image: img})
	return nil
}

// handleAnalyze starts the classification pipeline on a worker goroutine.
func (a *Analyzer) handleAnalyze() error {
	a.mu.Lock()

	// Analyze with no image loaded is a guarded no-op. The button is
	// disabled in that state, but the guard holds regardless.
	if !a.state.HasImage() {
		a.mu.Unlock()
		a.logger.Warn("Analyze requested with no image loaded")
		return nil
	}

	// Non-reentrant: a trigger during a running analysis is ignored.
	if a.state == state.StateAnalyzing {
		a.mu.Unlock()
		a.logger.Debug("Analyze ignored, analysis already in flight")
		return nil
	}

	path := a.imagePath
	a.setStateLocked(state.StateAnalyzing)
	a.mu.Unlock()

	a.publish(&event.AnalysisStarted{Path: path})

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.runPipeline(path)
	}()

	return nil
}

// runPipeline executes decode, preprocessing and inference for one image.
// Exactly one completion event is published on every exit path, so the UI
// always gets to stop its progress indicator.
func (a *Analyzer) runPipeline(path string) {
	started := time.Now()

	score, err := a.classify(path)
	if err != nil {
		a.logger.Error("Analysis failed", "path", path, "error", err)

		a.mu.Lock()
		a.setStateLocked(state.StateImageLoaded)
		a.mu.Unlock()

		a.publish(&event.AnalysisFailed{Path: path, Error: err})
		return
	}

	assessment := diagnosis.Assess(score)
	a.logger.Info("Analysis complete",
		"path", path,
		"score", assessment.Score,
		"label", assessment.Label,
		"confidence", assessment.ConfidencePercent(),
		"elapsed", time.Since(started))

	a.mu.Lock()
	a.result = &assessment
	a.setStateLocked(state.StateResultShown)
	a.mu.Unlock()

	a.publish(&event.AnalysisCompleted{Path: path, Result: assessment})
}

// classify re-reads the image from disk, matching the trained artifact's
// pipeline: the file can disappear or rot between display and analysis.
// A panic in the runtime binding is converted to an error so the pipeline
// always reaches exactly one completion event.
func (a *Analyzer) classify(path string) (score float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("inference panicked: %v", r)
		}
	}()

	img, err := decodeImageFile(path)
	if err != nil {
		return 0, err
	}
	return a.classifier.Classify(a.ctx, img)
}

// setStateLocked moves the state machine and publishes the change.
// Caller must hold a.mu.
func (a *Analyzer) setStateLocked(to state.AppState) {
	if !a.state.CanTransitionTo(to) {
		// Handler guards should make this unreachable.
		a.logger.Error("Invalid state transition", "from", a.state, "to", to)
		return
	}

	old := a.state
	a.state = to
	a.publish(&event.StateChanged{OldState: old, NewState: to})
}

func (a *Analyzer) publish(e event.Event) {
	if a.eventBus != nil {
		a.eventBus.Publish(e)
	}
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return img, nil
}
