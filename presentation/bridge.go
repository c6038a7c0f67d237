// Package presentation provides the UI layer with event bridging to the application layer.
package presentation

import (
	"image"
	"log/slog"
	"sync"

	"dermascan/application"
	"dermascan/core/command"
	"dermascan/core/event"
	"dermascan/core/eventbus"
	"dermascan/core/state"
	"dermascan/domain/diagnosis"
)

// UIEventBridge bridges UI events to the application layer and routes events back to UI.
// It provides a clean separation between UI and business logic.
type UIEventBridge struct {
	analyzer *application.Analyzer
	eventBus eventbus.EventBus
	logger   *slog.Logger

	// UI callbacks - set by UI components
	callbacks   *UICallbacks
	callbacksMu sync.RWMutex

	// Subscription management
	subscriptionID string
}

// UICallbacks contains callbacks for UI updates.
type UICallbacks struct {
	// Image selection
	OnImageLoaded     func(path string, img image.Image)
	OnImageLoadFailed func(path string, err error)

	// Analysis lifecycle
	OnAnalysisStarted   func(path string)
	OnAnalysisCompleted func(path string, result diagnosis.Assessment)
	OnAnalysisFailed    func(path string, err error)

	// State machine
	OnStateChanged func(oldState, newState state.AppState)
}

// BridgeConfig holds configuration for UIEventBridge.
type BridgeConfig struct {
	Analyzer *application.Analyzer
	EventBus eventbus.EventBus
	Logger   *slog.Logger
}

// NewUIEventBridge creates a new UI event bridge.
func NewUIEventBridge(cfg *BridgeConfig) *UIEventBridge {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &UIEventBridge{
		analyzer:  cfg.Analyzer,
		eventBus:  cfg.EventBus,
		logger:    cfg.Logger,
		callbacks: &UICallbacks{},
	}

	// Subscribe to events
	if b.eventBus != nil {
		b.subscriptionID = b.eventBus.Subscribe(b.handleEvent)
	}

	return b
}

// SetCallbacks sets the UI callbacks.
func (b *UIEventBridge) SetCallbacks(callbacks *UICallbacks) {
	b.callbacksMu.Lock()
	defer b.callbacksMu.Unlock()
	b.callbacks = callbacks
}

// Close unsubscribes from the event bus.
func (b *UIEventBridge) Close() {
	if b.eventBus != nil && b.subscriptionID != "" {
		b.eventBus.Unsubscribe(b.subscriptionID)
	}
}

// Command dispatching methods

// LoadImage selects an image file for display and analysis.
func (b *UIEventBridge) LoadImage(path string) error {
	return b.analyzer.Dispatch(command.NewLoadImage(path))
}

// Analyze runs the classification pipeline on the loaded image.
func (b *UIEventBridge) Analyze() error {
	return b.analyzer.Dispatch(&command.Analyze{})
}

// Query methods

// State returns the current application state.
func (b *UIEventBridge) State() state.AppState {
	return b.analyzer.State()
}

// ImagePath returns the path of the currently loaded image, if any.
func (b *UIEventBridge) ImagePath() string {
	return b.analyzer.ImagePath()
}

// Result returns the most recent assessment, or nil if none is displayed.
func (b *UIEventBridge) Result() *diagnosis.Assessment {
	return b.analyzer.Result()
}

// Event handling

func (b *UIEventBridge) handleEvent(e event.Event) {
	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks == nil {
		return
	}

	switch evt := e.(type) {
	case *event.ImageLoaded:
		if callbacks.OnImageLoaded != nil {
			callbacks.OnImageLoaded(evt.Path, evt.Image)
		}

	case *event.ImageLoadFailed:
		if callbacks.OnImageLoadFailed != nil {
			callbacks.OnImageLoadFailed(evt.Path, evt.Error)
		}

	case *event.AnalysisStarted:
		if callbacks.OnAnalysisStarted != nil {
			callbacks.OnAnalysisStarted(evt.Path)
		}

	case *event.AnalysisCompleted:
		if callbacks.OnAnalysisCompleted != nil {
			callbacks.OnAnalysisCompleted(evt.Path, evt.Result)
		}

	case *event.AnalysisFailed:
		if callbacks.OnAnalysisFailed != nil {
			callbacks.OnAnalysisFailed(evt.Path, evt.Error)
		}

	case *event.StateChanged:
		if callbacks.OnStateChanged != nil {
			callbacks.OnStateChanged(evt.OldState, evt.NewState)
		}
	}
}
