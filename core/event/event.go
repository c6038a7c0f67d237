// Package event defines all events published by the application layer.
// Events represent state changes and are consumed by the presentation layer.
package event

import (
	"image"

	"dermascan/core/state"
	"dermascan/domain/diagnosis"
)

// Event is the base interface for all events.
type Event interface {
	// EventName returns the name of the event for logging/debugging
	EventName() string
}

// StateChanged is published whenever the application state machine moves.
type StateChanged struct {
	OldState state.AppState
	NewState state.AppState
}

func (e *StateChanged) EventName() string {
	return "StateChanged"
}

// ImageLoaded is published when an image has been selected and decoded
// successfully. Any previously displayed result is stale at this point.
type ImageLoaded struct {
	Path  string
	Image image.Image
}

func (e *ImageLoaded) EventName() string {
	return "ImageLoaded"
}

// ImageLoadFailed is published when a selected file cannot be opened or
// decoded. The application state is unchanged.
type ImageLoadFailed struct {
	Path  string
	Error error
}

func (e *ImageLoadFailed) EventName() string {
	return "ImageLoadFailed"
}

// AnalysisStarted is published when the classification pipeline begins.
type AnalysisStarted struct {
	Path string
}

func (e *AnalysisStarted) EventName() string {
	return "AnalysisStarted"
}

// AnalysisCompleted is published when the pipeline produces an assessment.
// Label, confidence and recommendation arrive together so the UI can
// update atomically.
type AnalysisCompleted struct {
	Path   string
	Result diagnosis.Assessment
}

func (e *AnalysisCompleted) EventName() string {
	return "AnalysisCompleted"
}

// AnalysisFailed is published when the pipeline aborts without a result.
type AnalysisFailed struct {
	Path  string
	Error error
}

func (e *AnalysisFailed) EventName() string {
	return "AnalysisFailed"
}
