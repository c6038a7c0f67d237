package event

import (
	"errors"
	"testing"

	"dermascan/core/state"
	"dermascan/domain/diagnosis"
)

func TestEventNames(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{&StateChanged{OldState: state.StateIdle, NewState: state.StateImageLoaded}, "StateChanged"},
		{&ImageLoaded{Path: "lesion.jpg"}, "ImageLoaded"},
		{&ImageLoadFailed{Path: "lesion.jpg", Error: errors.New("bad file")}, "ImageLoadFailed"},
		{&AnalysisStarted{Path: "lesion.jpg"}, "AnalysisStarted"},
		{&AnalysisCompleted{Path: "lesion.jpg", Result: diagnosis.Assess(0.9)}, "AnalysisCompleted"},
		{&AnalysisFailed{Path: "lesion.jpg", Error: errors.New("decode failed")}, "AnalysisFailed"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.event.EventName(); got != tt.expected {
				t.Errorf("EventName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAnalysisCompleted_CarriesFullResult(t *testing.T) {
	e := &AnalysisCompleted{Path: "lesion.jpg", Result: diagnosis.Assess(0.92)}

	if !e.Result.Malignant {
		t.Error("expected malignant result")
	}
	if e.Result.ConfidencePercent() != "92.00%" {
		t.Errorf("ConfidencePercent() = %v, want 92.00%%", e.Result.ConfidencePercent())
	}
	if e.Result.Recommendation != diagnosis.RecommendationMalignant {
		t.Errorf("Recommendation = %v, want %v", e.Result.Recommendation, diagnosis.RecommendationMalignant)
	}
}
