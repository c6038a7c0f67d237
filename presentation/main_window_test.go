package presentation

import (
	"testing"
)

func TestMainWindowConfig(t *testing.T) {
	cfg := &MainWindowConfig{}

	if cfg.App != nil {
		t.Error("App should be nil by default")
	}
	if cfg.Bridge != nil {
		t.Error("Bridge should be nil by default")
	}
	if cfg.Logger != nil {
		t.Error("Logger should be nil by default")
	}
}

func TestHasImageExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lesion.jpg", true},
		{"lesion.jpeg", true},
		{"lesion.png", true},
		{"LESION.JPG", true},
		{"/tmp/scans/mole.PNG", true},
		{"lesion.gif", false},
		{"lesion.txt", false},
		{"lesion", false},
		{"jpg", false},
	}

	for _, tt := range tests {
		if got := hasImageExtension(tt.path); got != tt.want {
			t.Errorf("hasImageExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
