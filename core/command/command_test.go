package command

import "testing"

func TestCommandNames(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{NewLoadImage("/tmp/lesion.jpg"), "LoadImage"},
		{&Analyze{}, "Analyze"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.cmd.CommandName(); got != tt.expected {
				t.Errorf("CommandName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLoadImage(t *testing.T) {
	cmd := NewLoadImage("/data/mole.png")
	if cmd.Path != "/data/mole.png" {
		t.Errorf("Path = %v, want /data/mole.png", cmd.Path)
	}
}
