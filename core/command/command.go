// Package command defines all commands that can be sent to the application.
// Commands represent user intentions and are processed by the application layer.
package command

// Command is the base interface for all commands.
// Commands are sent from the presentation layer to the application layer.
type Command interface {
	// CommandName returns the name of the command for logging/debugging
	CommandName() string
}

// LoadImage selects a new lesion image for display and analysis.
// Selecting a new image discards the previous image and any stale result.
type LoadImage struct {
	Path string
}

func NewLoadImage(path string) *LoadImage {
	return &LoadImage{Path: path}
}

func (c *LoadImage) CommandName() string {
	return "LoadImage"
}

// Analyze runs the classification pipeline on the currently loaded image.
// A second Analyze while one is in flight is ignored.
type Analyze struct{}

func (c *Analyze) CommandName() string {
	return "Analyze"
}
