package renderer

import (
	"smz3/pkg/game/seed"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeading
	StyleLocation
	StyleArea
	StyleProgression
	StyleDungeon
	StyleKeycard
	StyleJunk
	StyleReward
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for seed output backends.
// Implementations can include TUI (terminal), plain text, HTML, etc.
type Renderer interface {
	// Init initializes the renderer (colors, widths, etc.)
	Init()

	// RenderSeed renders the summary of a generated seed
	// This includes the hash, reward rolls and the playthrough
	RenderSeed(data *seed.SeedData)

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for plain output it is a no-op
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderSeed renders a seed summary
func RenderSeed(data *seed.SeedData) {
	if Current != nil {
		Current.RenderSeed(data)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage displays a message
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
