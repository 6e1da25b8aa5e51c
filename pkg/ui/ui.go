// Package ui renders command results as terminal output, plain text, JSON,
// YAML or TOML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/linktime/pkg/errors"
	"github.com/arthur-debert/linktime/pkg/ui/json"
	"github.com/arthur-debert/linktime/pkg/ui/terminal"
	"github.com/arthur-debert/linktime/pkg/ui/text"
	"github.com/arthur-debert/linktime/pkg/ui/toml"
	"github.com/arthur-debert/linktime/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a result value, normally one of the display types
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tune renderer construction.
type Options struct {
	// NoColor disables styling in the terminal renderer.
	NoColor bool
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		return NewRenderer(FormatText, output, opts)
	case FormatTerminal:
		return terminal.New(output, opts.NoColor), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	case FormatTOML:
		return toml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown format: %v", format)
	}
}
