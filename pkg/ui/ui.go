// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON, TOML and YAML output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/oascan/pkg/ui/encoded"
	"github.com/arthur-debert/oascan/pkg/ui/terminal"
	"github.com/arthur-debert/oascan/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return encoded.New(output, encoded.JSON)
	case FormatTOML:
		return encoded.New(output, encoded.TOML)
	case FormatYAML:
		return encoded.New(output, encoded.YAML)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Resolve turns FormatAuto into the concrete format for output
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}
