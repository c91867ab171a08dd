// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/oascan/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ConfigResult:
		return r.renderConfig(v)
	case *display.PatternResult:
		return r.renderPattern(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", err.Error())
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderConfig(c *display.ConfigResult) error {
	if _, err := fmt.Fprintf(r.output, "oascan configuration (%s)\n", c.Command); err != nil {
		return err
	}
	if len(c.Sources) == 0 {
		if _, err := fmt.Fprintln(r.output, "sources: built-in defaults only"); err != nil {
			return err
		}
	}
	for _, src := range c.Sources {
		if _, err := fmt.Fprintf(r.output, "source: %s %s\n", src.Kind, src.Path); err != nil {
			return err
		}
	}

	table, err := display.RenderTable(display.SettingsTable(c, display.Plain))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.output, "\n%s", table)
	return err
}

func (r *Renderer) renderPattern(p *display.PatternResult) error {
	if _, err := fmt.Fprintf(r.output, "mode: %s\nengine: %s\nexpression: %s\n", p.Mode, p.Engine, p.Source); err != nil {
		return err
	}
	for _, m := range p.Matches {
		status := "no match"
		if m.Matched {
			status = "match"
		}
		if _, err := fmt.Fprintf(r.output, "%s\t%s\n", status, m.Candidate); err != nil {
			return err
		}
	}
	return nil
}
