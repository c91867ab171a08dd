// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/oascan/pkg/ui/display"
	"github.com/arthur-debert/oascan/pkg/ui/styles"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a result with rich terminal formatting
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

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.Render("Error", "Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}

func (r *Renderer) renderConfig(c *display.ConfigResult) error {
	var b strings.Builder

	b.WriteString(styles.Render("Header", "oascan configuration ("+c.Command+")"))
	b.WriteString("\n")
	b.WriteString(styles.Render("Section", "Sources"))
	b.WriteString("\n")
	if len(c.Sources) == 0 {
		b.WriteString("  " + styles.Render("Muted", "built-in defaults only") + "\n")
	}
	for _, src := range c.Sources {
		fmt.Fprintf(&b, "  %-10s %s\n", src.Kind, styles.Render("Path", src.Path))
	}
	b.WriteString("\n")
	b.WriteString(styles.Render("Section", "Options"))
	b.WriteString("\n")

	table, err := display.RenderTable(display.SettingsTable(c, styles.Render))
	if err != nil {
		return err
	}
	b.WriteString(table)

	_, err = fmt.Fprint(r.output, b.String())
	return err
}

func (r *Renderer) renderPattern(p *display.PatternResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s %s\n",
		styles.Render("Muted", "mode"), styles.Render("Bold", p.Mode),
		styles.Render("Muted", "engine"), styles.Render("Bold", p.Engine))
	if p.Source != "" {
		fmt.Fprintf(&b, "%s %s\n", styles.Render("Muted", "expression"), p.Source)
	}
	for _, m := range p.Matches {
		if m.Matched {
			fmt.Fprintf(&b, "  %s %s\n", styles.Render("Match", "✓"), styles.Render("Match", m.Candidate))
		} else {
			fmt.Fprintf(&b, "  %s %s\n", styles.Render("NoMatch", "✗"), styles.Render("NoMatch", m.Candidate))
		}
	}
	fmt.Fprintf(&b, "%s\n", styles.Render("Muted", fmt.Sprintf("%d of %d matched", p.MatchedCount(), len(p.Matches))))

	_, err := fmt.Fprint(r.output, b.String())
	return err
}
