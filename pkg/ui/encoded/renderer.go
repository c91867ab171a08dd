// Package encoded provides machine-readable JSON, TOML and YAML output
package encoded

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/oascan/pkg/ui/display"
)

// Encoding selects the output syntax
type Encoding string

const (
	JSON Encoding = "json"
	TOML Encoding = "toml"
	YAML Encoding = "yaml"
)

// Renderer writes results in a structured encoding
type Renderer struct {
	output   io.Writer
	encoding Encoding
}

// New creates a new structured renderer
func New(output io.Writer, encoding Encoding) (*Renderer, error) {
	switch encoding {
	case JSON, TOML, YAML:
		return &Renderer{output: output, encoding: encoding}, nil
	default:
		return nil, fmt.Errorf("unknown encoding: %s", encoding)
	}
}

// RenderResult encodes a result. Results that carry a separate structured
// document are encoded through it.
func (r *Renderer) RenderResult(result interface{}) error {
	if d, ok := result.(display.Documented); ok {
		return r.encode(d.StructuredDocument())
	}
	return r.encode(result)
}

// RenderError renders an error as an object with an error field
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a message as an object with a message field
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	switch r.encoding {
	case TOML:
		enc := toml.NewEncoder(r.output)
		enc.SetIndentTables(true)
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(r.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(r.output)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
