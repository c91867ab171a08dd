package display

import "github.com/pterm/pterm"

// Styler decorates a cell. name is a style name such as "Value" or "Default".
type Styler func(name, text string) string

// Plain is a Styler that leaves text untouched
func Plain(_, text string) string { return text }

// SettingsTable lays out the settings of r as a table with a header row
func SettingsTable(r *ConfigResult, style Styler) pterm.TableData {
	data := pterm.TableData{{style("Bold", "Property"), style("Bold", "Value")}}
	for _, s := range r.Settings {
		value := s.Value
		switch {
		case !s.Set && value == "":
			value = style("Muted", "-")
		case s.IsDefault:
			value = style("Default", value)
		default:
			value = style("Value", value)
		}
		data = append(data, []string{style("Property", s.Property), value})
	}
	return data
}

// RenderTable renders data with pterm. Styling of the cells is left to the
// caller; the table itself adds none.
func RenderTable(data pterm.TableData) (string, error) {
	plain := pterm.NewStyle()
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(plain).
		WithStyle(plain).
		WithSeparatorStyle(plain).
		WithHeaderRowSeparatorStyle(plain).
		WithSeparator("  ").
		WithData(data).
		Srender()
}
