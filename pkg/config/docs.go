package config

import (
	"fmt"
	"strings"
)

// GenerateDocs renders the option table as markdown
func GenerateDocs() string {
	var b strings.Builder

	b.WriteString("# oascan options\n\n")
	b.WriteString("Each option can be set in a project file (`.oascan.toml`, `oascan.yaml`), ")
	b.WriteString("as a MicroProfile property, or through an environment variable. ")
	b.WriteString("Later sources override earlier ones; see `oascan help sources`.\n\n")
	b.WriteString("| Property | File key | Env | Type | Default | Description |\n")
	b.WriteString("|---|---|---|---|---|---|\n")

	for _, o := range optionTable {
		fmt.Fprintf(&b, "| `%s` | `%s` | %s | %s | %s | %s |\n",
			o.DisplayProperty(),
			fileKey(o),
			code(o.EnvVar()),
			o.Type,
			code(o.Default),
			escapeCell(o.Description),
		)
	}
	return b.String()
}

func fileKey(o OptionSpec) string {
	if o.Prefix {
		return o.Key + ".<name>"
	}
	return o.Key
}

func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
