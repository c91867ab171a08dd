package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/oascan/pkg/config"
	"github.com/arthur-debert/oascan/pkg/pattern"
)

func TestNewConfigResult(t *testing.T) {
	r := NewConfigResult("defaults", config.Default())

	assert.Equal(t, "defaults", r.Command)
	assert.NotNil(t, r.Sources)
	assert.Empty(t, r.Sources)
	require.Len(t, r.Settings, len(config.Options()))

	values, ok := r.StructuredDocument().(config.Values)
	require.True(t, ok)
	require.NotNil(t, values.Schema.NamingStrategy)
	assert.Equal(t, "identity", *values.Schema.NamingStrategy)
}

func TestSettingsTable(t *testing.T) {
	r := NewConfigResult("defaults", config.Default())
	marked := func(name, text string) string { return name + ":" + text }

	data := SettingsTable(r, marked)
	require.Len(t, data, len(r.Settings)+1)
	assert.Equal(t, []string{"Bold:Property", "Bold:Value"}, data[0])

	rows := make(map[string]string)
	for _, row := range data[1:] {
		rows[row[0]] = row[1]
	}
	assert.Equal(t, "Default:true", rows["Property:mp.openapi.scan.beanvalidation"])
	assert.Equal(t, "Muted:-", rows["Property:mp.openapi.model.reader"])

	out, err := RenderTable(SettingsTable(r, Plain))
	require.NoError(t, err)
	assert.Contains(t, out, "mp.openapi.servers.path.<path>")
}

func TestPatternResult(t *testing.T) {
	p, err := pattern.Compile("^com\\.", nil)
	require.NoError(t, err)

	r := NewPatternResult("^com\\.", nil, p, []string{"com.a", "org.b", "com.c"})
	assert.Equal(t, "regex", r.Mode)
	assert.Equal(t, "re2", r.Engine)
	assert.Equal(t, 2, r.MatchedCount())
}
