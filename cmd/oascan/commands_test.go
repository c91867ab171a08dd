package oascan

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/oascan/pkg/config"
	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/ui/display"
)

// execute runs the CLI against an isolated project directory
func execute(t *testing.T, project string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--no-user-config", "--project", project}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCommandStructure(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"config", "pattern", "version", "topics", "completion", "man", "help"} {
		assert.NotNil(t, findCommand(root, name), name)
	}

	configCmd := findCommand(root, "config")
	require.NotNil(t, configCmd)
	for _, name := range []string{"show", "defaults", "docs", "watch", "init"} {
		assert.NotNil(t, findCommand(configCmd, name), name)
	}

	assert.Equal(t, "core", findCommand(root, "pattern").GroupID)
	assert.Equal(t, "misc", findCommand(root, "topics").GroupID)

	for _, flag := range []string{"verbose", "project", "format", "engine", "no-user-config", "property"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestNoCommand(t *testing.T) {
	_, err := execute(t, t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestConfigShowText(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, ".oascan.toml", "[scan]\npackages = \"com.example.api\"\n")

	out, err := execute(t, dir, "config", "show", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "oascan configuration (show)")
	assert.Contains(t, out, "source: project")
	assert.Contains(t, out, "mp.openapi.scan.packages")
	assert.Contains(t, out, "com.example.api")
	assert.NotContains(t, out, "\x1b[")
}

func TestConfigShowJSONWithProperties(t *testing.T) {
	out, err := execute(t, t.TempDir(), "config", "show", "--format", "json",
		"-D", "mp.openapi.scan.disable=true",
		"-D", "mp.openapi.servers.path./v1=https://a.example.com, https://b.example.com")
	require.NoError(t, err)

	var v config.Values
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.NotNil(t, v.Scan.Disable)
	assert.True(t, *v.Scan.Disable)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, v.Servers.Path["/v1"])
}

func TestConfigShowFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{name: "property_without_value", args: []string{"-D", "mp.openapi.scan.disable"}, code: errors.ErrInvalidInput},
		{name: "bad_format", args: []string{"--format", "xml"}, code: errors.ErrInvalidInput},
		{name: "bad_engine", args: []string{"--engine", "pcre"}, code: errors.ErrInvalidInput},
		{name: "invalid_regex", args: []string{"-D", "mp.openapi.scan.packages=^(com"}, code: errors.ErrPatternInvalid},
		{name: "malformed_bool", args: []string{"-D", "mp.openapi.scan.disable=maybe"}, code: errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, t.TempDir(), append([]string{"config", "show"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestConfigShowEngineAcceptsLookahead(t *testing.T) {
	_, err := execute(t, t.TempDir(), "config", "show", "--engine", "backtracking",
		"-D", `mp.openapi.scan.exclude.classes=^(?!com\.example).*$`)
	assert.NoError(t, err)
}

func TestConfigDefaultsTOML(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, ".oascan.toml", "[scan]\ndisable = true\n")

	out, err := execute(t, dir, "config", "defaults", "--format", "toml")
	require.NoError(t, err)

	var v config.Values
	require.NoError(t, toml.Unmarshal([]byte(out), &v))
	require.NotNil(t, v.Scan.Disable)
	assert.False(t, *v.Scan.Disable)
	require.NotNil(t, v.Scan.BeanValidation)
	assert.True(t, *v.Scan.BeanValidation)
}

func TestConfigDocs(t *testing.T) {
	out, err := execute(t, t.TempDir(), "config", "docs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# oascan options"))
	assert.Contains(t, out, "`mp.openapi.scan.disable`")
	assert.Contains(t, out, "MP_OPENAPI_SCAN_DISABLE")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, ".oascan.toml")

	content, err := os.ReadFile(filepath.Join(dir, ".oascan.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[scan]")

	_, err = execute(t, dir, "config", "init")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))

	_, err = execute(t, dir, "config", "init", "--force")
	assert.NoError(t, err)

	// the commented template loads to the defaults
	_, err = execute(t, dir, "config", "show")
	assert.NoError(t, err)
}

func TestConfigWatchWithoutSources(t *testing.T) {
	_, err := execute(t, t.TempDir(), "config", "watch", "--format", "text")
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(err))
}

func TestPatternCommand(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "pattern", "com.example.api, com.example.model",
			"com.example.api.Orders", "org.acme.Other")
		require.NoError(t, err)
		assert.Contains(t, out, "mode: literal")
		assert.Contains(t, out, "\nmatch\tcom.example.api.Orders")
		assert.Contains(t, out, "no match\torg.acme.Other")
	})

	t.Run("builtin", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "pattern", "--builtin", "java.lang", "", "java.lang.String")
		require.NoError(t, err)
		assert.Contains(t, out, "\nmatch\tjava.lang.String")
	})

	t.Run("empty never matches", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "pattern", "", "anything")
		require.NoError(t, err)
		assert.Contains(t, out, "no match\tanything")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "pattern", "--format", "json", `^com\.example\..*`, "com.example.A", "org.B")
		require.NoError(t, err)

		var result display.PatternResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "regex", result.Mode)
		assert.Equal(t, 1, result.MatchedCount())
	})

	t.Run("invalid regex", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "pattern", "^(unclosed", "x")
		require.Error(t, err)
		assert.Equal(t, errors.ErrPatternInvalid, errors.GetErrorCode(err))
	})

	t.Run("lookahead needs backtracking", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "pattern", `^(?!internal).*$`, "api")
		require.Error(t, err)

		out, err := execute(t, t.TempDir(), "pattern", "--engine", "backtracking", `^(?!internal).*$`, "api", "internal.x")
		require.NoError(t, err)
		assert.Contains(t, out, "\nmatch\tapi")
		assert.Contains(t, out, "no match\tinternal.x")
	})

	t.Run("requires a value", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "pattern")
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "oascan version dev")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, t.TempDir(), "help", "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "Scan filter patterns")

	out, err = execute(t, t.TempDir(), "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns")
	assert.Contains(t, out, "sources")
	assert.Contains(t, out, "--engine")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, t.TempDir(), "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}

	_, err := execute(t, t.TempDir(), "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "man")
	require.NoError(t, err)
	assert.Contains(t, out, "OASCAN")
}

func TestParseProperties(t *testing.T) {
	props, err := parseProperties([]string{"a=1", " b =x=y", "a=2", "c="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "2", "b": "x=y", "c": ""}, props)

	props, err = parseProperties(nil)
	require.NoError(t, err)
	assert.Nil(t, props)

	_, err = parseProperties([]string{"=value"})
	assert.Error(t, err)
}

func TestPropertyCompletion(t *testing.T) {
	names, _ := propertyCompletion(nil, nil, "mp.openapi.servers")
	assert.Contains(t, names, "mp.openapi.servers=")
	assert.Contains(t, names, "mp.openapi.servers.path.")
}
