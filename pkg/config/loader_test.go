package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/pattern"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{ProjectDir: dir, SkipUserConfig: true, SkipEnv: true}
}

func TestLoadEmbeddedDefaultsMatchAccessors(t *testing.T) {
	cfg, err := Load(isolatedOptions(t.TempDir()))
	require.NoError(t, err)

	assert.Empty(t, cfg.Sources())
	assert.Equal(t, Default().Effective(), cfg.Effective())
}

func TestLoadProjectTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".oascan.toml"), `
model_reader = "com.example.Reader"

[scan]
disable = true
packages = ["com.example.api", "com.example.model"]
exclude_classes = "com.example.Internal"
profiles = "dev, test"

[servers]
global = ["https://api.example.com"]

[servers.path]
"/v1.0/items" = ["https://items.example.com"]

[operation_id]
strategy = "class_method"
duplicate_behavior = "FAIL"

[media_types]
produces = "application/json,application/xml"
`)

	cfg, err := Load(isolatedOptions(dir))
	require.NoError(t, err)

	require.Len(t, cfg.Sources(), 1)
	assert.Equal(t, SourceProject, cfg.Sources()[0].Kind)

	reader, ok := cfg.ModelReader()
	assert.True(t, ok)
	assert.Equal(t, "com.example.Reader", reader)
	assert.True(t, cfg.ScanDisable())
	assert.Equal(t, []string{"com.example.api", "com.example.model"}, cfg.ScanPackages().Sorted())
	assert.Equal(t, []string{"com.example.Internal"}, cfg.ScanExcludeClasses().Sorted())
	assert.Equal(t, []string{"dev", "test"}, cfg.ScanProfiles().Sorted())
	assert.Equal(t, []string{"https://api.example.com"}, cfg.Servers())
	assert.Equal(t, []string{"https://items.example.com"}, cfg.PathServers("/v1.0/items"))

	strategy, ok := cfg.OperationIDStrategy()
	assert.True(t, ok)
	assert.Equal(t, StrategyClassMethod, strategy)
	assert.Equal(t, DuplicateFail, cfg.DuplicateOperationIDBehavior())

	produces, ok := cfg.DefaultProduces()
	assert.True(t, ok)
	assert.Equal(t, []string{"application/json", "application/xml"}, produces)

	// untouched options keep their defaults
	assert.True(t, cfg.ScanBeanValidation())
	assert.Equal(t, []string{"java.lang"}, cfg.ScanExcludePackages().Sorted())
}

func TestLoadProjectYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "oascan.yaml"), `
scan:
  bean_validation: false
schema:
  sorted_properties: true
info:
  title: Orders
`)

	cfg, err := Load(isolatedOptions(dir))
	require.NoError(t, err)

	assert.False(t, cfg.ScanBeanValidation())
	assert.True(t, cfg.SortedPropertiesEnable())
	title, ok := cfg.InfoTitle()
	assert.True(t, ok)
	assert.Equal(t, "Orders", title)
}

func TestLoadFirstProjectFileWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".oascan.toml"), "[scan]\ndisable = true\n")
	writeFile(t, filepath.Join(dir, "oascan.yaml"), "scan:\n  disable: false\n")

	cfg, err := Load(isolatedOptions(dir))
	require.NoError(t, err)
	assert.True(t, cfg.ScanDisable())
	assert.Len(t, cfg.Sources(), 1)
}

func TestLoadPropertySources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "main", "resources", "META-INF", "microprofile-config.properties"), `
mp.openapi.scan.packages=com.example
mp.openapi.servers=https://a.example.com,https://b.example.com
mp.openapi.servers.path./api/v1.0=https://path.example.com
mp.openapi.schema.java.util.UUID={"type":"string","format":"uuid"}
mp.openapi.extensions.smallrye.info.title=From properties
mp.openapi.filter=
quarkus.http.port=8080
`)
	writeFile(t, filepath.Join(dir, "pom.xml"), `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <properties>
    <maven.compiler.release>17</maven.compiler.release>
    <mp.openapi.extensions.smallrye.info.title>From pom</mp.openapi.extensions.smallrye.info.title>
    <mp.openapi.extensions.smallrye.operationIdStrategy>METHOD</mp.openapi.extensions.smallrye.operationIdStrategy>
  </properties>
</project>
`)

	cfg, err := Load(isolatedOptions(dir))
	require.NoError(t, err)

	require.Len(t, cfg.Sources(), 2)
	assert.Equal(t, SourceProperties, cfg.Sources()[0].Kind)
	assert.Equal(t, SourcePom, cfg.Sources()[1].Kind)

	assert.Equal(t, []string{"com.example"}, cfg.ScanPackages().Sorted())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Servers())
	assert.Equal(t, []string{"https://path.example.com"}, cfg.PathServers("/api/v1.0"))
	assert.Equal(t, `{"type":"string","format":"uuid"}`, cfg.Schemas()["java.util.UUID"])

	title, _ := cfg.InfoTitle()
	assert.Equal(t, "From pom", title)
	strategy, ok := cfg.OperationIDStrategy()
	assert.True(t, ok)
	assert.Equal(t, StrategyMethod, strategy)

	_, ok = cfg.Filter()
	assert.False(t, ok)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, user, "[info]\ntitle = \"user\"\nversion = \"1\"\ndescription = \"user\"\nlicense_name = \"user\"\n")
	writeFile(t, filepath.Join(dir, ".oascan.toml"), "[info]\nversion = \"2\"\ndescription = \"project\"\nlicense_name = \"project\"\n")
	writeFile(t, filepath.Join(dir, "META-INF", "microprofile-config.properties"),
		"mp.openapi.extensions.smallrye.info.description=properties\nmp.openapi.extensions.smallrye.info.license.name=properties\n")

	t.Setenv("MP_OPENAPI_EXTENSIONS_SMALLRYE_INFO_LICENSE_NAME", "env")
	t.Setenv("MP_OPENAPI_UNRELATED_THING", "ignored")

	cfg, err := Load(LoadOptions{
		ProjectDir:     dir,
		UserConfigFile: user,
		Properties: map[string]string{
			"mp.openapi.extensions.smallrye.info.termsOfService": "https://host.example.com/tos",
			"mp.openapi.extensions.smallrye.info.license.name":   "host",
		},
	})
	require.NoError(t, err)

	require.Len(t, cfg.Sources(), 3)
	assert.Equal(t, SourceUser, cfg.Sources()[0].Kind)

	title, _ := cfg.InfoTitle()
	version, _ := cfg.InfoVersion()
	description, _ := cfg.InfoDescription()
	tos, _ := cfg.InfoTermsOfService()
	license, _ := cfg.InfoLicenseName()

	assert.Equal(t, "user", title)
	assert.Equal(t, "2", version)
	assert.Equal(t, "properties", description)
	assert.Equal(t, "https://host.example.com/tos", tos)
	assert.Equal(t, "env", license)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("MP_OPENAPI_SCAN_DISABLE", "true")
	t.Setenv("MP_OPENAPI_EXTENSIONS_SMALLRYE_SCAN_DEPENDENCIES_JARS", "a.jar, b.jar")
	t.Setenv("MP_OPENAPI_SCAN_EXCLUDE_PACKAGES", "")

	cfg, err := Load(LoadOptions{ProjectDir: t.TempDir(), SkipUserConfig: true})
	require.NoError(t, err)

	assert.True(t, cfg.ScanDisable())
	assert.Equal(t, []string{"a.jar", "b.jar"}, cfg.ScanDependenciesJars().Sorted())
	assert.Equal(t, []string{"java.lang"}, cfg.ScanExcludePackages().Sorted())
}

func TestLoadSkipEnv(t *testing.T) {
	t.Setenv("MP_OPENAPI_SCAN_DISABLE", "true")

	cfg, err := Load(isolatedOptions(t.TempDir()))
	require.NoError(t, err)
	assert.False(t, cfg.ScanDisable())
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		body  string
		props map[string]string
		code  errors.ErrorCode
	}{
		{
			name:  "malformed_bool",
			props: map[string]string{"mp.openapi.scan.disable": "maybe"},
			code:  errors.ErrConfigValid,
		},
		{
			name:  "unknown_enum",
			props: map[string]string{"mp.openapi.extensions.smallrye.duplicateOperationIdBehavior": "IGNORE"},
			code:  errors.ErrConfigValid,
		},
		{
			name:  "invalid_regex",
			props: map[string]string{"mp.openapi.scan.classes": "^(unclosed"},
			code:  errors.ErrPatternInvalid,
		},
		{
			name: "broken_toml",
			file: ".oascan.toml",
			body: "[scan\ndisable = ",
			code: errors.ErrConfigParse,
		},
		{
			name: "broken_pom",
			file: "pom.xml",
			body: "<project><properties>",
			code: errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, tt.file), tt.body)
			}
			opts := isolatedOptions(dir)
			opts.Properties = tt.props

			cfg, err := Load(opts)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestLoadInvalidRegexDetails(t *testing.T) {
	opts := isolatedOptions(t.TempDir())
	opts.Properties = map[string]string{"mp.openapi.scan.exclude.packages": "(?=com)$"}

	_, err := Load(opts)
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "mp.openapi.scan.exclude.packages", details["property"])
	assert.Equal(t, "(?=com)$", details["pattern"])

	opts.Engine = pattern.EngineBacktracking
	_, err = Load(opts)
	assert.NoError(t, err)
}

func TestReadPomProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom.xml")
	writeFile(t, path, `<project><artifactId>x</artifactId></project>`)

	props, err := ReadPomProperties(path)
	require.NoError(t, err)
	assert.Empty(t, props)
}
