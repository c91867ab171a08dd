package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/beevik/etree"
	"github.com/magiconair/properties"

	"github.com/arthur-debert/oascan/pkg/errors"
)

// SourceKind identifies how a source file is read
type SourceKind string

const (
	SourceUser       SourceKind = "user"
	SourceProject    SourceKind = "project"
	SourceProperties SourceKind = "properties"
	SourcePom        SourceKind = "pom"
)

// Source is a configuration file that contributes to the resolved options
type Source struct {
	Kind SourceKind
	Path string
}

// UserConfigRelPath is the user file location relative to the XDG config home
var UserConfigRelPath = filepath.Join("oascan", "config.toml")

// ProjectConfigNames are the structured project files, in lookup order.
// Only the first one found is used.
var ProjectConfigNames = []string{".oascan.toml", "oascan.toml", "oascan.yaml", "oascan.yml"}

// PropertiesFiles are the MicroProfile property files relative to the project
// directory, lowest precedence first
var PropertiesFiles = []string{
	filepath.Join("src", "main", "resources", "META-INF", "microprofile-config.properties"),
	filepath.Join("META-INF", "microprofile-config.properties"),
}

// PomFile is the Maven project file whose <properties> are read
const PomFile = "pom.xml"

// DiscoverSources lists the existing source files for opts, lowest precedence first
func DiscoverSources(opts LoadOptions) []Source {
	var sources []Source

	if user := userConfigPath(opts); user != "" {
		sources = append(sources, Source{Kind: SourceUser, Path: user})
	}

	dir := opts.projectDir()
	for _, name := range ProjectConfigNames {
		p := filepath.Join(dir, name)
		if fileExists(p) {
			sources = append(sources, Source{Kind: SourceProject, Path: p})
			break
		}
	}
	for _, rel := range PropertiesFiles {
		p := filepath.Join(dir, rel)
		if fileExists(p) {
			sources = append(sources, Source{Kind: SourceProperties, Path: p})
		}
	}
	if p := filepath.Join(dir, PomFile); fileExists(p) {
		sources = append(sources, Source{Kind: SourcePom, Path: p})
	}
	return sources
}

func userConfigPath(opts LoadOptions) string {
	if opts.SkipUserConfig {
		return ""
	}
	if opts.UserConfigFile != "" {
		if fileExists(opts.UserConfigFile) {
			return opts.UserConfigFile
		}
		return ""
	}
	p, err := xdg.SearchConfigFile(UserConfigRelPath)
	if err != nil {
		return ""
	}
	return p
}

// ReadPropertiesFile reads a .properties file. Placeholder expansion is
// disabled; values are taken literally.
func ReadPropertiesFile(path string) (map[string]string, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadAll([]string{path})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read properties file %s", path).
			WithDetail("path", path)
	}
	return p.Map(), nil
}

// ReadPomProperties returns the mp.openapi.* entries of the <properties>
// element of a Maven pom.xml
func ReadPomProperties(path string) (map[string]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read %s", path).
			WithDetail("path", path)
	}

	props := make(map[string]string)
	project := doc.SelectElement("project")
	if project == nil {
		return props, nil
	}
	section := project.SelectElement("properties")
	if section == nil {
		return props, nil
	}
	for _, el := range section.ChildElements() {
		key := el.Tag
		if el.Space != "" {
			key = el.Space + ":" + el.Tag
		}
		if !strings.HasPrefix(key, PropertyPrefix) {
			continue
		}
		props[key] = strings.TrimSpace(el.Text())
	}
	return props, nil
}

func readPropertySource(src Source) (map[string]string, error) {
	switch src.Kind {
	case SourcePom:
		return ReadPomProperties(src.Path)
	default:
		return ReadPropertiesFile(src.Path)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
