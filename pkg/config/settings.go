package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/oascan/pkg/types"
)

// Setting is the resolved value of one option, formatted for display
type Setting struct {
	Option OptionSpec
	// Value is empty when the option is unset
	Value string
	Set   bool
}

// IsDefault reports whether the value equals the documented default
func (s Setting) IsDefault() bool {
	return s.Value == s.Option.Default
}

// Settings returns the resolved value of every option in table order
func (c *Config) Settings() []Setting {
	out := make([]Setting, 0, len(optionTable))
	for _, o := range optionTable {
		format, ok := settingFormatters[o.Key]
		if !ok {
			continue
		}
		value, set := format(c)
		out = append(out, Setting{Option: o, Value: value, Set: set})
	}
	return out
}

func flag(get func(*Config) bool) func(*Config) (string, bool) {
	return func(c *Config) (string, bool) { return strconv.FormatBool(get(c)), true }
}

// setOf treats a nil set as unset
func setOf(get func(*Config) types.StringSet) func(*Config) (string, bool) {
	return func(c *Config) (string, bool) {
		s := get(c)
		return strings.Join(s.Sorted(), ","), s != nil
	}
}

// members treats an empty set as unset
func members(get func(*Config) types.StringSet) func(*Config) (string, bool) {
	return func(c *Config) (string, bool) {
		s := get(c)
		return strings.Join(s.Sorted(), ","), s.Len() > 0
	}
}

func listOf(get func(*Config) []string) func(*Config) (string, bool) {
	return func(c *Config) (string, bool) {
		l := get(c)
		return strings.Join(l, ","), len(l) > 0
	}
}

func optionalList(get func(*Config) ([]string, bool)) func(*Config) (string, bool) {
	return func(c *Config) (string, bool) {
		l, ok := get(c)
		return strings.Join(l, ","), ok
	}
}

func listMap(entries func(*Config) []string, get func(*Config, string) []string) func(*Config) (string, bool) {
	return func(c *Config) (string, bool) {
		names := entries(c)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%s", name, strings.Join(get(c, name), ",")))
		}
		return strings.Join(parts, "; "), len(parts) > 0
	}
}

var settingFormatters = map[string]func(*Config) (string, bool){
	"model_reader":                    (*Config).ModelReader,
	"filter":                          (*Config).Filter,
	"scan.disable":                    flag((*Config).ScanDisable),
	"scan.packages":                   setOf((*Config).ScanPackages),
	"scan.classes":                    setOf((*Config).ScanClasses),
	"scan.exclude_packages":           setOf((*Config).ScanExcludePackages),
	"scan.exclude_classes":            setOf((*Config).ScanExcludeClasses),
	"scan.bean_validation":            flag((*Config).ScanBeanValidation),
	"servers.global":                  listOf((*Config).Servers),
	"servers.path":                    listMap((*Config).ServerPaths, (*Config).PathServers),
	"servers.operation":               listMap((*Config).ServerOperations, (*Config).OperationServers),
	"scan.dependencies.disable":       flag((*Config).ScanDependenciesDisable),
	"scan.dependencies.jars":          members((*Config).ScanDependenciesJars),
	"schema.array_references":         flag((*Config).ArrayReferencesEnable),
	"schema.custom_registry":          (*Config).CustomSchemaRegistryClass,
	"application_path.disable":        flag((*Config).ApplicationPathDisable),
	"schema.private_properties":       flag((*Config).PrivatePropertiesEnable),
	"schema.naming_strategy":          func(c *Config) (string, bool) { return c.PropertyNamingStrategy(), true },
	"schema.sorted_properties":        flag((*Config).SortedPropertiesEnable),
	"schemas":                         schemasSetting,
	"openapi_version":                 (*Config).OpenAPIVersion,
	"info.title":                      (*Config).InfoTitle,
	"info.version":                    (*Config).InfoVersion,
	"info.description":                (*Config).InfoDescription,
	"info.terms_of_service":           (*Config).InfoTermsOfService,
	"info.contact_email":              (*Config).InfoContactEmail,
	"info.contact_name":               (*Config).InfoContactName,
	"info.contact_url":                (*Config).InfoContactURL,
	"info.license_name":               (*Config).InfoLicenseName,
	"info.license_url":                (*Config).InfoLicenseURL,
	"operation_id.strategy":           strategySetting,
	"operation_id.duplicate_behavior": func(c *Config) (string, bool) { return string(c.DuplicateOperationIDBehavior()), true },
	"media_types.produces":            optionalList((*Config).DefaultProduces),
	"media_types.consumes":            optionalList((*Config).DefaultConsumes),
	"allow_naked_path_parameter":      nakedPathSetting,
	"scan.profiles":                   members((*Config).ScanProfiles),
	"scan.exclude_profiles":           members((*Config).ScanExcludeProfiles),
	"schema.remove_unused":            flag((*Config).RemoveUnusedSchemas),
}

func schemasSetting(c *Config) (string, bool) {
	schemas := c.Schemas()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ","), len(names) > 0
}

func strategySetting(c *Config) (string, bool) {
	s, ok := c.OperationIDStrategy()
	return string(s), ok
}

func nakedPathSetting(c *Config) (string, bool) {
	allow, ok := c.AllowNakedPathParameter()
	if !ok {
		return "", false
	}
	return strconv.FormatBool(allow), true
}
