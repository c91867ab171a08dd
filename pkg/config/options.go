package config

import (
	"strings"
	"unicode"
)

// PropertyPrefix is the namespace shared by every recognized property key
const PropertyPrefix = "mp.openapi."

// OptionType describes how a raw property value is interpreted
type OptionType string

const (
	TypeString OptionType = "string"
	TypeBool   OptionType = "bool"
	// TypeSet is a CSV string kept raw so it can resolve to a pattern
	TypeSet  OptionType = "set"
	TypeList OptionType = "list"
	TypeEnum OptionType = "enum"
	// TypeListMap and TypeStringMap are prefix options keyed by the property suffix
	TypeListMap   OptionType = "map[list]"
	TypeStringMap OptionType = "map[string]"
)

// OptionSpec describes one recognized option
type OptionSpec struct {
	// Name is a short human label
	Name string
	// Key is the dotted path in the structured layout (config files, koanf)
	Key string
	// Property is the MicroProfile property key. For prefix options it ends
	// with a dot and the remainder of the key names the map entry.
	Property    string
	Prefix      bool
	Type        OptionType
	Default     string
	Description string
}

// EnvVar returns the environment variable that sets this option.
// Prefix options cannot be set from the environment.
func (o OptionSpec) EnvVar() string {
	if o.Prefix {
		return ""
	}
	return EnvName(o.Property)
}

// DisplayProperty returns the property key with a placeholder for prefix options
func (o OptionSpec) DisplayProperty() string {
	if !o.Prefix {
		return o.Property
	}
	placeholder := "<name>"
	switch o.Type {
	case TypeListMap:
		if strings.HasSuffix(o.Property, ".path.") {
			placeholder = "<path>"
		} else {
			placeholder = "<operationId>"
		}
	}
	return o.Property + placeholder
}

const smallrye = PropertyPrefix + "extensions.smallrye."

var optionTable = []OptionSpec{
	{Name: "model reader", Key: "model_reader", Property: PropertyPrefix + "model.reader", Type: TypeString,
		Description: "Class name of the model reader that supplies a base document"},
	{Name: "filter", Key: "filter", Property: PropertyPrefix + "filter", Type: TypeString,
		Description: "Class name of the filter applied to the final document"},
	{Name: "scanning disabled", Key: "scan.disable", Property: PropertyPrefix + "scan.disable", Type: TypeBool, Default: "false",
		Description: "Disable annotation scanning entirely"},
	{Name: "included packages", Key: "scan.packages", Property: PropertyPrefix + "scan.packages", Type: TypeSet,
		Description: "Packages to scan, as a CSV list or a regular expression"},
	{Name: "included classes", Key: "scan.classes", Property: PropertyPrefix + "scan.classes", Type: TypeSet,
		Description: "Classes to scan, as a CSV list or a regular expression"},
	{Name: "excluded packages", Key: "scan.exclude_packages", Property: PropertyPrefix + "scan.exclude.packages", Type: TypeSet, Default: "java.lang",
		Description: "Packages never scanned, merged with the built-in deny list in literal mode"},
	{Name: "excluded classes", Key: "scan.exclude_classes", Property: PropertyPrefix + "scan.exclude.classes", Type: TypeSet,
		Description: "Classes never scanned, merged with the built-in deny list in literal mode"},
	{Name: "bean validation", Key: "scan.bean_validation", Property: PropertyPrefix + "scan.beanvalidation", Type: TypeBool, Default: "true",
		Description: "Apply bean validation constraints to schemas"},
	{Name: "servers", Key: "servers.global", Property: PropertyPrefix + "servers", Type: TypeList,
		Description: "Server URLs for the whole document"},
	{Name: "path servers", Key: "servers.path", Property: PropertyPrefix + "servers.path.", Prefix: true, Type: TypeListMap,
		Description: "Server URLs for one path"},
	{Name: "operation servers", Key: "servers.operation", Property: PropertyPrefix + "servers.operation.", Prefix: true, Type: TypeListMap,
		Description: "Server URLs for one operation"},
	{Name: "dependency scanning disabled", Key: "scan.dependencies.disable", Property: smallrye + "scan-dependencies.disable", Type: TypeBool, Default: "false",
		Description: "Skip dependency archives while scanning"},
	{Name: "dependency jars", Key: "scan.dependencies.jars", Property: smallrye + "scan-dependencies.jars", Type: TypeList,
		Description: "Dependency archives to scan"},
	{Name: "array references", Key: "schema.array_references", Property: smallrye + "array-references.enable", Type: TypeBool, Default: "true",
		Description: "Allow references to array schemas"},
	{Name: "custom schema registry", Key: "schema.custom_registry", Property: smallrye + "custom-schema-registry.class", Type: TypeString,
		Description: "Class name of a custom schema registry"},
	{Name: "application path disabled", Key: "application_path.disable", Property: smallrye + "application-path.disable", Type: TypeBool, Default: "false",
		Description: "Ignore the application path annotation when building paths"},
	{Name: "private properties", Key: "schema.private_properties", Property: smallrye + "private-properties.enable", Type: TypeBool, Default: "true",
		Description: "Include private fields as schema properties"},
	{Name: "property naming strategy", Key: "schema.naming_strategy", Property: smallrye + "property-naming-strategy", Type: TypeString, Default: DefaultPropertyNamingStrategy,
		Description: "Naming strategy applied to schema property names"},
	{Name: "sorted properties", Key: "schema.sorted_properties", Property: smallrye + "sorted-properties.enable", Type: TypeBool, Default: "false",
		Description: "Sort schema properties by name"},
	{Name: "schemas", Key: "schemas", Property: PropertyPrefix + "schema.", Prefix: true, Type: TypeStringMap,
		Description: "Reusable schema definitions keyed by class name"},
	{Name: "OpenAPI version", Key: "openapi_version", Property: smallrye + "openapi", Type: TypeString,
		Description: "OpenAPI version written to the document"},
	{Name: "info title", Key: "info.title", Property: smallrye + "info.title", Type: TypeString,
		Description: "Document title"},
	{Name: "info version", Key: "info.version", Property: smallrye + "info.version", Type: TypeString,
		Description: "Document version"},
	{Name: "info description", Key: "info.description", Property: smallrye + "info.description", Type: TypeString,
		Description: "Document description"},
	{Name: "info terms of service", Key: "info.terms_of_service", Property: smallrye + "info.termsOfService", Type: TypeString,
		Description: "Terms of service URL"},
	{Name: "info contact email", Key: "info.contact_email", Property: smallrye + "info.contact.email", Type: TypeString,
		Description: "Contact email"},
	{Name: "info contact name", Key: "info.contact_name", Property: smallrye + "info.contact.name", Type: TypeString,
		Description: "Contact name"},
	{Name: "info contact url", Key: "info.contact_url", Property: smallrye + "info.contact.url", Type: TypeString,
		Description: "Contact URL"},
	{Name: "info license name", Key: "info.license_name", Property: smallrye + "info.license.name", Type: TypeString,
		Description: "License name"},
	{Name: "info license url", Key: "info.license_url", Property: smallrye + "info.license.url", Type: TypeString,
		Description: "License URL"},
	{Name: "operation id strategy", Key: "operation_id.strategy", Property: smallrye + "operationIdStrategy", Type: TypeEnum,
		Description: "How missing operation ids are derived: " + joinNames(OperationIDStrategies())},
	{Name: "duplicate operation id", Key: "operation_id.duplicate_behavior", Property: smallrye + "duplicateOperationIdBehavior", Type: TypeEnum, Default: string(DefaultDuplicateOperationIDBehavior),
		Description: "What happens when two operations share an id: " + joinNames(DuplicateOperationIDBehaviors())},
	{Name: "default produces", Key: "media_types.produces", Property: smallrye + "default-produces", Type: TypeList,
		Description: "Media types produced by operations that declare none"},
	{Name: "default consumes", Key: "media_types.consumes", Property: smallrye + "default-consumes", Type: TypeList,
		Description: "Media types consumed by operations that declare none"},
	{Name: "allow naked path parameter", Key: "allow_naked_path_parameter", Property: smallrye + "allow-naked-path-parameter", Type: TypeBool,
		Description: "Accept path parameters that carry no annotation"},
	{Name: "scan profiles", Key: "scan.profiles", Property: smallrye + "scan.profiles", Type: TypeList,
		Description: "Profiles whose annotated classes are scanned"},
	{Name: "scan exclude profiles", Key: "scan.exclude_profiles", Property: smallrye + "scan.exclude.profiles", Type: TypeList,
		Description: "Profiles whose annotated classes are skipped"},
	{Name: "remove unused schemas", Key: "schema.remove_unused", Property: smallrye + "remove-unused-schemas.enable", Type: TypeBool, Default: "false",
		Description: "Drop schemas that nothing references"},
}

// Options returns the option table in documentation order.
// The returned slice is a copy.
func Options() []OptionSpec {
	out := make([]OptionSpec, len(optionTable))
	copy(out, optionTable)
	return out
}

// LookupProperty finds the option for a property key. For prefix options the
// remainder of the key is returned as the map entry name; a prefix key with an
// empty remainder is not recognized. Exact keys win over prefix keys.
func LookupProperty(property string) (OptionSpec, string, bool) {
	for _, o := range optionTable {
		if !o.Prefix && o.Property == property {
			return o, "", true
		}
	}
	for _, o := range optionTable {
		if o.Prefix && strings.HasPrefix(property, o.Property) && len(property) > len(o.Property) {
			return o, strings.TrimPrefix(property, o.Property), true
		}
	}
	return OptionSpec{}, "", false
}

// LookupKey finds the option stored at a structured key
func LookupKey(key string) (OptionSpec, bool) {
	for _, o := range optionTable {
		if o.Key == key {
			return o, true
		}
	}
	return OptionSpec{}, false
}

// EnvName maps a property key to its environment variable name the way
// MicroProfile Config does: every non-alphanumeric character becomes an
// underscore and the result is upper-cased.
func EnvName(property string) string {
	var b strings.Builder
	b.Grow(len(property))
	for _, r := range property {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// EnvPrefix is the common prefix of every option environment variable
var EnvPrefix = EnvName(PropertyPrefix)
