package config

import (
	"sort"

	"github.com/arthur-debert/oascan/pkg/pattern"
	"github.com/arthur-debert/oascan/pkg/types"
)

// DefaultPropertyNamingStrategy is the property naming strategy used when none is configured
const DefaultPropertyNamingStrategy = "identity"

// NeverScanPackages is the built-in package deny list
func NeverScanPackages() types.StringSet {
	return types.NewStringSet("java.lang")
}

// NeverScanClasses is the built-in class deny list
func NeverScanClasses() types.StringSet {
	return types.NewStringSet()
}

// OpenAPIConfig is the read-only view of the scanning options.
// Every accessor returns the documented default when the option is not
// configured. Optional values use the comma-ok form; collections are never nil
// except ScanPackages and ScanClasses, whose default is "unset".
type OpenAPIConfig interface {
	ModelReader() (string, bool)
	Filter() (string, bool)
	ScanDisable() bool
	ScanPackages() types.StringSet
	ScanClasses() types.StringSet
	ScanExcludePackages() types.StringSet
	ScanExcludeClasses() types.StringSet
	ScanBeanValidation() bool
	Servers() []string
	PathServers(path string) []string
	OperationServers(operationID string) []string
	ScanDependenciesDisable() bool
	ScanDependenciesJars() types.StringSet
	ArrayReferencesEnable() bool
	CustomSchemaRegistryClass() (string, bool)
	ApplicationPathDisable() bool
	PrivatePropertiesEnable() bool
	PropertyNamingStrategy() string
	SortedPropertiesEnable() bool
	Schemas() map[string]string
	OpenAPIVersion() (string, bool)
	InfoTitle() (string, bool)
	InfoVersion() (string, bool)
	InfoDescription() (string, bool)
	InfoTermsOfService() (string, bool)
	InfoContactEmail() (string, bool)
	InfoContactName() (string, bool)
	InfoContactURL() (string, bool)
	InfoLicenseName() (string, bool)
	InfoLicenseURL() (string, bool)
	OperationIDStrategy() (OperationIDStrategy, bool)
	DuplicateOperationIDBehavior() DuplicateOperationIDBehavior
	DefaultProduces() ([]string, bool)
	DefaultConsumes() ([]string, bool)
	AllowNakedPathParameter() (bool, bool)
	ScanProfiles() types.StringSet
	ScanExcludeProfiles() types.StringSet
	RemoveUnusedSchemas() bool
}

// Values holds configured option values as decoded from the sources.
// A nil pointer or nil slice means the option was not configured.
type Values struct {
	ModelReader             *string           `koanf:"model_reader" toml:"model_reader,omitempty" yaml:"model_reader,omitempty" json:"model_reader,omitempty"`
	Filter                  *string           `koanf:"filter" toml:"filter,omitempty" yaml:"filter,omitempty" json:"filter,omitempty"`
	Scan                    Scan              `koanf:"scan" toml:"scan" yaml:"scan" json:"scan"`
	Servers                 Servers           `koanf:"servers" toml:"servers" yaml:"servers" json:"servers"`
	Schema                  Schema            `koanf:"schema" toml:"schema" yaml:"schema" json:"schema"`
	Schemas                 map[string]string `koanf:"schemas" toml:"schemas,omitempty" yaml:"schemas,omitempty" json:"schemas,omitempty"`
	ApplicationPath         ApplicationPath   `koanf:"application_path" toml:"application_path" yaml:"application_path" json:"application_path"`
	OpenAPIVersion          *string           `koanf:"openapi_version" toml:"openapi_version,omitempty" yaml:"openapi_version,omitempty" json:"openapi_version,omitempty"`
	Info                    Info              `koanf:"info" toml:"info" yaml:"info" json:"info"`
	OperationID             OperationID       `koanf:"operation_id" toml:"operation_id" yaml:"operation_id" json:"operation_id"`
	MediaTypes              MediaTypes        `koanf:"media_types" toml:"media_types" yaml:"media_types" json:"media_types"`
	AllowNakedPathParameter *bool             `koanf:"allow_naked_path_parameter" toml:"allow_naked_path_parameter,omitempty" yaml:"allow_naked_path_parameter,omitempty" json:"allow_naked_path_parameter,omitempty"`
}

// Scan holds scanning scope options. Packages and classes keep the raw
// configured string so that regex mode stays available to PatternOf.
type Scan struct {
	Disable         *bool            `koanf:"disable" toml:"disable,omitempty" yaml:"disable,omitempty" json:"disable,omitempty"`
	Packages        *string          `koanf:"packages" toml:"packages,omitempty" yaml:"packages,omitempty" json:"packages,omitempty"`
	Classes         *string          `koanf:"classes" toml:"classes,omitempty" yaml:"classes,omitempty" json:"classes,omitempty"`
	ExcludePackages *string          `koanf:"exclude_packages" toml:"exclude_packages,omitempty" yaml:"exclude_packages,omitempty" json:"exclude_packages,omitempty"`
	ExcludeClasses  *string          `koanf:"exclude_classes" toml:"exclude_classes,omitempty" yaml:"exclude_classes,omitempty" json:"exclude_classes,omitempty"`
	BeanValidation  *bool            `koanf:"bean_validation" toml:"bean_validation,omitempty" yaml:"bean_validation,omitempty" json:"bean_validation,omitempty"`
	Profiles        []string         `koanf:"profiles" toml:"profiles,omitempty" yaml:"profiles,omitempty" json:"profiles,omitempty"`
	ExcludeProfiles []string         `koanf:"exclude_profiles" toml:"exclude_profiles,omitempty" yaml:"exclude_profiles,omitempty" json:"exclude_profiles,omitempty"`
	Dependencies    ScanDependencies `koanf:"dependencies" toml:"dependencies" yaml:"dependencies" json:"dependencies"`
}

// ScanDependencies holds dependency archive scanning options
type ScanDependencies struct {
	Disable *bool    `koanf:"disable" toml:"disable,omitempty" yaml:"disable,omitempty" json:"disable,omitempty"`
	Jars    []string `koanf:"jars" toml:"jars,omitempty" yaml:"jars,omitempty" json:"jars,omitempty"`
}

// Servers holds server URLs, globally and keyed by path or operation id
type Servers struct {
	Global    []string            `koanf:"global" toml:"global,omitempty" yaml:"global,omitempty" json:"global,omitempty"`
	Path      map[string][]string `koanf:"path" toml:"path,omitempty" yaml:"path,omitempty" json:"path,omitempty"`
	Operation map[string][]string `koanf:"operation" toml:"operation,omitempty" yaml:"operation,omitempty" json:"operation,omitempty"`
}

// Schema holds schema generation options
type Schema struct {
	ArrayReferences   *bool   `koanf:"array_references" toml:"array_references,omitempty" yaml:"array_references,omitempty" json:"array_references,omitempty"`
	CustomRegistry    *string `koanf:"custom_registry" toml:"custom_registry,omitempty" yaml:"custom_registry,omitempty" json:"custom_registry,omitempty"`
	PrivateProperties *bool   `koanf:"private_properties" toml:"private_properties,omitempty" yaml:"private_properties,omitempty" json:"private_properties,omitempty"`
	NamingStrategy    *string `koanf:"naming_strategy" toml:"naming_strategy,omitempty" yaml:"naming_strategy,omitempty" json:"naming_strategy,omitempty"`
	SortedProperties  *bool   `koanf:"sorted_properties" toml:"sorted_properties,omitempty" yaml:"sorted_properties,omitempty" json:"sorted_properties,omitempty"`
	RemoveUnused      *bool   `koanf:"remove_unused" toml:"remove_unused,omitempty" yaml:"remove_unused,omitempty" json:"remove_unused,omitempty"`
}

// ApplicationPath holds application path annotation options
type ApplicationPath struct {
	Disable *bool `koanf:"disable" toml:"disable,omitempty" yaml:"disable,omitempty" json:"disable,omitempty"`
}

// Info holds values copied into the document's info section
type Info struct {
	Title          *string `koanf:"title" toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	Version        *string `koanf:"version" toml:"version,omitempty" yaml:"version,omitempty" json:"version,omitempty"`
	Description    *string `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService *string `koanf:"terms_of_service" toml:"terms_of_service,omitempty" yaml:"terms_of_service,omitempty" json:"terms_of_service,omitempty"`
	ContactEmail   *string `koanf:"contact_email" toml:"contact_email,omitempty" yaml:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactName    *string `koanf:"contact_name" toml:"contact_name,omitempty" yaml:"contact_name,omitempty" json:"contact_name,omitempty"`
	ContactURL     *string `koanf:"contact_url" toml:"contact_url,omitempty" yaml:"contact_url,omitempty" json:"contact_url,omitempty"`
	LicenseName    *string `koanf:"license_name" toml:"license_name,omitempty" yaml:"license_name,omitempty" json:"license_name,omitempty"`
	LicenseURL     *string `koanf:"license_url" toml:"license_url,omitempty" yaml:"license_url,omitempty" json:"license_url,omitempty"`
}

// OperationID holds operation id derivation options
type OperationID struct {
	Strategy          *OperationIDStrategy          `koanf:"strategy" toml:"strategy,omitempty" yaml:"strategy,omitempty" json:"strategy,omitempty"`
	DuplicateBehavior *DuplicateOperationIDBehavior `koanf:"duplicate_behavior" toml:"duplicate_behavior,omitempty" yaml:"duplicate_behavior,omitempty" json:"duplicate_behavior,omitempty"`
}

// MediaTypes holds the default media types of operations
type MediaTypes struct {
	Produces []string `koanf:"produces" toml:"produces,omitempty" yaml:"produces,omitempty" json:"produces,omitempty"`
	Consumes []string `koanf:"consumes" toml:"consumes,omitempty" yaml:"consumes,omitempty" json:"consumes,omitempty"`
}

// Config answers OpenAPIConfig from a set of Values. It is immutable once
// built; a zero Config answers every accessor with its default.
type Config struct {
	values  Values
	sources []Source
}

var _ OpenAPIConfig = (*Config)(nil)

// New builds a Config that owns a deep copy of v
func New(v Values) *Config {
	return &Config{values: v.clone()}
}

// Default returns a Config with no configured values
func Default() *Config {
	return &Config{}
}

// Sources returns the files that contributed to this Config, lowest precedence first
func (c *Config) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Values returns a deep copy of the configured values
func (c *Config) Values() Values {
	return c.values.clone()
}

// ModelReader returns the model reader class name
func (c *Config) ModelReader() (string, bool) { return optString(c.values.ModelReader) }

// Filter returns the filter class name
func (c *Config) Filter() (string, bool) { return optString(c.values.Filter) }

// ScanDisable reports whether annotation scanning is disabled
func (c *Config) ScanDisable() bool { return boolOr(c.values.Scan.Disable, false) }

// ScanPackages returns the packages to scan, or nil when unset
func (c *Config) ScanPackages() types.StringSet { return optSet(c.values.Scan.Packages) }

// ScanClasses returns the classes to scan, or nil when unset
func (c *Config) ScanClasses() types.StringSet { return optSet(c.values.Scan.Classes) }

// ScanExcludePackages returns the packages excluded from scanning.
// Defaults to NeverScanPackages.
func (c *Config) ScanExcludePackages() types.StringSet {
	if set := optSet(c.values.Scan.ExcludePackages); set != nil {
		return set
	}
	return NeverScanPackages()
}

// ScanExcludeClasses returns the classes excluded from scanning.
// Defaults to NeverScanClasses.
func (c *Config) ScanExcludeClasses() types.StringSet {
	if set := optSet(c.values.Scan.ExcludeClasses); set != nil {
		return set
	}
	return NeverScanClasses()
}

// ScanBeanValidation reports whether bean validation constraints are scanned
func (c *Config) ScanBeanValidation() bool { return boolOr(c.values.Scan.BeanValidation, true) }

// Servers returns the global servers
func (c *Config) Servers() []string { return cloneList(c.values.Servers.Global) }

// PathServers returns the servers for a path
func (c *Config) PathServers(path string) []string {
	return cloneList(c.values.Servers.Path[path])
}

// OperationServers returns the servers for an operation id
func (c *Config) OperationServers(operationID string) []string {
	return cloneList(c.values.Servers.Operation[operationID])
}

// ServerPaths returns the paths that have servers configured, sorted
func (c *Config) ServerPaths() []string { return sortedKeys(c.values.Servers.Path) }

// ServerOperations returns the operation ids that have servers configured, sorted
func (c *Config) ServerOperations() []string { return sortedKeys(c.values.Servers.Operation) }

// ScanDependenciesDisable reports whether dependency archives are skipped
func (c *Config) ScanDependenciesDisable() bool {
	return boolOr(c.values.Scan.Dependencies.Disable, false)
}

// ScanDependenciesJars returns the dependency archives to scan
func (c *Config) ScanDependenciesJars() types.StringSet {
	return types.NewStringSet(c.values.Scan.Dependencies.Jars...)
}

// ArrayReferencesEnable reports whether array-of-type references may use the shorthand form
func (c *Config) ArrayReferencesEnable() bool { return boolOr(c.values.Schema.ArrayReferences, true) }

// CustomSchemaRegistryClass returns the custom schema registry class name
func (c *Config) CustomSchemaRegistryClass() (string, bool) {
	return optString(c.values.Schema.CustomRegistry)
}

// ApplicationPathDisable reports whether the application path annotation is ignored
func (c *Config) ApplicationPathDisable() bool {
	return boolOr(c.values.ApplicationPath.Disable, false)
}

// PrivatePropertiesEnable reports whether private properties are scanned
func (c *Config) PrivatePropertiesEnable() bool {
	return boolOr(c.values.Schema.PrivateProperties, true)
}

// PropertyNamingStrategy returns the property naming strategy
func (c *Config) PropertyNamingStrategy() string {
	if s, ok := optString(c.values.Schema.NamingStrategy); ok {
		return s
	}
	return DefaultPropertyNamingStrategy
}

// SortedPropertiesEnable reports whether schema properties are sorted
func (c *Config) SortedPropertiesEnable() bool {
	return boolOr(c.values.Schema.SortedProperties, false)
}

// Schemas returns the named reusable schemas
func (c *Config) Schemas() map[string]string {
	out := make(map[string]string, len(c.values.Schemas))
	for k, v := range c.values.Schemas {
		out[k] = v
	}
	return out
}

// OpenAPIVersion returns the OpenAPI version override
func (c *Config) OpenAPIVersion() (string, bool) { return optString(c.values.OpenAPIVersion) }

// InfoTitle returns info.title
func (c *Config) InfoTitle() (string, bool) { return optString(c.values.Info.Title) }

// InfoVersion returns info.version
func (c *Config) InfoVersion() (string, bool) { return optString(c.values.Info.Version) }

// InfoDescription returns info.description
func (c *Config) InfoDescription() (string, bool) { return optString(c.values.Info.Description) }

// InfoTermsOfService returns info.termsOfService
func (c *Config) InfoTermsOfService() (string, bool) {
	return optString(c.values.Info.TermsOfService)
}

// InfoContactEmail returns info.contact.email
func (c *Config) InfoContactEmail() (string, bool) { return optString(c.values.Info.ContactEmail) }

// InfoContactName returns info.contact.name
func (c *Config) InfoContactName() (string, bool) { return optString(c.values.Info.ContactName) }

// InfoContactURL returns info.contact.url
func (c *Config) InfoContactURL() (string, bool) { return optString(c.values.Info.ContactURL) }

// InfoLicenseName returns info.license.name
func (c *Config) InfoLicenseName() (string, bool) { return optString(c.values.Info.LicenseName) }

// InfoLicenseURL returns info.license.url
func (c *Config) InfoLicenseURL() (string, bool) { return optString(c.values.Info.LicenseURL) }

// OperationIDStrategy returns the operation id strategy; there is none by default
func (c *Config) OperationIDStrategy() (OperationIDStrategy, bool) {
	if c.values.OperationID.Strategy == nil {
		return "", false
	}
	return *c.values.OperationID.Strategy, true
}

// DuplicateOperationIDBehavior returns the duplicate operation id behavior
func (c *Config) DuplicateOperationIDBehavior() DuplicateOperationIDBehavior {
	if c.values.OperationID.DuplicateBehavior == nil {
		return DefaultDuplicateOperationIDBehavior
	}
	return *c.values.OperationID.DuplicateBehavior
}

// DefaultProduces returns the default produced media types
func (c *Config) DefaultProduces() ([]string, bool) { return optList(c.values.MediaTypes.Produces) }

// DefaultConsumes returns the default consumed media types
func (c *Config) DefaultConsumes() ([]string, bool) { return optList(c.values.MediaTypes.Consumes) }

// AllowNakedPathParameter returns the naked path parameter flag
func (c *Config) AllowNakedPathParameter() (bool, bool) {
	if c.values.AllowNakedPathParameter == nil {
		return false, false
	}
	return *c.values.AllowNakedPathParameter, true
}

// ScanProfiles returns the profiles to include
func (c *Config) ScanProfiles() types.StringSet {
	return types.NewStringSet(c.values.Scan.Profiles...)
}

// ScanExcludeProfiles returns the profiles to exclude
func (c *Config) ScanExcludeProfiles() types.StringSet {
	return types.NewStringSet(c.values.Scan.ExcludeProfiles...)
}

// RemoveUnusedSchemas reports whether unreferenced schemas are dropped
func (c *Config) RemoveUnusedSchemas() bool { return boolOr(c.values.Schema.RemoveUnused, false) }

// ScanPackagesPattern compiles the configured packages to scan. An unset
// option yields a pattern that matches nothing.
func (c *Config) ScanPackagesPattern(opts ...pattern.Option) (*pattern.Pattern, error) {
	return PatternOf(rawString(c.values.Scan.Packages), nil, opts...)
}

// ScanClassesPattern compiles the configured classes to scan
func (c *Config) ScanClassesPattern(opts ...pattern.Option) (*pattern.Pattern, error) {
	return PatternOf(rawString(c.values.Scan.Classes), nil, opts...)
}

// ScanExcludePackagesPattern compiles the excluded packages merged with NeverScanPackages
func (c *Config) ScanExcludePackagesPattern(opts ...pattern.Option) (*pattern.Pattern, error) {
	return PatternOf(rawString(c.values.Scan.ExcludePackages), NeverScanPackages(), opts...)
}

// ScanExcludeClassesPattern compiles the excluded classes merged with NeverScanClasses
func (c *Config) ScanExcludeClassesPattern(opts ...pattern.Option) (*pattern.Pattern, error) {
	return PatternOf(rawString(c.values.Scan.ExcludeClasses), NeverScanClasses(), opts...)
}

// PatternOf turns a raw option value and an optional built-in set into a matcher.
// See package pattern for the resolution rules.
func PatternOf(raw string, builtIns types.StringSet, opts ...pattern.Option) (*pattern.Pattern, error) {
	return pattern.Compile(raw, builtIns, opts...)
}

// Empty strings count as unset, as in MicroProfile Config.
func optString(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

func rawString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optSet(p *string) types.StringSet {
	s, ok := optString(p)
	if !ok {
		return nil
	}
	return pattern.CSVToSet(s)
}

func optList(l []string) ([]string, bool) {
	if l == nil {
		return nil, false
	}
	return cloneList(l), true
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func cloneList(l []string) []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
