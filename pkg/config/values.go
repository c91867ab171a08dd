package config

import "strings"

func (v Values) clone() Values {
	out := v
	out.ModelReader = cloneStr(v.ModelReader)
	out.Filter = cloneStr(v.Filter)
	out.Scan = Scan{
		Disable:         cloneBool(v.Scan.Disable),
		Packages:        cloneStr(v.Scan.Packages),
		Classes:         cloneStr(v.Scan.Classes),
		ExcludePackages: cloneStr(v.Scan.ExcludePackages),
		ExcludeClasses:  cloneStr(v.Scan.ExcludeClasses),
		BeanValidation:  cloneBool(v.Scan.BeanValidation),
		Profiles:        cloneNilList(v.Scan.Profiles),
		ExcludeProfiles: cloneNilList(v.Scan.ExcludeProfiles),
		Dependencies: ScanDependencies{
			Disable: cloneBool(v.Scan.Dependencies.Disable),
			Jars:    cloneNilList(v.Scan.Dependencies.Jars),
		},
	}
	out.Servers = Servers{
		Global:    cloneNilList(v.Servers.Global),
		Path:      cloneListMap(v.Servers.Path),
		Operation: cloneListMap(v.Servers.Operation),
	}
	out.Schema = Schema{
		ArrayReferences:   cloneBool(v.Schema.ArrayReferences),
		CustomRegistry:    cloneStr(v.Schema.CustomRegistry),
		PrivateProperties: cloneBool(v.Schema.PrivateProperties),
		NamingStrategy:    cloneStr(v.Schema.NamingStrategy),
		SortedProperties:  cloneBool(v.Schema.SortedProperties),
		RemoveUnused:      cloneBool(v.Schema.RemoveUnused),
	}
	if v.Schemas != nil {
		out.Schemas = make(map[string]string, len(v.Schemas))
		for k, s := range v.Schemas {
			out.Schemas[k] = s
		}
	}
	out.ApplicationPath = ApplicationPath{Disable: cloneBool(v.ApplicationPath.Disable)}
	out.OpenAPIVersion = cloneStr(v.OpenAPIVersion)
	out.Info = Info{
		Title:          cloneStr(v.Info.Title),
		Version:        cloneStr(v.Info.Version),
		Description:    cloneStr(v.Info.Description),
		TermsOfService: cloneStr(v.Info.TermsOfService),
		ContactEmail:   cloneStr(v.Info.ContactEmail),
		ContactName:    cloneStr(v.Info.ContactName),
		ContactURL:     cloneStr(v.Info.ContactURL),
		LicenseName:    cloneStr(v.Info.LicenseName),
		LicenseURL:     cloneStr(v.Info.LicenseURL),
	}
	if v.OperationID.Strategy != nil {
		s := *v.OperationID.Strategy
		out.OperationID.Strategy = &s
	}
	if v.OperationID.DuplicateBehavior != nil {
		b := *v.OperationID.DuplicateBehavior
		out.OperationID.DuplicateBehavior = &b
	}
	out.MediaTypes = MediaTypes{
		Produces: cloneNilList(v.MediaTypes.Produces),
		Consumes: cloneNilList(v.MediaTypes.Consumes),
	}
	out.AllowNakedPathParameter = cloneBool(v.AllowNakedPathParameter)
	return out
}

// Effective returns the values with every defaulted option filled in.
// Options without a default, such as the model reader, stay unset.
func (c *Config) Effective() Values {
	v := c.values.clone()

	v.Scan.Disable = boolPtr(c.ScanDisable())
	v.Scan.BeanValidation = boolPtr(c.ScanBeanValidation())
	if v.Scan.ExcludePackages == nil {
		v.Scan.ExcludePackages = strPtr(strings.Join(NeverScanPackages().Sorted(), ","))
	}
	if v.Scan.ExcludeClasses == nil {
		v.Scan.ExcludeClasses = strPtr(strings.Join(NeverScanClasses().Sorted(), ","))
	}
	v.Scan.Dependencies.Disable = boolPtr(c.ScanDependenciesDisable())
	v.Schema.ArrayReferences = boolPtr(c.ArrayReferencesEnable())
	v.Schema.PrivateProperties = boolPtr(c.PrivatePropertiesEnable())
	v.Schema.NamingStrategy = strPtr(c.PropertyNamingStrategy())
	v.Schema.SortedProperties = boolPtr(c.SortedPropertiesEnable())
	v.Schema.RemoveUnused = boolPtr(c.RemoveUnusedSchemas())
	v.ApplicationPath.Disable = boolPtr(c.ApplicationPathDisable())
	dup := c.DuplicateOperationIDBehavior()
	v.OperationID.DuplicateBehavior = &dup
	return v
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	b := *p
	return &b
}

func cloneNilList(l []string) []string {
	if l == nil {
		return nil
	}
	return cloneList(l)
}

func cloneListMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, l := range m {
		out[k] = cloneList(l)
	}
	return out
}
