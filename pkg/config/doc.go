// Package config resolves the options that control how oascan scans a
// codebase and populates the generated OpenAPI document.
//
// The package has three layers:
//
//   - OpenAPIConfig, a read-only accessor surface with a documented default
//     for every option. A zero Config answers every accessor with its default.
//   - Builder, the only mutable collaborator. It collects MicroProfile style
//     properties (mp.openapi.*) and exposes DoAllowNakedPathParameter.
//   - Load and Watch, which merge embedded defaults, the user file, project
//     files, property sources, host properties and environment variables with
//     koanf, then decode the result into an immutable Config.
//
// The option table returned by Options is the single description of every
// option: its property key, its key in structured files, its type and its
// default.
package config
