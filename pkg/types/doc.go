// Package types defines small value types shared across oascan packages,
// such as the StringSet used by option accessors and the pattern resolver.
package types
