// Package pattern compiles inclusion and exclusion rules into matchers.
//
// A rule is a single configuration string that is read in one of two modes:
//
//   - Regex mode: a value that starts with "^" or ends with "$" is a regular
//     expression authored by the user and is compiled verbatim. Built-in
//     literals are ignored in this mode.
//   - Literal mode: anything else is a comma separated allow-list. Each entry
//     is trimmed, deduplicated, merged with the built-in literals and matched
//     as plain text (regex metacharacters have no special meaning).
//
// An empty literal set produces a matcher that matches nothing, not even the
// empty string. Absence of a rule never matches every input.
//
// Matching is an unanchored search: a literal matches any candidate that
// contains it. Patterns are immutable and safe for concurrent use.
package pattern
