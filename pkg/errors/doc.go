// Package errors provides the structured error type used across oascan.
// Every error carries a stable ErrorCode so callers and tests can branch on
// the failure category instead of on message text.
package errors
