package config

import (
	"fmt"
	"strings"
)

// OperationIDStrategy describes how an operation id is derived from scanned
// program elements
type OperationIDStrategy string

const (
	// StrategyMethod uses the method name
	StrategyMethod OperationIDStrategy = "METHOD"
	// StrategyClassMethod uses the simple class name and the method name
	StrategyClassMethod OperationIDStrategy = "CLASS_METHOD"
	// StrategyPackageClassMethod uses the fully qualified class name and the method name
	StrategyPackageClassMethod OperationIDStrategy = "PACKAGE_CLASS_METHOD"
)

// OperationIDStrategies lists every strategy in declaration order
func OperationIDStrategies() []OperationIDStrategy {
	return []OperationIDStrategy{StrategyMethod, StrategyClassMethod, StrategyPackageClassMethod}
}

// ParseOperationIDStrategy parses a strategy name, case-insensitively
func ParseOperationIDStrategy(s string) (OperationIDStrategy, error) {
	for _, strategy := range OperationIDStrategies() {
		if strings.EqualFold(strings.TrimSpace(s), string(strategy)) {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("unknown operation id strategy %q (expected one of %s)", s, joinNames(OperationIDStrategies()))
}

// DuplicateOperationIDBehavior governs how a consumer reacts when two
// scanned elements resolve to the same operation id
type DuplicateOperationIDBehavior string

const (
	// DuplicateFail aborts document generation
	DuplicateFail DuplicateOperationIDBehavior = "FAIL"
	// DuplicateWarn logs a warning and keeps going
	DuplicateWarn DuplicateOperationIDBehavior = "WARN"
)

// DefaultDuplicateOperationIDBehavior is used when the option is not configured
const DefaultDuplicateOperationIDBehavior = DuplicateWarn

// DuplicateOperationIDBehaviors lists every behavior in declaration order
func DuplicateOperationIDBehaviors() []DuplicateOperationIDBehavior {
	return []DuplicateOperationIDBehavior{DuplicateFail, DuplicateWarn}
}

// ParseDuplicateOperationIDBehavior parses a behavior name, case-insensitively
func ParseDuplicateOperationIDBehavior(s string) (DuplicateOperationIDBehavior, error) {
	for _, behavior := range DuplicateOperationIDBehaviors() {
		if strings.EqualFold(strings.TrimSpace(s), string(behavior)) {
			return behavior, nil
		}
	}
	return "", fmt.Errorf("unknown duplicate operation id behavior %q (expected one of %s)", s, joinNames(DuplicateOperationIDBehaviors()))
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
