package oascan

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Resolve MicroProfile OpenAPI scanning configuration"
	MsgConfigShort         = "Inspect the scanning configuration"
	MsgConfigShowShort     = "Show the resolved configuration"
	MsgConfigDefaultsShort = "Show the built-in defaults"
	MsgConfigDocsShort     = "Describe every configuration option"
	MsgConfigWatchShort    = "Show the configuration again whenever a source changes"
	MsgConfigInitShort     = "Write a commented .oascan.toml template"
	MsgPatternShort        = "Test candidate names against a scan filter value"
	MsgVersionShort        = "Print version information"
	MsgTopicsShort         = "Display available documentation topics"
	MsgTopicsLong          = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort     = "Generate shell completion script"
	MsgManShort            = "Generate man page"

	// Status messages
	MsgConfigWritten  = "Wrote %s"
	MsgWatching       = "Watching %d configuration source(s). Press Ctrl-C to stop."
	MsgReloaded       = "Configuration reloaded"
	MsgPatternSummary = "%d of %d candidate(s) matched"

	// Error messages
	MsgErrBadProperty = "invalid property %q, expected key=value"
	MsgErrNoCommand   = "no command specified"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject      = "Project directory holding pom.xml and the config files"
	MsgFlagFormat       = "Output format (auto, term, text, json, toml, yaml)"
	MsgFlagNoUserConfig = "Ignore the user config file"
	MsgFlagProperty     = "Set a property, as key=value (repeatable)"
	MsgFlagEngine       = "Regular expression engine (re2, backtracking)"
	MsgFlagBuiltin      = "Built-in names merged into literal values (comma-separated)"
	MsgFlagForce        = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-show-example.txt
	msgConfigShowExampleRaw string
	MsgConfigShowExample    = strings.TrimRight(msgConfigShowExampleRaw, "\n")

	//go:embed msgs/config-watch-long.txt
	msgConfigWatchLongRaw string
	MsgConfigWatchLong    = strings.TrimSpace(msgConfigWatchLongRaw)

	//go:embed msgs/pattern-long.txt
	msgPatternLongRaw string
	MsgPatternLong    = strings.TrimSpace(msgPatternLongRaw)

	//go:embed msgs/pattern-example.txt
	msgPatternExampleRaw string
	MsgPatternExample    = strings.TrimRight(msgPatternExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
