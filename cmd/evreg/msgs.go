package evreg

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Event handler registry with signature checks"
	MsgReplayShort     = "Replay a registration script and print the registry"
	MsgCheckShort      = "Check a registration script for signature mismatches"
	MsgTopicsShort     = "List help topics or show one"
	MsgTopicsLong      = "Display the help topics that document signatures and registration scripts beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Status messages
	MsgCheckOK          = "%s: %d operations, no problems found\n"
	MsgCheckProblems    = "%s: %d problem(s) found"
	MsgVersionFormat    = "evreg version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten       = "Man pages written to %s\n"
	MsgTopicNotFound    = "unknown help topic %q (see 'evreg topics')"
	MsgNoCommand        = "no command specified"
	MsgReplayHadFailure = "replay of %s failed: %w"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrFormat     = "invalid output format: %w"
	MsgErrRender     = "failed to render output: %w"
	MsgErrLoadStyles = "failed to load styles: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/evreg/config.toml)"
	MsgFlagContinue = "Keep replaying after a failed operation"
	MsgFlagBuiltin  = "Restrict parameter types to the builtin tags and signature.known_types"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/replay-long.txt
	msgReplayLongRaw string
	MsgReplayLong    = strings.TrimSpace(msgReplayLongRaw)

	//go:embed msgs/replay-example.txt
	msgReplayExampleRaw string
	MsgReplayExample    = strings.TrimRight(msgReplayExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
