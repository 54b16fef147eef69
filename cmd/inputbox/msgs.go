package inputbox

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Clipboard text entry with file linking for sandboxed apps"
	MsgSubmitShort     = "Clean text and copy it, linking it first if it names a file"
	MsgLinkShort       = "Link a file into the target directory"
	MsgListShort       = "List recorded links"
	MsgUnlinkShort     = "Remove a recorded link"
	MsgForgetShort     = "Drop the record of a link that no longer exists"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigInitShort = "Write the default configuration file"
	MsgStatusShort     = "Show configuration, registry and service status"
	MsgTopicsShort     = "Display available documentation topics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgPluginsShort    = "List plugins and their hooks"
	MsgPluginOnShort   = "Enable a plugin"
	MsgPluginOffShort  = "Disable a plugin"

	// Status messages
	MsgNothingSubmitted  = "Nothing to submit."
	MsgLinkCreated       = "Created %s link %s\n"
	MsgLinkDeleted       = "Deleted %s\n"
	MsgLinkKept          = "Kept %s\n"
	MsgLinkForgotten     = "Forgot %s\n"
	MsgConfigWritten     = "Wrote default configuration to %s\n"
	MsgConfigExists      = "Configuration file %s already exists\n"
	MsgNotifyLinkedTitle = "Link created"
	MsgCopied            = "Copied to clipboard."
	MsgPluginEnabled     = "Enabled plugin %s\n"
	MsgPluginDisabled    = "Disabled plugin %s\n"

	// Error messages
	MsgErrInitPaths      = "failed to initialize paths"
	MsgErrNotAFile       = "%q is not a readable file"
	MsgErrLastCopy       = "%s: this is the last copy of this data; pass --confirm-last-copy to delete it"
	MsgErrNoClipboard    = "clipboard is empty"
	MsgErrReadInput      = "failed to read standard input"
	MsgErrNoCommand      = "no command specified"
	MsgErrLinkArgs       = "link takes exactly one path, or --clipboard"
	MsgErrUnknownOutcome = "unexpected deletion outcome %s"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig          = "Configuration file (default $XDG_CONFIG_HOME/inputbox/config.toml)"
	MsgFlagFormat          = "Output format: auto, term, text or json"
	MsgFlagNoCopy          = "Print the result without copying it to the clipboard"
	MsgFlagClipboard       = "Read the path from the clipboard"
	MsgFlagMode            = "Link kind: hard or symbolic (overrides linking.mode)"
	MsgFlagTarget          = "Target directory (overrides linking.target_dir)"
	MsgFlagCopy            = "Copy the link path to the clipboard"
	MsgFlagNotify          = "Show a desktop notification"
	MsgFlagConfirmLastCopy = "Delete hard links even when they hold the last copy of the data"
	MsgFlagNoPlugins       = "Do not load plugins or fire their hooks"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/submit-long.txt
	msgSubmitLongRaw string
	MsgSubmitLong    = strings.TrimSpace(msgSubmitLongRaw)

	//go:embed msgs/submit-example.txt
	msgSubmitExampleRaw string
	MsgSubmitExample    = strings.TrimRight(msgSubmitExampleRaw, "\n")

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/unlink-example.txt
	msgUnlinkExampleRaw string
	MsgUnlinkExample    = strings.TrimRight(msgUnlinkExampleRaw, "\n")

	//go:embed msgs/forget-long.txt
	msgForgetLongRaw string
	MsgForgetLong    = strings.TrimSpace(msgForgetLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/plugins-long.txt
	msgPluginsLongRaw string
	MsgPluginsLong    = strings.TrimSpace(msgPluginsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
