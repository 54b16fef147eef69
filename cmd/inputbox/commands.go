package inputbox

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/inputbox/internal/version"
	"github.com/arthur-debert/inputbox/pkg/clipboard"
	"github.com/arthur-debert/inputbox/pkg/config"
	"github.com/arthur-debert/inputbox/pkg/detect"
	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/input"
	"github.com/arthur-debert/inputbox/pkg/linking"
	"github.com/arthur-debert/inputbox/pkg/notify"
	"github.com/arthur-debert/inputbox/pkg/plugins"
	"github.com/arthur-debert/inputbox/pkg/service"
	"github.com/arthur-debert/inputbox/pkg/ui/confirmations"
	"github.com/arthur-debert/inputbox/pkg/ui/display"
	"github.com/arthur-debert/inputbox/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newSubmitCmd(opts *rootOptions, deps Deps) *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:     "submit [text...]",
		Short:   MsgSubmitShort,
		Long:    MsgSubmitLong,
		Example: MsgSubmitExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(deps.Stdin)
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadInput)
				}
				text = string(data)
			}

			a, err := loadApp(opts, deps, nil)
			if err != nil {
				return err
			}
			linkOpts, err := linking.OptionsFromConfig(a.config)
			if err != nil {
				return err
			}

			var cb clipboard.Clipboard
			if !noCopy {
				cb = deps.Clipboard
			}

			log.Info().Bool("linking", linkOpts.Enabled).Bool("copy", !noCopy).Msg("Submitting text")

			result, err := input.NewSubmitter(cb, a.service, linkOpts).WithHooks(opts.hooks()).Submit(text)
			out := cmd.OutOrStdout()
			if err != nil {
				if result.Copied {
					_, _ = fmt.Fprintln(out, result.Text)
				}
				return err
			}
			if result.Text == "" {
				_, _ = fmt.Fprintln(out, MsgNothingSubmitted)
				return nil
			}

			if result.Link != nil && a.config.Input.Notify {
				notify.Send(deps.Notifier, MsgNotifyLinkedTitle, result.Link.LinkPath)
			}
			_, _ = fmt.Fprintln(out, result.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, MsgFlagNoCopy)

	return cmd
}

func newLinkCmd(opts *rootOptions, deps Deps) *cobra.Command {
	var (
		fromClipboard bool
		mode          string
		target        string
		copyLink      bool
		notifyUser    bool
	)

	cmd := &cobra.Command{
		Use:     "link [path]",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromClipboard == (len(args) == 1) {
				return errors.New(errors.ErrInvalidInput, MsgErrLinkArgs)
			}

			// An explicit link request links even when automatic linking is off
			overrides := map[string]interface{}{"linking.enabled": true}
			if mode != "" {
				overrides["linking.mode"] = mode
			}
			if target != "" {
				overrides["linking.target_dir"] = target
			}

			a, err := loadApp(opts, deps, overrides)
			if err != nil {
				return err
			}
			linkOpts, err := linking.OptionsFromConfig(a.config)
			if err != nil {
				return err
			}

			var (
				candidate detect.Candidate
				reference string
			)
			if fromClipboard {
				text, err := deps.Clipboard.ReadText()
				if err != nil {
					return err
				}
				if strings.TrimSpace(text) == "" {
					return errors.New(errors.ErrInvalidInput, MsgErrNoClipboard)
				}
				candidate = clipboardCandidate(text)
				reference = strings.TrimSpace(text)
			} else {
				candidate = detect.FromText(args[0])
				reference = args[0]
			}

			ref, err := a.service.TryLink(linkOpts, candidate)
			if err != nil {
				return err
			}
			if ref == nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrNotAFile, reference)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgLinkCreated, ref.Kind, ref.LinkPath)
			opts.hooks().Fire(plugins.OnLink, input.LinkEventData(ref))

			if copyLink {
				if err := deps.Clipboard.WriteText(ref.LinkPath); err != nil {
					return err
				}
			}
			if notifyUser || a.config.Input.Notify {
				notify.Send(deps.Notifier, MsgNotifyLinkedTitle, ref.LinkPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, MsgFlagClipboard)
	cmd.Flags().StringVarP(&mode, "mode", "m", "", MsgFlagMode)
	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().BoolVar(&copyLink, "copy", false, MsgFlagCopy)
	cmd.Flags().BoolVar(&notifyUser, "notify", false, MsgFlagNotify)

	return cmd
}

// clipboardCandidate treats multi-line clipboard text made only of file:
// URIs as a text/uri-list payload, the way file managers copy files
func clipboardCandidate(text string) detect.Candidate {
	if !strings.Contains(strings.TrimSpace(text), "\n") {
		return detect.FromText(text)
	}
	uris := detect.ParseURIList(text)
	for _, uri := range uris {
		if !strings.HasPrefix(strings.ToLower(uri), "file:") {
			return detect.FromText(text)
		}
	}
	return detect.Candidate{Text: text, URIs: uris}
}

func newListCmd(opts *rootOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, deps, nil)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			rows := []display.LinkRow{}
			for rec := range a.service.ListLinks() {
				present, err := a.service.LinkPresent(rec.LinkPath)
				if err != nil {
					log.Warn().Err(err).Str("link", rec.LinkPath).Msg("Cannot check link")
				}
				row := display.NewLinkRow(rec, present)
				if present {
					if row.Target, err = a.service.LinkTarget(rec); err != nil {
						log.Debug().Err(err).Str("link", rec.LinkPath).Msg("Cannot read link target")
					}
				}
				rows = append(rows, row)
			}

			return renderer.RenderLinks(rows)
		},
	}
}

func newUnlinkCmd(opts *rootOptions, deps Deps) *cobra.Command {
	var confirmLastCopy bool

	cmd := &cobra.Command{
		Use:     "unlink <link>",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		Example: MsgUnlinkExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, deps, nil)
			if err != nil {
				return err
			}

			result := a.service.RequestDelete(args[0], confirmLastCopy)
			if result.Outcome == linking.NeedsConfirmation {
				if deps.Interactive == nil || !deps.Interactive() {
					return errors.Newf(errors.ErrInvalidInput, MsgErrLastCopy, result.Record.LinkPath).
						WithDetail("link_count", result.LinkCount)
				}

				dialog := confirmations.NewConsoleDialog(deps.Stdin, cmd.ErrOrStderr())
				ok, err := dialog.ConfirmLastCopy(result.Record)
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgLinkKept, result.Record.LinkPath)
					return nil
				}
				result = a.service.RequestDelete(result.Record.LinkPath, true)
			}

			return reportDeletion(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&confirmLastCopy, "confirm-last-copy", false, MsgFlagConfirmLastCopy)

	return cmd
}

// reportDeletion prints a successful deletion or returns the error of a
// failed one
func reportDeletion(w io.Writer, result linking.DeletionResult) error {
	switch result.Outcome {
	case linking.Deleted:
		_, _ = fmt.Fprintf(w, MsgLinkDeleted, result.Record.LinkPath)
		return nil
	case linking.NotFound, linking.FilesystemError:
		return result.Err
	default:
		return errors.Newf(errors.ErrInternal, MsgErrUnknownOutcome, result.Outcome)
	}
}

func newForgetCmd(opts *rootOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "forget <link>",
		Short:   MsgForgetShort,
		Long:    MsgForgetLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, deps, nil)
			if err != nil {
				return err
			}
			if err := a.service.Forget(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgLinkForgotten, args[0])
			return nil
		},
	}
}

func newPluginsCmd(opts *rootOptions, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plugins",
		Short:   MsgPluginsShort,
		Long:    MsgPluginsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.pluginManager(deps)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			rows := []display.PluginRow{}
			for _, info := range m.Plugins() {
				rows = append(rows, display.PluginRow{
					Name:        info.Name,
					Version:     info.Version,
					Author:      info.Author,
					Description: info.Description,
					Enabled:     info.Enabled,
					Dir:         info.Dir,
					Hooks:       info.Hooks,
				})
			}
			return renderer.RenderPlugins(rows)
		},
	}

	cmd.AddCommand(newPluginToggleCmd(opts, deps, "enable", MsgPluginOnShort, MsgPluginEnabled, true))
	cmd.AddCommand(newPluginToggleCmd(opts, deps, "disable", MsgPluginOffShort, MsgPluginDisabled, false))

	return cmd
}

func newPluginToggleCmd(opts *rootOptions, deps Deps, use, short, done string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.pluginManager(deps)
			if err != nil {
				return err
			}
			if err := m.SetEnabled(args[0], enabled); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), done, args[0])
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, deps, nil)
			if err != nil {
				return err
			}
			content, err := config.Generate(a.config)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pathsOnly()
			if err != nil {
				return err
			}
			path := opts.configPath(p)

			written, err := config.WriteDefaults(deps.FS, path)
			if err != nil {
				return err
			}
			if written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, path)
			}
			return nil
		},
	})

	return cmd
}

func newStatusCmd(opts *rootOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, deps, nil)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), a, service.Detect(), clipboard.Available())
			return nil
		},
	}
}

// printStatus writes the status report. Problems are reported inline rather
// than returned so that the rest of the report is still shown.
func printStatus(w io.Writer, a *app, svc service.Info, clipboardOK bool) {
	line := func(label, value string) {
		_, _ = fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
	}

	_, _ = fmt.Fprintln(w, styles.Render("Header", "Configuration"))
	cfgState := styles.Render("Muted", "(defaults)")
	if _, err := a.deps.FS.Stat(a.cfgFile); err == nil {
		cfgState = styles.Render("Present", "(present)")
	}
	line("Config", styles.Render("FilePath", a.cfgFile)+" "+cfgState)
	line("Registry", styles.Render("FilePath", a.paths.RegistryPath()))

	enabled := styles.Render("Warning", "disabled")
	if a.config.Linking.Enabled {
		enabled = styles.Render("Success", "enabled")
	}
	line("Linking", enabled+", "+styles.Render("LinkKind", a.config.Linking.Mode)+" links")

	if dir, err := a.service.CheckTargetDir(a.config.ExpandedTargetDir()); err != nil {
		line("Target", styles.Render("Error", err.Error()))
	} else {
		line("Target", styles.Render("FilePath", dir)+" "+styles.Render("Present", "(ok)"))
	}

	missing := 0
	for rec := range a.service.ListLinks() {
		if present, err := a.service.LinkPresent(rec.LinkPath); err == nil && !present {
			missing++
		}
	}
	links := fmt.Sprintf("%d recorded", a.service.Count())
	if missing > 0 {
		links += ", " + styles.Render("Missing", fmt.Sprintf("%d missing", missing))
	}
	line("Links", links)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.Render("Header", "Environment"))
	clip := styles.Render("Success", "available")
	if !clipboardOK {
		clip = styles.Render("Error", "unavailable")
	}
	line("Clipboard", clip)

	under := styles.Render("Muted", "no")
	if svc.UnderSystemd {
		under = styles.Render("Success", "yes")
	}
	line("Service", fmt.Sprintf("%s (under systemd user unit: %s)", service.UnitName, under))
	line("PID", fmt.Sprintf("%d", svc.PID))
	if svc.Platform != "" {
		line("Platform", svc.Platform)
	}
	if svc.Hostname != "" {
		line("Host", svc.Hostname)
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd != cmd.Root() {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, "help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "inputbox %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man [dir]",
		Short:  MsgManShort,
		Args:   cobra.MaximumNArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "INPUTBOX",
				Section: "1",
				Source:  "inputbox " + version.Version,
				Manual:  "inputbox manual",
			}

			if len(args) == 0 {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFilesystem, "failed to create %s", args[0])
			}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}
