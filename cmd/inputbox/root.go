package inputbox

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/inputbox/internal/version"
	"github.com/arthur-debert/inputbox/pkg/clipboard"
	"github.com/arthur-debert/inputbox/pkg/cobrax/topics"
	"github.com/arthur-debert/inputbox/pkg/config"
	"github.com/arthur-debert/inputbox/pkg/datastore"
	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/filesystem"
	"github.com/arthur-debert/inputbox/pkg/linking"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/notify"
	"github.com/arthur-debert/inputbox/pkg/paths"
	"github.com/arthur-debert/inputbox/pkg/plugins"
	"github.com/arthur-debert/inputbox/pkg/registry"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/arthur-debert/inputbox/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// Deps are the outside-world collaborators of the commands. Tests replace
// them with in-memory versions.
type Deps struct {
	FS        types.FS
	Clipboard clipboard.Clipboard
	Notifier  notify.Notifier
	Stdin     io.Reader
	// Interactive reports whether a user can answer prompts
	Interactive func() bool
}

// DefaultDeps wires the commands to the real system
func DefaultDeps() Deps {
	return Deps{
		FS:        filesystem.NewOS(),
		Clipboard: clipboard.NewSystem(),
		Notifier:  notify.NewDesktop(),
		Stdin:     os.Stdin,
		Interactive: func() bool {
			return ui.IsInteractive(os.Stdin) && ui.IsInteractive(os.Stdout)
		},
	}
}

// rootOptions holds the persistent flags and the plugins loaded for the
// running command
type rootOptions struct {
	verbosity  int
	configFile string
	format     string
	noPlugins  bool

	plugins *plugins.Manager
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(DefaultDeps())
}

// NewRootCmdWithDeps creates the root command using deps instead of the real
// clipboard, notifier and terminal
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "inputbox",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			opts.startPlugins(cmd, deps)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.noPlugins, "no-plugins", false, MsgFlagNoPlugins)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newSubmitCmd(opts, deps))
	rootCmd.AddCommand(newLinkCmd(opts, deps))
	rootCmd.AddCommand(newListCmd(opts, deps))
	rootCmd.AddCommand(newUnlinkCmd(opts, deps))
	rootCmd.AddCommand(newForgetCmd(opts, deps))
	rootCmd.AddCommand(newConfigCmd(opts, deps))
	rootCmd.AddCommand(newStatusCmd(opts, deps))
	rootCmd.AddCommand(newPluginsCmd(opts, deps))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Initialize topic-based help system from the embedded topics
	if files, err := fs.Sub(topicFiles, "topics"); err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, files, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		} else {
			rootCmd.SetHelpCommandGroupID("misc")
		}
	}

	withExitHooks(rootCmd, opts)

	return rootCmd
}

// pluginManager loads the plugins once per command
func (o *rootOptions) pluginManager(deps Deps) (*plugins.Manager, error) {
	if o.plugins != nil {
		return o.plugins, nil
	}
	p, err := pathsOnly()
	if err != nil {
		return nil, err
	}
	m := plugins.NewManager(deps.FS, p.PluginsDir(), p.PluginStatePath())
	if err := m.Load(); err != nil {
		return nil, err
	}
	o.plugins = m
	return m, nil
}

// hooks returns the plugin manager firing hooks for this command, nil when
// plugins are off. A nil *plugins.Manager fires nothing.
func (o *rootOptions) hooks() *plugins.Manager {
	if o.noPlugins {
		return nil
	}
	return o.plugins
}

// startPlugins loads the plugins and fires on_launch. Plugin problems never
// stop the command.
func (o *rootOptions) startPlugins(cmd *cobra.Command, deps Deps) {
	if o.noPlugins {
		return
	}
	m, err := o.pluginManager(deps)
	if err != nil {
		log.Warn().Err(err).Msg("Plugins unavailable")
		return
	}
	m.Initialize()
	m.Fire(plugins.OnLaunch, map[string]interface{}{"command": cmd.CommandPath()})
}

// withExitHooks wraps the RunE of c and its subcommands so on_exit fires
// after every command, including failed ones
func withExitHooks(c *cobra.Command, opts *rootOptions) {
	for _, sub := range c.Commands() {
		withExitHooks(sub, opts)
	}
	if c.RunE == nil {
		return
	}
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if opts.plugins != nil && !opts.noPlugins {
			data := map[string]interface{}{"command": cmd.CommandPath(), "error": ""}
			if err != nil {
				data["error"] = err.Error()
			}
			opts.plugins.Fire(plugins.OnExit, data)
			opts.plugins.Shutdown()
		}
		return err
	}
}

// app is everything a command needs once flags are parsed
type app struct {
	deps    Deps
	paths   paths.Paths
	cfgFile string
	config  *config.Config
	service *linking.Service
}

// configPath returns the --config flag value, or the XDG location
func (o *rootOptions) configPath(p paths.Paths) string {
	if o.configFile != "" {
		return paths.ExpandHome(o.configFile)
	}
	return p.ConfigFilePath()
}

// pathsOnly resolves paths for commands that must work without a valid
// configuration
func pathsOnly() (paths.Paths, error) {
	p, err := paths.New()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrInitPaths)
	}
	return p, nil
}

// loadApp resolves paths, loads configuration with overrides on top and
// opens the link registry
func loadApp(opts *rootOptions, deps Deps, overrides map[string]interface{}) (*app, error) {
	p, err := pathsOnly()
	if err != nil {
		return nil, err
	}

	cfgFile := opts.configPath(p)
	cfg, err := config.LoadConfigurationWithOverrides(cfgFile, overrides)
	if err != nil {
		return nil, err
	}
	if err := logging.ApplyConfiguredLevel(opts.verbosity, cfg.Logging.Level); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid logging.level")
	}

	reg, err := registry.Open(datastore.New(deps.FS, p.RegistryPath()))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("config", cfgFile).
		Str("registry", p.RegistryPath()).
		Int("links", reg.Len()).
		Msg("Application loaded")

	return &app{
		deps:    deps,
		paths:   p,
		cfgFile: cfgFile,
		config:  cfg,
		service: linking.NewService(deps.FS, reg),
	}, nil
}

// renderer builds the renderer selected by --format for cmd's output
func (o *rootOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
