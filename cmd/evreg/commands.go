package evreg

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/evreg/internal/version"
	"github.com/arthur-debert/evreg/pkg/config"
	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/logging"
	"github.com/arthur-debert/evreg/pkg/output"
	"github.com/arthur-debert/evreg/pkg/registry"
	"github.com/arthur-debert/evreg/pkg/script"
	"github.com/arthur-debert/evreg/pkg/signature"
	"github.com/arthur-debert/evreg/pkg/topics"
	"github.com/arthur-debert/evreg/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"go.uber.org/multierr"
)

// app holds the state shared by all commands of one root command
type app struct {
	verbosity  int
	format     string
	configPath string

	cfg    *config.Config
	topics *topics.Manager
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "evreg",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTopicsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	tm, err := topics.New(topics.Options{
		Renderer: topics.RendererFor(stdoutIsTerminal(), 0),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return rootCmd
	}
	a.topics = tm
	tm.Install(rootCmd)

	return rootCmd
}

// setup loads configuration, with explicit flags as the top layer, and
// configures logging before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		overrides["logging.verbosity"] = a.verbosity
	}
	if flags.Changed("format") {
		overrides["output.format"] = a.format
	}
	if flags.Changed("continue") {
		cont, _ := flags.GetBool("continue")
		overrides["replay.continue_on_error"] = cont
	}

	cfg, err := config.LoadWithOverrides(a.configPath, overrides)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	a.format = cfg.Output.Format

	logging.SetupLogger(cfg.Logging.Verbosity)
	logging.LogCommand(cmd.CommandPath(), os.Args[1:])

	if cfg.Output.Styles != "" {
		if err := output.LoadStylesFromFile(cfg.Output.Styles); err != nil {
			return fmt.Errorf(MsgErrLoadStyles, err)
		}
	}

	if a.topics != nil {
		a.topics.SetRenderer(topics.RendererFor(stdoutIsTerminal(), cfg.Output.Width))
	}
	return nil
}

// renderer resolves the output format for cmd's output stream
func (a *app) renderer(cmd *cobra.Command) (output.Renderer, error) {
	format, err := output.ParseFormat(a.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}

	return output.NewRenderer(cmd.OutOrStdout(), format), nil
}

func newReplayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "replay <script>",
		Short:   MsgReplayShort,
		Long:    MsgReplayLong,
		Example: MsgReplayExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.WithFields(map[string]interface{}{
				"component": "cmd.replay",
				"path":      args[0],
			})

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			if err := s.CheckTypes(a.cfg.Signature.KnownTypes); err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			opts := script.Options{ContinueOnError: a.cfg.Replay.ContinueOnError}

			table := registry.NewSynchronized[string, *types.Handler]()
			pool := types.NewHandlerPool()
			report, replayErr := script.Replay(table, pool, s, opts)

			logger.Info().
				Str("script", s.Name).
				Int("events", table.Len()).
				Strs("handler_names", pool.Names()).
				Msg("Replay complete")

			if err := r.RenderTable(output.Snapshot(table)); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			if err := r.RenderReport(output.NewReportView(report)); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			if replayErr != nil {
				return fmt.Errorf(MsgReplayHadFailure, s.Name, replayErr)
			}
			return nil
		},
	}

	cmd.Flags().Bool("continue", false, MsgFlagContinue)
	return cmd
}

// knownTypes returns the configured type list, extended with the builtin
// tags when builtin is set. An empty result accepts any type.
func (a *app) knownTypes(builtin bool) []string {
	known := append([]string(nil), a.cfg.Signature.KnownTypes...)
	if builtin {
		for _, t := range signature.BuiltinTypes {
			known = append(known, string(t))
		}
	}
	return known
}

func newCheckCmd(a *app) *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:     "check <script>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			problems := multierr.Combine(s.CheckTypes(a.knownTypes(builtin)), script.Check(s))
			if problems == nil {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgCheckOK, s.Name, len(s.Ops))
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			errs := multierr.Errors(problems)
			for _, e := range errs {
				if err := r.RenderError(e); err != nil {
					return fmt.Errorf(MsgErrRender, err)
				}
			}
			return fmt.Errorf(MsgCheckProblems, s.Name, len(errs))
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, MsgFlagBuiltin)
	return cmd
}

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if a.topics == nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return a.topics.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.topics == nil {
				return errors.Newf(errors.ErrNotFound, MsgTopicNotFound, "topics")
			}
			if len(args) == 0 {
				a.topics.PrintList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			topic, ok := a.topics.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgTopicNotFound, args[0]).WithDetail("topic", args[0])
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.topics.Render(topic))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
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
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unknown shell %q (supported: bash, zsh, fish, powershell)", shell)
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return err
		},
	}
}

// ManHeader is the man page header shared by the man command and evreg-manpage
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "EVREG",
		Section: "1",
		Source:  "evreg " + version.Version,
		Manual:  "evreg manual",
	}
}
