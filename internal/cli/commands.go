// Package cli builds the linktime command tree.
package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linktime/internal/version"
	"github.com/arthur-debert/linktime/pkg/cobrax/topics"
	"github.com/arthur-debert/linktime/pkg/config"
	"github.com/arthur-debert/linktime/pkg/errors"
	"github.com/arthur-debert/linktime/pkg/logging"
	"github.com/arthur-debert/linktime/pkg/ui"
)

//go:embed help/*.md
var helpFiles embed.FS

// app carries the state shared by all commands of one invocation.
type app struct {
	verbosity  int
	format     string
	configPath string
	noColor    bool

	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "linktime",
		Short: "Inspect plug-ins registered at program start",
		Long: `linktime lists the plug-in families linked into this binary and the
implementations that registered themselves in each, and exercises the
bundled Shape family.`,
		Version:           version.Version,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: auto, term, text, json, yaml, toml")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/linktime/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newAreaCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	helpFS, err := fs.Sub(helpFiles, "help")
	if err == nil {
		renderer := &helpRenderer{app: a, rich: topics.NewGlamourRenderer(), plain: &topics.PlainRenderer{}}
		if _, err := topics.Initialize(rootCmd, helpFS, topics.Options{Renderer: renderer}); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// helpRenderer picks the topic renderer when a topic is shown, so that
// --format and --no-color apply to help as they do to results.
type helpRenderer struct {
	app   *app
	rich  topics.Renderer
	plain topics.Renderer
}

func (h *helpRenderer) Render(content string, format string) string {
	if h.app.noColor {
		return h.plain.Render(content, format)
	}

	f, err := ui.ParseFormat(h.app.format)
	if err != nil || f == ui.FormatAuto {
		f = ui.DetectFormat(os.Stdout)
	}
	if f != ui.FormatTerminal {
		return h.plain.Render(content, format)
	}
	return h.rich.Render(content, format)
}

// setup loads configuration, configures logging and picks the renderer.
// Flags given on the command line win over the config file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		a.verbosity = cfg.Log.Verbosity
	}
	if !flags.Changed("format") {
		a.format = cfg.Output.Format
	}
	if !flags.Changed("no-color") {
		a.noColor = !cfg.Output.Color
	}

	logging.SetupLogger(a.verbosity)
	log.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Source).
		Msg("Command started")

	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return errors.Wrap(err, errors.ErrOutputFormat, "invalid --format")
	}

	a.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout(), ui.Options{NoColor: a.noColor})
	return err
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr, ui.Options{})
		if rerr != nil {
			return err
		}
		_ = renderer.RenderError(err)
	}
	return err
}
