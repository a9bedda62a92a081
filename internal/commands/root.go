// Package commands provides CLI commands for zamani-demo.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zamanilabs/zamani-demo/internal/config"
	apierrors "github.com/zamanilabs/zamani-demo/internal/errors"
	"github.com/zamanilabs/zamani-demo/internal/logging"
	"github.com/zamanilabs/zamani-demo/internal/render"
	"github.com/zamanilabs/zamani-demo/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// errNoTerminal is returned when the demo is started without a terminal
var errNoTerminal = errors.New("the interactive demo needs a terminal; use 'zamani-demo simulate' to script a session")

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd(deps *Dependencies) *cobra.Command {
	deps = deps.withDefaults()

	cmd := &cobra.Command{
		Use:   "zamani-demo",
		Short: "The ZamaniChat hero demo in your terminal",
		Long: `zamani-demo runs the interactive chat mockup of the Zamani Labs landing
page: rotating prompt suggestions, a crossfading hero background, a
scripted chat that answers in the name of the selected model, the consent
switch and the bottom navigation.

Examples:
  zamani-demo                           Start the interactive demo
  zamani-demo -m "GPT-5" --route /chat  Start with a model and route
  zamani-demo simulate -s send:Hello -s wait:1s
  zamani-demo models                    List the model catalog
  zamani-demo config                    Configure settings`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "zamani-demo %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runDemo(cmd, deps)
		},
	}

	cmd.PersistentFlags().StringP("model", "m", "", "Model selected at start (see 'zamani-demo models')")
	cmd.PersistentFlags().String("route", "", "Path highlighted in the bottom navigation at start")
	cmd.Flags().String("theme", "", "TUI theme ("+strings.Join(render.TUIThemeNames(), ", ")+")")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewSimulateCmd(deps))
	cmd.AddCommand(NewModelsCmd(deps))
	cmd.AddCommand(NewConfigCmd(deps))

	return cmd
}

var rootCmd = NewRootCmd(NewDependencies())

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err))
		os.Exit(1)
	}
}

// loadSettings returns the configuration with command-line overrides applied
func loadSettings(cmd *cobra.Command, deps *Dependencies) (config.Config, error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.DefaultModel = v
	}
	if v, _ := cmd.Flags().GetString("route"); v != "" {
		cfg.InitialRoute = v
	}
	if cmd.Flags().Lookup("theme") != nil {
		if v, _ := cmd.Flags().GetString("theme"); v != "" {
			cfg.TUITheme = v
		}
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, deps *Dependencies) error {
	if !deps.IsTerminal() {
		return errNoTerminal
	}

	cfg, err := loadSettings(cmd, deps)
	if err != nil {
		return err
	}

	if cfg.TUITheme != "" {
		if !render.SetTUITheme(cfg.TUITheme) {
			return apierrors.NewConfigError("tui_theme",
				fmt.Sprintf("unknown theme %q (available: %s)", cfg.TUITheme, strings.Join(render.TUIThemeNames(), ", ")))
		}
		tui.UpdateTheme()
	}

	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return err
	}
	log, closer, err := logging.NewFile(cfg.LogLevel, logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	return deps.TUI.RunDemo(tui.Options{
		Model:           cfg.DefaultModel,
		Route:           cfg.InitialRoute,
		CopyToClipboard: cfg.CopyToClipboard,
		Markdown:        render.OptionsFromConfig(cfg.Markdown),
		Logger:          log,
	})
}
