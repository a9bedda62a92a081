package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zamanilabs/zamani-demo/internal/logging"
	"github.com/zamanilabs/zamani-demo/internal/script"
	"github.com/zamanilabs/zamani-demo/internal/snapshot"
)

// NewSimulateCmd creates the simulate command
func NewSimulateCmd(deps *Dependencies) *cobra.Command {
	var (
		steps  []string
		file   string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted session on a virtual clock and print its snapshot",
		Long: `Run the demo without a terminal. Steps are applied in order on a manual
clock, so timers only fire during wait steps.

Steps:
  type:<text>        Replace the prompt buffer
  clear              Empty the prompt buffer
  key:enter          Press Enter in the prompt
  key:shift+enter    Press Shift+Enter (adds a newline)
  send[:<text>]      Send the buffer, or <text> directly
  wait:<duration>    Advance the clock (1s, 250ms, 6000)
  open               Toggle the model dropdown
  select:<model>     Select a model
  down, up, pick     Move the dropdown cursor and select under it
  click-outside      Pointer-down outside every widget
  flip               Flip the contribution consent
  nav:<path>         Activate a bottom navigation entry
  menu               Toggle the header menu
  follow:<n>         Follow the n-th header menu link
  unmount            Tear the demo down

Examples:
  zamani-demo simulate -s send:Hello -s wait:1s
  zamani-demo simulate -s open -s select:GPT-5 -s send:Hi -s wait:1s --format json
  zamani-demo simulate -f session.steps -o session.html --format html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := steps
			if file != "" {
				fromFile, err := readSteps(file)
				if err != nil {
					return err
				}
				raw = append(fromFile, steps...)
			}
			return runSimulate(cmd, deps, raw, format, output)
		},
	}

	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "Step to apply (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read steps from a file, one per line")
	cmd.Flags().StringVar(&format, "format", "text", "Output format ("+strings.Join(snapshot.Formats(), ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the snapshot to a file")

	return cmd
}

func runSimulate(cmd *cobra.Command, deps *Dependencies, raw []string, format, output string) error {
	f, err := snapshot.ParseFormat(format)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd, deps)
	if err != nil {
		return err
	}

	level := "warn"
	if cfg.LogLevel == "debug" {
		level = "debug"
	}
	log, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	session, err := script.Simulate(script.Config{
		Model:    cfg.DefaultModel,
		Location: cfg.InitialRoute,
		Logger:   log,
	}, raw)
	if err != nil {
		return err
	}

	report := snapshot.NewReport(session.Controller.Snapshot(), session.Elapsed(), session.Navigations())

	if output == "" {
		return snapshot.Write(cmd.OutOrStdout(), report, f, stdoutOptions(cmd.OutOrStdout()))
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := snapshot.Write(out, report, f, snapshot.Options{Width: 80}); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Snapshot saved to %s\n", output)
	return nil
}

// stdoutOptions sizes text output to w when w is the terminal
func stdoutOptions(w io.Writer) snapshot.Options {
	if f, ok := w.(*os.File); ok {
		return snapshot.Options{Width: snapshot.TerminalWidth(f)}
	}
	return snapshot.Options{Width: 80}
}

// readSteps reads one step per line, skipping blank lines and # comments
func readSteps(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read steps file: %w", err)
	}
	defer f.Close()

	var steps []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		steps = append(steps, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read steps file: %w", err)
	}
	return steps, nil
}
