package commands

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zamanilabs/zamani-demo/internal/config"
	"github.com/zamanilabs/zamani-demo/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunDemo(opts tui.Options) error
	RunConfig() error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// TUI is the terminal user interface.
	TUI TUIInterface

	// IsTerminal reports whether stdin and stdout are a terminal.
	IsTerminal func() bool

	// LoadConfig returns the configuration with environment overrides.
	LoadConfig func() (config.Config, error)
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunDemo(opts tui.Options) error {
	return tui.RunDemo(opts)
}

func (d *DefaultTUI) RunConfig() error {
	return tui.RunConfig()
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:        &DefaultTUI{},
		IsTerminal: isTerminal,
		LoadConfig: config.LoadConfig,
	}
}

// withDefaults fills the fields a caller left nil
func (d *Dependencies) withDefaults() *Dependencies {
	out := NewDependencies()
	if d == nil {
		return out
	}
	if d.TUI != nil {
		out.TUI = d.TUI
	}
	if d.IsTerminal != nil {
		out.IsTerminal = d.IsTerminal
	}
	if d.LoadConfig != nil {
		out.LoadConfig = d.LoadConfig
	}
	return out
}

func isTerminal() bool {
	tty := func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return tty(os.Stdin) && tty(os.Stdout)
}
