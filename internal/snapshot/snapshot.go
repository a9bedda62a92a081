// Package snapshot writes the state of a demo session in the formats
// offered by the simulate command.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/zamanilabs/zamani-demo/internal/page"
	"github.com/zamanilabs/zamani-demo/internal/widget"
)

// Format is an output format
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats returns every supported format name
func Formats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatMarkdown),
		string(FormatHTML),
	}
}

// ParseFormat accepts a format name or a common alias
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected one of: %s)", s, strings.Join(Formats(), ", "))
}

// Report is a snapshot with the session context around it
type Report struct {
	widget.Snapshot `yaml:",inline"`

	Elapsed     time.Duration `json:"-" yaml:"-"`
	ElapsedMS   int64         `json:"elapsed_ms" yaml:"elapsed_ms"`
	Navigations []string      `json:"navigations" yaml:"navigations"`
}

// NewReport wraps a snapshot taken after elapsed manual time
func NewReport(s widget.Snapshot, elapsed time.Duration, navigations []string) Report {
	if navigations == nil {
		navigations = []string{}
	}
	return Report{
		Snapshot:    s,
		Elapsed:     elapsed,
		ElapsedMS:   elapsed.Milliseconds(),
		Navigations: navigations,
	}
}

// Options tune the human-readable formats
type Options struct {
	// Width wraps transcript lines in the text format
	Width int
}

// TerminalWidth returns the width of f, or 80 when f is not a terminal
func TerminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Write renders r to w in format f
func Write(w io.Writer, r Report, f Format, opts Options) error {
	switch f {
	case FormatText:
		return writeText(w, r, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		return page.Render(w, r.Snapshot)
	}
	return fmt.Errorf("unknown format %q", f)
}
