package render

import (
	"os"

	"github.com/zamanilabs/zamani-demo/internal/config"
)

// OptionsFromConfig builds render options from the markdown section of the
// user configuration. GLAMOUR_STYLE wins over the configured style.
func OptionsFromConfig(md config.MarkdownConfig) Options {
	opts := DefaultOptions()
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}
	return opts
}
