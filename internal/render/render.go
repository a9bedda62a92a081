package render

import "strings"

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	out, err := renderers.render(content, opts)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
