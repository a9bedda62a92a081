package snapshot

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/zamanilabs/zamani-demo/internal/models"
)

var (
	labelColor  = color.New(color.FgHiBlack)
	activeColor = color.New(color.FgGreen, color.Bold)
	userColor   = color.New(color.FgGreen)
	botColor    = color.New(color.FgCyan)
	dimColor    = color.New(color.Faint)
)

const labelWidth = 13

func writeText(w io.Writer, r Report, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(labelColor.Sprintf("%-*s", labelWidth, label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	state := "mounted"
	if !r.Mounted {
		state = "unmounted"
	}
	sb.WriteString(activeColor.Sprint(models.ProductName))
	fmt.Fprintf(&sb, " %s demo  t=%s  %s\n\n", models.ChatName, r.Elapsed, dimColor.Sprint(state))

	var layers []string
	for i, l := range r.Backgrounds {
		name := path.Base(l.Image)
		if l.Mirrored {
			name += " (mirrored)"
		}
		if i == r.BackgroundIndex {
			layers = append(layers, activeColor.Sprint("["+name+"]"))
		} else {
			layers = append(layers, dimColor.Sprint(name))
		}
	}
	line("background", strings.Join(layers, "  "))

	rotation := "paused"
	if r.Rotating {
		rotation = "rotating"
	}
	line("placeholder", fmt.Sprintf("%q %s", r.Placeholder,
		dimColor.Sprintf("(%d/%d, %s)", r.PlaceholderIndex+1, len(models.PlaceholderExamples()), rotation)))

	send := dimColor.Sprint("send disabled")
	if r.CanSend {
		send = activeColor.Sprint("send enabled")
	}
	line("input", fmt.Sprintf("%q %s", r.Input, send))

	dropdown := "▾"
	if r.DropdownOpen {
		dropdown = "▴"
	}
	line("model", r.SelectedModel+" "+dropdown)
	if r.DropdownOpen {
		for _, name := range r.Catalog {
			if name == r.SelectedModel {
				sb.WriteString(strings.Repeat(" ", labelWidth) + activeColor.Sprint(name+" ✓") + "\n")
			} else {
				sb.WriteString(strings.Repeat(" ", labelWidth) + dimColor.Sprint(name) + "\n")
			}
		}
	}

	consent := dimColor.Sprint("♡ " + r.ConsentLabel)
	if r.Contributing {
		consent = activeColor.Sprint("♥ " + r.ConsentLabel)
	}
	line("consent", consent)

	var nav []string
	for _, e := range r.BottomNav {
		if r.IsRouteActive(e.Path) {
			nav = append(nav, activeColor.Sprint("["+e.Label+"]"))
		} else {
			nav = append(nav, e.Label)
		}
	}
	line("route", fmt.Sprintf("%s  %s", strings.Join(nav, "  "), dimColor.Sprint(r.Route)))

	menu := "closed"
	if r.MenuOpen {
		menu = "open"
	}
	line("menu", menu)
	if len(r.Navigations) > 0 {
		line("navigated", strings.Join(r.Navigations, " → "))
	}

	sb.WriteString("\n")
	if len(r.Transcript) == 0 {
		sb.WriteString(dimColor.Sprint("no messages") + "\n")
	}

	wrap := lipgloss.NewStyle().Width(max(width-labelWidth, 20))
	indent := strings.Repeat(" ", labelWidth)
	for _, msg := range r.Transcript {
		who := userColor.Sprintf("%-*s", labelWidth, "you")
		if msg.Role == models.RoleAssistant {
			who = botColor.Sprintf("%-*s", labelWidth, models.ChatName)
		}
		body := strings.Split(wrap.Render(msg.Content), "\n")
		for i, l := range body {
			if i == 0 {
				sb.WriteString(who)
			} else {
				sb.WriteString(indent)
			}
			sb.WriteString(strings.TrimRight(l, " "))
			sb.WriteString("\n")
		}
	}
	if r.PendingReplies > 0 {
		sb.WriteString(dimColor.Sprintf("%d %s typing…", r.PendingReplies, models.ChatName) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
