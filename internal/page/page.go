// Package page renders a widget snapshot as the landing page markup.
package page

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/widget"
)

// Render writes a full HTML document for s
func Render(w io.Writer, s widget.Snapshot) error {
	return Document(s).Render(w)
}

// Document is the page shell around the hero
func Document(s widget.Snapshot) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       models.ProductName + " - " + models.ChatName,
		Description: models.Subtext,
		Language:    "en",
		Body: []g.Node{
			Class("min-h-screen bg-[#0a0a0a] text-[#e5e5e5] pb-20 md:pb-0"),
			Topbar(s),
			Hero(s),
			PageFooter(),
			BottomNav(s),
		},
	})
}

// Topbar is the fixed header with the collapsible menu
func Topbar(s widget.Snapshot) g.Node {
	return Nav(
		Class("fixed top-0 left-0 right-0 z-50 px-6 py-4 border-b border-white/5"),
		Div(
			Class("max-w-6xl mx-auto flex items-center justify-between"),
			A(Href(models.PathHome), Class("flex items-center gap-2"),
				Span(Class("text-xl font-medium tracking-tight text-white"), g.Text(models.ProductName)),
			),
			Div(Class("hidden md:flex items-center gap-8"),
				g.Map(s.TopNav, func(e models.NavEntry) g.Node {
					return A(Href(e.Path), Class("text-sm text-[#888] hover:text-white"), g.Text(e.Label))
				}),
			),
			Button(
				Type("button"),
				Class("md:hidden p-2 text-[#888]"),
				Aria("expanded", fmt.Sprint(s.MenuOpen)),
				g.If(s.MenuOpen, g.Text("Close menu")),
				g.If(!s.MenuOpen, g.Text("Open menu")),
			),
		),
		g.If(s.MenuOpen,
			Div(
				Class("md:hidden mt-4 pb-4 space-y-4 border-t border-white/10 pt-4"),
				ID("mobile-menu"),
				g.Map(s.TopNav, func(e models.NavEntry) g.Node {
					return A(Href(e.Path), Class("block py-2 text-[#888]"), g.Text(e.Label))
				}),
			),
		),
	)
}

// Hero is the crossfading background, the heading and the chat mockup
func Hero(s widget.Snapshot) g.Node {
	return Section(
		Class("relative pt-28 pb-16 px-6 min-h-[90vh] flex flex-col justify-center overflow-hidden"),
		ID("hero"),

		Div(
			Class("absolute inset-0 z-0"),
			g.Group(backgroundLayers(s.Backgrounds)),
			Div(Class("absolute inset-0 bg-gradient-to-b from-[#0a0a0a]/70 via-[#0a0a0a]/60 to-[#0a0a0a]/80")),
		),

		Div(
			Class("max-w-4xl mx-auto w-full relative z-10"),
			Div(
				Class("text-center mb-10"),
				Span(Class("text-lg text-[#888]"), g.Text(models.ChatName)),
				H1(Class("text-4xl md:text-5xl font-medium leading-[1.1] tracking-tight text-white"), g.Text(models.Headline)),
			),
			transcript(s.Transcript),
			composer(s),
			Div(
				Class("flex flex-wrap items-center justify-center gap-3 mt-6"),
				g.Map(models.ActionChips(), func(label string) g.Node {
					return Button(Type("button"), Class("px-4 py-2.5 rounded-full bg-[#1a1a1a] border border-white/10 text-[#888]"),
						Span(Class("text-sm"), g.Text(label)),
					)
				}),
			),
			P(Class("text-center text-sm text-[#666] mt-6"), g.Text(models.Subtext)),
		),
	)
}

func backgroundLayers(layers []widget.Layer) []g.Node {
	nodes := make([]g.Node, 0, len(layers))
	for i, l := range layers {
		transform := fmt.Sprintf("scale(%.2f)", l.Scale)
		if l.Mirrored {
			transform += " scaleX(-1)"
		}
		nodes = append(nodes, Div(
			Class("absolute inset-0 bg-cover bg-no-repeat transition-opacity duration-1000"),
			Data("layer", fmt.Sprint(i)),
			Style(fmt.Sprintf(
				"background-image: url(%s); background-position: %s; filter: brightness(%.2f) contrast(%.2f); transform: %s; opacity: %g",
				l.Image, l.Position, l.Brightness, l.Contrast, transform, l.Opacity,
			)),
		))
	}
	return nodes
}

func transcript(messages []models.Message) g.Node {
	if len(messages) == 0 {
		return nil
	}
	return Div(
		Class("mb-4 rounded-2xl bg-[#1a1a1a] border border-white/10 p-4 max-h-64 overflow-y-auto space-y-3"),
		ID("transcript"),
		g.Map(messages, func(m models.Message) g.Node {
			user := m.Role == models.RoleUser
			return Div(
				c.Classes{"flex": true, "justify-end": user, "justify-start": !user},
				Data("role", string(m.Role)),
				Div(
					c.Classes{
						"max-w-[80%] px-4 py-2 rounded-xl": true,
						"bg-emerald-500 text-black":         user,
						"bg-[#252525] text-white":           !user,
					},
					P(Class("text-sm"), g.Text(m.Content)),
				),
			)
		}),
	)
}

func composer(s widget.Snapshot) g.Node {
	return Div(
		Class("rounded-2xl bg-[#1a1a1a] border border-white/10 p-4 md:p-5"),
		Div(
			Class("flex items-center gap-3 mb-4"),
			Input(
				Type("text"),
				Name("prompt"),
				Value(s.Input),
				Placeholder(s.Placeholder),
				Class("flex-1 bg-transparent text-white text-lg placeholder:text-[#666] outline-none"),
			),
		),
		Div(
			Class("flex items-center justify-between"),
			Div(
				Class("flex items-center gap-2"),
				Button(
					Type("button"),
					ID("send"),
					c.Classes{
						"p-2.5 rounded-xl":                            true,
						"bg-emerald-500 text-white":                   s.CanSend,
						"bg-[#252525] text-[#666] cursor-not-allowed": !s.CanSend,
					},
					g.If(!s.CanSend, Disabled()),
					g.Text("Send"),
				),
			),
			Div(
				Class("flex items-center gap-2"),
				consent(s),
				modelSelector(s),
			),
		),
	)
}

func consent(s widget.Snapshot) g.Node {
	return Button(
		Type("button"),
		ID("consent"),
		Aria("pressed", fmt.Sprint(s.Contributing)),
		c.Classes{
			"flex items-center gap-2 px-3 py-1.5 rounded-full": true,
			"bg-emerald-500/10 border border-emerald-500/30":   s.Contributing,
			"bg-[#252525] border border-white/10":              !s.Contributing,
		},
		Span(
			c.Classes{"text-xs font-medium": true, "text-emerald-400": s.Contributing, "text-[#888]": !s.Contributing},
			g.Text(s.ConsentLabel),
		),
	)
}

func modelSelector(s widget.Snapshot) g.Node {
	return Div(
		Class("relative"),
		ID("model-selector"),
		Button(
			Type("button"),
			Aria("expanded", fmt.Sprint(s.DropdownOpen)),
			Class("flex items-center gap-2 px-3 py-1.5 rounded-full bg-[#252525] border border-white/10"),
			Span(Class("text-xs text-white font-medium"), g.Text(s.SelectedModel)),
		),
		g.If(s.DropdownOpen,
			Div(
				Class("absolute top-full right-0 mt-2 w-40 rounded-xl bg-[#1a1a1a] border border-white/10 shadow-xl overflow-hidden z-10"),
				Role("listbox"),
				g.Map(s.Catalog, func(name string) g.Node {
					selected := name == s.SelectedModel
					return Button(
						Type("button"),
						Role("option"),
						Aria("selected", fmt.Sprint(selected)),
						c.Classes{
							"w-full px-4 py-2.5 text-left text-sm": true,
							"bg-emerald-500/10 text-emerald-400":   selected,
							"text-[#888]":                          !selected,
						},
						g.Text(name),
						g.If(selected, Span(Class("ml-2"), g.Text("✓"))),
					)
				}),
			),
		),
	)
}

// PageFooter lists the contact and legal links
func PageFooter() g.Node {
	return Footer(
		Class("py-12 px-6 border-t border-white/5"),
		Div(
			Class("max-w-6xl mx-auto"),
			Span(Class("text-lg font-medium text-white"), g.Text(models.ProductName)),
			Ul(
				Class("space-y-2"),
				g.Map(models.FooterLinks(), func(e models.NavEntry) g.Node {
					return Li(A(Href(e.Path), Class("text-sm text-[#666] hover:text-white"), g.Text(e.Label)))
				}),
			),
			P(Class("mt-6 text-xs text-[#666]"), g.Text(models.Copyright)),
		),
	)
}

// BottomNav is the mobile navigation bar with the active entry highlighted
func BottomNav(s widget.Snapshot) g.Node {
	return Nav(
		Class("md:hidden fixed bottom-0 left-0 right-0 z-50 border-t border-white/10"),
		ID("bottom-nav"),
		Div(
			Class("flex items-center justify-around px-4 py-3"),
			g.Map(s.BottomNav, func(e models.NavEntry) g.Node {
				active := s.IsRouteActive(e.Path)
				return A(
					Href(e.Path),
					c.Classes{
						"flex flex-col items-center gap-1": true,
						"text-emerald-400":                 active,
						"text-[#888] hover:text-white":     !active,
					},
					g.If(active, Aria("current", "page")),
					Span(Class("text-xs"), g.Text(e.Label)),
				)
			}),
		),
	)
}
