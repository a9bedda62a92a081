package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zamanilabs/zamani-demo/internal/widget"
)

// target is something on screen that reacts to a click
type target int

const (
	targetNone target = iota
	targetMenuToggle
	targetMenuEntry
	targetSend
	targetConsent
	targetModelButton
	targetModelOption
	targetNav
)

// hitArea is the on-screen extent of a target
type hitArea struct {
	rect   widget.Rect
	target target
	index  int
}

// cell is a horizontal run of text within a row
type cell struct {
	text   string
	target target
	index  int
}

// frame is one rendered screen: its rows, what can be clicked and where
// the model selector lives.
type frame struct {
	rows     []string
	hits     []hitArea
	selector []widget.Rect
}

// add appends a block of rows and returns the index of its first row
func (f *frame) add(block string) int {
	y := len(f.rows)
	f.rows = append(f.rows, strings.Split(block, "\n")...)
	return y
}

// row appends a single row built from cells and returns its index
func (f *frame) row(cells ...cell) int {
	y := len(f.rows)
	x := 0
	var sb strings.Builder
	for _, c := range cells {
		w := lipgloss.Width(c.text)
		if c.target != targetNone {
			f.hits = append(f.hits, hitArea{
				rect:   widget.Rect{X: x, Y: y, W: w, H: 1},
				target: c.target,
				index:  c.index,
			})
		}
		sb.WriteString(c.text)
		x += w
	}
	f.rows = append(f.rows, sb.String())
	return y
}

// hitAt returns the target under a cell, if any
func (f frame) hitAt(x, y int) (hitArea, bool) {
	for i := len(f.hits) - 1; i >= 0; i-- {
		if f.hits[i].rect.Contains(x, y) {
			return f.hits[i], true
		}
	}
	return hitArea{}, false
}

// find returns the extent of a target
func (f frame) find(t target, index int) (widget.Rect, bool) {
	for _, h := range f.hits {
		if h.target == t && h.index == index {
			return h.rect, true
		}
	}
	return widget.Rect{}, false
}
