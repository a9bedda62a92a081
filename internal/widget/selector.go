package widget

import (
	"github.com/sirupsen/logrus"

	apierrors "github.com/zamanilabs/zamani-demo/internal/errors"
)

// ModelSelector is the single-selection model dropdown. While open it
// observes pointer-downs and closes on any that land outside its bounds.
type ModelSelector struct {
	catalog  []string
	selected string
	open     bool
	cursor   int

	pointer     PointerSource
	unsubscribe func()
	bounds      []Rect
	log         logrus.FieldLogger
	torn        bool
}

// NewModelSelector creates a closed selector. If initial is not in the
// catalog the first entry is selected.
func NewModelSelector(catalog []string, initial string, pointer PointerSource, log logrus.FieldLogger) *ModelSelector {
	s := &ModelSelector{
		catalog: append([]string(nil), catalog...),
		pointer: pointer,
		log:     log,
	}
	if len(s.catalog) > 0 {
		s.selected = s.catalog[0]
	}
	if initial != "" {
		if s.indexOf(initial) >= 0 {
			s.selected = initial
		} else {
			log.WithField("model", initial).Warn("initial model is not in the catalog, using default")
		}
	}
	return s
}

func (s *ModelSelector) indexOf(name string) int {
	for i, m := range s.catalog {
		if m == name {
			return i
		}
	}
	return -1
}

// Toggle flips between open and closed
func (s *ModelSelector) Toggle() {
	if s.open {
		s.Close()
	} else {
		s.Open()
	}
}

// Open shows the list and starts observing outside pointer-downs
func (s *ModelSelector) Open() {
	if s.torn || s.open {
		return
	}
	s.open = true
	s.cursor = s.indexOf(s.selected)
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.pointer != nil {
		s.unsubscribe = s.pointer.Subscribe(s.onPointer)
	}
}

// Close hides the list and drops the pointer observer
func (s *ModelSelector) Close() {
	s.open = false
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Select sets name as the selection and closes the list. Names outside the
// catalog are rejected and leave the selector untouched.
func (s *ModelSelector) Select(name string) error {
	if s.torn {
		return apierrors.ErrNotMounted
	}
	if s.indexOf(name) < 0 {
		err := apierrors.NewUnknownModelError(name)
		s.log.WithField("model", name).Warn("ignoring selection outside the catalog")
		return err
	}
	s.selected = name
	s.Close()
	return nil
}

// SelectHighlighted selects the entry under the keyboard cursor
func (s *ModelSelector) SelectHighlighted() error {
	if !s.open || len(s.catalog) == 0 {
		return nil
	}
	return s.Select(s.catalog[s.cursor])
}

// MoveCursor moves the keyboard highlight, wrapping at both ends
func (s *ModelSelector) MoveCursor(delta int) {
	n := len(s.catalog)
	if !s.open || n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// SetBounds records where the selector is rendered: its button and, while
// open, its list. Pointer-downs outside all rects dismiss the list.
func (s *ModelSelector) SetBounds(rects ...Rect) {
	s.bounds = append(s.bounds[:0], rects...)
}

func (s *ModelSelector) contains(ev PointerEvent) bool {
	for _, r := range s.bounds {
		if r.Contains(ev.X, ev.Y) {
			return true
		}
	}
	return false
}

func (s *ModelSelector) onPointer(ev PointerEvent) {
	if !s.open || s.contains(ev) {
		return
	}
	s.Close()
}

// Stop closes the list for good
func (s *ModelSelector) Stop() {
	s.Close()
	s.torn = true
}

// IsOpen reports whether the list is shown
func (s *ModelSelector) IsOpen() bool {
	return s.open
}

// Selected returns the selected model name
func (s *ModelSelector) Selected() string {
	return s.selected
}

// IsSelected reports whether name is the selection
func (s *ModelSelector) IsSelected(name string) bool {
	return name == s.selected
}

// Highlighted returns the index under the keyboard cursor
func (s *ModelSelector) Highlighted() int {
	return s.cursor
}

// Catalog returns the entries in display order
func (s *ModelSelector) Catalog() []string {
	return append([]string(nil), s.catalog...)
}
