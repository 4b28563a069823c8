package richtext

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshua-obritsch/blizzard-intl/core/multilingual"
)

// Lowered is a language-free span produced by Lower: every multilingual
// field has been resolved to a plain value, everything else is carried
// through untouched. The set of implementations is closed: LoweredText and
// LoweredWidget.
type Lowered interface {
	lowered()
}

// LoweredText is the plain form of a TextSpan.
type LoweredText struct {
	// Text is the resolved text for the effective language.
	Text string

	// Label is the resolved accessibility label. Nil when the span had no
	// label mapping at all; empty when the mapping existed but lacked both
	// the selected and default keys.
	Label *string

	Style      lipgloss.Style
	HasStyle   bool
	Recognizer func()
	Cursor     Cursor
	HoverStart func()
	HoverEnd   func()
	Locale     string
	SpellOut   bool

	// Children preserve the source span's child order exactly.
	Children []Lowered
}

func (*LoweredText) lowered() {}

// LoweredWidget is the plain form of a WidgetSpan. The embedded widget is
// carried through unmodified.
type LoweredWidget struct {
	Widget    Widget
	Alignment Alignment
	Style     lipgloss.Style
	HasStyle  bool
}

func (*LoweredWidget) lowered() {}

// Lower resolves every multilingual field in the span tree rooted at span
// against (defaultLang, selected), preserving tree shape and child order.
// Widget spans pass through with no language dependency. The same
// (defaultLang, selected) pair applies to the entire tree; each span's
// mappings still resolve independently.
func Lower[T comparable](span Span[T], defaultLang T, selected *T) Lowered {
	switch s := span.(type) {
	case *TextSpan[T]:
		var label *string
		if v, ok := multilingual.ResolveOptional(s.label, defaultLang, selected); ok {
			label = &v
		}

		var children []Lowered
		if len(s.children) > 0 {
			children = make([]Lowered, len(s.children))
			for i, child := range s.children {
				children[i] = Lower(child, defaultLang, selected)
			}
		}

		return &LoweredText{
			Text:       multilingual.Resolve(s.text, defaultLang, selected),
			Label:      label,
			Style:      s.style,
			HasStyle:   s.hasStyle,
			Recognizer: s.recognizer,
			Cursor:     s.cursor,
			HoverStart: s.hoverStart,
			HoverEnd:   s.hoverEnd,
			Locale:     s.locale,
			SpellOut:   s.spellOut,
			Children:   children,
		}
	case *WidgetSpan[T]:
		return &LoweredWidget{
			Widget:    s.widget,
			Alignment: s.alignment,
			Style:     s.style,
			HasStyle:  s.hasStyle,
		}
	default:
		// The Span interface is closed; a new implementation is a bug here.
		panic(fmt.Sprintf("richtext: unknown span type %T", span))
	}
}
