package richtext

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshua-obritsch/blizzard-intl/core/multilingual"
)

// Cursor is the pointer shape a span reports while hovered.
type Cursor int

const (
	// CursorDefer inherits the cursor from the ancestor span.
	CursorDefer Cursor = iota
	// CursorClick marks the span as interactive.
	CursorClick
	// CursorText marks the span as selectable text.
	CursorText
)

// Alignment positions an embedded widget relative to the surrounding text.
type Alignment int

const (
	AlignBaseline Alignment = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

// Widget is the opaque sub-widget a WidgetSpan embeds. Anything that can
// render itself to a string qualifies; a bubbletea model's View method
// satisfies it directly.
type Widget interface {
	View() string
}

// Span is a node of a multilingual span tree: either a TextSpan carrying
// its own translation mapping, or a WidgetSpan embedding a sub-widget with
// no language dependency. The set of implementations is closed; lowering
// dispatches exhaustively over it.
//
// Span values are immutable and constructed bottom-up, so a span tree is
// always an ordered, rooted, finite tree.
type Span[T comparable] interface {
	span()
}

// TextSpan is a styled run of multilingual text with an ordered sequence of
// child spans.
type TextSpan[T comparable] struct {
	text       multilingual.Translations[T]
	label      multilingual.Translations[T]
	style      lipgloss.Style
	hasStyle   bool
	recognizer func()
	cursor     Cursor
	cursorSet  bool
	hoverStart func()
	hoverEnd   func()
	locale     string
	spellOut   bool
	children   []Span[T]
}

func (*TextSpan[T]) span() {}

// SpanOption configures a TextSpan during construction.
type SpanOption[T comparable] func(*TextSpan[T])

// WithChildren appends child spans in the given order.
func WithChildren[T comparable](children ...Span[T]) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.children = append(s.children, children...)
	}
}

// WithSpanStyle sets the span's style. Styles are passed through lowering
// unchanged; only the render primitive interprets them.
func WithSpanStyle[T comparable](style lipgloss.Style) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.style = style
		s.hasStyle = true
	}
}

// WithSpanLabel sets the multilingual accessibility label. It resolves by
// the same rule as the text, using its own mapping.
func WithSpanLabel[T comparable](label multilingual.Translations[T]) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.label = label
	}
}

// WithRecognizer attaches an interaction handler invoked when the span is
// activated.
func WithRecognizer[T comparable](recognizer func()) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.recognizer = recognizer
	}
}

// WithCursor sets an explicit cursor, overriding the recognizer-derived
// default.
func WithCursor[T comparable](cursor Cursor) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.cursor = cursor
		s.cursorSet = true
	}
}

// WithHover attaches hover enter/exit handlers. Either may be nil.
func WithHover[T comparable](onEnter, onExit func()) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.hoverStart = onEnter
		s.hoverEnd = onExit
	}
}

// WithSpanLocale tags the span's resolved text with a locale hint for the
// renderer. Passed through unchanged.
func WithSpanLocale[T comparable](locale string) SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.locale = locale
	}
}

// WithSpellOut asks assistive technology to spell the resolved text out
// character by character. Passed through unchanged.
func WithSpellOut[T comparable]() SpanOption[T] {
	return func(s *TextSpan[T]) {
		s.spellOut = true
	}
}

// NewTextSpan creates a text span for the given translation mapping. The
// effective cursor is computed here, once, independent of language: click
// when a recognizer is present and no explicit cursor was given, defer
// otherwise.
func NewTextSpan[T comparable](text multilingual.Translations[T], opts ...SpanOption[T]) *TextSpan[T] {
	s := &TextSpan[T]{text: text}
	for _, opt := range opts {
		opt(s)
	}

	if !s.cursorSet {
		if s.recognizer != nil {
			s.cursor = CursorClick
		} else {
			s.cursor = CursorDefer
		}
	}
	return s
}

// WidgetSpan embeds an opaque sub-widget into a span tree. It has no
// language dependency and lowers to itself unchanged.
type WidgetSpan[T comparable] struct {
	widget    Widget
	alignment Alignment
	style     lipgloss.Style
	hasStyle  bool
}

func (*WidgetSpan[T]) span() {}

// WidgetOption configures a WidgetSpan during construction.
type WidgetOption[T comparable] func(*WidgetSpan[T])

// WithAlignment positions the widget relative to the surrounding text.
func WithAlignment[T comparable](alignment Alignment) WidgetOption[T] {
	return func(s *WidgetSpan[T]) {
		s.alignment = alignment
	}
}

// WithWidgetStyle sets the style applied to the embedded widget's output.
func WithWidgetStyle[T comparable](style lipgloss.Style) WidgetOption[T] {
	return func(s *WidgetSpan[T]) {
		s.style = style
		s.hasStyle = true
	}
}

// NewWidgetSpan creates a widget span embedding w.
func NewWidgetSpan[T comparable](w Widget, opts ...WidgetOption[T]) *WidgetSpan[T] {
	s := &WidgetSpan[T]{widget: w, alignment: AlignBaseline}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
