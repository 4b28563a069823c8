package richtext

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshua-obritsch/blizzard-intl/core/langscope"
	"github.com/joshua-obritsch/blizzard-intl/core/multilingual"
)

// Overflow controls how the render primitive treats text that does not fit.
type Overflow int

const (
	// OverflowClip cuts the text at the boundary.
	OverflowClip Overflow = iota
	// OverflowEllipsis cuts the text and appends an ellipsis.
	OverflowEllipsis
)

// SelectionRegistrar is the host framework's selection registration handle,
// passed through RichText unchanged.
type SelectionRegistrar any

// Renderer is the host framework's "render this resolved value" primitive.
// The library never renders anything itself; it hands a fully resolved
// value to a Renderer.
type Renderer interface {
	Render(Resolved) string
}

// Resolved is a Text or RichText node with every multilingual field
// replaced by its resolved plain value and all other fields untouched.
type Resolved struct {
	// Plain is the resolved flat text; empty in rich mode.
	Plain string

	// Root is the lowered span tree; nil in flat mode.
	Root Lowered

	// Label is the resolved accessibility label, nil when the node had no
	// label mapping.
	Label *string

	Style      lipgloss.Style
	HasStyle   bool
	Align      lipgloss.Position
	Overflow   Overflow
	MaxLines   int
	Selectable bool
	Registrar  SelectionRegistrar
}

// Text is a text-bearing node in exactly one of two modes, fixed at
// construction: flat (a single translation mapping, NewText) or rich (a
// span-tree root, NewSpanText). The two constructors make the modes
// mutually exclusive; there is no way to build a node with both or neither.
type Text[T comparable] struct {
	translations multilingual.Translations[T]
	root         Span[T]

	label      multilingual.Translations[T]
	style      lipgloss.Style
	hasStyle   bool
	align      lipgloss.Position
	overflow   Overflow
	maxLines   int
	selectable bool
	registrar  SelectionRegistrar
}

// TextOption configures a Text node during construction. Every option is a
// verbatim pass-through to the render primitive; none of them is
// multilingual except WithLabel, which resolves by the standard rule.
type TextOption[T comparable] func(*Text[T])

// WithStyle sets the node's style.
func WithStyle[T comparable](style lipgloss.Style) TextOption[T] {
	return func(t *Text[T]) {
		t.style = style
		t.hasStyle = true
	}
}

// WithAlign sets the horizontal text alignment.
func WithAlign[T comparable](align lipgloss.Position) TextOption[T] {
	return func(t *Text[T]) {
		t.align = align
	}
}

// WithOverflow sets the overflow behavior.
func WithOverflow[T comparable](overflow Overflow) TextOption[T] {
	return func(t *Text[T]) {
		t.overflow = overflow
	}
}

// WithMaxLines caps the number of rendered lines. Zero means unlimited.
func WithMaxLines[T comparable](n int) TextOption[T] {
	return func(t *Text[T]) {
		t.maxLines = n
	}
}

// WithSelectable marks the rendered text as selectable.
func WithSelectable[T comparable]() TextOption[T] {
	return func(t *Text[T]) {
		t.selectable = true
	}
}

// WithLabel sets the multilingual accessibility label.
func WithLabel[T comparable](label multilingual.Translations[T]) TextOption[T] {
	return func(t *Text[T]) {
		t.label = label
	}
}

// NewText creates a flat-mode node from a single translation mapping. An
// empty or nil mapping is valid and resolves to the empty string.
func NewText[T comparable](text multilingual.Translations[T], opts ...TextOption[T]) *Text[T] {
	t := &Text[T]{translations: text}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewSpanText creates a rich-mode node from a span-tree root. A nil root is
// rejected: rich mode without a tree is a construction error, not a
// renderable state.
func NewSpanText[T comparable](root Span[T], opts ...TextOption[T]) (*Text[T], error) {
	if root == nil {
		return nil, fmt.Errorf("span root cannot be nil")
	}

	t := &Text[T]{root: root}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Resolve computes the node's plain form against the given state: flat mode
// resolves the mapping, rich mode lowers the span tree, and the optional
// label mapping resolves by the identical rule. Everything else passes
// through verbatim.
func (t *Text[T]) Resolve(st langscope.State[T]) Resolved {
	res := Resolved{
		Style:      t.style,
		HasStyle:   t.hasStyle,
		Align:      t.align,
		Overflow:   t.overflow,
		MaxLines:   t.maxLines,
		Selectable: t.selectable,
		Registrar:  t.registrar,
	}

	if v, ok := multilingual.ResolveOptional(t.label, st.Default, st.Selected); ok {
		res.Label = &v
	}

	if t.root != nil {
		res.Root = Lower(t.root, st.Default, st.Selected)
		return res
	}

	res.Plain = multilingual.Resolve(t.translations, st.Default, st.Selected)
	if st.Selected != nil {
		if _, ok := t.translations[*st.Selected]; !ok {
			st.ReportMissing(*st.Selected)
		}
	}
	return res
}

// Render looks up the nearest language state in ctx and hands the resolved
// node to the renderer. It panics when no enclosing scope published a state
// for the key type T; a missing scope is a programmer error.
func (t *Text[T]) Render(ctx context.Context, r Renderer) string {
	return r.Render(t.Resolve(langscope.MustFromContext[T](ctx)))
}

// RichText is the always-rich variant of Text: it takes a span-tree root
// and additionally accepts a selection registrar to pass through to the
// render primitive. It is otherwise identical to a rich-mode Text.
type RichText[T comparable] struct {
	text Text[T]
}

// NewRichText creates a rich text node from a span-tree root.
func NewRichText[T comparable](root Span[T], opts ...TextOption[T]) (*RichText[T], error) {
	t, err := NewSpanText(root, opts...)
	if err != nil {
		return nil, err
	}
	return &RichText[T]{text: *t}, nil
}

// WithRegistrar attaches the host's selection registrar to the node.
func (r *RichText[T]) WithRegistrar(registrar SelectionRegistrar) *RichText[T] {
	r.text.registrar = registrar
	return r
}

// Resolve lowers the span tree against the given state. See Text.Resolve.
func (r *RichText[T]) Resolve(st langscope.State[T]) Resolved {
	return r.text.Resolve(st)
}

// Render looks up the nearest language state in ctx and hands the resolved
// node to the renderer. See Text.Render.
func (r *RichText[T]) Render(ctx context.Context, renderer Renderer) string {
	return r.text.Render(ctx, renderer)
}
