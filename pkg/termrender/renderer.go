package termrender

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/joshua-obritsch/blizzard-intl/core/richtext"
)

const ellipsis = "…"

// Renderer renders resolved text nodes and lowered span trees to styled
// terminal strings. It implements richtext.Renderer. A Renderer is
// immutable after creation and safe for concurrent use.
type Renderer struct {
	width int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth constrains rendering to the given cell width. Zero (the
// default) means unconstrained.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// New creates a terminal renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders a resolved node: the lowered span tree in rich mode, the
// plain string otherwise, then applies max-lines, overflow, width and
// alignment.
func (r *Renderer) Render(res richtext.Resolved) string {
	var body string
	if res.Root != nil {
		body = r.RenderSpans(res.Root)
	} else {
		body = r.clamp(res.Plain, res.MaxLines, res.Overflow)
	}

	style := lipgloss.NewStyle()
	if res.HasStyle {
		style = res.Style
	}
	if r.width > 0 {
		style = style.MaxWidth(r.width).Width(r.width).Align(res.Align)
	}
	return style.Render(body)
}

// RenderSpans renders a lowered span tree by depth-first, order-preserving
// concatenation. Text spans style their own text only; children style
// theirs. Widget leaves render through their own View method.
func (r *Renderer) RenderSpans(span richtext.Lowered) string {
	switch s := span.(type) {
	case *richtext.LoweredText:
		var b strings.Builder
		text := s.Text
		if s.HasStyle {
			text = s.Style.Render(text)
		}
		b.WriteString(text)
		for _, child := range s.Children {
			b.WriteString(r.RenderSpans(child))
		}
		return b.String()
	case *richtext.LoweredWidget:
		view := s.Widget.View()
		if s.HasStyle {
			view = s.Style.Render(view)
		}
		return view
	default:
		panic(fmt.Sprintf("termrender: unknown lowered span type %T", span))
	}
}

// clamp applies max-lines and per-line width overflow to unstyled text.
// Width handling for styled span output is ANSI-aware and handled by
// lipgloss in Render.
func (r *Renderer) clamp(body string, maxLines int, overflow richtext.Overflow) string {
	lines := strings.Split(body, "\n")

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		if overflow == richtext.OverflowEllipsis {
			lines[maxLines-1] += ellipsis
		}
	}

	if r.width > 0 {
		for i, line := range lines {
			if runewidth.StringWidth(line) > r.width {
				lines[i] = truncate(line, r.width, overflow)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// truncate cuts line to the given cell width, appending an ellipsis when
// the overflow mode asks for one.
func truncate(line string, width int, overflow richtext.Overflow) string {
	if overflow == richtext.OverflowEllipsis {
		return runewidth.Truncate(line, width, ellipsis)
	}
	return runewidth.Truncate(line, width, "")
}
