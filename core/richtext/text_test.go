package richtext_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshua-obritsch/blizzard-intl/core/langscope"
	"github.com/joshua-obritsch/blizzard-intl/core/multilingual"
	"github.com/joshua-obritsch/blizzard-intl/core/richtext"
)

// plainRenderer is a minimal host render primitive for tests: plain text
// renders as-is, span trees concatenate depth-first.
type plainRenderer struct{}

func (plainRenderer) Render(res richtext.Resolved) string {
	if res.Root == nil {
		return res.Plain
	}
	return flatten(res.Root)
}

func flatten(span richtext.Lowered) string {
	switch s := span.(type) {
	case *richtext.LoweredText:
		out := s.Text
		for _, c := range s.Children {
			out += flatten(c)
		}
		return out
	case *richtext.LoweredWidget:
		return s.Widget.View()
	default:
		return ""
	}
}

var greeting = multilingual.Translations[lang]{
	german:  "Guten Tag",
	english: "Hello",
}

func TestTextResolve(t *testing.T) {
	t.Run("renders the default language when unselected", func(t *testing.T) {
		node := richtext.NewText(greeting)
		res := node.Resolve(langscope.State[lang]{Default: german})
		assert.Equal(t, "Guten Tag", res.Plain)
	})

	t.Run("renders the selected language", func(t *testing.T) {
		node := richtext.NewText(greeting)
		res := node.Resolve(langscope.State[lang]{Default: german, Selected: sel(english)})
		assert.Equal(t, "Hello", res.Plain)
	})

	t.Run("falls back to default when the selected key is missing", func(t *testing.T) {
		node := richtext.NewText(multilingual.Translations[lang]{german: "Guten Tag"})
		res := node.Resolve(langscope.State[lang]{Default: german, Selected: sel(english)})
		assert.Equal(t, "Guten Tag", res.Plain)
	})

	t.Run("passthrough fields survive untouched", func(t *testing.T) {
		style := lipgloss.NewStyle().Bold(true)
		node := richtext.NewText(greeting,
			richtext.WithStyle[lang](style),
			richtext.WithAlign[lang](lipgloss.Center),
			richtext.WithOverflow[lang](richtext.OverflowEllipsis),
			richtext.WithMaxLines[lang](2),
			richtext.WithSelectable[lang](),
		)

		res := node.Resolve(langscope.State[lang]{Default: german})
		assert.True(t, res.HasStyle)
		assert.Equal(t, style.GetBold(), res.Style.GetBold())
		assert.Equal(t, lipgloss.Center, res.Align)
		assert.Equal(t, richtext.OverflowEllipsis, res.Overflow)
		assert.Equal(t, 2, res.MaxLines)
		assert.True(t, res.Selectable)
	})

	t.Run("label resolves by the standard rule", func(t *testing.T) {
		node := richtext.NewText(greeting,
			richtext.WithLabel(multilingual.Translations[lang]{
				german:  "Begrüßung",
				english: "greeting",
			}),
		)
		res := node.Resolve(langscope.State[lang]{Default: german, Selected: sel(english)})
		require.NotNil(t, res.Label)
		assert.Equal(t, "greeting", *res.Label)
	})

	t.Run("no label mapping resolves to nil label", func(t *testing.T) {
		node := richtext.NewText(greeting)
		res := node.Resolve(langscope.State[lang]{Default: german})
		assert.Nil(t, res.Label)
	})

	t.Run("missing selected key is reported", func(t *testing.T) {
		var reported []lang
		scope, err := langscope.NewScope(german,
			langscope.WithMissingHandler(func(l lang) { reported = append(reported, l) }),
		)
		require.NoError(t, err)
		scope.Select(french)

		node := richtext.NewText(greeting)
		res := node.Resolve(scope.State())

		assert.Equal(t, "Guten Tag", res.Plain)
		assert.Equal(t, []lang{french}, reported)
	})
}

func TestSpanText(t *testing.T) {
	t.Run("rejects a nil root", func(t *testing.T) {
		_, err := richtext.NewSpanText[lang](nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "span root cannot be nil")
	})

	t.Run("lowers the tree with the state's languages", func(t *testing.T) {
		root := richtext.NewTextSpan(greeting)
		node, err := richtext.NewSpanText[lang](root)
		require.NoError(t, err)

		res := node.Resolve(langscope.State[lang]{Default: german, Selected: sel(english)})
		require.NotNil(t, res.Root)
		assert.Empty(t, res.Plain)
		assert.Equal(t, "Hello", res.Root.(*richtext.LoweredText).Text)
	})
}

func TestRichText(t *testing.T) {
	t.Run("rejects a nil root", func(t *testing.T) {
		_, err := richtext.NewRichText[lang](nil)
		assert.Error(t, err)
	})

	t.Run("registrar passes through", func(t *testing.T) {
		registrar := struct{ name string }{name: "registrar"}
		node, err := richtext.NewRichText[lang](richtext.NewTextSpan(greeting))
		require.NoError(t, err)
		node.WithRegistrar(registrar)

		res := node.Resolve(langscope.State[lang]{Default: german})
		assert.Equal(t, registrar, res.Registrar)
	})
}

func TestTextRender(t *testing.T) {
	t.Run("renders through the nearest scope in context", func(t *testing.T) {
		scope, err := langscope.NewScope(german)
		require.NoError(t, err)

		node := richtext.NewText(greeting)
		ctx := scope.Context(context.Background())
		assert.Equal(t, "Guten Tag", node.Render(ctx, plainRenderer{}))

		scope.Select(english)
		ctx = scope.Context(context.Background())
		assert.Equal(t, "Hello", node.Render(ctx, plainRenderer{}))
	})

	t.Run("sibling spans resolve independently in render output", func(t *testing.T) {
		root := richtext.NewTextSpan(multilingual.Translations[lang]{}, richtext.WithChildren[lang](
			richtext.NewTextSpan(multilingual.Translations[lang]{german: "Guten Tag", english: "Hello"}),
			richtext.NewTextSpan(multilingual.Translations[lang]{german: ", Welt", english: ", world"}),
		))
		node, err := richtext.NewRichText[lang](root)
		require.NoError(t, err)

		scope, err := langscope.NewScope(german, langscope.WithSelected[lang](english))
		require.NoError(t, err)

		ctx := scope.Context(context.Background())
		assert.Equal(t, "Hello, world", node.Render(ctx, plainRenderer{}))
	})

	t.Run("panics without an enclosing scope", func(t *testing.T) {
		node := richtext.NewText(greeting)
		assert.Panics(t, func() {
			node.Render(context.Background(), plainRenderer{})
		})
	})
}
