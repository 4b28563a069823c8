// Package richtext provides the text-bearing nodes of the localization
// layer: flat multilingual text, rich multilingual span trees, and the
// lowering step that resolves a span tree to its language-free form.
//
// Nodes are stateless. At render time a node reads the nearest
// langscope.State, applies the standard resolution rule to each of its
// multilingual mappings independently, and hands the fully resolved value
// to the host framework's render primitive. Styling, alignment, overflow,
// interaction handlers and the selection registrar pass through untouched.
//
// # Flat Text
//
//	hello := richtext.NewText(multilingual.Translations[Lang]{
//		English: "Hello",
//		German:  "Guten Tag",
//	}, richtext.WithStyle[Lang](lipgloss.NewStyle().Bold(true)))
//
//	out := hello.Render(ctx, renderer)
//
// # Span Trees
//
// A span tree interleaves independently translated runs of styled text with
// opaque embedded widgets:
//
//	root := richtext.NewTextSpan(multilingual.Translations[Lang]{
//		English: "Signed in as ",
//		German:  "Angemeldet als ",
//	}, richtext.WithChildren[Lang](
//		richtext.NewTextSpan(userName,
//			richtext.WithSpanStyle[Lang](lipgloss.NewStyle().Underline(true)),
//			richtext.WithRecognizer[Lang](openProfile),
//		),
//		richtext.NewWidgetSpan[Lang](badge),
//	))
//
//	node, err := richtext.NewRichText(root)
//
// Lowering preserves child order and tree shape exactly; widget spans carry
// no language dependency and pass through unmodified. A span whose mapping
// lacks both the selected and the default key lowers to empty text rather
// than failing: the layer never renders a placeholder and never throws over
// a missing translation.
package richtext
