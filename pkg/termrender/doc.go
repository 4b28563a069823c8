// Package termrender implements the host render primitive for terminals:
// it turns resolved text nodes and lowered span trees into styled strings
// using lipgloss, with cell-width-aware overflow handling.
//
// The localization core never renders anything itself; it resolves
// multilingual fields to plain values and hands them to a
// richtext.Renderer. This package is that renderer for terminal UIs:
//
//	renderer := termrender.New(termrender.WithWidth(40))
//
//	node := richtext.NewText(multilingual.Translations[Lang]{
//		English: "Hello",
//		German:  "Guten Tag",
//	})
//	out := node.Render(scope.Context(ctx), renderer)
//
// Rendering is pure formatting: no state, no language logic. The same
// renderer instance can serve every node in a program.
package termrender
