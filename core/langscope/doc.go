// Package langscope owns the language-selection state for a UI subtree and
// broadcasts it to every consumer beneath the scope.
//
// A Scope holds the default language (fixed at construction) and the
// currently selected language (mutable through Select). Every change
// constructs a fresh, immutable State snapshot; snapshot identity changing
// is the signal consumers use to re-resolve their text. Subscribers are
// notified only when the selected language actually differs, per
// ShouldNotify.
//
// # Basic Usage
//
//	type Lang int
//
//	const (
//		English Lang = iota
//		German
//	)
//
//	scope, err := langscope.NewScope(German,
//		langscope.WithSelected[Lang](English),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Publish the state to a subtree via context.
//	ctx := scope.Context(context.Background())
//
//	// Consumers look the state up by the language key type.
//	st := langscope.MustFromContext[Lang](ctx)
//
//	// A user action selects another language; subscribers re-render.
//	st.Select(German)
//
// # Change Notification
//
// Subscribe registers a callback for republished snapshots. The predicate
// is intentionally narrow: only a change of the selected language fires it,
// so republishing with an unchanged selection never causes redundant
// re-renders.
//
//	_, cancel := scope.Subscribe(func(st langscope.State[Lang]) {
//		// schedule a re-render with st
//	})
//	defer cancel()
//
// Looking up a state from a context with no enclosing scope is a programmer
// error: MustFromContext panics, and FromContext is the non-panicking
// variant for the rare caller that can degrade.
package langscope
