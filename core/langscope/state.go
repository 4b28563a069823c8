package langscope

import (
	"context"
	"fmt"
)

// State is the immutable snapshot published to a UI subtree: the default
// language fixed at scope construction, the currently selected language
// (nil when no selection applies), and the mutation entry point that routes
// a new selection back to the owning scope.
//
// A scope never mutates a published State; it constructs and republishes a
// fresh value on every change, so concurrent readers always observe a
// complete snapshot.
type State[T comparable] struct {
	// Default is the language used when the selected language is nil or
	// the selected key is missing from a mapping.
	Default T

	// Selected is the effective selected language. States published by a
	// Scope always carry a non-nil value because of the scope's
	// tracked ?? initial ?? default precedence; hand-built states may
	// leave it nil, which resolvers treat as "no explicit selection".
	Selected *T

	// Select routes a new language selection to the owning scope.
	// Nil on hand-built states.
	Select func(T)

	missing func(T)
}

// ReportMissing notifies the scope's missing-translation handler, if one was
// configured, that a mapping lacked an entry for lang. Resolvers call this
// for observability only; a missing key is never an error.
func (s State[T]) ReportMissing(lang T) {
	if s.missing != nil {
		s.missing(lang)
	}
}

// ShouldNotify reports whether the change from prev to next must be
// broadcast to subscribers. The selected language is the sole trigger:
// changes to the default language or to callback identity never force a
// redundant re-render.
func ShouldNotify[T comparable](prev, next State[T]) bool {
	switch {
	case prev.Selected == nil && next.Selected == nil:
		return false
	case prev.Selected == nil || next.Selected == nil:
		return true
	default:
		return *prev.Selected != *next.Selected
	}
}

// stateKey is the context key for a published State. The key type is
// parameterized by the language key type, so independently-typed scopes in
// the same context chain cannot collide.
type stateKey[T comparable] struct{}

// NewContext publishes the state to every consumer reading from the
// returned context. A nearer republish with the same key type shadows it.
func NewContext[T comparable](ctx context.Context, st State[T]) context.Context {
	return context.WithValue(ctx, stateKey[T]{}, st)
}

// FromContext returns the nearest published state for the key type T, and
// false when no scope has published one.
func FromContext[T comparable](ctx context.Context) (State[T], bool) {
	st, ok := ctx.Value(stateKey[T]{}).(State[T])
	return st, ok
}

// MustFromContext returns the nearest published state for the key type T
// and panics when none exists. A missing scope is a programmer error: the
// application forgot to wrap its tree in a Scope. It is never a runtime
// condition to recover from.
func MustFromContext[T comparable](ctx context.Context) State[T] {
	st, ok := FromContext[T](ctx)
	if !ok {
		var zero T
		panic(fmt.Sprintf("langscope: no language scope for key type %T in context", zero))
	}
	return st
}
