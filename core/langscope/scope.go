package langscope

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Scope owns the mutable "currently selected language" for one UI subtree
// and republishes a fresh State snapshot whenever it changes. Create one
// scope per subtree root, typically once per application.
type Scope[T comparable] struct {
	defaultLang T
	initial     *T
	missing     func(T)
	logger      *slog.Logger

	mu      sync.RWMutex
	tracked *T
	state   State[T]
	subs    map[string]func(State[T])
}

// Option configures a Scope during construction.
type Option[T comparable] func(*Scope[T]) error

// WithSelected sets the initial selected language. It becomes the
// externally visible selection immediately, without counting as an explicit
// runtime selection.
func WithSelected[T comparable](lang T) Option[T] {
	return func(s *Scope[T]) error {
		l := lang
		s.initial = &l
		return nil
	}
}

// WithLogger configures structured logging for selection changes and
// subscriber notification. Use slog.New(slog.NewTextHandler(io.Discard, nil))
// to disable logging; that is also the default.
func WithLogger[T comparable](logger *slog.Logger) Option[T] {
	return func(s *Scope[T]) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithMissingHandler sets a handler invoked when a resolver's mapping lacks
// an entry for the language it was asked for. Useful for logging incomplete
// translations during development. The handler rides on every published
// snapshot and never participates in the change-notification predicate.
func WithMissingHandler[T comparable](handler func(lang T)) Option[T] {
	return func(s *Scope[T]) error {
		if handler == nil {
			return fmt.Errorf("missing-translation handler cannot be nil")
		}
		s.missing = handler
		return nil
	}
}

// NewScope creates a scope with the given default language. The set of
// language keys an application uses with the scope is expected to stay
// fixed for the scope's lifetime.
func NewScope[T comparable](defaultLang T, opts ...Option[T]) (*Scope[T], error) {
	s := &Scope[T]{
		defaultLang: defaultLang,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		subs:        make(map[string]func(State[T])),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	s.state = s.buildStateLocked()
	return s, nil
}

// Default returns the scope's default language, fixed at construction.
func (s *Scope[T]) Default() T {
	return s.defaultLang
}

// State returns the current published snapshot.
func (s *Scope[T]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Context publishes the current snapshot into ctx for consumers beneath
// this scope.
func (s *Scope[T]) Context(ctx context.Context) context.Context {
	return NewContext(ctx, s.State())
}

// Select records lang as the explicit selection, republishes a fresh
// snapshot, and notifies subscribers when the selected language actually
// changed. Selection is one-way: once an explicit selection has been made
// the scope cannot be returned to "no explicit selection"; construct a new
// scope instead.
//
// Select is the function carried on every published State and may be called
// from any goroutine. Notification is fire-and-forget: the scope does not
// wait for, or observe, the consumers' re-render.
func (s *Scope[T]) Select(lang T) {
	s.mu.Lock()
	prev := s.state
	l := lang
	s.tracked = &l
	next := s.buildStateLocked()
	s.state = next

	var notify []func(State[T])
	if ShouldNotify(prev, next) {
		notify = make([]func(State[T]), 0, len(s.subs))
		for _, fn := range s.subs {
			notify = append(notify, fn)
		}
	}
	s.mu.Unlock()

	s.logger.Debug("language selected",
		slog.Any("language", lang),
		slog.Int("notified", len(notify)))

	for _, fn := range notify {
		fn(next)
	}
}

// Subscribe registers fn to be called with each newly published snapshot
// whose change passes ShouldNotify. It returns the subscription id and a
// cancel function; after cancel returns, fn will not be called again.
func (s *Scope[T]) Subscribe(fn func(State[T])) (string, func()) {
	id := uuid.New().String()

	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return id, cancel
}

// buildStateLocked constructs a fresh snapshot from the current selection.
// The published selected language is the first non-nil of tracked
// selection, initial selection, and default language.
func (s *Scope[T]) buildStateLocked() State[T] {
	sel := s.defaultLang
	switch {
	case s.tracked != nil:
		sel = *s.tracked
	case s.initial != nil:
		sel = *s.initial
	}

	selected := sel
	return State[T]{
		Default:  s.defaultLang,
		Selected: &selected,
		Select:   s.Select,
		missing:  s.missing,
	}
}
