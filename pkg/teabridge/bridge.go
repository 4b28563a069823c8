package teabridge

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshua-obritsch/blizzard-intl/core/langscope"
)

// LanguageChanged is delivered to a bubbletea program whenever the bound
// scope publishes a snapshot with a different selected language. The
// program's Update sees the message and its View re-resolves against the
// carried state.
type LanguageChanged[T comparable] struct {
	State langscope.State[T]
}

// Bind subscribes to the scope and forwards each notification to send as a
// LanguageChanged message, typically tea.Program.Send. Delivery is
// fire-and-forget: the scope never waits for the program's re-render. The
// returned cancel detaches the bridge.
func Bind[T comparable](scope *langscope.Scope[T], send func(tea.Msg)) (cancel func()) {
	_, cancel = scope.Subscribe(func(st langscope.State[T]) {
		send(LanguageChanged[T]{State: st})
	})
	return cancel
}

// SelectCmd returns a command that selects lang on the state's owning
// scope. The resulting re-render arrives as a LanguageChanged message via
// Bind, so the command itself produces no message.
func SelectCmd[T comparable](st langscope.State[T], lang T) tea.Cmd {
	return func() tea.Msg {
		if st.Select != nil {
			st.Select(lang)
		}
		return nil
	}
}
