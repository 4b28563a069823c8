// Package teabridge connects a language scope to a bubbletea program:
// scope notifications become tea messages, so language selection drives the
// program's ordinary update/view cycle.
//
//	scope, _ := langscope.NewScope(English)
//	p := tea.NewProgram(model{scope: scope})
//
//	cancel := teabridge.Bind(scope, p.Send)
//	defer cancel()
//
//	// In Update:
//	case teabridge.LanguageChanged[Lang]:
//		m.state = msg.State
//		return m, nil
//
// Only changes that pass langscope.ShouldNotify arrive; republishing an
// unchanged selection never wakes the program.
package teabridge
