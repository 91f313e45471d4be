// Package msg defines the message types used by the TUI's Bubbletea event loop
// and the command factories that produce them.
//
// Every network round trip runs inside a [tea.Cmd] and reports back with one
// of the messages here. Messages for the detail pane carry the
// [viewer.Token] they were issued with so the model can drop completions
// that belong to a scenario the user has already left.
package msg
