package ui

import (
	"selectbox/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// deferredMsg carries a scheduled callback from a widget's Open back onto
// the program loop, so it runs on a later Update turn
type deferredMsg struct {
	fn func()
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clipboardMsg contains the result of a clipboard copy
type clipboardMsg struct {
	value string
	err   error
}
