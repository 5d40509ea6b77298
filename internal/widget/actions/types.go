package actions

import (
	"selectbox/internal/eventbus"
)

// Scheduler defers a callback to a later turn of the host event loop.
// Open uses it for the post-layout scrollability measurement, which is
// meaningless until the current render pass has settled.
type Scheduler interface {
	Defer(fn func())
}

// GoScheduler runs deferred callbacks on their own goroutine, after the
// caller's stack has unwound. This is the production scheduler.
type GoScheduler struct{}

func (GoScheduler) Defer(fn func()) { go fn() }

// ImmediateScheduler runs deferred callbacks synchronously. Useful when the
// caller already sits on a settled layout.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Defer(fn func()) { fn() }

// FuncScheduler adapts a plain function to the Scheduler interface
type FuncScheduler func(func())

func (f FuncScheduler) Defer(fn func()) { f(fn) }

// Deps carries the collaborators an action set needs from the surrounding
// widget. All fields are optional; nil collaborators are skipped.
type Deps struct {
	// WidgetID identifies the instance in published events
	WidgetID string

	// CloseOthers closes every sibling dropdown instance, enforcing the
	// single-open-dropdown-at-a-time rule
	CloseOthers func()

	// ScrollToView brings the selected option into the visible viewport.
	// The most recent top offset hint is available via Actions.TopOffset.
	ScrollToView func()

	// MeasureOptionHeight probes the rendered height of one option row.
	// When nil, Open re-establishes the current height unchanged.
	MeasureOptionHeight func() int

	// Bus receives widget lifecycle events when set
	Bus eventbus.EventBus

	// Scheduler defers the post-open measurement; defaults to GoScheduler
	Scheduler Scheduler
}
