package actions

import (
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/widget/state"
)

// Actions is the bound set of action methods for one widget instance.
// It is the sole mutation interface for the instance's State: every
// transition the widget can make goes through one of these methods.
type Actions struct {
	state *state.State
	deps  Deps

	// topOffset is the positioning hint from the most recent Open,
	// read by the ScrollToView collaborator
	topOffset int
}

// Resolve binds an action set to the given state. Called once per widget
// lifetime; the returned value closes over the state and collaborators.
func Resolve(st *state.State, deps Deps) *Actions {
	if deps.Scheduler == nil {
		deps.Scheduler = GoScheduler{}
	}
	return &Actions{
		state: st,
		deps:  deps,
	}
}

// State returns the bound state instance
func (a *Actions) State() *state.State {
	return a.state
}

// TopOffset returns the positioning hint passed to the most recent Open
func (a *Actions) TopOffset() int {
	return a.topOffset
}

// Focus marks the widget as having input focus
func (a *Actions) Focus() {
	a.state.Focused = true
	a.publish(eventbus.FocusChangedEvent{WidgetID: a.deps.WidgetID, Focused: true})
}

// Blur clears the widget's input focus
func (a *Actions) Blur() {
	a.state.Focused = false
	a.publish(eventbus.FocusChangedEvent{WidgetID: a.deps.WidgetID, Focused: false})
}

// Invalidate marks the widget's value as failing validation
func (a *Actions) Invalidate() {
	a.state.Invalid = true
	a.publish(eventbus.ValidityChangedEvent{WidgetID: a.deps.WidgetID, Invalid: true})
}

// Validate clears the widget's invalid flag
func (a *Actions) Validate() {
	a.state.Invalid = false
	a.publish(eventbus.ValidityChangedEvent{WidgetID: a.deps.WidgetID, Invalid: false})
}

// TopOut records that the option list is scrolled to its top edge
func (a *Actions) TopOut() {
	a.setScroll(domain.ScrollAtTop)
}

// BottomOut records that the option list is scrolled to its bottom edge
func (a *Actions) BottomOut() {
	a.setScroll(domain.ScrollAtBottom)
}

// Scroll records that the option list is scrolled somewhere between its edges
func (a *Actions) Scroll() {
	a.setScroll(domain.ScrollScrolled)
}

// MakeScrollable marks the option list as needing internal scrolling
func (a *Actions) MakeScrollable() {
	a.state.Scrollable = true
}

// MakeUnscrollable marks the option list as fitting without scrolling
func (a *Actions) MakeUnscrollable() {
	a.state.Scrollable = false
}

// SetOptionHeight records the measured height of one option row.
// No bounds checking; callers own the value's sanity.
func (a *Actions) SetOptionHeight(height int) {
	a.state.OptionHeight = height
}

// UseNative delegates rendering to the platform-native selection control
func (a *Actions) UseNative() {
	a.state.UseNativeMode = true
	a.publish(eventbus.NativeModeEvent{WidgetID: a.deps.WidgetID})
}

// SelectOption records the chosen option index. Selecting always clears
// invalidity and closes an open body; in search mode the visible scroll
// position is re-synchronized with the selection, since filtering may
// have scrolled the list away from it. The index is never validated
// against the option data.
func (a *Actions) SelectOption(index int) {
	a.state.SelectedIndex = index

	if a.state.Invalid {
		a.Validate()
	}

	if a.state.IsOpen() {
		a.state.Body = domain.BodyClosed
		a.publish(eventbus.ClosedEvent{WidgetID: a.deps.WidgetID})
	}

	if a.state.Searching && a.deps.ScrollToView != nil {
		a.deps.ScrollToView()
	}

	value := ""
	if opt, ok := a.state.OptionAt(index); ok {
		value = opt.Value
	}
	a.publish(eventbus.SelectionChangedEvent{
		WidgetID: a.deps.WidgetID,
		Index:    index,
		Value:    value,
	})
}

// Open opens the dropdown body, choosing the direction from the detected
// viewport collision: a top collision (or none) opens below, a bottom
// collision opens above. Disabled widgets stay closed. The scrollability
// measurement is deferred to a later turn of the event loop because it
// depends on post-render layout; if Open is called again before a pending
// measurement fires, both callbacks run and the later one wins.
func (a *Actions) Open(collision domain.Collision, measureScrollable func() bool, topOffset int) {
	if a.state.Disabled {
		return
	}

	// Height and sibling closing happen on every open, before the
	// direction decision
	height := a.state.OptionHeight
	if a.deps.MeasureOptionHeight != nil {
		height = a.deps.MeasureOptionHeight()
	}
	a.SetOptionHeight(height)
	if a.deps.CloseOthers != nil {
		a.deps.CloseOthers()
	}

	switch collision.Type {
	case domain.CollisionBottom:
		a.state.Body = domain.BodyOpenAbove
	default:
		// CollisionTop and CollisionNone both open below
		a.state.Body = domain.BodyOpenBelow
	}
	a.topOffset = topOffset
	a.publish(eventbus.OpenedEvent{WidgetID: a.deps.WidgetID, Direction: a.state.Body})

	a.deps.Scheduler.Defer(func() {
		if measureScrollable != nil {
			if measureScrollable() {
				a.MakeScrollable()
			} else if a.state.Scrollable {
				a.MakeUnscrollable()
			}
		}
		if a.deps.ScrollToView != nil {
			a.deps.ScrollToView()
		}
	})
}

func (a *Actions) setScroll(status domain.ScrollStatus) {
	a.state.Scroll = status
	a.publish(eventbus.ScrollEdgeEvent{WidgetID: a.deps.WidgetID, Status: status})
}

func (a *Actions) publish(event eventbus.DomainEvent) {
	if a.deps.Bus != nil {
		a.deps.Bus.Publish(event)
	}
}
