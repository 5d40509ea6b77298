package state

import (
	"selectbox/internal/domain"
)

// State contains all the widget state for one dropdown instance.
// It is owned by the widget's controller for the instance's entire
// lifetime and is mutated through the action layer only.
type State struct {
	// Status flags
	Focused       bool // widget has input focus
	Invalid       bool // value fails external validation
	Disabled      bool // user interaction must be ignored
	Searching     bool // filter/search input mode is active
	UseNativeMode bool // rendering delegated to the platform-native control
	Scrollable    bool // option list currently needs internal scrolling

	// Geometry and position
	OptionHeight int                 // measured height of one option row
	Body         domain.BodyStatus   // open/closed/direction, single source of truth
	Scroll       domain.ScrollStatus // option list scroll position, zero = unmeasured

	// Selection and data
	SelectedIndex int                  // index into the flattened option list
	Groups        []domain.OptionGroup // option data, read-only for the action layer
}

// New creates widget state with the given option data and default flags
func New(groups []domain.OptionGroup) *State {
	return &State{
		Groups: groups,
	}
}

// Derived queries; Body is the single source of truth

// IsOpen reports whether the dropdown body is open in either direction
func (s *State) IsOpen() bool {
	return s.Body != domain.BodyClosed
}

// IsClosed reports whether the dropdown body is closed
func (s *State) IsClosed() bool {
	return s.Body == domain.BodyClosed
}

// IsOpenAbove reports whether the body opens above the trigger
func (s *State) IsOpenAbove() bool {
	return s.Body == domain.BodyOpenAbove
}

// IsOpenBelow reports whether the body opens below the trigger
func (s *State) IsOpenBelow() bool {
	return s.Body == domain.BodyOpenBelow
}

// IsAtTop reports whether the option list is scrolled to its top edge
func (s *State) IsAtTop() bool {
	return s.Scroll == domain.ScrollAtTop
}

// IsAtBottom reports whether the option list is scrolled to its bottom edge
func (s *State) IsAtBottom() bool {
	return s.Scroll == domain.ScrollAtBottom
}

// Option data queries

// OptionCount returns the number of options across all groups
func (s *State) OptionCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Options)
	}
	return n
}

// OptionAt returns the option at the given flattened index.
// Out-of-range indexes return a zero Option and false rather than panicking;
// the action layer never validates indexes, so consumers must tolerate them.
func (s *State) OptionAt(index int) (domain.Option, bool) {
	if index < 0 {
		return domain.Option{}, false
	}
	for _, g := range s.Groups {
		if index < len(g.Options) {
			return g.Options[index], true
		}
		index -= len(g.Options)
	}
	return domain.Option{}, false
}

// SelectedOption returns the currently selected option, if the
// selected index corresponds to a real option
func (s *State) SelectedOption() (domain.Option, bool) {
	return s.OptionAt(s.SelectedIndex)
}
