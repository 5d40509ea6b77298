package domain

// Option represents a single selectable entry in the dropdown list
type Option struct {
	Value string
	Label string // text shown in the list, falls back to Value when empty
}

// DisplayLabel returns the text to render for the option
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// OptionGroup is an ordered set of options rendered under a shared heading
type OptionGroup struct {
	Label   string
	Options []Option
}

// BodyStatus is the widget's open/closed/direction state
type BodyStatus int

const (
	BodyClosed BodyStatus = iota
	BodyOpenAbove
	BodyOpenBelow
)

// String returns a human-readable name for logging
func (b BodyStatus) String() string {
	switch b {
	case BodyOpenAbove:
		return "open-above"
	case BodyOpenBelow:
		return "open-below"
	default:
		return "closed"
	}
}

// ScrollStatus is the position of the option list's internal scroll.
// The zero value means the position has not been measured yet.
type ScrollStatus int

const (
	ScrollUnset ScrollStatus = iota
	ScrollAtTop
	ScrollAtBottom
	ScrollScrolled
)

// String returns a human-readable name for logging
func (s ScrollStatus) String() string {
	switch s {
	case ScrollAtTop:
		return "at-top"
	case ScrollAtBottom:
		return "at-bottom"
	case ScrollScrolled:
		return "scrolled"
	default:
		return "unset"
	}
}

// CollisionType classifies where the dropdown's preferred render position
// would overflow the viewport
type CollisionType int

const (
	CollisionNone CollisionType = iota
	CollisionTop
	CollisionBottom
)

// Collision describes the viewport collision detected for an opening dropdown
type Collision struct {
	Type CollisionType
	// MaxVisibleOptionsOverride caps the visible option rows for this open.
	// Zero means no override; it is never validated against the option count.
	MaxVisibleOptionsOverride int
}
