package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOpened           EventType = "Opened"
	EventClosed           EventType = "Closed"
	EventSelectionChanged EventType = "SelectionChanged"
	EventFocusChanged     EventType = "FocusChanged"
	EventValidityChanged  EventType = "ValidityChanged"
	EventScrollEdge       EventType = "ScrollEdge"
	EventNativeMode       EventType = "NativeMode"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OpenedEvent is emitted when a dropdown body opens
type OpenedEvent struct {
	WidgetID  string
	Direction BodyStatus // BodyOpenAbove or BodyOpenBelow
}

func (e OpenedEvent) Type() EventType { return EventOpened }

// ClosedEvent is emitted when a dropdown body closes
type ClosedEvent struct {
	WidgetID string
}

func (e ClosedEvent) Type() EventType { return EventClosed }

// SelectionChangedEvent is emitted when an option is selected
type SelectionChangedEvent struct {
	WidgetID string
	Index    int
	Value    string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// FocusChangedEvent is emitted when the widget gains or loses focus
type FocusChangedEvent struct {
	WidgetID string
	Focused  bool
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// ValidityChangedEvent is emitted when the widget's validity flag flips
type ValidityChangedEvent struct {
	WidgetID string
	Invalid  bool
}

func (e ValidityChangedEvent) Type() EventType { return EventValidityChanged }

// ScrollEdgeEvent is emitted when the option list scroll position changes
type ScrollEdgeEvent struct {
	WidgetID string
	Status   ScrollStatus
}

func (e ScrollEdgeEvent) Type() EventType { return EventScrollEdge }

// NativeModeEvent is emitted when a widget switches to the platform-native control
type NativeModeEvent struct {
	WidgetID string
}

func (e NativeModeEvent) Type() EventType { return EventNativeMode }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	OptionHeight      int
	MaxVisibleOptions int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
