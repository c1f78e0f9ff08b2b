package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBoundChanged        EventType = "BoundChanged"
	EventSequenceRegenerated EventType = "SequenceRegenerated"
	EventHighlightChanged    EventType = "HighlightChanged"
	EventHighlightCleared    EventType = "HighlightCleared"
	EventValidationFailed    EventType = "ValidationFailed"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BoundChangedEvent is emitted when the validated bound takes a new value
type BoundChangedEvent struct {
	From    int
	To      int
	Outcome Outcome
}

func (e BoundChangedEvent) Type() EventType { return EventBoundChanged }

// SequenceRegeneratedEvent is emitted after a new permutation replaced the old one
type SequenceRegeneratedEvent struct {
	Bound  int
	Length int
}

func (e SequenceRegeneratedEvent) Type() EventType { return EventSequenceRegenerated }

// HighlightChangedEvent is emitted when a hover recomputed the highlighted set
type HighlightChangedEvent struct {
	Target int
	Count  int
}

func (e HighlightChangedEvent) Type() EventType { return EventHighlightChanged }

// HighlightClearedEvent is emitted when the highlighted set was emptied
type HighlightClearedEvent struct {
	Forced bool // true when cleared by a bound change rather than an unhover
}

func (e HighlightClearedEvent) Type() EventType { return EventHighlightCleared }

// ValidationFailedEvent is emitted when the raw input is rejected
type ValidationFailedEvent struct {
	Raw    string
	Reason InvalidReason
}

func (e ValidationFailedEvent) Type() EventType { return EventValidationFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Maximum int
	Start   int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
