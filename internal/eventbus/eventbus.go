package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"divgrid/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventBoundChanged        = domain.EventBoundChanged
	EventSequenceRegenerated = domain.EventSequenceRegenerated
	EventHighlightChanged    = domain.EventHighlightChanged
	EventHighlightCleared    = domain.EventHighlightCleared
	EventValidationFailed    = domain.EventValidationFailed
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
)

// Re-export domain event types
type BoundChangedEvent = domain.BoundChangedEvent
type SequenceRegeneratedEvent = domain.SequenceRegeneratedEvent
type HighlightChangedEvent = domain.HighlightChangedEvent
type HighlightClearedEvent = domain.HighlightClearedEvent
type ValidationFailedEvent = domain.ValidationFailedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publishing goroutine, in subscription order, before
// Publish returns.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	logger   *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &bus{
		handlers: make(map[EventType][]subscription),
		logger:   logger.Named("eventbus"),
	}
}

// Publish delivers an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventHighlightChanged, EventHighlightCleared:
	default:
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	}

	// Copy so handlers may subscribe or unsubscribe without deadlocking
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(s.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(DomainEvent)                      {}
func (NullBus) Subscribe(EventType, EventHandler) func() { return func() {} }
