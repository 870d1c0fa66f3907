// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game event types
const (
	GameReset    Type = "game_reset"
	StateChanged Type = "state_changed"
	BallServed   Type = "ball_served"
	BallCollided Type = "ball_collided"
	BallOut      Type = "ball_out"
	PointScored  Type = "point_scored"
	MatchWon     Type = "match_won"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// ScoreEvent carries the score after a point or match result
type ScoreEvent struct {
	BaseEvent
	Scorer string
	Player int
	CPU    int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(eventType Type, source interface{}, scorer string, player, cpu int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Scorer: scorer,
		Player: player,
		CPU:    cpu,
	}
}

// StateEvent records a game state transition
type StateEvent struct {
	BaseEvent
	From string
	To   string
}

// NewStateEvent creates a new state transition event
func NewStateEvent(source interface{}, from, to string) *StateEvent {
	return &StateEvent{
		BaseEvent: BaseEvent{
			EventType: StateChanged,
			Source:    source,
		},
		From: from,
		To:   to,
	}
}

// CollisionEvent reports how many bounces the ball made in one tick
type CollisionEvent struct {
	BaseEvent
	Count int
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, count int) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: BallCollided,
			Source:    source,
		},
		Count: count,
	}
}
