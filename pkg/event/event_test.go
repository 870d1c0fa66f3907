// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{"GameReset event", GameReset, "test_source"},
		{"BallOut event", BallOut, 123},
		{"Empty source", BallServed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &BaseEvent{EventType: tt.eventType, Source: tt.source}

			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}
			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}
		})
	}
}

func TestBusSubscribe_MultipleHandlers_UniqueIDs(t *testing.T) {
	bus := NewEventBus()

	sub1 := bus.Subscribe(BallCollided, func(Event) {})
	sub2 := bus.Subscribe(BallCollided, func(Event) {})
	_ = bus.Subscribe(PointScored, func(Event) {})

	if sub1.ID == sub2.ID {
		t.Errorf("expected unique subscription IDs, both were %d", sub1.ID)
	}
	if sub1.Cancel == nil {
		t.Error("Subscription.Cancel is nil")
	}

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if len(bus.handlers[BallCollided]) != 2 {
		t.Errorf("expected 2 collision handlers, got %d", len(bus.handlers[BallCollided]))
	}
	if len(bus.handlers[PointScored]) != 1 {
		t.Errorf("expected 1 score handler, got %d", len(bus.handlers[PointScored]))
	}
}

func TestBusPublish_WithSubscribers_CallsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int

	bus.Subscribe(BallOut, func(Event) { order = append(order, 1) })
	bus.Subscribe(BallOut, func(Event) { order = append(order, 2) })
	bus.Subscribe(BallServed, func(Event) { order = append(order, 99) })

	bus.Publish(&BaseEvent{EventType: BallOut})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected handlers [1 2], got %v", order)
	}
}

func TestBusPublish_NoSubscribers_NoPanic(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(&BaseEvent{EventType: MatchWon})
}

func TestSubscriptionCancel_ValidSubscription_RemovesOnlyTarget(t *testing.T) {
	bus := NewEventBus()
	var first, second int

	sub := bus.Subscribe(BallCollided, func(Event) { first++ })
	bus.Subscribe(BallCollided, func(Event) { second++ })

	sub.Cancel()
	bus.Publish(NewCollisionEvent(nil, 1))

	if first != 0 {
		t.Errorf("cancelled handler was called %d times", first)
	}
	if second != 1 {
		t.Errorf("remaining handler called %d times, want 1", second)
	}

	// cancelling twice is harmless
	sub.Cancel()
}

func TestBusSubscribe_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(PointScored, func(Event) {})
		}()
		go func() {
			defer wg.Done()
			bus.Publish(&BaseEvent{EventType: PointScored})
		}()
	}
	wg.Wait()

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if len(bus.handlers[PointScored]) != 50 {
		t.Errorf("expected 50 handlers, got %d", len(bus.handlers[PointScored]))
	}
}

func TestNewScoreEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	e := NewScoreEvent(PointScored, "game", "cpu", 2, 3)

	if e.GetType() != PointScored {
		t.Errorf("GetType() = %v, want %v", e.GetType(), PointScored)
	}
	if e.Scorer != "cpu" || e.Player != 2 || e.CPU != 3 {
		t.Errorf("unexpected score event %+v", e)
	}
}

func TestNewStateEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	e := NewStateEvent(nil, "ready", "playing")

	if e.GetType() != StateChanged {
		t.Errorf("GetType() = %v, want %v", e.GetType(), StateChanged)
	}
	if e.From != "ready" || e.To != "playing" {
		t.Errorf("unexpected transition %s -> %s", e.From, e.To)
	}
}
