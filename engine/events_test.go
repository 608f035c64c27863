package engine

import "testing"

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(Event{Type: EventGameStart, Frame: 1})
	eq.Push(Event{Type: EventPoint, Frame: 2, Score: 1})
	eq.Push(Event{Type: EventCollision, Frame: 3, Lives: 2})

	if n := len(eq.events); n != 3 {
		t.Fatalf("Expected 3 pending events, got %d", n)
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// FIFO order
	if events[0].Type != EventGameStart || events[1].Type != EventPoint || events[2].Type != EventCollision {
		t.Errorf("Events out of order: %v", events)
	}
	if events[1].Score != 1 {
		t.Errorf("Expected point event score 1, got %d", events[1].Score)
	}

	if again := eq.Consume(); len(again) != 0 {
		t.Errorf("Expected empty second consume, got %d events", len(again))
	}
}

// TestEventQueueConsumeIsolation verifies consumed slices are not overwritten by later pushes
func TestEventQueueConsumeIsolation(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(Event{Type: EventVictory, Level: 1})

	first := eq.Consume()
	eq.Push(Event{Type: EventGameOver})

	if first[0].Type != EventVictory {
		t.Errorf("Consumed event mutated by later push: got %v", first[0].Type)
	}
}

// TestEventTypeString tests the String() method for EventType
func TestEventTypeString(t *testing.T) {
	tests := []struct {
		event    EventType
		expected string
	}{
		{EventGameStart, "GameStart"},
		{EventPoint, "Point"},
		{EventCollision, "Collision"},
		{EventVictory, "Victory"},
		{EventGameOver, "GameOver"},
		{EventHighScore, "HighScore"},
		{EventTitle, "Title"},
		{EventType(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.event.String(); result != tt.expected {
				t.Errorf("EventType(%d).String() = %q, want %q", tt.event, result, tt.expected)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	e := Event{Type: EventVictory, Frame: 120, Score: 57, Lives: 2, Level: 1}
	want := "Victory frame=120 score=57 lives=2 level=1"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
