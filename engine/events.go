package engine

import "fmt"

// EventType identifies a game event emitted during Step
type EventType int

const (
	// EventGameStart is emitted when Title moves to Playing
	EventGameStart EventType = iota

	// EventPoint is emitted once per obstacle passed
	EventPoint

	// EventCollision is emitted when a life is lost
	EventCollision

	// EventVictory is emitted when the player exits through the right door
	// Level carries the completed level
	EventVictory

	// EventGameOver is emitted when the last life is lost
	EventGameOver

	// EventHighScore is emitted when the final score beat the stored high score
	EventHighScore

	// EventTitle is emitted when GameOver returns to Title
	EventTitle
)

var eventNames = [...]string{
	EventGameStart: "GameStart",
	EventPoint:     "Point",
	EventCollision: "Collision",
	EventVictory:   "Victory",
	EventGameOver:  "GameOver",
	EventHighScore: "HighScore",
	EventTitle:     "Title",
}

func (e EventType) String() string {
	if int(e) < 0 || int(e) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[e]
}

// Event is a snapshot of the session counters at the moment something happened
type Event struct {
	Type  EventType
	Frame uint64
	Score int
	Lives int
	Level int
}

func (e Event) String() string {
	return fmt.Sprintf("%s frame=%d score=%d lives=%d level=%d", e.Type, e.Frame, e.Score, e.Lives, e.Level)
}

// EventQueue buffers events between the simulation and the host
// Single producer, single consumer, both on the frame goroutine
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Consume returns all pending events and empties the queue
func (q *EventQueue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
