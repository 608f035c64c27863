package engine

import "testing"

// TestStateString tests the String() method for State
func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateTitle, "Title"},
		{StatePlaying, "Playing"},
		{StateGameOver, "GameOver"},
		{State(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.state.String(); result != tt.expected {
				t.Errorf("State(%d).String() = %q, want %q", tt.state, result, tt.expected)
			}
		})
	}
}

// TestTitleWaitsForPrimary verifies the title screen ignores frames without input
func TestTitleWaitsForPrimary(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 10; i++ {
		g.Step(Input{})
	}
	if g.State() != StateTitle {
		t.Fatalf("Expected StateTitle without input, got %v", g.State())
	}

	g.Step(Input{Primary: true})
	if g.State() != StatePlaying {
		t.Fatalf("Expected StatePlaying after primary, got %v", g.State())
	}

	events := g.ConsumeEvents()
	if len(events) != 1 || events[0].Type != EventGameStart {
		t.Errorf("Expected single GameStart event, got %v", events)
	}
}

// TestTitleCooldownBlocksStart verifies the debounce counter gates Title→Playing
func TestTitleCooldownBlocksStart(t *testing.T) {
	g, _ := newTestGame(t)
	g.cooldown = 5

	for i := 0; i < 4; i++ {
		g.Step(Input{Primary: true})
		if g.State() != StateTitle {
			t.Fatalf("Step %d: expected StateTitle during cooldown, got %v", i, g.State())
		}
	}

	g.Step(Input{Primary: true})
	if g.State() != StatePlaying {
		t.Errorf("Expected StatePlaying once cooldown reached zero, got %v", g.State())
	}
}

// TestLastLifeEndsGame covers lives=1 → collision → GameOver with the score recorded
func TestLastLifeEndsGame(t *testing.T) {
	g, rec := newTestGame(t)
	startPlaying(t, g)

	g.lives = 1
	g.score = 42
	g.HandleCollision()

	if g.Lives() != 0 {
		t.Errorf("Expected 0 lives, got %d", g.Lives())
	}
	if g.State() != StateGameOver {
		t.Fatalf("Expected StateGameOver, got %v", g.State())
	}
	if len(rec.calls) != 1 || rec.calls[0] != 42 {
		t.Errorf("Expected recorder called once with 42, got %v", rec.calls)
	}
	if g.HighScore() != 42 {
		t.Errorf("Expected high score 42, got %d", g.HighScore())
	}

	var types []EventType
	for _, e := range g.ConsumeEvents() {
		types = append(types, e.Type)
	}
	expected := []EventType{EventCollision, EventGameOver, EventHighScore}
	if len(types) != len(expected) {
		t.Fatalf("Expected events %v, got %v", expected, types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("Event %d: expected %v, got %v", i, expected[i], types[i])
		}
	}
}

// TestLowScoreDoesNotEmitHighScore verifies no HighScore event when the record stands
func TestLowScoreDoesNotEmitHighScore(t *testing.T) {
	g, rec := newTestGame(t)
	rec.high = 100
	startPlaying(t, g)

	g.lives = 1
	g.score = 7
	g.HandleCollision()

	if len(rec.calls) != 1 || rec.calls[0] != 7 {
		t.Errorf("Expected recorder called with 7, got %v", rec.calls)
	}
	for _, e := range g.ConsumeEvents() {
		if e.Type == EventHighScore {
			t.Error("Unexpected HighScore event")
		}
	}
}

// TestGameOverReturnsToTitleWithCooldown verifies GameOver→Title debounce
func TestGameOverReturnsToTitleWithCooldown(t *testing.T) {
	g, _ := newTestGame(t)
	startPlaying(t, g)
	g.lives = 1
	g.HandleCollision()

	g.Step(Input{Primary: true})
	if g.State() != StateTitle {
		t.Fatalf("Expected StateTitle, got %v", g.State())
	}
	if g.Cooldown() != 30 {
		t.Fatalf("Expected cooldown 30, got %d", g.Cooldown())
	}

	// Holding primary: 29 frames stay on title, the 30th starts a new game
	for i := 1; i < 30; i++ {
		g.Step(Input{Primary: true})
		if g.State() != StateTitle {
			t.Fatalf("Frame %d: expected StateTitle during cooldown, got %v", i, g.State())
		}
	}
	g.Step(Input{Primary: true})
	if g.State() != StatePlaying {
		t.Errorf("Expected StatePlaying after cooldown, got %v", g.State())
	}
}

// TestGameOverIgnoresFramesWithoutInput verifies the summary screen waits
func TestGameOverIgnoresFramesWithoutInput(t *testing.T) {
	g, _ := newTestGame(t)
	startPlaying(t, g)
	g.lives = 1
	g.HandleCollision()

	p := g.Player()
	for i := 0; i < 100; i++ {
		g.Step(Input{})
	}
	if g.State() != StateGameOver {
		t.Errorf("Expected StateGameOver, got %v", g.State())
	}
	if g.Player() != p {
		t.Error("Player should not move on the game over screen")
	}
}

// TestRestartResetsSession verifies a new session starts clean after game over
func TestRestartResetsSession(t *testing.T) {
	g, _ := newTestGame(t)
	startPlaying(t, g)
	g.score = 99
	g.level = 4
	g.lives = 1
	g.HandleCollision()

	g.Step(Input{Primary: true}) // GameOver → Title
	for i := 0; i < 30; i++ {
		g.Step(Input{Primary: true})
	}
	if g.State() != StatePlaying {
		t.Fatalf("Expected StatePlaying, got %v", g.State())
	}

	if g.Score() != 0 || g.Lives() != 3 || g.Level() != 1 {
		t.Errorf("Expected fresh counters, got score=%d lives=%d level=%d", g.Score(), g.Lives(), g.Level())
	}
	if len(g.Obstacles()) != 5 {
		t.Errorf("Expected 5 obstacles, got %d", len(g.Obstacles()))
	}
	if g.Transition() != nil {
		t.Errorf("Expected leftover transition to be cleared, got %T", g.Transition())
	}
}
