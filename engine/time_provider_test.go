package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time after SetTime to be %v, got %v", newTime, now)
	}

	advanced := mock.Advance(time.Hour)
	expected := newTime.Add(time.Hour)
	if !advanced.Equal(expected) {
		t.Errorf("Expected Advance to return %v, got %v", expected, advanced)
	}
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time after Advance to be %v, got %v", expected, now)
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 8; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("Draw %d differs for equal seeds: %d != %d", i, x, y)
		}
	}
}
