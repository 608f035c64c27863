package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/star-dodger/constants"
)

// ErrSchedulerRunning is returned when Run is called on a scheduler that is already running
var ErrSchedulerRunning = errors.New("scheduler already running")

// FrameFunc runs one frame; returning false stops the scheduler
type FrameFunc func(now time.Time) bool

// ClockScheduler drives the host's frame callback on a fixed interval
// Deadlines advance by whole intervals for drift correction; when the loop falls
// more than two intervals behind, the schedule is re-anchored to now instead of
// bursting to catch up
type ClockScheduler struct {
	clock    TimeProvider
	interval time.Duration

	mu           sync.Mutex
	nextDeadline time.Time

	frameCount atomic.Uint64
	running    atomic.Bool
}

// NewClockScheduler creates a scheduler ticking every interval
func NewClockScheduler(clock TimeProvider, interval time.Duration) *ClockScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &ClockScheduler{
		clock:    clock,
		interval: interval,
	}
}

// IntervalForFPS converts a frame rate to a frame interval, falling back to 60 FPS
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(fps)
}

// Interval returns the configured frame interval
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.interval
}

// FrameCount returns the number of frames run
func (cs *ClockScheduler) FrameCount() uint64 {
	return cs.frameCount.Load()
}

// Run calls frame on schedule until ctx is cancelled or frame returns false
// Blocks the calling goroutine, which becomes the frame goroutine
func (cs *ClockScheduler) Run(ctx context.Context, frame FrameFunc) error {
	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer cs.running.Store(false)

	cs.mu.Lock()
	cs.nextDeadline = cs.clock.Now()
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		now := cs.clock.Now()

		cs.mu.Lock()
		deadline := cs.nextDeadline
		cs.mu.Unlock()

		if !now.Before(deadline) {
			if !frame(now) {
				return nil
			}
			cs.frameCount.Add(1)
			deadline = cs.advance(now)
		}

		sleepDuration := deadline.Sub(cs.clock.Now())
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// advance moves the deadline forward one interval from the frame at now
func (cs *ClockScheduler) advance(now time.Time) time.Time {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.nextDeadline = cs.nextDeadline.Add(cs.interval)

	maxBehind := cs.interval * 2
	if now.Sub(cs.nextDeadline) > maxBehind {
		cs.nextDeadline = now.Add(cs.interval)
	}
	return cs.nextDeadline
}
