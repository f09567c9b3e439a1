package timer

import (
	"fmt"
	"sync"
)

// Timer is the focus timer. It does not run on its own; the clock driver
// calls Tick once per second and each tick counts as exactly one second.
type Timer struct {
	mu      sync.RWMutex
	elapsed int
	running bool
}

func New() *Timer {
	return &Timer{}
}

// Stop pauses the timer, keeping elapsed time.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Toggle flips between running and paused and returns the new state.
func (t *Timer) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = !t.running
	return t.running
}

// Tick adds one second while running. It reports whether elapsed changed.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return false
	}
	t.elapsed++
	return true
}

// Elapsed returns the accumulated focus time in whole seconds.
func (t *Timer) Elapsed() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.elapsed
}

func (t *Timer) Running() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.running
}

// Format renders seconds as MM:SS. Minutes are not wrapped at an hour,
// so 3661 becomes "61:01".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
