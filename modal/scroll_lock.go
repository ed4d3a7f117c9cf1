// ABOUTME: Counted scroll lock held while a modal is open
// ABOUTME: Acquire hands back an idempotent release function
package modal

import "sync"

// ScrollLock suppresses background scrolling while any holder is active.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock. Calling the returned release more than once has
// no further effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
