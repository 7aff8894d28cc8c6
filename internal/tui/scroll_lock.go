package tui

// ScrollLock is the process-wide scroll suppression flag. Card drags
// and modal overlays acquire it so the background viewport ignores
// wheel input while they are active.
//
// Acquisition is scoped: every owner that acquires the lock must
// release it on all of its exit paths (resolve, cancel, teardown), and
// distinct owners do not release each other.
type ScrollLock struct {
	holders map[string]struct{}
}

// NewScrollLock returns an unlocked ScrollLock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{holders: make(map[string]struct{})}
}

// Acquire locks scrolling on behalf of owner. Re-acquiring is a no-op.
func (l *ScrollLock) Acquire(owner string) {
	l.holders[owner] = struct{}{}
}

// Release removes owner's hold. Releasing an unheld lock is a no-op.
func (l *ScrollLock) Release(owner string) {
	delete(l.holders, owner)
}

// Locked reports whether any owner currently holds the lock.
func (l *ScrollLock) Locked() bool {
	return len(l.holders) > 0
}

// Held reports whether the given owner holds the lock.
func (l *ScrollLock) Held(owner string) bool {
	_, ok := l.holders[owner]
	return ok
}
