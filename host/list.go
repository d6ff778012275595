package host

// List is a reference-counted, ordered host container.
type List struct {
	heap     *Heap
	items    []Value
	refcount int
	handle   Handle
	lock     Lock
}

// Handle returns the list's heap identity, or 0 once freed.
func (l *List) Handle() Handle {
	return l.handle
}

// Freed reports whether the list has been released.
func (l *List) Freed() bool {
	return l.handle == 0
}

// Refcount returns the number of owning bindings.
func (l *List) Refcount() int {
	return l.refcount
}

// Ref adds an owning binding.
func (l *List) Ref() {
	l.refcount++
}

// Unref drops an owning binding, freeing the list and its items when none
// remain.
func (l *List) Unref() {
	l.refcount--
	if l.refcount <= 0 {
		l.heap.FreeList(l, true)
	}
}

// Locked reports whether membership changes are forbidden.
func (l *List) Locked() bool {
	return l.lock != LockUnlocked
}

// SetLock changes the lock state. A fixed lock cannot be changed.
func (l *List) SetLock(lock Lock) {
	if l.lock == LockFixed {
		return
	}
	l.lock = lock
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Append adds v at the end. The list takes over v's references.
func (l *List) Append(v Value) {
	l.items = append(l.items, v)
}

// At returns a pointer to the item at index i, or nil when out of range.
// The pointer is valid until the list is modified.
func (l *List) At(i int) *Value {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return &l.items[i]
}

// Each calls fn for every item in order until fn returns false.
func (l *List) Each(fn func(int, *Value) bool) {
	for i := range l.items {
		if !fn(i, &l.items[i]) {
			return
		}
	}
}
