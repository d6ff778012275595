package host

// DictItem is one entry of a Dict. Key is immutable once the item is added.
type DictItem struct {
	Key   string
	Value Value
}

// NewDictItem allocates an unattached item for key.
func NewDictItem(key string) *DictItem {
	return &DictItem{Key: key}
}

// FreeDictItem releases what an unattached item holds.
func FreeDictItem(item *DictItem) {
	if item == nil {
		return
	}
	Clear(&item.Value)
}

// Dict is a reference-counted host map backed by an open-addressing hash
// table. Enumeration follows slot order, not insertion order.
type Dict struct {
	heap     *Heap
	tab      hashtab
	refcount int
	handle   Handle
	lock     Lock
}

// Handle returns the dict's heap identity, or 0 once freed.
func (d *Dict) Handle() Handle {
	return d.handle
}

// Heap returns the heap the dict was allocated on.
func (d *Dict) Heap() *Heap {
	return d.heap
}

// Freed reports whether the dict has been released.
func (d *Dict) Freed() bool {
	return d.handle == 0
}

// Refcount returns the number of owning bindings.
func (d *Dict) Refcount() int {
	return d.refcount
}

// Ref adds an owning binding.
func (d *Dict) Ref() {
	d.refcount++
}

// Unref drops an owning binding, freeing the dict and its items when none
// remain.
func (d *Dict) Unref() {
	d.refcount--
	if d.refcount <= 0 {
		d.heap.FreeDict(d, true)
	}
}

// Locked reports whether membership changes are forbidden.
func (d *Dict) Locked() bool {
	return d.lock != LockUnlocked
}

// SetLock changes the lock state. A fixed lock cannot be changed.
func (d *Dict) SetLock(lock Lock) {
	if d.lock == LockFixed {
		return
	}
	d.lock = lock
}

// Len returns the number of live entries.
func (d *Dict) Len() int {
	return d.tab.used
}

// Find returns the item stored under key, or nil.
func (d *Dict) Find(key string) *DictItem {
	return d.tab.find(key)
}

// Add inserts item. It reports false, leaving the dict unchanged, when an
// item with the same key exists.
func (d *Dict) Add(item *DictItem) bool {
	return d.tab.add(item)
}

// Remove unlinks item from the dict without freeing it.
func (d *Dict) Remove(item *DictItem) bool {
	return d.tab.remove(item)
}

// Each calls fn for every live entry in slot order until fn returns false.
// Empty and removed slots are skipped.
func (d *Dict) Each(fn func(*DictItem) bool) {
	d.tab.each(fn)
}

// Slots returns the size of the underlying table, live or not.
func (d *Dict) Slots() int {
	return len(d.tab.slots)
}
