package host

import (
	"sync"
)

// Handle identifies a live container on a Heap.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType tags heap lifecycle notifications.
type EventType uint8

const (
	EventAlloc EventType = iota
	EventFree
)

// Event represents a container lifecycle event.
type Event struct {
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about container lifecycle events.
type Observer interface {
	OnHeapEvent(Event)
}

// Heap allocates and frees host containers and tracks which are live.
// Handles of freed containers are recycled.
type Heap struct {
	entries   []heapEntry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
}

type heapEntry struct {
	container any
	kind      Kind
	valid     bool
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{
		entries:  make([]heapEntry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// NewList allocates an empty list with a reference count of zero.
func (h *Heap) NewList() *List {
	l := &List{heap: h}
	l.handle = h.register(KindList, l)
	return l
}

// NewDict allocates an empty dict with a reference count of zero.
func (h *Heap) NewDict() *Dict {
	d := &Dict{heap: h}
	d.tab.init()
	d.handle = h.register(KindDict, d)
	return d
}

// FreeList releases l. With recurse set, every item is cleared first, which
// drops the references items hold on nested containers. Freeing an already
// freed list is a no-op.
func (h *Heap) FreeList(l *List, recurse bool) {
	if l == nil || l.heap != h || l.handle == 0 {
		return
	}

	handle := l.handle
	l.handle = 0
	h.unregister(handle, KindList)

	items := l.items
	l.items = nil
	if recurse {
		for i := range items {
			Clear(&items[i])
		}
	}
}

// FreeDict releases d. With recurse set, every item value is cleared first.
// Freeing an already freed dict is a no-op.
func (h *Heap) FreeDict(d *Dict, recurse bool) {
	if d == nil || d.heap != h || d.handle == 0 {
		return
	}

	handle := d.handle
	d.handle = 0
	h.unregister(handle, KindDict)

	var items []*DictItem
	d.tab.each(func(item *DictItem) bool {
		items = append(items, item)
		return true
	})
	d.tab.init()
	if recurse {
		for _, item := range items {
			Clear(&item.Value)
		}
	}
}

// Len returns the number of live containers.
func (h *Heap) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, e := range h.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live containers.
func (h *Heap) Each(fn func(Handle, Kind) bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for i, e := range h.entries {
		if e.valid {
			if !fn(Handle(i+1), e.kind) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (h *Heap) Subscribe(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	h.observers = append(h.observers, o)
}

// Unsubscribe removes an observer.
func (h *Heap) Unsubscribe(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	for i, obs := range h.observers {
		if obs == o {
			h.observers = append(h.observers[:i], h.observers[i+1:]...)
			return
		}
	}
}

func (h *Heap) register(kind Kind, container any) Handle {
	h.mu.Lock()
	e := heapEntry{
		container: container,
		kind:      kind,
		valid:     true,
	}

	var handle Handle
	if len(h.freeList) > 0 {
		handle = h.freeList[len(h.freeList)-1]
		h.freeList = h.freeList[:len(h.freeList)-1]
		h.entries[handle-1] = e
	} else {
		h.entries = append(h.entries, e)
		handle = Handle(len(h.entries))
	}
	h.mu.Unlock()

	h.notify(Event{Type: EventAlloc, Handle: handle, Kind: kind})
	return handle
}

func (h *Heap) unregister(handle Handle, kind Kind) {
	h.mu.Lock()
	idx := handle - 1
	if int(idx) >= len(h.entries) || !h.entries[idx].valid {
		h.mu.Unlock()
		return
	}
	h.entries[idx] = heapEntry{}
	h.freeList = append(h.freeList, handle)
	h.mu.Unlock()

	h.notify(Event{Type: EventFree, Handle: handle, Kind: kind})
}

func (h *Heap) notify(e Event) {
	h.obsMu.RLock()
	defer h.obsMu.RUnlock()
	for _, o := range h.observers {
		o.OnHeapEvent(e)
	}
}
