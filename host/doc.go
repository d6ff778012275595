// Package host models the dynamic values of an embedded interpreter.
//
// Host values are numbers, floats, byte strings, lists and dicts. Lists and
// dicts are heap containers with a reference count and a lock flag:
//
//	heap := host.NewHeap()
//	l := heap.NewList()           // refcount 0
//	v := host.ListValue(l)        // refcount 1, owned by v
//	l.Append(host.NumberValue(1))
//	host.Clear(&v)                // refcount 0, list freed
//
// Containers may hold references to themselves or to an ancestor. Reference
// counting alone never frees such cycles; callers that build them are
// responsible for breaking them.
//
// # Dict Layout
//
// Dicts are backed by an open-addressing hash table. Removed entries leave
// tombstones until the table is rebuilt, and enumeration follows slot order,
// so iteration order is stable for a given table but unrelated to insertion
// order.
//
// # Interpreter State
//
// Interp bundles a Heap, the global variable dictionary and the global error
// flags (pending interrupt, queued messages, exception in flight). It
// implements hostbridge.Signals for the exception drain.
//
// # Thread Safety
//
// Only the Heap registry is synchronized. Containers, values and Interp must
// be used from one goroutine at a time.
package host
