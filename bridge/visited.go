package bridge

import (
	"sync"

	"github.com/wippyai/host-bridge/host"
)

const (
	// Pool limits to prevent memory bloat
	visitedMaxSize  = 4096
	visitedInitSize = 16
)

// Visited records which containers one Host→Value conversion has already
// entered. A set must never be shared between conversions.
type Visited struct {
	seen map[host.Handle]struct{}
}

// NewVisited creates an empty set.
func NewVisited() *Visited {
	return &Visited{seen: make(map[host.Handle]struct{}, visitedInitSize)}
}

// Mark records h and reports whether this is its first visit.
// The zero handle is never tracked and always reports false.
func (v *Visited) Mark(h host.Handle) bool {
	if h == 0 {
		return false
	}
	if _, ok := v.seen[h]; ok {
		return false
	}
	v.seen[h] = struct{}{}
	return true
}

// Len returns the number of marked containers.
func (v *Visited) Len() int {
	return len(v.seen)
}

// Reset forgets every mark.
func (v *Visited) Reset() {
	clear(v.seen)
}

var visitedPool = sync.Pool{
	New: func() any {
		return NewVisited()
	},
}

func getVisited() *Visited {
	return visitedPool.Get().(*Visited)
}

func putVisited(v *Visited) {
	if v == nil || len(v.seen) > visitedMaxSize {
		return // reject oversized
	}
	v.Reset()
	visitedPool.Put(v)
}
