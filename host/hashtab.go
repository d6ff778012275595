package host

// hashtabMinSize is the initial slot count. Sizes are always powers of two.
const hashtabMinSize = 16

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotRemoved
)

type slot struct {
	item  *DictItem
	hash  uint32
	state slotState
}

// hashtab is an open-addressing table with perturbed probing. Removed
// entries leave a tombstone so probe chains stay intact until the next
// resize.
type hashtab struct {
	slots  []slot
	used   int // live slots
	filled int // live + removed slots
}

func (t *hashtab) init() {
	t.slots = make([]slot, hashtabMinSize)
	t.used = 0
	t.filled = 0
}

func hashKey(key string) uint32 {
	if len(key) == 0 {
		return 0
	}
	h := uint32(key[0])
	for i := 1; i < len(key); i++ {
		h = h*101 + uint32(key[i])
	}
	return h
}

// lookup returns the slot holding key, or the slot key should be inserted
// into when it is absent. At least one empty slot always exists.
func (t *hashtab) lookup(key string, hash uint32) (int, bool) {
	mask := uint32(len(t.slots) - 1)
	idx := hash & mask
	perturb := hash
	free := -1

	for {
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			if free >= 0 {
				return free, false
			}
			return int(idx), false
		case slotRemoved:
			if free < 0 {
				free = int(idx)
			}
		case slotLive:
			if s.hash == hash && s.item.Key == key {
				return int(idx), true
			}
		}
		idx = ((idx << 2) + idx + perturb + 1) & mask
		perturb >>= 5
	}
}

func (t *hashtab) find(key string) *DictItem {
	if len(t.slots) == 0 {
		return nil
	}
	idx, ok := t.lookup(key, hashKey(key))
	if !ok {
		return nil
	}
	return t.slots[idx].item
}

func (t *hashtab) add(item *DictItem) bool {
	if len(t.slots) == 0 {
		t.init()
	}

	hash := hashKey(item.Key)
	idx, found := t.lookup(item.Key, hash)
	if found {
		return false
	}

	s := &t.slots[idx]
	if s.state == slotEmpty {
		t.filled++
	}
	*s = slot{item: item, hash: hash, state: slotLive}
	t.used++
	t.mayResize()
	return true
}

func (t *hashtab) remove(item *DictItem) bool {
	if item == nil || len(t.slots) == 0 {
		return false
	}

	idx, found := t.lookup(item.Key, hashKey(item.Key))
	if !found || t.slots[idx].item != item {
		return false
	}
	t.slots[idx] = slot{state: slotRemoved}
	t.used--
	return true
}

func (t *hashtab) each(fn func(*DictItem) bool) {
	for i := range t.slots {
		if t.slots[i].state != slotLive {
			continue
		}
		if !fn(t.slots[i].item) {
			return
		}
	}
}

// mayResize rebuilds the table once two thirds of the slots are filled.
// Tombstones are dropped in the rebuild.
func (t *hashtab) mayResize() {
	if t.filled*3 < len(t.slots)*2 {
		return
	}

	size := hashtabMinSize
	for size <= t.used*4 {
		size <<= 1
	}

	old := t.slots
	t.slots = make([]slot, size)
	t.filled = 0
	mask := uint32(size - 1)
	for _, s := range old {
		if s.state != slotLive {
			continue
		}
		idx := s.hash & mask
		perturb := s.hash
		for t.slots[idx].state != slotEmpty {
			idx = ((idx << 2) + idx + perturb + 1) & mask
			perturb >>= 5
		}
		t.slots[idx] = s
		t.filled++
	}
}
