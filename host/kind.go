package host

// Kind discriminates host values.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumber
	KindFloat
	KindString
	KindList
	KindDict
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindNumber:  "number",
	KindFloat:   "float",
	KindString:  "string",
	KindList:    "list",
	KindDict:    "dict",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether values of this kind live on the Heap.
func (k Kind) IsContainer() bool {
	return k == KindList || k == KindDict
}

// Lock is the lock state of a value or container.
type Lock uint8

const (
	LockUnlocked Lock = iota
	LockLocked        // locked by the user, may be unlocked again
	LockFixed         // locked permanently
)
