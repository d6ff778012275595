package api

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindDictionary
)

var kindNames = [...]string{
	KindNil:        "nil",
	KindBool:       "bool",
	KindInt:        "int",
	KindFloat:      "float",
	KindString:     "string",
	KindArray:      "array",
	KindDictionary: "dictionary",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether values of this kind hold other values.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindDictionary
}
