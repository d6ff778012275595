package api

import (
	"math"
	"strconv"
	"strings"
)

// Value is a neutral, self-contained value. It never references host memory:
// strings and containers are owned by the Value that holds them.
//
// The zero Value is Nil.
type Value struct {
	str   []byte
	items []Value
	pairs []KeyValuePair
	num   uint64
	kind  Kind
}

// KeyValuePair is one dictionary entry. Keys are expected to be unique and
// non-empty; producers are trusted, consumers converting into the host
// model reject empty keys.
type KeyValuePair struct {
	Key   string
	Value Value
}

// Nil returns the nil value.
func Nil() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, num: uint64(i)}
}

// Float returns a floating point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, num: math.Float64bits(f)}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: []byte(s)}
}

// Bytes returns a string value holding a copy of b.
func Bytes(b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Value{kind: KindString, str: buf}
}

// Array returns an array holding items in order.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Dictionary returns a dictionary holding pairs in order.
func Dictionary(pairs ...KeyValuePair) Value {
	if pairs == nil {
		pairs = []KeyValuePair{}
	}
	return Value{kind: KindDictionary, pairs: pairs}
}

// Pair is shorthand for a KeyValuePair literal.
func Pair(key string, v Value) KeyValuePair {
	return KeyValuePair{Key: key, Value: v}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil reports whether v is Nil.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// AsBool returns the boolean payload; false for other kinds.
func (v Value) AsBool() bool {
	return v.kind == KindBool && v.num != 0
}

// AsInt returns the integer payload; 0 for other kinds.
func (v Value) AsInt() int64 {
	if v.kind != KindInt {
		return 0
	}
	return int64(v.num)
}

// AsFloat returns the float payload; 0 for other kinds.
func (v Value) AsFloat() float64 {
	if v.kind != KindFloat {
		return 0
	}
	return math.Float64frombits(v.num)
}

// AsString returns the string payload; "" for other kinds.
func (v Value) AsString() string {
	if v.kind != KindString {
		return ""
	}
	return string(v.str)
}

// AsBytes returns the string payload without copying. Callers must not
// modify the result.
func (v Value) AsBytes() []byte {
	if v.kind != KindString {
		return nil
	}
	return v.str
}

// Items returns the array elements; nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Pairs returns the dictionary entries; nil for other kinds.
func (v Value) Pairs() []KeyValuePair {
	if v.kind != KindDictionary {
		return nil
	}
	return v.pairs
}

// Len returns the byte length of a string, or the element count of a
// container. Scalars report 0.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.str)
	case KindArray:
		return len(v.items)
	case KindDictionary:
		return len(v.pairs)
	default:
		return 0
	}
}

// Lookup returns the value stored under key in a dictionary.
func (v Value) Lookup(key string) (Value, bool) {
	for _, p := range v.Pairs() {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// String renders v in a compact, human-readable form.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case KindNil:
		b.WriteString("nil")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.AsBool()))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.AsInt(), 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.AsFloat(), 'g', -1, 64))
	case KindString:
		b.WriteString(strconv.Quote(string(v.str)))
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.write(b)
		}
		b.WriteByte(']')
	case KindDictionary:
		b.WriteByte('{')
		for i, p := range v.pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(p.Key))
			b.WriteString(": ")
			p.Value.write(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("unknown")
	}
}
