package api

import "bytes"

// Equal reports whether a and b are structurally equal.
//
// Arrays compare element-wise in order. Dictionaries compare as key sets,
// ignoring entry order. Floats compare by value, so NaN is never equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNil:
		return true
	case KindBool, KindInt:
		return a.num == b.num
	case KindFloat:
		return a.AsFloat() == b.AsFloat()
	case KindString:
		return bytes.Equal(a.str, b.str)
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindDictionary:
		if len(a.pairs) != len(b.pairs) {
			return false
		}
		index := make(map[string]Value, len(b.pairs))
		for _, p := range b.pairs {
			index[p.Key] = p.Value
		}
		if len(index) != len(b.pairs) {
			return false
		}
		for _, p := range a.pairs {
			other, ok := index[p.Key]
			if !ok || !Equal(p.Value, other) {
				return false
			}
			delete(index, p.Key)
		}
		return len(index) == 0
	default:
		return false
	}
}
