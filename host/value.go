package host

// Value is a host value. Only the field selected by Kind is meaningful.
//
// A Value holding a List or Dict owns one reference to it. Copy takes a new
// reference; Clear drops it.
type Value struct {
	List   *List
	Dict   *Dict
	Str    []byte // nil is the host's NULL string
	Number int64
	Float  float64
	Kind   Kind
	Lock   Lock
}

func NumberValue(n int64) Value {
	return Value{Kind: KindNumber, Number: n}
}

func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// StringValue allocates a host string holding a copy of s.
func StringValue(s string) Value {
	buf := make([]byte, len(s))
	copy(buf, s)
	return Value{Kind: KindString, Str: buf}
}

// NullString returns a string value with no buffer.
func NullString() Value {
	return Value{Kind: KindString}
}

// ListValue wraps l, taking a new reference to it.
func ListValue(l *List) Value {
	if l != nil {
		l.Ref()
	}
	return Value{Kind: KindList, List: l}
}

// DictValue wraps d, taking a new reference to it.
func DictValue(d *Dict) Value {
	if d != nil {
		d.Ref()
	}
	return Value{Kind: KindDict, Dict: d}
}

// Copy returns a copy of v. Containers are shared and gain a reference;
// string buffers are duplicated.
func Copy(v *Value) Value {
	out := *v
	out.Lock = LockUnlocked
	switch v.Kind {
	case KindString:
		if v.Str != nil {
			out.Str = append([]byte(nil), v.Str...)
		}
	case KindList:
		if v.List != nil {
			v.List.Ref()
		}
	case KindDict:
		if v.Dict != nil {
			v.Dict.Ref()
		}
	}
	return out
}

// Clear releases whatever v holds and resets it to an unknown value.
// Containers whose reference count drops to zero are freed.
func Clear(v *Value) {
	switch v.Kind {
	case KindList:
		if v.List != nil {
			v.List.Unref()
		}
	case KindDict:
		if v.Dict != nil {
			v.Dict.Unref()
		}
	}
	*v = Value{}
}
