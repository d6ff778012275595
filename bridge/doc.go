// Package bridge converts values between the host interpreter and the
// neutral API model.
//
// # Conversions
//
//	Host → API   Decoder.Decode, Bridge.ToNeutral    never fails
//	API → Host   Encoder.Encode, Bridge.FromNeutral  all-or-nothing
//
// Host→API conversion guards against cycles with a Visited set scoped to one
// call: a list or dict reached a second time becomes Nil. The same applies
// to containers that are merely shared, so the output is a tree and shared
// structure is not reconstructed.
//
// API→Host conversion frees everything it allocated when any element fails,
// including containers already attached to a partially built parent. Errors
// carry the path to the failing element:
//
//	_, err := enc.Encode(v)
//	// [from_neutral] empty_key at servers[2]: Empty dictionary keys aren't allowed
//
// # Dictionaries
//
// DictGet, DictSet and DictDel read and mutate a single key of a host dict,
// honoring its lock flag and reference counts.
//
// # Exception Drain
//
// Host code reports failures through global state: a pending interrupt, a
// message list and an exception in flight. TryStart and TryEnd bracket a
// call into host code and collapse that state into a single error on an
// errors.Channel. Bridge.Protect wraps both around a function.
package bridge
