package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/host-bridge/api"
	"github.com/wippyai/host-bridge/host"
)

// Decoder converts host values into API values. It never fails: anything
// it cannot represent becomes Nil.
type Decoder struct {
	log *zap.Logger
}

func NewDecoder() *Decoder {
	return &Decoder{log: Logger()}
}

func newDecoderWithLogger(log *zap.Logger) *Decoder {
	return &Decoder{log: log}
}

// Decode deep-copies v into an API value.
//
// Each container is entered at most once per call. A container reached a
// second time, whether through a cycle or through sharing, is replaced by
// Nil, so the output is always a finite tree.
func (d *Decoder) Decode(v *host.Value) api.Value {
	if v == nil {
		return api.Nil()
	}
	seen := getVisited()
	defer putVisited(seen)
	return d.decode(v, seen)
}

func (d *Decoder) decode(v *host.Value, seen *Visited) api.Value {
	switch v.Kind {
	case host.KindNumber:
		return api.Int(v.Number)

	case host.KindFloat:
		return api.Float(v.Float)

	case host.KindString:
		if v.Str == nil {
			return api.Nil()
		}
		return api.Bytes(v.Str)

	case host.KindList:
		l := v.List
		if l == nil || l.Freed() {
			return api.Nil()
		}
		if !seen.Mark(l.Handle()) {
			d.log.Debug("container revisited, truncated to nil",
				zap.Stringer("kind", host.KindList), zap.Uint32("handle", uint32(l.Handle())))
			return api.Nil()
		}
		items := make([]api.Value, 0, l.Len())
		l.Each(func(_ int, item *host.Value) bool {
			items = append(items, d.decode(item, seen))
			return true
		})
		return api.Array(items...)

	case host.KindDict:
		dict := v.Dict
		if dict == nil || dict.Freed() {
			return api.Nil()
		}
		if !seen.Mark(dict.Handle()) {
			d.log.Debug("container revisited, truncated to nil",
				zap.Stringer("kind", host.KindDict), zap.Uint32("handle", uint32(dict.Handle())))
			return api.Nil()
		}
		pairs := make([]api.KeyValuePair, 0, dict.Len())
		dict.Each(func(item *host.DictItem) bool {
			pairs = append(pairs, api.Pair(item.Key, d.decode(&item.Value, seen)))
			return true
		})
		return api.Dictionary(pairs...)

	default:
		return api.Nil()
	}
}
