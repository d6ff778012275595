package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/host-bridge/api"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/host"
)

// DefaultMaxDepth bounds container nesting when converting into host values.
const DefaultMaxDepth = 10000

// Encoder converts API values into host values allocated on one heap.
//
// Conversion is all-or-nothing: when any element fails, every container
// created for the call is freed before the error is returned.
type Encoder struct {
	heap     *host.Heap
	log      *zap.Logger
	maxDepth int
}

// NewEncoder creates an encoder allocating on heap. A maxDepth of zero or
// less disables the nesting limit.
func NewEncoder(heap *host.Heap, maxDepth int) *Encoder {
	return &Encoder{heap: heap, maxDepth: maxDepth, log: Logger()}
}

func newEncoderWithLogger(heap *host.Heap, maxDepth int, log *zap.Logger) *Encoder {
	return &Encoder{heap: heap, maxDepth: maxDepth, log: log}
}

// Encode builds the host value for v. A returned container carries one
// reference owned by the caller.
func (e *Encoder) Encode(v api.Value) (host.Value, error) {
	out, err := e.encode(v, 0)
	if err != nil {
		e.log.Debug("conversion rolled back",
			zap.String("kind", string(err.Kind)),
			zap.String("path", errors.JoinPath(err.Path)))
		return host.Value{}, err
	}
	return out, nil
}

func (e *Encoder) encode(v api.Value, depth int) (host.Value, *errors.Error) {
	switch v.Kind() {
	case api.KindNil:
		return host.NumberValue(0), nil

	case api.KindBool:
		if v.AsBool() {
			return host.NumberValue(1), nil
		}
		return host.NumberValue(0), nil

	case api.KindInt:
		return host.NumberValue(v.AsInt()), nil

	case api.KindFloat:
		return host.FloatValue(v.AsFloat()), nil

	case api.KindString:
		return host.StringValue(v.AsString()), nil

	case api.KindArray:
		if err := e.checkDepth(depth); err != nil {
			return host.Value{}, err
		}
		return e.encodeArray(v, depth)

	case api.KindDictionary:
		if err := e.checkDepth(depth); err != nil {
			return host.Value{}, err
		}
		return e.encodeDictionary(v, depth)

	default:
		return host.Value{}, errors.InvalidInput(errors.PhaseFromNeutral, "unknown value kind "+v.Kind().String())
	}
}

func (e *Encoder) checkDepth(depth int) *errors.Error {
	if e.maxDepth > 0 && depth >= e.maxDepth {
		return errors.TooDeep(errors.PhaseFromNeutral, nil, e.maxDepth)
	}
	return nil
}

func (e *Encoder) encodeArray(v api.Value, depth int) (host.Value, *errors.Error) {
	l := e.heap.NewList()

	for i, item := range v.Items() {
		child, err := e.encode(item, depth+1)
		if err != nil {
			// a failed child has already released everything it built
			host.Clear(&child)
			e.heap.FreeList(l, true)
			err.Path = prependPath(errors.IndexSegment(i), err.Path)
			return host.Value{}, err
		}
		l.Append(child)
	}

	return host.ListValue(l), nil
}

func (e *Encoder) encodeDictionary(v api.Value, depth int) (host.Value, *errors.Error) {
	d := e.heap.NewDict()

	for _, pair := range v.Pairs() {
		if pair.Key == "" {
			e.heap.FreeDict(d, true)
			return host.Value{}, errors.EmptyKey(errors.PhaseFromNeutral, nil)
		}

		item := host.NewDictItem(pair.Key)
		child, err := e.encode(pair.Value, depth+1)
		if err != nil {
			host.FreeDictItem(item)
			e.heap.FreeDict(d, true)
			err.Path = prependPath(errors.KeySegment(pair.Key), err.Path)
			return host.Value{}, err
		}
		item.Value = child

		if !d.Add(item) {
			e.log.Debug("duplicate dictionary key ignored", zap.String("key", pair.Key))
			host.FreeDictItem(item)
		}
	}

	return host.DictValue(d), nil
}

func prependPath(seg string, path []string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, seg)
	return append(out, path...)
}
