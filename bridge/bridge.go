package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/host-bridge/api"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/host"
)

// Options configures bridge behavior.
type Options struct {
	// Logger overrides the package logger when set.
	Logger *zap.Logger
	// MaxDepth bounds container nesting when converting into host values.
	// Zero or less disables the limit.
	MaxDepth int
}

// DefaultOptions returns default bridge configuration.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
	}
}

// Bridge binds the converters and the exception drain to one interpreter.
// Not safe for concurrent use; the interpreter itself is single-threaded.
type Bridge struct {
	interp  *host.Interp
	enc     *Encoder
	dec     *Decoder
	log     *zap.Logger
	options Options
}

// New creates a bridge over interp.
func New(interp *host.Interp, opts Options) *Bridge {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &Bridge{
		interp:  interp,
		enc:     newEncoderWithLogger(interp.Heap(), opts.MaxDepth, log),
		dec:     newDecoderWithLogger(log),
		log:     log,
		options: opts,
	}
}

// NewWithDefaults creates a bridge with default options.
func NewWithDefaults(interp *host.Interp) *Bridge {
	return New(interp, DefaultOptions())
}

// Interp returns the bound interpreter.
func (b *Bridge) Interp() *host.Interp {
	return b.interp
}

// Options returns the configuration.
func (b *Bridge) Options() Options {
	return b.options
}

// ToNeutral converts a host value into an API value. It never fails.
func (b *Bridge) ToNeutral(v *host.Value) api.Value {
	return b.dec.Decode(v)
}

// FromNeutral converts an API value into a host value allocated on the
// interpreter's heap. The caller owns the returned value and releases it
// with host.Clear.
func (b *Bridge) FromNeutral(v api.Value) (host.Value, error) {
	return b.enc.Encode(v)
}

func (b *Bridge) DictGet(d *host.Dict, key string, pop bool) (api.Value, error) {
	return dictGet(b.dec, d, key, pop)
}

func (b *Bridge) DictSet(d *host.Dict, key string, v api.Value) (api.Value, error) {
	return dictSet(b.enc, b.dec, d, key, v)
}

func (b *Bridge) DictDel(d *host.Dict, key string) error {
	_, err := dictGet(b.dec, d, key, true)
	return err
}

// GetVar returns the global variable name.
func (b *Bridge) GetVar(name string) (api.Value, error) {
	return b.DictGet(b.interp.Globals(), name, false)
}

// SetVar assigns the global variable name and returns its previous value.
func (b *Bridge) SetVar(name string, v api.Value) (api.Value, error) {
	return b.DictSet(b.interp.Globals(), name, v)
}

// DelVar removes the global variable name and returns its last value.
func (b *Bridge) DelVar(name string) (api.Value, error) {
	return b.DictGet(b.interp.Globals(), name, true)
}

// TryStart opens a protected window on the interpreter.
func (b *Bridge) TryStart() {
	TryStart(b.interp)
}

// TryEnd closes the protected window and returns the drained error, if any.
func (b *Bridge) TryEnd() error {
	var ch errors.Channel
	if !TryEnd(b.interp, &ch) {
		return nil
	}
	b.log.Debug("host error drained", zap.String("message", ch.Message()))
	return ch.Err()
}

// Protect runs fn inside a protected window. The interpreter's error state
// is drained even when fn fails or panics; fn's own error takes precedence
// over a drained one.
func (b *Bridge) Protect(fn func() error) (err error) {
	TryStart(b.interp)
	defer func() {
		var ch errors.Channel
		if !TryEnd(b.interp, &ch) {
			return
		}
		b.log.Debug("host error drained", zap.String("message", ch.Message()))
		if err == nil {
			err = ch.Err()
		}
	}()

	return fn()
}
