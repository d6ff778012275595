// Package hostbridge converts values between an embedded interpreter's
// dynamic values and a neutral API value model.
//
// The host side holds numbers, floats, strings and reference-counted lists
// and dicts that may form cycles. The API side is a plain tagged variant
// that owns all of its data. Conversion must terminate on cycles, never leak
// or hand back half-built containers, and respect the host's lock flags.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hostbridge/        Root package with the Signals interface
//	├── api/           Neutral Value model, equality, YAML text form
//	├── host/          Host values, containers, heap and interpreter state
//	├── bridge/        Converters, dictionary accessor, exception drain
//	├── errors/        Structured error types and the error channel
//	└── cmd/hostbridge Command-line driver and interactive REPL
//
// # Quick Start
//
//	interp := host.New()
//	b := bridge.NewWithDefaults(interp)
//
//	err := b.Protect(func() error {
//	    _, err := b.SetVar("config", api.Dictionary(
//	        api.Pair("tabstop", api.Int(4)),
//	    ))
//	    return err
//	})
//
//	v, err := b.GetVar("config")
//	fmt.Println(v) // {"tabstop": 4}
//
// # Conversion Rules
//
//	Host            API           API           Host
//	───────────────────────────   ───────────────────────────
//	number          int           nil           number 0
//	float           float         bool          number 0/1
//	string          string        int           number
//	NULL string     nil           float         float
//	list            array         string        string
//	dict            dictionary    array         list
//	revisited list  nil           dictionary    dict
//	revisited dict  nil
//
// Host to API never fails; a container seen twice in one conversion becomes
// nil. API to host fails only on empty dictionary keys (or excessive depth),
// and frees everything it allocated before returning the error.
//
// # Thread Safety
//
// Nothing here is safe for concurrent use against the same host state.
// Callers serialize access to an interpreter.
package hostbridge
