// Package api defines the neutral Value model exchanged with API callers.
//
// A Value is a closed tagged variant:
//
//	Kind        Payload
//	──────────────────────────────────────────
//	nil         none
//	bool        bool
//	int         int64
//	float       float64
//	string      owned bytes with explicit length
//	array       []Value, order significant
//	dictionary  []KeyValuePair, order kept but not significant
//
// Values are standalone: they never alias host interpreter memory and hold
// no back-references, so they can be handed to any encoder.
//
// Dictionary keys are expected to be unique and non-empty. The model does not
// enforce this; the host converter rejects empty keys.
//
// # Text Form
//
// ParseYAML and MarshalYAML convert between Values and YAML documents
// (JSON is accepted as input). They exist for tooling and tests; the wire
// encoding used by an RPC layer is out of this package's scope.
package api
