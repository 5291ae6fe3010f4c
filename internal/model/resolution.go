package model

import "encoding/json"

// ResolutionKind distinguishes a looked-up value from a defaulted one.
type ResolutionKind uint8

const (
	// KindResolved means the lookup produced a value.
	KindResolved ResolutionKind = iota + 1
	// KindFallback means the lookup failed and Value holds the fallback.
	KindFallback
)

// String implements fmt.Stringer.
func (k ResolutionKind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a country code against a reference
// table. Fallback outcomes are not errors; they carry the value the caller
// should use instead (the raw code for names, empty for geo codes).
type Resolution struct {
	Kind     ResolutionKind
	Value    string
	Original string
}

// Resolved returns a successful resolution of original to value.
func Resolved(value, original string) Resolution {
	return Resolution{Kind: KindResolved, Value: value, Original: original}
}

// Fallback returns a failed resolution of original that defaults to value.
func Fallback(value, original string) Resolution {
	return Resolution{Kind: KindFallback, Value: value, Original: original}
}

// IsResolved reports whether the lookup succeeded.
func (r Resolution) IsResolved() bool { return r.Kind == KindResolved }

// IsMissing reports whether no usable value is available.
func (r Resolution) IsMissing() bool { return r.Value == "" }

func (r Resolution) String() string { return r.Value }

// MarshalJSON encodes the resolution as {"value": ..., "resolved": ...}.
func (r Resolution) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    string `json:"value"`
		Resolved bool   `json:"resolved"`
	}{Value: r.Value, Resolved: r.IsResolved()})
}
