package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StringList is a list of opaque identifiers that also accepts a bare scalar
// on the wire, treating it as a single-element list. Hosts hand tag inputs
// over in both shapes.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	out, err := coerceStrings(v)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

func coerceStrings(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case json.Number:
		return []string{t.String()}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			one, err := coerceStrings(item)
			if err != nil {
				return nil, err
			}
			out = append(out, one...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot coerce %T to string list", v)
	}
}
