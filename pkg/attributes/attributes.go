// Package attributes implements the representation protocol for Zarr
// convention metadata: encoding typed convention values into a flat
// string-keyed attribute map and decoding them back out.
//
// A convention's data is embedded in one of two forms. The nested form
// stores the whole value under one reserved top-level key. The prefixed
// form flattens the value's fields into top-level keys sharing a common
// prefix. Conventions supporting both forms get a combined decode that
// prefers the nested key and fills gaps from prefixed fields.
//
// The Builder assembles a complete attribute map from typed convention
// values plus free-form fields, declaring each convention's identity in the
// reserved "zarr_conventions" array. The Parser reads that array into an
// in-use identifier set and gates all typed extraction behind it: a
// convention that is not declared decodes to absent, not to an error.
package attributes

import (
	"encoding/json"
	"strings"

	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// ConventionsKey is the reserved top-level attribute holding the array of
// in-use convention identity records.
const ConventionsKey = "zarr_conventions"

// Attributes is the string-keyed JSON object attached to a Zarr node.
// Values stay raw until a typed decode is requested, so unknown fields pass
// through untouched.
type Attributes map[string]json.RawMessage

// Set marshals a value and stores it under the given key, replacing any
// existing value.
func (a Attributes) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	a[key] = raw
	return nil
}

// nestPrefixed collects every key carrying the prefix, strips the prefix,
// and merges the result under seed. Seed entries win on collision, which
// gives the combined decode its nested-over-prefixed precedence. Keys
// without the prefix are ignored.
func nestPrefixed(prefix string, attrs Attributes, seed map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(seed))
	for k, v := range seed {
		out[k] = v
	}
	for k, v := range attrs {
		rest, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		if _, exists := out[rest]; !exists {
			out[rest] = v
		}
	}
	return out
}

// isJSONNull reports whether raw is the JSON null literal.
func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// errNullValue marks a null where a convention value was expected.
var errNullValue = pkgerrors.New("value must not be null")
