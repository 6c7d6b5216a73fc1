package attributes

import (
	"encoding/json"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// EncodeNested serializes the value and stores it under the convention's
// reserved key, overwriting any existing value there.
func EncodeNested[T conventions.NestedCodec](attrs Attributes, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.NewEncodeError(value.Definition().Name, err)
	}
	attrs[value.NestedKey()] = raw
	return nil
}

// DecodeNested decodes the convention value stored under the convention's
// reserved key. It fails with a key not found error when the key is absent
// and a decode error when the stored value does not match T. A null value
// is a decode error, not an absent key: json.Unmarshal treats null as a
// no-op, which would otherwise yield a zero value silently.
func DecodeNested[T conventions.NestedCodec](attrs Attributes) (T, error) {
	var out T
	raw, ok := attrs[out.NestedKey()]
	if !ok {
		return out, pkgerrors.NewKeyNotFoundError(out.NestedKey())
	}
	if isJSONNull(raw) {
		return out, pkgerrors.NewDecodeError(out.Definition().Name, errNullValue)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.NewDecodeError(out.Definition().Name, err)
	}
	return out, nil
}

// EncodePrefixed serializes the value and stores each of its fields as a
// top-level entry keyed by the convention's prefix plus the field name. The
// value must serialize to a JSON object.
func EncodePrefixed[T conventions.PrefixedCodec](attrs Attributes, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.NewEncodeError(value.Definition().Name, err)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || isJSONNull(raw) {
		return pkgerrors.NewNotAnObjectError(value.Prefix())
	}
	for k, v := range obj {
		attrs[value.Prefix()+k] = v
	}
	return nil
}

// DecodePrefixed reassembles the convention value from every top-level key
// carrying the convention's prefix. Keys without the prefix are ignored;
// when no key matches, decoding proceeds from an empty object, which may
// still fail downstream if T has required fields.
func DecodePrefixed[T conventions.PrefixedCodec](attrs Attributes) (T, error) {
	var out T
	nested := nestPrefixed(out.Prefix(), attrs, nil)
	return decodeObject[T](nested)
}

// DecodeCombined decodes a convention supporting both representations.
//
// The nested key is preferred when present. A nested object is merged with
// the prefixed fields, nested values winning on collision, so prefixed
// fields only fill gaps. A nested non-object value is used alone and all
// prefixed fields are ignored, except null, which is a decode error. When
// the nested key is absent, decoding falls back to the purely prefixed
// form.
func DecodeCombined[T conventions.CombinedCodec](attrs Attributes) (T, error) {
	var out T
	raw, ok := attrs[out.NestedKey()]
	if !ok {
		return DecodePrefixed[T](attrs)
	}
	if isJSONNull(raw) {
		return out, pkgerrors.NewDecodeError(out.Definition().Name, errNullValue)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		// Nested value is not an object; it overrides the prefixed fields
		// entirely.
		if err := json.Unmarshal(raw, &out); err != nil {
			return out, pkgerrors.NewDecodeError(out.Definition().Name, err)
		}
		return out, nil
	}

	return decodeObject[T](nestPrefixed(out.Prefix(), attrs, obj))
}

// decodeObject round-trips a reassembled field map into T.
func decodeObject[T conventions.Codec](obj map[string]json.RawMessage) (T, error) {
	var out T
	raw, err := json.Marshal(obj)
	if err != nil {
		return out, pkgerrors.NewEncodeError(out.Definition().Name, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.NewDecodeError(out.Definition().Name, err)
	}
	return out, nil
}
