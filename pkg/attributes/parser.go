package attributes

import (
	"encoding/json"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// Parser retrieves conventional and unstructured metadata from a received
// attribute map.
//
// The reserved "zarr_conventions" array is decoded once, up front, into the
// in-use identifier set; all other fields are retained verbatim. Typed
// extraction is gated behind the in-use set: parsing a convention that is
// not declared returns absent (nil) rather than an error, even when its
// keys happen to be present in the map.
type Parser struct {
	declared []conventions.Convention
	inUse    conventions.InUse
	fields   Attributes
}

// Parse builds a Parser from an attribute map. A missing
// "zarr_conventions" key yields an empty in-use set; a present but
// malformed one is a decode error, including any record that carries no
// identifier field.
func Parse(attrs Attributes) (*Parser, error) {
	var declared []conventions.Convention
	if raw, ok := attrs[ConventionsKey]; ok {
		if err := json.Unmarshal(raw, &declared); err != nil {
			return nil, pkgerrors.NewDecodeError(ConventionsKey, err)
		}
	}

	fields := make(Attributes, len(attrs))
	for k, v := range attrs {
		if k == ConventionsKey {
			continue
		}
		fields[k] = v
	}

	return &Parser{
		declared: declared,
		inUse:    conventions.NewInUse(declared),
		fields:   fields,
	}, nil
}

// ParseJSON decodes a raw JSON object into an attribute map and parses it.
func ParseJSON(data []byte) (*Parser, error) {
	var attrs Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, pkgerrors.NewParseError("json", "", "attributes must be a JSON object", err)
	}
	return Parse(attrs)
}

// Declared returns the identity records found in the "zarr_conventions"
// array, in their original order.
func (p *Parser) Declared() []conventions.Convention {
	return p.declared
}

// InUse returns the identifier set derived from the declared records.
func (p *Parser) InUse() conventions.InUse {
	return p.inUse
}

// Fields returns the retained non-reserved attributes.
func (p *Parser) Fields() Attributes {
	return p.fields
}

// InUse reports whether convention type T is declared in the parsed map.
func InUse[T conventions.Codec](p *Parser) bool {
	return conventions.InUseBy[T](p.inUse)
}

// ParseNested decodes convention T from its nested representation. Nil
// without error when T is not in use.
func ParseNested[T conventions.NestedCodec](p *Parser) (*T, error) {
	if !conventions.InUseBy[T](p.inUse) {
		return nil, nil
	}
	v, err := DecodeNested[T](p.fields)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParsePrefixed decodes convention T from its prefixed representation. Nil
// without error when T is not in use.
func ParsePrefixed[T conventions.PrefixedCodec](p *Parser) (*T, error) {
	if !conventions.InUseBy[T](p.inUse) {
		return nil, nil
	}
	v, err := DecodePrefixed[T](p.fields)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseCombined decodes convention T from either representation or a
// mixture of both, for conventions supporting both. Nil without error when
// T is not in use.
func ParseCombined[T conventions.CombinedCodec](p *Parser) (*T, error) {
	if !conventions.InUseBy[T](p.inUse) {
		return nil, nil
	}
	v, err := DecodeCombined[T](p.fields)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Get decodes an unstructured attribute. Nil without error when the key is
// missing; a decode error when the stored value does not match T.
func Get[T any](p *Parser, key string) (*T, error) {
	raw, ok := p.fields[key]
	if !ok {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, pkgerrors.NewDecodeError(key, err)
	}
	return &v, nil
}
