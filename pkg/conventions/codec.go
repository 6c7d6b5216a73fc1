package conventions

// Codec is the base interface for convention implementations. The Definition
// method must be callable on the zero value and return the same Definition
// every time; implementations should use value receivers.
//
// A convention type should also implement at least one of NestedCodec and
// PrefixedCodec to participate in the representation protocol. Types that
// implement both automatically gain the combined nested-or-prefixed decode
// path; no extra marker is needed.
type Codec interface {
	// Definition returns the convention's compile-time identity.
	Definition() Definition
}

// NestedCodec marks a convention whose value is stored under one reserved
// top-level attribute key.
type NestedCodec interface {
	Codec
	// NestedKey returns the reserved top-level key, e.g. "license".
	NestedKey() string
}

// PrefixedCodec marks a convention whose value is flattened into top-level
// attribute keys sharing a common prefix. The value must serialize to a
// JSON object.
type PrefixedCodec interface {
	Codec
	// Prefix returns the key prefix including its delimiter, e.g. "proj:".
	Prefix() string
}

// CombinedCodec is the composed capability of conventions supporting both
// representations. It exists only as a generic constraint for the combined
// decode; implementing NestedCodec and PrefixedCodec is sufficient.
type CombinedCodec interface {
	NestedCodec
	PrefixedCodec
}

// DefinitionOf returns the Definition of convention type T without needing
// an instance.
func DefinitionOf[T Codec]() Definition {
	var zero T
	return zero.Definition()
}
