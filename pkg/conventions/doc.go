// Package conventions provides the identity model and registry for Zarr
// metadata conventions.
//
// A convention is a self-describing, independently versioned metadata schema
// attachable to a Zarr node's attributes. Each convention is identified by up
// to three identifiers: a UUID, a schema URL, and a specification URL. The
// package defines:
//
//   - Definition: the compile-time-constant identity of a convention
//     implementation, with all five fields (uuid, schema URL, spec URL, name,
//     description) always present.
//   - Convention: partial identity information as it appears in transit in an
//     attribute map, where any subset of fields may be present but at least
//     one identifier is required.
//   - ID: the single canonical identifier, resolved from partial identity
//     with the preference order uuid > schema_url > spec_url.
//   - Registry: a concurrency-safe catalog of known conventions, keyed
//     redundantly by all three identifier forms.
//   - The codec interfaces (NestedCodec, PrefixedCodec) that convention
//     implementations satisfy to participate in the representation protocol
//     (see the attributes package).
//
// Convention implementations live in subpackages (license, uom) and are
// registered explicitly through the builtin subpackage; there is no hidden
// init-time self-registration.
package conventions
