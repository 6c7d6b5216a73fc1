package conventions

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// InUse is the set of convention identifiers declared in a parsed attribute
// map. It holds three deduplicated identifier sets, one per identifier kind,
// and is never mutated after construction.
//
// A convention counts as in use when any of its three identifiers appears in
// the corresponding set; membership does not require all identifiers to be
// declared consistently.
type InUse struct {
	uuids      map[uuid.UUID]struct{}
	schemaURLs map[string]struct{}
	specURLs   map[string]struct{}
}

// NewInUse collects the identifier sets from a list of partial identity
// records, typically the decoded "zarr_conventions" attribute.
func NewInUse(records []Convention) InUse {
	u := InUse{
		uuids:      make(map[uuid.UUID]struct{}),
		schemaURLs: make(map[string]struct{}),
		specURLs:   make(map[string]struct{}),
	}
	for _, rec := range records {
		if id, ok := rec.UUID(); ok {
			u.uuids[id] = struct{}{}
		}
		if url, ok := rec.SchemaURL(); ok {
			u.schemaURLs[url] = struct{}{}
		}
		if url, ok := rec.SpecURL(); ok {
			u.specURLs[url] = struct{}{}
		}
	}
	return u
}

// ContainsDefinition reports whether any of the definition's three
// identifiers appears in the set.
func (u InUse) ContainsDefinition(def Definition) bool {
	if u.uuids == nil {
		return false
	}
	if _, ok := u.uuids[def.UUID]; ok {
		return true
	}
	if _, ok := u.schemaURLs[def.SchemaURL]; ok {
		return true
	}
	_, ok := u.specURLs[def.SpecURL]
	return ok
}

// Contains reports whether the given identifier appears in the set.
func (u InUse) Contains(id ID) bool {
	if u.uuids == nil {
		return false
	}
	switch id.Kind() {
	case IDKindUUID:
		_, ok := u.uuids[id.uuid]
		return ok
	case IDKindSchemaURL:
		_, ok := u.schemaURLs[id.url]
		return ok
	case IDKindSpecURL:
		_, ok := u.specURLs[id.url]
		return ok
	default:
		return false
	}
}

// Empty reports whether no identifiers of any kind were declared.
func (u InUse) Empty() bool {
	return len(u.uuids) == 0 && len(u.schemaURLs) == 0 && len(u.specURLs) == 0
}

// UUIDs returns the declared UUIDs in sorted order.
func (u InUse) UUIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(u.uuids))
	for id := range u.uuids {
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return out
}

// SchemaURLs returns the declared schema URLs in sorted order.
func (u InUse) SchemaURLs() []string {
	return sortedKeys(u.schemaURLs)
}

// SpecURLs returns the declared specification URLs in sorted order.
func (u InUse) SpecURLs() []string {
	return sortedKeys(u.specURLs)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// InUseBy reports whether the convention type T is declared in the set.
func InUseBy[T Codec](u InUse) bool {
	var zero T
	return u.ContainsDefinition(zero.Definition())
}
