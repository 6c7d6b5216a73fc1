// Package builtin registers the convention implementations shipped with
// this module.
//
// Registration is explicit rather than an init side effect of importing the
// plugin packages: call Register (or RegisterDefault) once at process
// start, before any registry lookups. The registered set is a fixed,
// documented list, and no convention depends on another's registration
// state, so the order within the list carries no meaning.
package builtin

import (
	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions/license"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions/uom"
)

// Register registers every convention shipped with this module:
//
//   - license: dataset licensing information
//   - uom: units of measurement for Zarr arrays
//
// Any failure is a catalog inconsistency and should abort process startup;
// the registry does not roll back partial registration.
func Register(r *conventions.Registry) error {
	if err := r.Register(license.Definition); err != nil {
		return err
	}
	if err := r.Register(uom.Definition); err != nil {
		return err
	}
	return nil
}

// RegisterDefault registers the shipped conventions in the process-wide
// default registry.
func RegisterDefault() error {
	return Register(conventions.Default())
}
