// Package license implements the dataset licensing convention. A License
// names the terms the data is released under through at least one of an
// SPDX identifier, a URL to the license text, the full text itself, a
// relative path to an object holding the text, or a relative path to a Zarr
// node whose license metadata also applies here.
//
// The convention uses the nested representation under the "license" key.
package license

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// Definition is the convention identity for dataset licensing metadata.
var Definition = conventions.Definition{
	UUID:        uuid.MustParse("b77365e5-2b0c-4141-b917-c03b7c68e935"),
	SchemaURL:   "https://raw.githubusercontent.com/clbarnes/zarr-convention-license/refs/tags/v1/schema.json",
	SpecURL:     "https://github.com/clbarnes/zarr-convention-license/blob/v1/README.md",
	Name:        "license",
	Description: "Dataset licensing information.",
}

// nestedKey is the reserved attribute key for the nested representation.
const nestedKey = "license"

// License is a single license applicable to the data. At least one field is
// always set; construct instances through the builder, the New* helpers, or
// JSON decoding, all of which enforce this.
type License struct {
	inner licenseJSON
}

// licenseJSON is the wire form. Absent fields are omitted on output.
type licenseJSON struct {
	SPDX *string `json:"spdx,omitempty"`
	URL  *string `json:"url,omitempty"`
	Text *string `json:"text,omitempty"`
	File *string `json:"file,omitempty"`
	Path *string `json:"path,omitempty"`
}

func (l licenseJSON) empty() bool {
	return l.SPDX == nil && l.URL == nil && l.Text == nil && l.File == nil && l.Path == nil
}

// Definition implements conventions.Codec.
func (License) Definition() conventions.Definition {
	return Definition
}

// NestedKey implements conventions.NestedCodec.
func (License) NestedKey() string {
	return nestedKey
}

// MarshalJSON implements json.Marshaler.
func (l License) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.inner)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting records with no
// license field set.
func (l *License) UnmarshalJSON(data []byte) error {
	var inner licenseJSON
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	if inner.empty() {
		return pkgerrors.NewValidationError("license", nil, "at least one field must be set")
	}
	l.inner = inner
	return nil
}

// NewSPDX creates a license from an SPDX identifier.
func NewSPDX(identifier string) License {
	return License{inner: licenseJSON{SPDX: &identifier}}
}

// NewURL creates a license from a URL to the full license text.
func NewURL(url string) License {
	return License{inner: licenseJSON{URL: &url}}
}

// NewText creates a license from the full license text.
func NewText(text string) License {
	return License{inner: licenseJSON{Text: &text}}
}

// NewFile creates a license from a relative path to an object containing
// the license text.
func NewFile(file string) License {
	return License{inner: licenseJSON{File: &file}}
}

// NewPath creates a license from a relative path to a Zarr node with
// license metadata that also applies to this node.
func NewPath(path string) License {
	return License{inner: licenseJSON{Path: &path}}
}

// SPDX returns the SPDX identifier and whether it is set. Should not be a
// multi-license expression.
func (l License) SPDX() (string, bool) {
	return deref(l.inner.SPDX)
}

// URL returns the URL to the full license text and whether it is set.
func (l License) URL() (string, bool) {
	return deref(l.inner.URL)
}

// Text returns the full license text and whether it is set.
func (l License) Text() (string, bool) {
	return deref(l.inner.Text)
}

// File returns the relative path to an object containing the full license
// text and whether it is set.
func (l License) File() (string, bool) {
	return deref(l.inner.File)
}

// Path returns the relative path to a Zarr node with license metadata and
// whether it is set.
func (l License) Path() (string, bool) {
	return deref(l.inner.Path)
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// NewBuilder creates a builder for License values.
//
// At least one license field must be set; it is recommended to set only
// one. In order of preference, spdx > url > text > file > path.
func NewBuilder() *Builder {
	return &Builder{}
}

// Builder assembles a License, created with NewBuilder.
type Builder struct {
	inner licenseJSON
	short bool
}

// Short shortens the license metadata by keeping only the most preferred
// field at build time.
func (b *Builder) Short(short bool) *Builder {
	b.short = short
	return b
}

// SPDX sets the SPDX license identifier; preferred over all other fields.
// Should not be a multi-license expression.
func (b *Builder) SPDX(spdx string) *Builder {
	b.inner.SPDX = &spdx
	return b
}

// URL sets the URL to the full license text; preferred over Text but below
// SPDX.
func (b *Builder) URL(url string) *Builder {
	b.inner.URL = &url
	return b
}

// Text sets the full license text; preferred over File but below URL.
func (b *Builder) Text(text string) *Builder {
	b.inner.Text = &text
	return b
}

// File sets a relative path to a file containing the license text;
// preferred over Path but below Text.
func (b *Builder) File(file string) *Builder {
	b.inner.File = &file
	return b
}

// Path sets a relative path to a Zarr node with license metadata; the
// least preferred option.
func (b *Builder) Path(path string) *Builder {
	b.inner.Path = &path
	return b
}

// Build constructs the License. Fails when no field is set.
func (b *Builder) Build() (License, error) {
	inner := b.inner
	if b.short {
		found := false
		if inner.SPDX != nil {
			found = true
		}
		if found {
			inner.URL = nil
		} else if inner.URL != nil {
			found = true
		}
		if found {
			inner.Text = nil
		} else if inner.Text != nil {
			found = true
		}
		if found {
			inner.File = nil
		} else if inner.File != nil {
			found = true
		}
		if found {
			inner.Path = nil
		}
	}
	if inner.empty() {
		return License{}, pkgerrors.NewValidationError("license", nil, "at least one field must be set")
	}
	return License{inner: inner}, nil
}
