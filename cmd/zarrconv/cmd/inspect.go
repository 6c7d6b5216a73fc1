package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/clbarnes/zarrs-conventions/pkg/attributes"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
	"github.com/clbarnes/zarrs-conventions/pkg/logging"
)

// inspectReport is the result of inspecting one attribute map.
type inspectReport struct {
	Declared []declaredConvention `json:"declared"`
	Fields   []string             `json:"fields"`
}

// declaredConvention describes one entry of the "zarr_conventions" array
// and its resolution against the registry.
type declaredConvention struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Known       bool              `json:"known"`
	Identifiers map[string]string `json:"identifiers"`
}

// inspectCmd reports the conventions declared by an attribute map.
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspect an attribute map",
	Long: `Inspect a Zarr attributes object (JSON or YAML), report the
conventions it declares, resolve each identifier against the registry, and
list the remaining free-form fields.

The file must contain the attributes object itself, i.e. the value of the
"attributes" key of a node's metadata document, not the whole document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		parser, err := loadAttributes(args[0])
		if err != nil {
			return err
		}

		registry := conventions.Default()
		report := inspectReport{
			Declared: make([]declaredConvention, 0, len(parser.Declared())),
			Fields:   make([]string, 0, len(parser.Fields())),
		}

		for _, rec := range parser.Declared() {
			entry := declaredConvention{
				ID:          rec.ID().String(),
				Identifiers: make(map[string]string),
			}
			if name, ok := rec.Name(); ok {
				entry.Name = name
			}
			// Resolve every identifier separately so a record mixing
			// identifiers of different conventions is visible.
			for _, id := range rec.IDs() {
				if def, ok := registry.Get(id); ok {
					entry.Identifiers[id.Kind().String()] = def.Name
					entry.Known = true
					if entry.Name == "" {
						entry.Name = def.Name
					}
				} else {
					entry.Identifiers[id.Kind().String()] = "unknown"
				}
			}
			report.Declared = append(report.Declared, entry)
		}

		for key := range parser.Fields() {
			report.Fields = append(report.Fields, key)
		}
		slices.Sort(report.Fields)

		logging.Debug().
			Int("declared", len(report.Declared)).
			Int("fields", len(report.Fields)).
			Msg("Inspected attributes")

		return formatter().Format(os.Stdout, report)
	},
}

// loadAttributes reads an attributes object from a JSON or YAML file.
func loadAttributes(path string) (*attributes.Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, pkgerrors.NewParseError("yaml", path, "attributes must be a YAML mapping", err)
		}
		data, err = json.Marshal(doc)
		if err != nil {
			return nil, pkgerrors.NewParseError("yaml", path, "could not convert to JSON", err)
		}
	}

	parser, err := attributes.ParseJSON(data)
	if err != nil {
		return nil, pkgerrors.NewParseError("json", path, "invalid attributes object", err)
	}
	return parser, nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
