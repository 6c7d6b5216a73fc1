package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	"github.com/clbarnes/zarrs-conventions/pkg/logging"
)

// conventionRow is the display form of a registered convention.
type conventionRow struct {
	Name      string `json:"name"`
	UUID      string `json:"uuid"`
	SchemaURL string `json:"schema_url"`
	SpecURL   string `json:"spec_url"`
}

// conventionsCmd lists the registered convention catalog.
var conventionsCmd = &cobra.Command{
	Use:   "conventions",
	Short: "List registered conventions",
	Long: `List every convention registered in this build's catalog, ordered
deterministically. Each convention appears once regardless of how many of
its identifiers (uuid, schema URL, spec URL) could be used to look it up.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		defs := conventions.Default().Definitions()
		logging.Debug().Int("count", len(defs)).Msg("Listing registered conventions")

		rows := make([]conventionRow, 0, len(defs))
		for _, def := range defs {
			rows = append(rows, conventionRow{
				Name:      def.Name,
				UUID:      def.UUID.String(),
				SchemaURL: def.SchemaURL,
				SpecURL:   def.SpecURL,
			})
		}

		return formatter().Format(os.Stdout, rows)
	},
}

func init() {
	rootCmd.AddCommand(conventionsCmd)
}
