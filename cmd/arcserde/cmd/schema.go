package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	arcserde "github.com/skelhorn/arcserde"
)

// schemaCmd prints the canonical table shape.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the canonical 11-column schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, col := range arcserde.CanonicalColumns() {
			fmt.Printf("%2d  %-13s %s\n", i, col.Name, col.Type)
		}
		fmt.Printf("\ntypes: %s\n", arcserde.CanonicalTypeString())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
