package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/tabledef"
)

// validateCmd runs a table definition through the schema check.
var validateCmd = &cobra.Command{
	Use:   "validate <tabledef>",
	Short: "Validate a table definition against the canonical schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := tabledef.Load(args[0])
		if err != nil {
			return err
		}
		cols, err := def.SchemaColumns()
		if err != nil {
			return err
		}
		if _, err := arcserde.NewCodec(cols); err != nil {
			var se *arcserde.SchemaError
			if errors.As(err, &se) {
				fmt.Printf("NOT OK: %v\n", se)
				return err
			}
			return err
		}
		fmt.Printf("OK: %s matches the canonical schema\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
