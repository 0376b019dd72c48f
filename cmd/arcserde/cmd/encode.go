package cmd

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	arcserde "github.com/skelhorn/arcserde"
)

// encodeCmd converts JSON-lines rows back into wire items.
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode rows (JSON lines) into wire items",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}
		return withInput(args, func(r io.Reader) error {
			return forEachLine(r, func(lineNo int, line []byte) error {
				row, err := arcserde.UnmarshalRow(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				item, err := codec.Encode(row)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				out, err := json.Marshal(item)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				fmt.Println(string(out))
				return nil
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
