package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skelhorn/arcserde/arcstore"
)

// scanCmd streams the store's contents as decoded rows.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the store and print decoded rows (JSON lines)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}
		store, err := arcstore.Open(dataDir, codec, arcstore.Options{Logger: logger})
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("store close failed", zap.Error(err))
			}
		}()

		it, err := store.Rows(cmd.Context())
		if err != nil {
			return err
		}
		defer it.Close()

		for it.Next() {
			out, err := marshalRowLine(it.Row())
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return it.Err()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
