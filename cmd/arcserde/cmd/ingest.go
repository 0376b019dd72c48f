package cmd

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skelhorn/arcserde/arc"
	"github.com/skelhorn/arcserde/arcstore"
)

// ingestCmd loads JSON-lines items into the local store.
var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Ingest wire items (JSON lines) into the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}

		var items []*arc.FileItem
		err = withInput(args, func(r io.Reader) error {
			return forEachLine(r, func(lineNo int, line []byte) error {
				item := &arc.FileItem{}
				if err := json.Unmarshal(line, item); err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				items = append(items, item)
				return nil
			})
		})
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

		batchID, n, err := store.Ingest(cmd.Context(), items...)
		if err != nil {
			return err
		}
		fmt.Printf("ingested %d items (batch %s)\n", n, batchID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
