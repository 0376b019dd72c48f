package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/arc"
)

// decodeCmd converts JSON-lines items to JSON-lines rows.
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode wire items (JSON lines) into rows",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := loadCodec()
		if err != nil {
			return err
		}
		return withInput(args, func(r io.Reader) error {
			return forEachLine(r, func(lineNo int, line []byte) error {
				var item arc.FileItem
				if err := json.Unmarshal(line, &item); err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				row, err := codec.Decode(&item)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				out, err := marshalRowLine(row)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				fmt.Println(out)
				return nil
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func marshalRowLine(row arcserde.Row) (string, error) {
	data, err := arcserde.MarshalRow(row)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// withInput opens the optional file argument, defaulting to stdin.
func withInput(args []string, fn func(io.Reader) error) error {
	if len(args) == 0 {
		return fn(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

// forEachLine feeds non-blank lines to fn with 1-based line numbers.
func forEachLine(r io.Reader, fn func(int, []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, []byte(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
