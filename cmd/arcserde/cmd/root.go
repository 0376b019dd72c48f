package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/internal/logging"
	"github.com/skelhorn/arcserde/tabledef"
)

var (
	tablePath string
	dataDir   string

	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "arcserde",
	Short: "Convert captured web-archive items to and from query-engine rows",
	Long: `arcserde validates an archive table definition against the canonical
11-column schema and converts items to rows (and back) through it. Items
and rows travel as JSON lines; a local store holds ingested captures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Must(zapcore.InfoLevel)
	},
}

// Execute runs the CLI and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "table definition file (default: canonical schema)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "./data", "data directory for the item store")
}

// loadCodec builds the codec from --table, or from the canonical schema
// when no definition file is given.
func loadCodec() (*arcserde.Codec, error) {
	def := tabledef.Canonical("arc_items")
	if tablePath != "" {
		loaded, err := tabledef.Load(tablePath)
		if err != nil {
			return nil, err
		}
		def = loaded
	}
	cols, err := def.SchemaColumns()
	if err != nil {
		return nil, err
	}
	return arcserde.NewCodec(cols)
}
