package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	track "github.com/0x5487/order-tracker"
)

var (
	dumpInterval int
	quiet        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "ordertracker <file>",
	Short: "Replay an order message file against an in-memory order book",
	Long: `ordertracker reads a file of comma-delimited order messages (new,
cancel, modify, trade), maintains the resulting order book, and reports
the final book state, unresolved potential matches and every error
recorded along the way.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&dumpInterval, "dump-interval", track.DefaultDumpInterval,
		"dump the book every N processed lines (0 disables)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false,
		"suppress periodic dumps and trade summaries")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	track.SetLogger(logger)

	file := args[0]
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "bad input file <%s>", file)
	}
	defer f.Close()

	cfg := track.DefaultConfig()
	cfg.DumpInterval = dumpInterval
	cfg.Quiet = quiet

	tracker := track.NewTracker(cfg, cmd.OutOrStdout())
	chain := tracker.Run(f)
	if chain.HasError() {
		fmt.Fprint(cmd.OutOrStdout(), chain.Error())
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
