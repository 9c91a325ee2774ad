package track

// DefaultDumpInterval is how many processed lines (valid or not) pass
// between two full book dumps.
const DefaultDumpInterval = 10

// Config holds the per-run settings of a Tracker.
type Config struct {
	// DumpInterval triggers a full book dump every N processed lines.
	// Zero or negative disables the periodic dump.
	DumpInterval int

	// Quiet suppresses the periodic dumps and trade summaries. The final
	// report is always written.
	Quiet bool
}

func DefaultConfig() Config {
	return Config{
		DumpInterval: DefaultDumpInterval,
		Quiet:        false,
	}
}
