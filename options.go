package llc

// Options configures Compress.
type Options struct {
	// Mode selects the size unit to optimize. The default is ModeBytes.
	Mode Mode

	// MaxDepth is the substitution-depth budget. Reaching it does not
	// abort the run: the budget is raised one step at a time, and the
	// number of raises is reported in the Result. The default is 4096.
	MaxDepth int
}

// DefaultOptions returns the default configuration: ModeBytes with a
// depth budget of 4096.
func DefaultOptions() *Options {
	return &Options{Mode: ModeBytes, MaxDepth: 4096}
}
