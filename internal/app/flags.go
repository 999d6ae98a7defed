package app

import "flag"

// Options represents the command-line parameters for the application. The
// simulation itself is described by the configuration file; these only shape
// presentation and diagnostics.
type Options struct {
	Scale    int
	TPS      int
	Stats    string
	LogLevel string
}

// NewOptions returns an Options populated with sensible defaults. The 8 px
// cell size and 40 ticks per second match the original 25 ms frame delay.
func NewOptions() *Options {
	return &Options{Scale: 8, TPS: 40, LogLevel: "info"}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Scale, "scale", o.Scale, "cell size in pixels")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")
	fs.StringVar(&o.Stats, "stats", o.Stats, "write per-generation stats to this CSV file")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (debug, info, warn, error)")
}
