package main

import (
	"github.com/spf13/pflag"
)

// Config holds the dump options.
type Config struct {
	// Words renders the input as big-endian 16-bit words instead of bytes.
	Words bool
	// Upper prints hex digits in uppercase.
	Upper bool
	// Start is the absolute offset of the first byte, used for row labels
	// only. With Words it is counted in words.
	Start uint64
	// Table renders a bordered table instead of the plain dump.
	Table bool
}

// FlagSet returns a flag set bound to c.
func (c *Config) FlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	fs.BoolVar(&c.Words, "words", false, "render 16-bit big-endian words")
	fs.BoolVar(&c.Upper, "upper", false, "uppercase hex digits")
	fs.Uint64Var(&c.Start, "start", 0, "offset of the first element")
	fs.BoolVar(&c.Table, "table", false, "render as a table")
	return fs
}
