// Command bbpdump evaluates modular exponentiations and prints hex dumps of
// byte buffers.
//
//	bbpdump powmod N M D
//	bbpdump dump [--words] [--upper] [--start S] [--table] HEX
package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brevis-network/bbp-sdk/common/utils"
	"github.com/brevis-network/bbp-sdk/hexview"
	"github.com/brevis-network/bbp-sdk/modexp"
	"github.com/celer-network/goutils/log"
)

const usage = `usage:
  bbpdump powmod N M D
  bbpdump dump [--words] [--upper] [--start S] [--table] HEX
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Errorf("bbpdump: %s", err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "powmod":
		return runPowMod(args[1:], out)
	case "dump":
		return runDump(args[1:], out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runPowMod(args []string, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: powmod takes 3 arguments, got %d", errUsage, len(args))
	}
	var vals [3]uint64
	for i, a := range args {
		v, err := utils.ParseUint64(a)
		if err != nil {
			return fmt.Errorf("ParseUint64 err: %w", err)
		}
		vals[i] = v
	}
	n, m, d := vals[0], vals[1], vals[2]
	r, err := modexp.CheckedPowMod(n, m, d)
	if err != nil {
		return err
	}
	log.Debugf("powmod n=%d m=%d d=%d width=%s", n, m, d, modexp.SelectWidth(n, d))
	_, err = fmt.Fprintln(out, r)
	return err
}

func runDump(args []string, out io.Writer) error {
	var config Config
	fs := config.FlagSet()
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err.Error())
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: dump takes 1 hex argument, got %d", errUsage, fs.NArg())
	}
	data, err := utils.Hex2Bytes(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("Hex2Bytes err: %w", err)
	}
	log.Debugf("dump %d bytes, words=%t start=%d", len(data), config.Words, config.Start)

	if config.Words {
		return render(hexview.Words(hexview.Uint16s(data, binary.BigEndian), config.Start, !config.Upper), config.Table, out)
	}
	return render(hexview.Bytes(data, config.Start, !config.Upper), config.Table, out)
}

func render[T ~uint8 | ~uint16](v hexview.View[T], asTable bool, out io.Writer) error {
	if asTable {
		v.Show(out)
		return nil
	}
	_, err := v.WriteTo(out)
	return err
}
