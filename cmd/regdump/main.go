// Command regdump decodes register values and packets using layouts read
// from a TOML register map.
//
//	regdump -config regs.toml -register status 0xf0ca 0b1010
//	regdump -config regs.toml -packet header 0011223344556677
//
// Every layout in the map is validated when it is loaded, so a map whose
// field widths do not add up is rejected before anything is decoded.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/calebcase/oops"
	"github.com/rs/zerolog"
)

func initLogger(app string, w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

type options struct {
	config   string
	register string
	packet   string
	values   []string
}

func main() {
	var opts options

	flag.StringVar(&opts.config, "config", "regdump.toml", "register map")
	flag.StringVar(&opts.register, "register", "", "name of the register to decode")
	flag.StringVar(&opts.packet, "packet", "", "name of the packet to decode")
	flag.Parse()

	opts.values = flag.Args()

	logger := initLogger("regdump", os.Stderr)

	err := run(logger, opts, os.Stdout)
	if err != nil {
		logger.Fatal().Err(err).Msg("regdump failed")
	}
}

func run(logger zerolog.Logger, opts options, out io.Writer) (err error) {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	logger.Info().
		Str("path", opts.config).
		Int("registers", len(cfg.Registers)).
		Int("packets", len(cfg.Packets)).
		Msg("loaded register map")

	switch {
	case opts.register != "" && opts.packet != "":
		return Error.New("-register and -packet are exclusive")
	case opts.register != "":
		return dumpRegister(logger, cfg, opts.register, opts.values, out)
	case opts.packet != "":
		return dumpPacket(logger, cfg, opts.packet, opts.values, out)
	}

	return Error.New("one of -register or -packet is required")
}

func dumpRegister(logger zerolog.Logger, cfg Config, name string, args []string, out io.Writer) (err error) {
	r, ok := cfg.Registers[name]
	if !ok {
		return Error.New("unknown register %q", name)
	}

	for _, arg := range args {
		v, err := parseRegister(arg)
		if err != nil {
			return err
		}

		values, err := r.Decode(v)
		if err != nil {
			return err
		}

		logger.Debug().Str("register", r.Name).Uint64("value", v).Int("fields", len(values)).Msg("decoded")

		err = write(out, values)
		if err != nil {
			return err
		}
	}

	return nil
}

func dumpPacket(logger zerolog.Logger, cfg Config, name string, args []string, out io.Writer) (err error) {
	p, ok := cfg.Packets[name]
	if !ok {
		return Error.New("unknown packet %q", name)
	}

	for _, arg := range args {
		b, err := parsePacket(arg)
		if err != nil {
			return err
		}

		values, rest, err := p.Decode(b)
		if err != nil {
			return err
		}

		if len(rest) > 0 {
			logger.Warn().Str("packet", p.Name).Int("trailing", len(rest)).Msg("bytes left after packet")
		}

		err = write(out, values)
		if err != nil {
			return err
		}
	}

	return nil
}

func write(out io.Writer, values []Value) error {
	for i, v := range values {
		sep := " "
		if i == len(values)-1 {
			sep = "\n"
		}

		_, err := fmt.Fprintf(out, "%s%s", v, sep)
		if err != nil {
			return oops.Trace(err)
		}
	}

	return nil
}
