// Command bitpartgen writes the fixed arity declarations of the bitpart
// packages. It is run through go:generate:
//
//	bitpartgen -kind bits -pkg bits -o part.gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitpart/internal/arity"
)

func main() {
	var (
		kind = flag.String("kind", "", "family to generate: tuple, bits, chunk or array")
		pkg  = flag.String("pkg", "", "package name of the generated file")
		out  = flag.String("o", "", "output file (stdout if empty)")
		max  = flag.Int("max", 0, "highest arity, or array length for -kind array")
	)
	flag.Parse()

	err := run(arity.Config{
		Kind:    arity.Kind(*kind),
		Package: *pkg,
		Max:     *max,
	}, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bitpartgen: %+v\n", err)
		os.Exit(1)
	}
}

func run(cfg arity.Config, out string) (err error) {
	var buf bytes.Buffer

	err = arity.Generate(&buf, cfg)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		if err != nil {
			return oops.Trace(err)
		}

		return nil
	}

	err = os.WriteFile(out, buf.Bytes(), 0644)
	if err != nil {
		return oops.Trace(err)
	}

	fmt.Printf("Wrote %s.\n", out)

	return nil
}
