package main

import (
	"fmt"
	"io"

	"github.com/wippyai/displaywire/codec"
	"github.com/wippyai/displaywire/displaylist"
)

func runDescribe(args []string, stdout, stderr io.Writer) error {
	var common commonFlags
	fs := newFlagSet("describe", stderr, &common)
	if err := parse(fs, args, &common, stderr); err != nil {
		return err
	}

	reg := displaylist.Registry()
	if err := reg.Verify(); err != nil {
		return err
	}

	types := reg.Types()
	if fs.NArg() > 0 {
		typ, ok := reg.TypeByName(fs.Arg(0))
		if !ok {
			return fmt.Errorf("describe: no declared type named %q", fs.Arg(0))
		}
		types = types[:0]
		types = append(types, typ)
	}

	for i, typ := range types {
		td, err := reg.Describe(typ)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, codec.FormatTypeDef(td))
	}
	return nil
}
