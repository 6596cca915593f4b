// Command wiredump writes, inspects and browses encoded display lists.
//
//	wiredump sample -o list.bin [--compact] [--verify]
//	wiredump dump list.bin [--compact]
//	wiredump describe [TYPE]
//	wiredump browse list.bin [--compact]
//
// Every command accepts --verbose to log codec activity to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/displaywire/codec"
	"github.com/wippyai/displaywire/guestmem"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "sample":
		return runSample(rest, stdout, stderr)
	case "dump":
		return runDump(rest, stdout, stderr)
	case "describe":
		return runDescribe(rest, stdout, stderr)
	case "browse":
		return runBrowse(rest, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wiredump sample -o <file> [--compact] [--verify]")
	fmt.Fprintln(w, "       wiredump dump <file> [--compact]")
	fmt.Fprintln(w, "       wiredump describe [type]")
	fmt.Fprintln(w, "       wiredump browse <file> [--compact]  (interactive mode)")
}

// commonFlags are accepted by every command.
type commonFlags struct {
	verbose bool
}

func newFlagSet(name string, stderr io.Writer, common *commonFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&common.verbose, "verbose", "v", false, "log codec activity to stderr")
	return fs
}

// parse parses args and installs the logger the flags ask for.
func parse(fs *pflag.FlagSet, args []string, common *commonFlags, stderr io.Writer) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return errUsage
		}
		return err
	}

	logger := newLogger(common.verbose, stderr)
	codec.SetLogger(logger)
	guestmem.SetLogger(logger)
	return nil
}

// newLogger logs at debug level when verbose and only warnings otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	encCfg := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
