package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/host"
)

func main() {
	var (
		verbose     = flag.Bool("v", false, "Verbose debug logging")
		script      = flag.String("e", "", "Commands to run, one per line")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Usage = usage
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	host.SetLogger(log.Named("host"))
	bridge.SetLogger(log.Named("bridge"))

	s := newSession(log)

	if *interactive {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			fmt.Fprintln(os.Stderr, "Error: -i requires stdin and stdout to be a terminal")
			os.Exit(1)
		}
		if err := runInteractive(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var in io.Reader
	switch {
	case *script != "":
		in = strings.NewReader(*script)
	case flag.NArg() > 0:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	default:
		in = os.Stdin
	}

	failed, err := runScript(s, in, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: hostbridge [-v] [-e script] [file]")
	fmt.Fprintln(os.Stderr, "       hostbridge -i  (interactive mode)")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands read from -e, file or stdin, one per line:")
	fmt.Fprint(os.Stderr, helpText)
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
