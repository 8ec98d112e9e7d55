// Package main provides the micrograd CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("micrograd: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run dispatches a subcommand. Output goes to w.
func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "micrograd %s\n", version)
		return nil
	case "train":
		return runTrain(args[1:], w)
	case "eval":
		return runEval(args[1:], w)
	case "dot":
		return runDot(args[1:], w)
	case "help", "-h", "--help":
		usage(w)
		return nil
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar autograd engine and MLP toolkit")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train an MLP on XOR")
	fmt.Fprintln(w, "  eval       Evaluate a saved checkpoint on XOR")
	fmt.Fprintln(w, "  dot        Print the computation graph of a single neuron")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'micrograd <command> -h' for command flags.")
}
