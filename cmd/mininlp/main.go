// Package main provides the mininlp CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0"

const usage = `mininlp - model utilities for training loops

Usage:
  mininlp <command> [flags]

Commands:
  version    Show version
  params     Count trainable parameters of an MLP
  summary    List the parameters of an MLP
  accuracy   Compute accuracy of predictions stored in a CSV file

Run 'mininlp <command> -h' for command flags.
`

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	command, args := os.Args[1], os.Args[2:]
	var err error
	switch command {
	case "version":
		fmt.Printf("mininlp %s\n", version)
	case "params":
		err = runParams(args)
	case "summary":
		err = runSummary(args)
	case "accuracy":
		err = runAccuracy(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		klog.Errorf("Unknown command %q. See 'mininlp help'.", command)
		os.Exit(2)
	}
	if err != nil {
		klog.Exitf("%s: %+v", command, err)
	}
}

// newFlagSet returns a FlagSet for a subcommand that also accepts the klog
// flags (-v, -logtostderr, ...).
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, f.Name, f.Usage)
	})
	return fs
}
