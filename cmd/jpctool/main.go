// The jpctool command inspects and converts JPAC2-10 particle container
// files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jsysapi/jpcfile"
	"github.com/jsysapi/jpcfile/errors"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "jpctool",
		Short: "Inspect and convert JPAC2-10 particle containers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				jpcfile.Diagnostics = hclog.New(&hclog.LoggerOptions{
					Name:   "jpctool",
					Level:  hclog.Debug,
					Output: os.Stderr,
				})
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log re-encode change diagnostics to stderr")
	rootCmd.AddCommand(statCmd(), dumpCmd(), exportCmd(), importCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openInput maps a path argument to a reader, with "-" or absence
// meaning stdin.
func openInput(args []string, i int) (io.ReadCloser, error) {
	if len(args) <= i || args[i] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[i])
}

// openOutput maps a path argument to a writer, with "-" or absence
// meaning stdout.
func openOutput(args []string, i int) (io.WriteCloser, error) {
	if len(args) <= i || args[i] == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(args[i])
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func printWarn(warn error) {
	for _, err := range errors.List(warn) {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
}
