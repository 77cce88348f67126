package main

import (
	"github.com/jsysapi/jpcfile/jpc"
	"github.com/spf13/cobra"
)

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [INPUT] [OUTPUT]",
		Short: "Write a readable representation of a container",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args, 0)
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := openOutput(args, 1)
			if err != nil {
				return err
			}
			defer out.Close()

			warn, err := jpc.Decoder{}.Dump(out, in)
			printWarn(warn)
			return err
		},
	}
}
