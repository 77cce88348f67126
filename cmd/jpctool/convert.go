package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsysapi/jpcfile"
	"github.com/jsysapi/jpcfile/errors"
	"github.com/jsysapi/jpcfile/jpc"
	"github.com/spf13/cobra"
)

const (
	particlesFile = "particles.json"
	texturesDir   = "textures"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export INPUT OUTDIR",
		Short: "Unpack a container into an editable directory",
		Long: `Unpack a container into a directory holding particles.json and the
texture payloads as individual .bti files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args, 0)
			if err != nil {
				return err
			}
			defer in.Close()

			c, warn, err := jpc.Decoder{}.Decode(in)
			printWarn(warn)
			if err != nil {
				return err
			}

			dir := args[1]
			if err := os.MkdirAll(filepath.Join(dir, texturesDir), 0o755); err != nil {
				return err
			}

			doc, err := json.MarshalIndent(c.PackJSON(), "", "\t")
			if err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(dir, particlesFile), doc, 0o644); err != nil {
				return err
			}
			for _, t := range c.Textures {
				path := filepath.Join(dir, texturesDir, t.Name+".bti")
				if err := os.WriteFile(path, t.Data, 0o644); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "import INDIR OUTPUT",
		Short: "Pack an exported directory back into a container",
		Long: `Pack a directory produced by export back into a container file.
Unresolved texture references block the import unless --force is given,
in which case they are dropped from the output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			doc, err := os.ReadFile(filepath.Join(dir, particlesFile))
			if err != nil {
				return err
			}
			obj := jpcfile.NewObject()
			if err := json.Unmarshal(doc, obj); err != nil {
				return err
			}
			c := &jpcfile.Container{}
			if err := c.UnpackJSON(obj); err != nil {
				return err
			}
			for _, t := range c.Textures {
				data, err := os.ReadFile(filepath.Join(dir, texturesDir, t.Name+".bti"))
				if err != nil {
					return err
				}
				t.Data = data
			}

			if errs := c.Validate(); len(errs) > 0 {
				if !force {
					return fmt.Errorf("invalid container, not writing (use --force to drop):\n%s",
						errors.Errors(errs).Error())
				}
				printWarn(errors.Errors(errs))
			}

			out, err := openOutput(args, 1)
			if err != nil {
				return err
			}
			defer out.Close()

			warn, err := jpc.Encoder{}.Encode(out, c)
			printWarn(warn)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "write even if texture references do not resolve")
	return cmd
}
