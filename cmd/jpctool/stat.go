package main

import (
	"encoding/json"
	"fmt"

	"github.com/jsysapi/jpcfile"
	"github.com/jsysapi/jpcfile/jpc"
	"github.com/spf13/cobra"
)

// TextureStat describes one texture record.
type TextureStat struct {
	Name   string
	Size   int
	Digest string
}

// Stats summarizes a container.
type Stats struct {
	ResourceCount int
	TextureCount  int

	// Number of sections per tag across all resources.
	SectionCount map[string]int

	Textures []TextureStat
}

func statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat [INPUT]",
		Short: "Write container statistics as JSON",
		Args:  cobra.MaximumNArgs(1),
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

			stats := Stats{
				ResourceCount: len(c.Resources),
				TextureCount:  len(c.Textures),
				SectionCount:  map[string]int{},
			}
			for _, r := range c.Resources {
				countSections(stats.SectionCount, r)
			}
			for _, t := range c.Textures {
				sum := t.Digest()
				stats.Textures = append(stats.Textures, TextureStat{
					Name:   t.Name,
					Size:   len(t.Data),
					Digest: fmt.Sprintf("%x", sum[:]),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "\t")
			return enc.Encode(stats)
		},
	}
}

func countSections(counts map[string]int, r *jpcfile.Resource) {
	if r.Dynamics != nil {
		counts[jpcfile.TagDynamics]++
	}
	counts[jpcfile.TagFieldBlock] += len(r.FieldBlocks)
	counts[jpcfile.TagKeyBlock] += len(r.KeyBlocks)
	if r.BaseShape != nil {
		counts[jpcfile.TagBaseShape]++
	}
	if r.ExtraShape != nil {
		counts[jpcfile.TagExtraShape]++
	}
	if r.ChildShape != nil {
		counts[jpcfile.TagChildShape]++
	}
	if r.ExTexShape != nil {
		counts[jpcfile.TagExTexShape]++
	}
}
