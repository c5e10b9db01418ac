package main

import (
	"fmt"

	"github.com/liznear/almanac/pipeline"
	"github.com/spf13/cobra"
)

func newLowestCmd(root *rootOptions) *cobra.Command {
	var ranges bool
	cmd := &cobra.Command{
		Use:   "lowest FILE",
		Short: "Print the lowest final value over all seeds",
		Long: `Print the lowest final value over all seeds.

By default every seed is mapped on its own. With --ranges the seeds are read as
(start, length) pairs and whole ranges are mapped at once. Prints "none" if
there are no seeds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, p, err := root.load(args[0])
			if err != nil {
				return err
			}

			var (
				lowest uint64
				ok     bool
			)
			if ranges {
				rs, err := a.SeedRanges()
				if err != nil {
					return err
				}
				lowest, ok = pipeline.MinimumOver(p, rs)
			} else {
				lowest, ok = pipeline.MinimumOverScalars(p, a.Seeds)
			}

			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "none")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lowest)
			return err
		},
	}
	cmd.Flags().BoolVarP(&ranges, "ranges", "r", false, "read seeds as (start, length) pairs")
	return cmd
}
