package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTraceCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE ID",
		Short: "Print the value of ID in every category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}
			a, p, err := root.load(args[0])
			if err != nil {
				return err
			}

			categories := a.Categories()
			for i, v := range p.Trace(id) {
				name := "input"
				if i < len(categories) {
					name = categories[i]
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", name, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
