package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/s-nomp/equihashverify/equihash"
	"github.com/spf13/cobra"
)

func newCmdParams(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params [N_K|preset]",
		Short: "Print the sizes derived from a parameter set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if len(args) == 1 {
				cfg.Params = args[0]
			}
			p, person, err := cfg.Resolve()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "params\t%s\n", p)
			fmt.Fprintf(w, "personalization\t%s\n", person)
			fmt.Fprintf(w, "personalization tag\t%x\n", equihash.Personalization(person, p))
			fmt.Fprintf(w, "collision bits\t%d\n", p.CollisionBits())
			fmt.Fprintf(w, "index bits\t%d\n", p.IndexBits())
			fmt.Fprintf(w, "solution indices\t%d\n", p.SolutionIndices())
			fmt.Fprintf(w, "solution bytes\t%d\n", p.SolutionBytes())
			fmt.Fprintf(w, "leaves per hash\t%d\n", p.IndicesPerHashOutput())
			fmt.Fprintf(w, "hash output bytes\t%d\n", p.HashOutputBytes())
			return w.Flush()
		},
	}
}
