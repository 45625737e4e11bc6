package main

import (
	"fmt"

	"github.com/s-nomp/equihashverify/vectors"
	"github.com/spf13/cobra"
)

func newCmdVectors(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Manage vector files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export FILE",
		Short: "Write the built in reference vectors to a CBOR file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := vectors.NewCodec()
			if err != nil {
				return err
			}
			known := vectors.Known()
			if err := vectors.WriteFile(a.log, codec, args[0], known); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d vectors to %s\n", len(known.Vectors), args[0])
			return nil
		},
	})
	return cmd
}
