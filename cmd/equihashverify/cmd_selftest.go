package main

import (
	"github.com/s-nomp/equihashverify/vectors"
	"github.com/spf13/cobra"
)

func newCmdSelftest(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Verify the built in reference vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.checkVectors(cmd, vectors.Known())
		},
	}
}
