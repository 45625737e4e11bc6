package main

import (
	"fmt"

	"github.com/s-nomp/equihashverify/batch"
	"github.com/s-nomp/equihashverify/vectors"
	"github.com/spf13/cobra"
)

func newCmdBatch(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Verify every vector in a CBOR vector file against its recorded outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := vectors.NewCodec()
			if err != nil {
				return err
			}
			f, err := vectors.ReadFile(a.log, vectors.FileOpener{}, codec, args[0])
			if err != nil {
				return err
			}
			return a.checkVectors(cmd, f)
		},
	}
}

// checkVectors verifies f in parallel and prints any vector whose outcome
// differs from the recorded one.
func (a *app) checkVectors(cmd *cobra.Command, f vectors.File) error {
	v := batch.NewVerifier(batch.WithWorkers(a.cfg.Workers), batch.WithLogger(a.log))
	results, err := v.Verify(cmd.Context(), f.Jobs())
	if err != nil {
		return err
	}
	mismatches, err := f.Check(results)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range mismatches {
		fmt.Fprintln(out, m)
	}
	fmt.Fprintf(out, "%d vectors, %d mismatches\n", len(f.Vectors), len(mismatches))
	if len(mismatches) > 0 {
		return errRejected
	}
	return nil
}
