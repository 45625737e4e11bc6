package main

import (
	"encoding/hex"
	"fmt"

	"github.com/s-nomp/equihashverify/equihash"
	"github.com/spf13/cobra"
)

func newCmdVerify(a *app) *cobra.Command {
	var flagVerify struct {
		Header   string
		Solution string
		Reason   bool
	}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify one solution, exit 0 when valid and 1 when not",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, person, err := a.cfg.Resolve()
			if err != nil {
				return err
			}
			header, err := hex.DecodeString(flagVerify.Header)
			if err != nil {
				return fmt.Errorf("--header: %w", err)
			}
			solution, err := hex.DecodeString(flagVerify.Solution)
			if err != nil {
				return fmt.Errorf("--solution: %w", err)
			}

			err = equihash.VerifySolution(p, person, header, solution)
			if err != nil && !equihash.IsRejection(err) {
				return err
			}

			out := cmd.OutOrStdout()
			if err == nil {
				fmt.Fprintln(out, "true")
				return nil
			}
			if flagVerify.Reason {
				fmt.Fprintf(out, "false: %v\n", err)
			} else {
				fmt.Fprintln(out, "false")
			}
			a.log.Debugf("%s %q: %v", p, person, err)
			return errRejected
		},
	}

	cmd.Flags().StringVar(&flagVerify.Header, "header", "", "Hex encoded 140 byte header")
	cmd.Flags().StringVar(&flagVerify.Solution, "solution", "", "Hex encoded solution")
	cmd.Flags().BoolVar(&flagVerify.Reason, "reason", false, "Print why a solution is rejected")
	_ = cmd.MarkFlagRequired("header")
	_ = cmd.MarkFlagRequired("solution")
	return cmd
}
