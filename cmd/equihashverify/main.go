package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/s-nomp/equihashverify/config"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

// errRejected is returned by commands that have already reported an invalid
// solution or a failed expectation. It maps to exitRejected.
var errRejected = errors.New("rejected")

var errNoCommand = errors.New("a command is required")

// app carries the state shared by the commands of one invocation.
type app struct {
	flagMain struct {
		Config          string
		LogLevel        string
		Workers         int
		Params          string
		Personalization string
	}
	cfg config.Config
	log logger.Logger
}

func (a *app) newCmdMain() *cobra.Command {
	cmdMain := &cobra.Command{
		Use:           "equihashverify",
		Short:         "Verify equihash proof of work solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Usage(); err != nil {
				return err
			}
			return errNoCommand
		},
	}

	flags := cmdMain.PersistentFlags()
	flags.StringVar(&a.flagMain.Config, "config", "", "Config file (yaml, json or toml)")
	flags.StringVar(&a.flagMain.LogLevel, config.FlagLogLevel, config.DefaultLogLevel, "DEBUG, INFO, NOOP or TEST")
	flags.IntVar(&a.flagMain.Workers, config.KeyWorkers, 0, "Parallel verifications for batch work (default GOMAXPROCS)")
	flags.StringVar(&a.flagMain.Params, config.KeyParams, config.DefaultParams, "Preset name or N_K")
	flags.StringVar(&a.flagMain.Personalization, config.KeyPersonalization, "", "Personalization prefix (default from the preset)")

	cmdMain.AddCommand(
		newCmdVerify(a),
		newCmdBatch(a),
		newCmdVectors(a),
		newCmdSelftest(a),
		newCmdParams(a),
	)
	return cmdMain
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flagMain.Config, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.New(cfg.LogLevel)
	a.log = logger.Sugar.WithServiceName("equihashverify")
	return nil
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer func() {
		// logger.New only runs once the configuration has loaded
		if a.log != nil {
			logger.OnExit()
		}
	}()

	cmdMain := a.newCmdMain()
	cmdMain.SetArgs(args)
	cmdMain.SetOut(stdout)
	cmdMain.SetErr(stderr)

	err := cmdMain.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitRejected
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
}
