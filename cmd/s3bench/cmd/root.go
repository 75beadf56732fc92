// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aerospike/s3bench-go"
	"github.com/aerospike/s3bench-go/cmd/internal/bench"
	"github.com/aerospike/s3bench-go/cmd/internal/config"
	"github.com/aerospike/s3bench-go/cmd/internal/flags"
	"github.com/aerospike/s3bench-go/cmd/internal/logging"
	"github.com/spf13/cobra"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags
	flagsApp       *flags.App
	flagsBenchmark *flags.Benchmark
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:       flags.NewApp(),
		flagsBenchmark: flags.NewBenchmark(),
	}

	rootCmd := &cobra.Command{
		Use:   "s3bench <config-file> <operation>",
		Short: "S3 listing latency benchmark CLI tool",
		Args:  c.validateArgs,
		RunE:  c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	appFlagSet := c.flagsApp.NewFlagSet()
	benchmarkFlagSet := c.flagsBenchmark.NewFlagSet()

	// App flags.
	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)

	rootCmd.Flags().AddFlagSet(benchmarkFlagSet)

	// Beautify help and usage.
	helpFunc := func() {
		fmt.Println("Welcome to the S3 benchmark CLI tool!")
		fmt.Println("-------------------------------------")
		fmt.Println("\nUsage:")
		fmt.Println("  s3bench <config-file> <operation> [flags]")

		// Print section: Arguments
		fmt.Println("\nArguments:")
		fmt.Println("  config-file   Path to the YAML file describing the storage target.")
		fmt.Println("  operation     Operation to measure. Operations are: " +
			strings.Join(s3bench.Operations(), ", ") + ".")

		// Print section: App Flags
		fmt.Println("\nGeneral Flags:")
		appFlagSet.PrintDefaults()

		// Print section: Benchmark Flags
		fmt.Println("\nBenchmark Flags:")
		benchmarkFlagSet.PrintDefaults()

		// Print section: Config file keys
		fmt.Println("\nConfig File Keys:\n" +
			"For S3 storage bucket name is mandatory, and is set with the bucket key.\n" +
			"region defaults to us-east-1 when omitted, prefix defaults to the whole bucket.\n" +
			"endpoint is used in case you want to use minio, instead of AWS.\n" +
			"profile or access_key_id with secret_access_key narrow credential resolution;\n" +
			"when omitted the default AWS credential chain applies.")
	}

	rootCmd.SetUsageFunc(func(_ *cobra.Command) error {
		helpFunc()
		return nil
	})
	rootCmd.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		helpFunc()
	})

	return rootCmd
}

// validateArgs rejects a wrong argument count and an unknown operation
// before the config file is read or any client is built.
func (c *Cmd) validateArgs(cmd *cobra.Command, args []string) error {
	// Version requests and the bare invocation (which shows help) do not
	// need positional arguments.
	if c.flagsApp.Version || (len(args) == 0 && cmd.Flags().NFlag() == 0) {
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments: <config-file> <operation>, got %d", len(args))
	}

	if _, err := s3bench.ParseOperation(args[1]); err != nil {
		return err
	}

	return nil
}

func (c *Cmd) run(cmd *cobra.Command, args []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion()

		return nil
	}

	// If no arguments and no flags were passed, show help.
	if len(args) == 0 && cmd.Flags().NFlag() == 0 {
		if err := cmd.Help(); err != nil {
			return err
		}

		return nil
	}

	// Init logger.
	logger, err := logging.NewLogger(c.flagsApp.LogLevel, c.flagsApp.Verbose, c.flagsApp.LogJSON)
	if err != nil {
		return err
	}

	// Init app.
	benchmark := c.flagsBenchmark.GetBenchmark()
	benchmark.ConfigFile = args[0]
	benchmark.Operation = args[1]

	params := &config.BenchmarkParams{
		App:       c.flagsApp.GetApp(),
		Benchmark: benchmark,
	}

	service, err := bench.NewService(cmd.Context(), params, logger)
	if err != nil {
		return err
	}

	if err = service.Run(cmd.Context()); err != nil {
		logger.Error("benchmark failed", slog.Any("error", err))

		return err
	}

	return nil
}

func (c *Cmd) printVersion() {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Printf("version: %s\n", version)
}
