package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// outDirEnvVar names the environment variable holding the default
	// output directory; an explicit --out flag always wins.
	outDirEnvVar = "BALSEQ_OUT"

	// defaultEnvFile is probed silently; a missing file is only an error
	// when --env-file was passed explicitly.
	defaultEnvFile = ".env"
)

var (
	verbose bool
	envFile string
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "balseq",
		Short:        "Generate batches of sequences with balanced transition usage",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			return loadEnvFile(cmd.Flags().Changed("env-file"))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "environment file with BALSEQ_* defaults")
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRunCommand(ctx))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnvFile loads envFile into the process environment. The implicit
// default file may be absent; an explicitly requested one may not.
func loadEnvFile(explicit bool) error {
	err := godotenv.Load(envFile)
	if err == nil {
		log.Debugf("loaded environment from %s", envFile)

		return nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// resolveOutDir picks the effective output directory: an explicit --out
// flag, then the environment, then the flag's default.
func resolveOutDir(flags *pflag.FlagSet, flagValue string) string {
	if flags.Changed("out") {
		return flagValue
	}
	if env := os.Getenv(outDirEnvVar); env != "" {
		return env
	}

	return flagValue
}
