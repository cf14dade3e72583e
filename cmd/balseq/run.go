package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/balseq/plan"
)

var (
	runPlanPath string
	runOut      string
	runParallel int
)

func newRunCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a YAML batch plan",
		Long: "Execute every batch of a YAML plan, each into its own subdirectory. " +
			"Independent batches may run concurrently; Ctrl+C stops the run.",
		Args: cobra.NoArgs,
		RunE: newRunAction(ctx),
	}
	cmd.Flags().StringVarP(&runPlanPath, "plan", "p", "", "path to the YAML plan file")
	cmd.Flags().StringVarP(&runOut, "out", "o", "", "output directory override ($"+outDirEnvVar+" applies when unset)")
	cmd.Flags().IntVar(&runParallel, "parallel", 0, "max concurrent batches (0 = unbounded)")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newRunAction(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(runPlanPath)
		if err != nil {
			return err
		}
		log.Debugf("loaded plan %s: %d batches", runPlanPath, len(p.Batches))

		var opts []plan.RunOption
		if out := resolveOutDir(cmd.Flags(), runOut); out != "" {
			opts = append(opts, plan.WithOutDir(out))
		}
		if runParallel > 0 {
			opts = append(opts, plan.WithMaxParallel(runParallel))
		}

		results, err := plan.Run(ctx, p, opts...)
		if err != nil {
			return err
		}
		for _, res := range results {
			log.Infof("batch %s: %d transitions, cv=%.3f -> %s",
				res.Name, res.Report.Transitions, res.Report.CV, res.Dir)
		}

		return nil
	}
}
