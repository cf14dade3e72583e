package main

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/balseq/export"
	"github.com/katalvlaran/balseq/seqgen"
)

var (
	genLength    int
	genCount     int
	genSeed      int64
	genOut       string
	genStats     bool
	genNoHeatmap bool
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one batch and write its artifacts",
		Long: "Generate one batch of counterbalanced sequences and write the " +
			"sequences CSV, the transition probability matrix CSV and its heatmap PNG.",
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	cmd.Flags().IntVarP(&genLength, "length", "n", 12, "sequence length / alphabet size (>= 2)")
	cmd.Flags().IntVarP(&genCount, "count", "m", 72, "number of sequences (>= 1)")
	cmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed; 0 randomizes every run")
	cmd.Flags().StringVarP(&genOut, "out", "o", "results", "output directory ($"+outDirEnvVar+" overrides the default)")
	cmd.Flags().BoolVar(&genStats, "stats", false, "log the balance report of the batch")
	cmd.Flags().BoolVar(&genNoHeatmap, "no-heatmap", false, "skip the heatmap PNG")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outDir := resolveOutDir(cmd.Flags(), genOut)

	var opts []seqgen.Option
	if genSeed != 0 {
		opts = append(opts, seqgen.WithSeed(genSeed))
	}
	log.Debugf("generating batch: length=%d count=%d seed=%d out=%s", genLength, genCount, genSeed, outDir)

	batch, err := seqgen.Generate(genLength, genCount, opts...)
	if err != nil {
		return err
	}

	if genStats {
		report, err := seqgen.BalanceReport(batch)
		if err != nil {
			return err
		}
		log.Infof("balance over %d transitions: mean=%.2f stddev=%.2f cv=%.3f",
			report.Transitions, report.Mean, report.StdDev, report.CV)
	}

	if genNoHeatmap {
		return writeCSVArtifacts(outDir, batch)
	}

	arts, err := export.WriteBatchArtifacts(outDir, batch)
	if err != nil {
		return err
	}
	for _, path := range []string{arts.SequencesCSV, arts.MatrixCSV, arts.HeatmapPNG} {
		log.Infof("wrote %s", path)
	}

	return nil
}

// writeCSVArtifacts writes the two CSV artifacts without the heatmap.
func writeCSVArtifacts(outDir string, batch *seqgen.Batch) error {
	probs, err := seqgen.TransitionProbabilities(batch)
	if err != nil {
		return err
	}
	if err = export.EnsureDir(outDir); err != nil {
		return err
	}

	seqPath := filepath.Join(outDir, export.SequencesFileName)
	if err = export.SaveSequences(seqPath, batch.Sequences); err != nil {
		return err
	}
	matPath := filepath.Join(outDir, export.MatrixFileName)
	if err = export.SaveMatrixCSV(matPath, probs); err != nil {
		return err
	}
	log.Infof("wrote %s", seqPath)
	log.Infof("wrote %s", matPath)

	return nil
}
