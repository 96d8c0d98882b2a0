// Command gammacli is a thin, file-based driver over the gammaray
// library: it reads two dose cubes, runs gammaindex.Compute, and
// prints a one-line summary. It exists to exercise the core end to
// end; its flag set and fixture format are not part of the library's
// interface contract.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nilac16/gammaray/gammaindex"
	"github.com/nilac16/gammaray/internal/applog"
	"github.com/nilac16/gammaray/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		refPath, measPath, distOutPath string
		req                            config.Request
	)

	cmd := &cobra.Command{
		Use:   "gammacli --ref REF.cube --meas MEAS.cube",
		Short: "Compute the gamma index between two dose cubes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), refPath, measPath, distOutPath, req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&refPath, "ref", "", "reference dose cube (required)")
	flags.StringVar(&measPath, "meas", "", "measured dose cube (required)")
	flags.Float64Var(&req.Diff, "diff", 0.03, "dose-difference criterion (proportion)")
	flags.Float64Var(&req.DTA, "dta", 3, "distance-to-agreement, in units of pixel spacing")
	flags.Float64Var(&req.Threshold, "threshold", 0.10, "low-dose threshold (proportion of each cube's max)")
	flags.StringVar(&req.Norm, "norm", "GLOBAL", "normalization: GLOBAL, LOCAL, or ABSOLUTE")
	flags.BoolVar(&req.Relative, "relative", false, "rescale measured dose into the reference's range first")
	flags.IntVar(&req.Shrinks, "shrinks", 10, "pattern-search shrink budget per voxel")
	flags.BoolVar(&req.PassOnly, "pass-only", false, "stop each voxel's search as soon as gamma<=1 is demonstrated")
	flags.IntVar(&req.Workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	flags.StringVar(&distOutPath, "dist-out", "", "optional path to write the per-voxel gamma distribution")

	cobra.CheckErr(cmd.MarkFlagRequired("ref"))
	cobra.CheckErr(cmd.MarkFlagRequired("meas"))

	return cmd
}

func run(ctx context.Context, refPath, measPath, distOutPath string, req config.Request) error {
	logger := applog.New(zerolog.InfoLevel)

	reference, err := readCube(refPath)
	if err != nil {
		return err
	}
	measured, err := readCube(measPath)
	if err != nil {
		return err
	}

	req.WriteDist = distOutPath != ""

	params, options, err := config.Decode(req)
	if err != nil {
		return err
	}
	options.Logger = logger

	var results gammaindex.Results
	if options.WriteDist {
		results.Dist = make([]float64, measured.Len())
	}
	if err := gammaindex.Compute(ctx, params, options, reference, measured, &results); err != nil {
		return err
	}

	fmt.Printf("pass %d/%d (%.1f%%), mean %.4f, max %.4f\n",
		results.Pass, results.Stats.Total,
		100*float64(results.Pass)/float64(results.Stats.Total),
		results.Stats.Mean, results.Stats.Max)

	if distOutPath != "" {
		if err := writeDist(distOutPath, results.Dist); err != nil {
			return err
		}
	}
	return nil
}
