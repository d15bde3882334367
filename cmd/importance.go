package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcample/mcample/dist"
	"github.com/mcample/mcample/rand"
	"github.com/mcample/mcample/sampler"
)

var importanceCmd = &cobra.Command{
	Use:   "importance",
	Short: "Estimate E[x^2] under N(0,1) by importance sampling from N(1,2)",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := rand.NewGenerator(randomSeed)
		if err != nil {
			return err
		}

		// Unnormalized standard normal log density
		logTarget := func(x []float64) float64 {
			return -x[0] * x[0] / 2.0
		}

		proposal, err := dist.NewNormal(gen, 1.0, 2.0)
		if err != nil {
			return err
		}

		samp, err := sampler.NewImportance(logTarget, proposal)
		if err != nil {
			return err
		}

		ws := make([]sampler.WeightedSample, sampleCount)
		for i := range ws {
			s, err := samp.Sample()
			if err != nil {
				return err
			}
			ws[i] = s
			if verbose && i < 10 {
				fmt.Printf("sample %d: x=%f w=%f\n", i, s.X[0], s.W)
			}
		}

		est, err := sampler.Mean(ws, func(x []float64) float64 { return x[0] * x[0] })
		if err != nil {
			return err
		}
		ess, err := sampler.EffectiveSampleSize(ws)
		if err != nil {
			return err
		}

		fmt.Printf("Samples:  %d\n", samp.Count)
		fmt.Printf("E[x^2]:   %.4f (expect 1)\n", est)
		fmt.Printf("ESS:      %.1f of %d\n", ess, sampleCount)
		return nil
	},
}
