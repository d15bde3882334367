package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcample/mcample/rand"
	"github.com/mcample/mcample/sampler"
)

var hmcCmd = &cobra.Command{
	Use:   "hmc",
	Short: "Run an HMC chain on a correlated 2D Gaussian energy",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := rand.NewGenerator(randomSeed)
		if err != nil {
			return err
		}

		// E(x,y) for a Gaussian with correlated coordinates; the gradient
		// is analytic here, but dropping Grad from the config below falls
		// back to central differences
		energy := func(x []float64) float64 {
			return 0.5*(x[0]*x[0]+x[1]*x[1]) + 0.45*x[0]*x[1]
		}
		grad := func(x []float64) []float64 {
			return []float64{
				x[0] + 0.45*x[1],
				x[1] + 0.45*x[0],
			}
		}

		h, err := sampler.NewHMC(gen, energy, []float64{0.0, 0.0}, &sampler.HMCConfig{Grad: grad})
		if err != nil {
			return err
		}

		ch, err := sampler.NewChain(h, 2, 1000, burnIn)
		if err != nil {
			return err
		}
		if err := ch.Run(sampleCount); err != nil {
			return err
		}

		mean, err := ch.Mean()
		if err != nil {
			return err
		}
		variance, err := ch.Variance()
		if err != nil {
			return err
		}

		fmt.Printf("Samples:     %d\n", ch.TotalSampleCount)
		fmt.Printf("Accept Rate: %.4f\n", h.AcceptanceRate())
		fmt.Printf("Mean:        (%.4f, %.4f) (expect 0, 0)\n", mean[0], mean[1])
		fmt.Printf("Variance:    (%.4f, %.4f)\n", variance[0], variance[1])

		if diffs, err := ch.SplitDiff(); err == nil {
			fmt.Printf("Split Diff:  (%.4f, %.4f)\n", diffs[0], diffs[1])
		}
		return nil
	},
}
