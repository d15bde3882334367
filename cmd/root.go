package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool
var randomSeed int64
var sampleCount int64
var burnIn int64

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcample",
	Short: "Monte Carlo sampling methods over explicit densities",
	Long: `mcample demonstrates sampling algorithms on analytic targets.
Available samplers:

  - A rejection sampler (envelope over a scaled proposal)
  - An importance sampler with an effective-sample-size diagnostic
  - A Hamiltonian Monte Carlo sampler (leap-frog + Metropolis correction)
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcample\n")
		fmt.Printf("Verbose:  %v\n", verbose)
		fmt.Printf("Samples:  %d\n", sampleCount)
		fmt.Printf("Burn In:  %d\n", burnIn)
		fmt.Printf("Rnd Seed: %d\n", randomSeed)
		fmt.Printf("\nRun one of the subcommands: reject, importance, hmc\n")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (default is much more parsimonious)")
	rootCmd.PersistentFlags().Int64VarP(&randomSeed, "seed", "r", 1, "Random seed to use")
	rootCmd.PersistentFlags().Int64VarP(&sampleCount, "count", "n", 10000, "Number of samples to take")
	rootCmd.PersistentFlags().Int64VarP(&burnIn, "burnin", "b", 500, "Burn-in samples (HMC only)")

	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(importanceCmd)
	rootCmd.AddCommand(hmcCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
