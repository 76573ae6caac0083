package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/player"
	"github.com/katalvlaran/stepviz/sorting"
)

var sortCmd = &cobra.Command{
	Use:   "sort <algorithm>",
	Short: "Animate a sorting algorithm",
	Long: `Animates one of the sorting algorithms over --values, or over a random
array of --size values in [1, 100]. Run "stepviz list sort" for the names.`,
	Example: "  stepviz sort quick --values 5,3,8,1\n  stepviz sort bubble-sort --size 12 --speed 4",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := sorting.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		values, err := inputValues(cmd)
		if err != nil {
			return err
		}
		seq, err := sorting.Generate(algo, values)
		if err != nil {
			return err
		}

		return play(cmd, seq, env.renderer.Sort, catalog.FamilySort, string(algo), player.SortDelay)
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().IntSlice("values", nil, "comma separated input values")
}

// inputValues returns --values, or random values of the configured size.
func inputValues(cmd *cobra.Command) ([]int, error) {
	if cmd.Flags().Changed("values") {
		return cmd.Flags().GetIntSlice("values")
	}

	return sorting.RandomValues(env.cfg.Size, env.cfg.Rand()), nil
}
