package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/player"
	"github.com/katalvlaran/stepviz/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <algorithm>",
	Short: "Animate a search algorithm",
	Long: `Animates a search for --target over --values. Every algorithm except
linear search works on an ascending copy of the values. Without --target a
random element of the array is searched for.`,
	Example: "  stepviz search binary --values 9,1,7,3,5 --target 7",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := search.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		values, err := inputValues(cmd)
		if err != nil {
			return err
		}
		target, _ := cmd.Flags().GetInt("target")
		if !cmd.Flags().Changed("target") && len(values) > 0 {
			target = values[env.cfg.Rand().Intn(len(values))]
		}
		seq, err := search.Generate(algo, values, target)
		if err != nil {
			return err
		}

		return play(cmd, seq, env.renderer.Search, catalog.FamilySearch, string(algo), player.SearchDelay)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntSlice("values", nil, "comma separated input values")
	searchCmd.Flags().Int("target", 0, "value to search for")
}
