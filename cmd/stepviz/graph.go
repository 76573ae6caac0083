package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/graphsearch"
	"github.com/katalvlaran/stepviz/player"
)

var graphCmd = &cobra.Command{
	Use:   "graph <algorithm>",
	Short: "Animate a search on a weighted graph",
	Long: `Animates bfs, dfs or dijkstra on a generated graph of --size nodes.
--end defaults to the last node.`,
	Example: "  stepviz graph dijkstra --kind complete --size 6 --start 0 --end 4",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := graphsearch.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		kind, _ := flags.GetString("kind")
		g, err := graphsearch.Build(graphsearch.Kind(kind), env.cfg.Size, env.cfg.Rand())
		if err != nil {
			return err
		}

		start, _ := flags.GetInt("start")
		end := env.cfg.Size - 1
		if flags.Changed("end") {
			end, _ = flags.GetInt("end")
		}
		seq, err := graphsearch.Generate(algo, g, start, end)
		if err != nil {
			return err
		}

		return play(cmd, seq, env.renderer.Graph, catalog.FamilyGraph, string(algo), player.GraphDelay)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("kind", string(graphsearch.KindRandom), "graph shape: random, complete or tree")
	graphCmd.Flags().Int("start", 0, "start node ID")
	graphCmd.Flags().Int("end", 0, "end node ID")
}
