package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/race"
	"github.com/katalvlaran/stepviz/sorting"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Race sorting algorithms on the same input",
	Long: `Runs every algorithm in --algos concurrently on one input array and
ranks them by comparisons, then swaps, then frames.`,
	Example: "  stepviz compare --algos bubble,quick,merge --size 50",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names, _ := cmd.Flags().GetStringSlice("algos")
		algos := sorting.Algorithms()
		if len(names) > 0 {
			algos = algos[:0:0]
			for _, name := range names {
				a, err := sorting.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				algos = append(algos, a)
			}
		}
		values, err := inputValues(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("parallel")

		entries, err := race.Run(cmd.Context(), values, algos,
			race.WithLogger(env.logger),
			race.WithLimit(limit),
		)
		if err != nil {
			return err
		}
		ranked := race.Ranked(entries)

		if env.json {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, e := range ranked {
				if err := enc.Encode(e); err != nil {
					return err
				}
			}
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tALGORITHM\tCOMPARISONS\tSWAPS\tFRAMES")
		for i, e := range ranked {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", i+1, e.Algorithm, e.Comparisons, e.Swaps, e.Frames)
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringSlice("algos", nil, "algorithms to race (default all)")
	compareCmd.Flags().IntSlice("values", nil, "comma separated input values")
	compareCmd.Flags().Int("parallel", 0, "maximum concurrent racers (0 means all)")
}
