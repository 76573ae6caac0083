package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
)

var listCmd = &cobra.Command{
	Use:       "list [family]",
	Short:     "List the available algorithms",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"sort", "search", "pathfind", "graph"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		entries := c.All()
		if len(args) == 1 {
			entries = c.ByFamily(catalog.Family(args[0]))
		}

		if env.json {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FAMILY\tKEY\tNAME\tTIME\tSPACE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Family, e.Key, e.Name, e.Complexity.Time, e.Complexity.Space)
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
