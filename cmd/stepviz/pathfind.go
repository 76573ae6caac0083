package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/pathfind"
	"github.com/katalvlaran/stepviz/player"
)

var pathfindCmd = &cobra.Command{
	Use:   "pathfind <algorithm>",
	Short: "Animate a grid pathfinding algorithm",
	Long: `Animates bfs, dfs, dijkstra or astar on a --size square maze.
--maze picks a generated layout (random, division, empty) or names a text
file using S for the start, E for the end, # for walls and . for open cells.`,
	Example: "  stepviz pathfind astar --maze division --size 21\n  stepviz pathfind bfs --maze level.txt --conn 8",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := pathfind.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		maze, _ := flags.GetString("maze")
		g, err := loadMaze(maze)
		if err != nil {
			return err
		}

		heartbeat := env.cfg.Heartbeat
		if flags.Changed("heartbeat") {
			heartbeat, _ = flags.GetInt("heartbeat")
		}
		conn := pathfind.Conn4
		switch n, _ := flags.GetInt("conn"); n {
		case 4:
		case 8:
			conn = pathfind.Conn8
		default:
			return fmt.Errorf("--conn must be 4 or 8, got %d", n)
		}

		seq, err := pathfind.Generate(algo, g, pathfind.WithHeartbeat(heartbeat), pathfind.WithConnectivity(conn))
		if err != nil {
			return err
		}

		return play(cmd, seq, env.renderer.Grid, catalog.FamilyPathfind, string(algo), player.PathfindDelay)
	},
}

func init() {
	rootCmd.AddCommand(pathfindCmd)
	pathfindCmd.Flags().String("maze", string(pathfind.MazeRandom), "random, division, empty or a grid file")
	pathfindCmd.Flags().Int("heartbeat", pathfind.DefaultHeartbeat, "expansions between heartbeat frames (0 disables)")
	pathfindCmd.Flags().Int("conn", 4, "neighbour connectivity: 4 or 8")
}

// loadMaze generates a known layout or reads a grid file.
func loadMaze(name string) (*pathfind.Grid, error) {
	switch kind := pathfind.MazeKind(name); kind {
	case pathfind.MazeRandom, pathfind.MazeDivision, pathfind.MazeEmpty:
		return pathfind.Maze(kind, env.cfg.Size, env.cfg.Size, env.cfg.Density, env.cfg.Rand())
	}
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}

	return pathfind.ParseGrid(string(text))
}
