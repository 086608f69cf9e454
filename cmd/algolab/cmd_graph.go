package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algolab/bfs"
	"github.com/katalvlaran/algolab/dijkstra"
	"github.com/katalvlaran/algolab/graphio"
	"github.com/katalvlaran/algolab/internal/metrics"
)

type bfsOutput struct {
	Order []string       `json:"order"`
	Depth map[string]int `json:"depth"`
	Until string         `json:"until,omitempty"`
	Path  []string       `json:"path,omitempty"`
}

func newBFSCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first traversal from a start vertex",
		Example: `  algolab bfs --graph friends.yaml --start you
  algolab bfs --graph friends.yaml --start you --until thom --max-depth 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graphPath, _ := cmd.Flags().GetString("graph")
			start, _ := cmd.Flags().GetString("start")
			until, _ := cmd.Flags().GetString("until")
			maxDepth := a.cfg.MaxDepth
			if cmd.Flags().Changed("max-depth") {
				maxDepth, _ = cmd.Flags().GetInt("max-depth")
			}

			doc, err := graphio.Load(graphPath)
			if err != nil {
				return err
			}
			g := doc.Graph()
			a.log.Debug("graph loaded", "graph", doc.Name, "nodes", len(g.Nodes()), "edges", g.NumEdges())

			began := time.Now()
			res, err := bfs.BFS(g, start,
				bfs.WithMaxDepth[string](maxDepth),
				bfs.WithOnVisit(func(id string, depth int) error {
					a.metrics.Visits.Inc()
					a.log.Debug("visit", "vertex", id, "depth", depth)
					if until != "" && id == until {
						return bfs.ErrStop
					}
					return nil
				}),
			)
			a.metrics.ObserveQuery(metrics.KindBFS, time.Since(began), err)
			if err != nil {
				return err
			}
			a.log.Info("bfs done", "start", start, "visited", len(res.Order), "took", time.Since(began))

			out := bfsOutput{Order: res.Order, Depth: res.Depth, Until: until}
			if until != "" {
				out.Path, _ = res.PathTo(until)
			}

			return a.emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(out.Order, " "))
				switch {
				case until == "":
				case out.Path != nil:
					fmt.Fprintf(w, "found %s at depth %d: %s\n", until, res.Depth[until], strings.Join(out.Path, " -> "))
				default:
					fmt.Fprintf(w, "%s not reached\n", until)
				}
			})
		},
	}

	cmd.Flags().String("graph", "", "Graph document (YAML or JSON)")
	cmd.Flags().String("start", "", "Start vertex")
	cmd.Flags().String("until", "", "Stop when this vertex is reached and print the path to it")
	cmd.Flags().Int("max-depth", 0, "Do not expand beyond this depth (0 = unlimited)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

type pathOutput struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Strategy    string   `json:"strategy"`
	Reachable   bool     `json:"reachable"`
	Path        []string `json:"path"`
	Cost        *float64 `json:"cost"` // null when unreachable
	Relaxations int      `json:"relaxations"`
}

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Cheapest path between two vertices of a weighted graph",
		Example: `  algolab path --graph roads.yaml --from A --to C
  algolab path --graph roads.yaml --from A --to C --strategy fifo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graphPath, _ := cmd.Flags().GetString("graph")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			strategyName := a.cfg.Strategy
			if cmd.Flags().Changed("strategy") {
				strategyName, _ = cmd.Flags().GetString("strategy")
			}
			strategy, err := dijkstra.ParseStrategy(strategyName)
			if err != nil {
				return err
			}

			doc, err := graphio.Load(graphPath)
			if err != nil {
				return err
			}
			g, err := doc.WeightedGraph()
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Name, err)
			}
			a.log.Debug("graph loaded", "graph", doc.Name, "weighted", doc.Weighted(), "edges", g.NumEdges())

			opts := []dijkstra.Option[string]{
				dijkstra.WithStrategy[string](strategy),
				dijkstra.WithOnRelax(func(node, via string, cost float64) {
					a.metrics.Relaxations.Inc()
					a.log.Debug("relax", "vertex", node, "via", via, "cost", cost)
				}),
			}
			if cmd.Flags().Changed("max-cost") {
				maxCost, _ := cmd.Flags().GetFloat64("max-cost")
				opts = append(opts, dijkstra.WithMaxCost[string](maxCost))
			}

			began := time.Now()
			res, err := dijkstra.ShortestPath(g, from, to, opts...)
			a.metrics.ObserveQuery(metrics.KindPath, time.Since(began), err)
			if err != nil {
				return err
			}
			a.log.Info("path done", "from", from, "to", to, "strategy", strategy,
				"reachable", res.Reachable(), "relaxations", res.Relaxations, "took", time.Since(began))

			out := pathOutput{
				From:        from,
				To:          to,
				Strategy:    strategy.String(),
				Reachable:   res.Reachable(),
				Path:        res.Path,
				Relaxations: res.Relaxations,
			}
			if res.Reachable() {
				cost := res.Cost
				out.Cost = &cost
			}

			return a.emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				if !out.Reachable {
					fmt.Fprintf(w, "%s is unreachable from %s\n", to, from)
					return
				}
				fmt.Fprintf(w, "%s (cost %g)\n", strings.Join(out.Path, " -> "), res.Cost)
			})
		},
	}

	cmd.Flags().String("graph", "", "Graph document (YAML or JSON)")
	cmd.Flags().String("from", "", "Start vertex")
	cmd.Flags().String("to", "", "Target vertex")
	cmd.Flags().String("strategy", "", "Frontier: priority or fifo (default from config)")
	cmd.Flags().Float64("max-cost", 0, "Ignore paths costing more than this")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
