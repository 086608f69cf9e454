// Command algolab runs the library's graph and sequence algorithms from the shell.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algolab/internal/config"
	"github.com/katalvlaran/algolab/internal/metrics"
)

var version = "0.1.0-dev"

func main() {
	root, a := newRootCmd()
	if err := execute(root, a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries per-invocation state shared by subcommands.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Recorder
	jsonOut bool
}

// execute runs root and then writes the metrics file, whether or not the
// command succeeded.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()

	return errors.Join(err, a.flush())
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "algolab",
		Short: "Classic graph, sort and search algorithms",
		Long: `algolab runs breadth-first search, shortest paths, sorting and
binary search over graphs and values supplied on the command line.

Graphs are YAML or JSON documents with either a weighted "edges" section
or an unweighted "neighbors" section.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().Bool("json", false, "Output as JSON")
	root.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this file after the command")

	root.AddCommand(
		newVersionCmd(),
		newBFSCmd(a),
		newPathCmd(a),
		newSortCmd(a),
		newSearchCmd(a),
	)

	return root, a
}

// setup loads config, applies flag overrides and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics-out") {
		cfg.MetricsOut, _ = flags.GetString("metrics-out")
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.jsonOut, _ = flags.GetBool("json")
	a.metrics = metrics.New()
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("query_id", uuid.NewString(), "cmd", cmd.Name())

	return nil
}

// flush writes the metrics file when one is configured. It is a no-op when
// setup never ran.
func (a *app) flush() error {
	if a.cfg.MetricsOut == "" || a.metrics == nil {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsOut); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", "path", a.cfg.MetricsOut)

	return nil
}

// emit prints v as JSON when --json is set, otherwise calls text.
func (a *app) emit(w io.Writer, v any, text func(io.Writer)) error {
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				_ = json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "algolab version %s\n", version)
			}
		},
	}
}
