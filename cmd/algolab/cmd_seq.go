package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algolab/internal/metrics"
	"github.com/katalvlaran/algolab/sortsearch"
)

// values holds command-line values, numeric when every argument parses as a float.
type values struct {
	nums    []float64
	strs    []string
	numeric bool
}

func parseValues(args []string) values {
	nums := make([]float64, 0, len(args))
	for _, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return values{strs: args}
		}
		nums = append(nums, f)
	}

	return values{nums: nums, numeric: true}
}

func formatFloats(nums []float64) []string {
	out := make([]string, len(nums))
	for i, f := range nums {
		out[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}

	return out
}

func newSortCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sort VALUES...",
		Short:   "Sort numbers or strings with selection sort or quicksort",
		Example: `  algolab sort --algo quick 5 3 6 2 10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, _ := cmd.Flags().GetString("algo")
			desc, _ := cmd.Flags().GetBool("desc")

			began := time.Now()
			sorted, err := sortValues(algo, parseValues(args))
			a.metrics.ObserveQuery(metrics.KindSort, time.Since(began), err)
			if err != nil {
				return err
			}
			if desc {
				sortsearch.Reverse(sorted)
			}
			a.log.Debug("sorted", "algo", algo, "n", len(sorted))

			return a.emit(cmd.OutOrStdout(), map[string]any{"algo": algo, "sorted": sorted}, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(sorted, " "))
			})
		},
	}
	cmd.Flags().String("algo", "quick", "Algorithm: selection or quick")
	cmd.Flags().Bool("desc", false, "Descending order")

	return cmd
}

func sortValues(algo string, v values) ([]string, error) {
	switch algo {
	case "selection":
		if v.numeric {
			return formatFloats(sortsearch.SelectionSort(v.nums)), nil
		}
		return sortsearch.SelectionSort(v.strs), nil
	case "quick":
		if v.numeric {
			return formatFloats(sortsearch.Quicksort(v.nums)), nil
		}
		return sortsearch.Quicksort(v.strs), nil
	default:
		return nil, fmt.Errorf("unknown sort algorithm %q (want selection or quick)", algo)
	}
}

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search VALUES...",
		Short:   "Binary search an ascending list",
		Example: `  algolab search --target 7 1 3 5 7 9`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("target")
			v := parseValues(args)

			began := time.Now()
			var (
				idx int
				err error
			)
			if v.numeric {
				// a non-numeric target cannot occur in a numeric list
				if t, perr := strconv.ParseFloat(target, 64); perr != nil {
					idx, err = -1, fmt.Errorf("%w: %s", sortsearch.ErrNotFound, target)
				} else {
					idx, err = sortsearch.BinarySearch(v.nums, t)
				}
			} else {
				idx, err = sortsearch.BinarySearch(args, target)
			}
			a.metrics.ObserveQuery(metrics.KindSearch, time.Since(began), err)

			found := err == nil
			if err != nil && !errors.Is(err, sortsearch.ErrNotFound) {
				return err
			}
			a.log.Debug("searched", "target", target, "found", found, "index", idx)

			return a.emit(cmd.OutOrStdout(), map[string]any{"target": target, "found": found, "index": idx}, func(w io.Writer) {
				if !found {
					fmt.Fprintf(w, "%s is not in the list\n", target)
					return
				}
				fmt.Fprintf(w, "%s is at index %d\n", target, idx)
			})
		},
	}
	cmd.Flags().String("target", "", "Value to look for")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
