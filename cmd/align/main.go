// Command align runs the edalign engine over two sequences given as
// positional arguments or -q/-t flags and prints the computed result.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thesyncim/edalign"
)

var (
	queryFlag  string
	targetFlag string
	modeFlag   string
	taskFlag   string
	kFlag      int
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align [query] [target]",
		Short: "Compute bit-parallel edit-distance alignment between two sequences",
		Args:  cobra.MaximumNArgs(2),
		RunE:  run,
	}
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "query sequence (overrides positional arg 1)")
	cmd.Flags().StringVarP(&targetFlag, "target", "t", "", "target sequence (overrides positional arg 2)")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "global", "alignment mode: global, prefix, infix")
	cmd.Flags().StringVar(&taskFlag, "task", "distance", "task: distance, locations, path")
	cmd.Flags().IntVarP(&kFlag, "k", "k", -1, "error threshold (-1 enables dynamic-k doubling)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level structured logging")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	query, target, err := resolveSequences(args)
	if err != nil {
		return err
	}

	mode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}
	task, err := parseTask(taskFlag)
	if err != nil {
		return err
	}

	cfg := align.Config{K: kFlag, Mode: mode, Task: task}

	log.Debug().
		Str("mode", modeFlag).
		Str("task", taskFlag).
		Int("k", kFlag).
		Int("query_len", len(query)).
		Int("target_len", len(target)).
		Msg("running alignment")

	result, err := align.Align(cfg, query, target)
	if err != nil {
		log.Error().Err(err).Msg("alignment failed")
		return err
	}

	printResult(cmd, result)
	return nil
}

func resolveSequences(args []string) (query, target []byte, err error) {
	q, t := queryFlag, targetFlag
	if q == "" && len(args) > 0 {
		q = args[0]
	}
	if t == "" && len(args) > 1 {
		t = args[1]
	}
	if q == "" || t == "" {
		return nil, nil, fmt.Errorf("align: both a query and a target sequence are required")
	}
	return []byte(q), []byte(t), nil
}

func parseMode(s string) (align.Mode, error) {
	switch s {
	case "global":
		return align.Global, nil
	case "prefix":
		return align.Prefix, nil
	case "infix":
		return align.Infix, nil
	default:
		return 0, fmt.Errorf("align: unknown mode %q (want global, prefix, or infix)", s)
	}
}

func parseTask(s string) (align.Task, error) {
	switch s {
	case "distance":
		return align.Distance, nil
	case "locations":
		return align.Locations, nil
	case "path":
		return align.Path, nil
	default:
		return 0, fmt.Errorf("align: unknown task %q (want distance, locations, or path)", s)
	}
}

func printResult(cmd *cobra.Command, r align.Result) {
	out := cmd.OutOrStdout()
	if r.EditDistance == nil {
		fmt.Fprintln(out, "no solution within k")
		return
	}
	fmt.Fprintf(out, "edit_distance: %d\n", *r.EditDistance)
	fmt.Fprintf(out, "end_locations: %v\n", r.EndLocations)
	if r.StartLocations != nil {
		fmt.Fprintf(out, "start_locations: %v\n", r.StartLocations)
	}
	if r.Alignment != nil {
		fmt.Fprintf(out, "cigar: %s\n", align.FormatCIGAR(r.Alignment, align.Extended))
	}
	fmt.Fprintf(out, "alphabet_length: %d\n", r.AlphabetLength)
}
