package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zeebo/sha2"
	"github.com/zeebo/sha2/internal/bench"
)

func newBenchCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "bench",
		Short: "compare throughput against the standard library",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  e.runBench,
	}

	c.Flags().String("max-size", "16MiB", "skip inputs larger than this")
	c.Flags().Int64("seed", 0, "seed for the random input")
	c.Flags().Bool("all", false, "benchmark both algorithms, ignoring --algorithm")

	return c
}

func (e *env) runBench(cmd *cobra.Command, _ []string) error {
	algs := []sha2.Algorithm{sha2.SHA256, sha2.SHA512}
	if !e.v.GetBool("all") {
		alg, err := e.algorithm()
		if err != nil {
			return err
		}
		algs = []sha2.Algorithm{alg}
	}

	maxBytes, err := humanize.ParseBytes(e.v.GetString("max-size"))
	if err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, bench.Host()); err != nil {
		return errors.Wrap(err, "write output")
	}

	results, err := bench.Run(cmd.Context(), bench.Config{
		Algorithms: algs,
		MaxBytes:   int(maxBytes),
		Seed:       e.v.GetInt64("seed"),
		Log:        e.log,
	})
	if err != nil {
		return err
	}

	if err := bench.Write(out, results); err != nil {
		return err
	}

	for _, r := range results {
		if !r.Match {
			e.log.Error().
				Str("algorithm", r.Algorithm.String()).
				Int("bytes", r.Size.Bytes).
				Msg("digest differs from the standard library")
			return errFailed
		}
	}
	return nil
}
