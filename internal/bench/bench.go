// Package bench compares the throughput of this module's hashers with the
// standard library on random data of increasing size, checking along the way
// that both produce the same digests.
package bench

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/zeebo/sha2"
	"github.com/zeebo/sha2/internal/consts"
)

// Size is one row of the benchmark: how much data to hash and how many times.
type Size struct {
	Bytes      int
	Iterations int
}

// DefaultSizes uses fewer iterations as the inputs grow so that the largest
// rows stay bounded in time.
var DefaultSizes = []Size{
	{512, 200},
	{1 << 10, 200},
	{10 << 10, 100},
	{100 << 10, 50},
	{512 << 10, 40},
	{1 << 20, 25},
	{4 << 20, 10},
	{16 << 20, 3},
}

// Config controls a benchmark run.
type Config struct {
	Algorithms []sha2.Algorithm
	Sizes      []Size
	MaxBytes   int // rows larger than this are skipped, 0 means no limit
	Seed       int64
	Log        zerolog.Logger
}

// Result is the measurement for one algorithm and size.
type Result struct {
	Algorithm sha2.Algorithm
	Size      Size
	Ours      time.Duration // average per iteration
	Baseline  time.Duration // average per iteration, standard library
	Match     bool
}

// Throughput returns bytes per second for both implementations.
func (r Result) Throughput() (ours, baseline float64) {
	return rate(r.Size.Bytes, r.Ours), rate(r.Size.Bytes, r.Baseline)
}

// Ratio is how many times slower this module is than the baseline.
func (r Result) Ratio() float64 {
	if r.Baseline <= 0 {
		return 0
	}
	return float64(r.Ours) / float64(r.Baseline)
}

func rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// Run executes the benchmark. It stops early with the context's error if ctx
// is canceled between rows.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	var results []Result
	for _, size := range sizes {
		if cfg.MaxBytes > 0 && size.Bytes > cfg.MaxBytes {
			cfg.Log.Debug().Int("bytes", size.Bytes).Msg("skipping size above limit")
			continue
		}

		data := make([]byte, size.Bytes)
		_, _ = rng.Read(data)

		for _, alg := range cfg.Algorithms {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			res, err := measure(alg, size, data)
			if err != nil {
				return results, err
			}

			cfg.Log.Debug().
				Str("algorithm", alg.String()).
				Str("size", humanize.IBytes(uint64(size.Bytes))).
				Dur("ours", res.Ours).
				Dur("baseline", res.Baseline).
				Bool("match", res.Match).
				Msg("measured")

			results = append(results, res)
		}
	}

	return results, nil
}

func baseline(alg sha2.Algorithm) (func([]byte) []byte, error) {
	switch alg {
	case sha2.SHA256:
		return func(p []byte) []byte { s := sha256.Sum256(p); return s[:] }, nil
	case sha2.SHA512:
		return func(p []byte) []byte { s := sha512.Sum512(p); return s[:] }, nil
	default:
		return nil, errors.Wrapf(sha2.ErrUnknownAlgorithm, "%s", alg)
	}
}

func measure(alg sha2.Algorithm, size Size, data []byte) (Result, error) {
	base, err := baseline(alg)
	if err != nil {
		return Result{}, err
	}
	h, err := alg.New(nil)
	if err != nil {
		return Result{}, err
	}

	iters := size.Iterations
	if iters < 1 {
		iters = 1
	}

	var ours, theirs []byte

	start := time.Now()
	for i := 0; i < iters; i++ {
		h.Reset()
		if err := h.Update(data); err != nil {
			return Result{}, err
		}
		ours = h.Sum(ours[:0])
	}
	oursDur := time.Since(start) / time.Duration(iters)

	start = time.Now()
	for i := 0; i < iters; i++ {
		theirs = base(data)
	}
	theirDur := time.Since(start) / time.Duration(iters)

	return Result{
		Algorithm: alg,
		Size:      size,
		Ours:      oursDur,
		Baseline:  theirDur,
		Match:     string(ours) == string(theirs),
	}, nil
}

// Host describes the machine the benchmark ran on.
func Host() string {
	features := consts.Features()
	if len(features) == 0 {
		features = []string{"none"}
	}
	return fmt.Sprintf("%s/%s %s cpu features: %s",
		runtime.GOOS, runtime.GOARCH, runtime.Version(), strings.Join(features, ","))
}

// Write prints results as an aligned table.
func Write(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "algorithm\tsize\titers\tsha2\tstdlib\tsha2/s\tstdlib/s\tslowdown\tmatch")
	for _, r := range results {
		ours, theirs := r.Throughput()
		match := "ok"
		if !r.Match {
			match = "MISMATCH"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%.2fx\t%s\n",
			r.Algorithm,
			humanize.IBytes(uint64(r.Size.Bytes)),
			r.Size.Iterations,
			r.Ours.Round(time.Microsecond),
			r.Baseline.Round(time.Microsecond),
			humanize.IBytes(uint64(ours)),
			humanize.IBytes(uint64(theirs)),
			r.Ratio(),
			match,
		)
	}

	return errors.Wrap(tw.Flush(), "flush results")
}
