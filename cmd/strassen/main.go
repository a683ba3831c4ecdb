// SPDX-License-Identifier: MIT

// Command strassen multiplies two random square matrices naively and with
// Strassen's algorithm, prints operands and results, and fails when the two
// products disagree.
//
//	strassen --dim=9 --cutoff=2 --seed=7
//	echo 9 | strassen --no-print --metrics
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alecthomas/units"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/strassen/crosscheck"
	"github.com/katalvlaran/strassen/matrix"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	dim         *int
	cutoff      *int
	seed        *int64
	bound       *int64
	parallelism *int
	print       *bool
	metrics     *bool
	budget      *units.Base2Bytes
	pool        *bool
	logLevel    *string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("strassen", "Cross-check Strassen multiplication against the direct triple loop.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	exitCode := -1
	app.Terminate(func(code int) { exitCode = code })

	opts := options{
		dim:         app.Flag("dim", "Matrix dimension. Read from stdin when omitted.").Envar("STRASSEN_DIM").Int(),
		cutoff:      app.Flag("cutoff", "Dimension at or below which direct multiplication is used.").Envar("STRASSEN_CUTOFF").Default(strconv.Itoa(matrix.DefaultCutoff)).Int(),
		seed:        app.Flag("seed", "Random seed. 0 derives one from the clock.").Envar("STRASSEN_SEED").Int64(),
		bound:       app.Flag("bound", "Exclusive magnitude bound of entries (power of two).").Envar("STRASSEN_BOUND").Default(strconv.FormatInt(matrix.DefaultBound, 10)).Int64(),
		parallelism: app.Flag("parallelism", "Top-level products computed concurrently.").Envar("STRASSEN_PARALLELISM").Default(strconv.Itoa(matrix.DefaultParallelism)).Int(),
		print:       app.Flag("print", "Print operands and results.").Envar("STRASSEN_PRINT").Default("true").Bool(),
		metrics:     app.Flag("metrics", "Dump engine metrics in Prometheus text format.").Envar("STRASSEN_METRICS").Bool(),
		budget:      app.Flag("budget", "Memory budget for engine temporaries, e.g. 64MiB. 0 is unlimited.").Envar("STRASSEN_BUDGET").Default("0").Bytes(),
		pool:        app.Flag("pool", "Recycle temporaries through a size-class pool.").Envar("STRASSEN_POOL").Bool(),
		logLevel:    app.Flag("log.level", "Only log messages with the given severity or above.").Envar("STRASSEN_LOG_LEVEL").Default("info").Enum("debug", "info", "warn", "error"),
	}
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "strassen: %v\n", err)
		return 2
	}
	if exitCode >= 0 {
		return exitCode // --help, --version
	}

	logger := newLogger(stderr, *opts.logLevel)
	if err := execute(context.Background(), opts, stdin, stdout, logger); err != nil {
		level.Error(logger).Log("msg", "cross-check failed", "err", err)
		fmt.Fprintf(stderr, "strassen: %v\n", err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, lvl string) log.Logger {
	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)

	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func readDim(stdin io.Reader) (int, error) {
	var dim int
	if _, err := fmt.Fscan(stdin, &dim); err != nil {
		return 0, errors.Wrap(err, "you must input the dimension of the matrix")
	}

	return dim, nil
}

func execute(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer, logger log.Logger) error {
	dim := *opts.dim
	if dim == 0 {
		var err error
		if dim, err = readDim(stdin); err != nil {
			return err
		}
	}
	if dim < 1 {
		return errors.Wrapf(matrix.ErrInvalidDimensions, "dimension %d", dim)
	}
	if *opts.cutoff < 1 {
		return errors.Wrapf(matrix.ErrBadCutoff, "cutoff %d", *opts.cutoff)
	}
	if *opts.parallelism < 1 {
		return errors.Errorf("parallelism %d must be >= 1", *opts.parallelism)
	}

	seed := *opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var base matrix.Allocator = matrix.Heap
	if *opts.pool {
		base = matrix.NewPoolAllocator()
	}
	budget := matrix.NewBudgetAllocator(base, int64(*opts.budget))
	reg := prometheus.NewRegistry()

	bold := color.New(color.Bold)
	bold.Fprintln(stdout, "\nStart...")

	rep, err := crosscheck.Run(ctx, crosscheck.Config{
		Dim:         dim,
		Cutoff:      *opts.cutoff,
		Seed:        seed,
		Bound:       *opts.bound,
		Parallelism: *opts.parallelism,
		Allocator:   budget,
		Logger:      logger,
		Registerer:  reg,
	})
	if rep != nil {
		defer rep.Release()
		if *opts.print {
			if perr := printReport(stdout, bold, rep); perr != nil {
				return perr
			}
		}
	}
	if err != nil {
		if errors.Is(err, crosscheck.ErrMismatch) {
			color.New(color.FgRed, color.Bold).Fprintln(stdout, "\nMISMATCH: results differ")
		}
		return err
	}

	st := budget.Stats()
	bold.Fprintln(stdout, "\nSummary:")
	fmt.Fprintf(stdout, "\tdimension: %d, cutoff: %d, seed: %d\n", dim, *opts.cutoff, seed)
	fmt.Fprintf(stdout, "\tnaive: %v, strassen: %v\n", rep.NaiveTime, rep.StrassenTime)
	fmt.Fprintf(stdout, "\ttemporaries: %s allocations, peak %s live\n",
		humanize.Comma(st.Allocs), humanize.IBytes(uint64(st.PeakBytes)))
	color.New(color.FgGreen, color.Bold).Fprintln(stdout, "\nOK: results agree")

	if *opts.metrics {
		if err = dumpMetrics(stdout, reg); err != nil {
			return err
		}
	}

	return nil
}

func printReport(w io.Writer, bold *color.Color, rep *crosscheck.Report) error {
	sections := []struct {
		title string
		m     matrix.Matrix
	}{
		{"\nFirst matrix:", rep.Left},
		{"\nSecond matrix:", rep.Right},
		{"\nResult (naive):", rep.Naive},
		{"\nResult (strassen):", rep.Strassen},
	}
	for _, s := range sections {
		bold.Fprintln(w, s.title)
		if err := matrix.Format(w, s.m); err != nil {
			return errors.Wrap(err, "print")
		}
	}

	return nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	fmt.Fprintln(w)
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}
