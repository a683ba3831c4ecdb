// SPDX-License-Identifier: MIT

// Package crosscheck verifies Strassen products against direct multiplication.
//
// Run generates a random operand pair, multiplies it both ways, times each
// and compares the results entry for entry. Verify does the same for
// caller-supplied operands. A disagreement is reported as ErrMismatch
// naming the first differing cell; it always signals a defect in the engine,
// never bad input.
package crosscheck

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/strassen/matrix"
)

// ErrMismatch reports that the naive and Strassen products differ.
var ErrMismatch = errors.New("crosscheck: naive and strassen results differ")

// Config describes one cross-check run. Zero fields take the matrix defaults.
type Config struct {
	Dim         int   // operand dimension, must be >= 1
	Cutoff      int   // 0 ⇒ matrix.DefaultCutoff
	Seed        int64 // 0 ⇒ fixed default seed
	Bound       int64 // 0 ⇒ matrix.DefaultBound
	Parallelism int   // 0 ⇒ matrix.DefaultParallelism

	Allocator  matrix.Allocator      // nil ⇒ matrix.Heap
	Logger     log.Logger            // nil ⇒ no logging
	Registerer prometheus.Registerer // nil ⇒ metrics stay private
}

// Report holds the operands, both products and their timings.
type Report struct {
	Left, Right matrix.Matrix
	Naive       *matrix.Dense
	Strassen    *matrix.Dense

	NaiveTime    time.Duration
	StrassenTime time.Duration
	Equal        bool
}

// Release frees both products. Operands stay with whoever created them.
func (r *Report) Release() {
	if r == nil {
		return
	}
	matrix.Release(r.Naive)
	matrix.Release(r.Strassen)
}

// Mismatch locates the first differing cell of two products.
type Mismatch struct {
	Row, Col        int
	Naive, Strassen int64
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("first difference at (%d,%d): naive=%d strassen=%d", m.Row, m.Col, m.Naive, m.Strassen)
}

// Unwrap lets errors.Is(err, ErrMismatch) match.
func (m Mismatch) Unwrap() error { return ErrMismatch }

func (c Config) engineOptions() []matrix.Option {
	var opts []matrix.Option
	if c.Cutoff != 0 {
		opts = append(opts, matrix.WithCutoff(c.Cutoff))
	}
	if c.Parallelism != 0 {
		opts = append(opts, matrix.WithParallelism(c.Parallelism))
	}
	if c.Allocator != nil {
		opts = append(opts, matrix.WithAllocator(c.Allocator))
	}
	if c.Logger != nil {
		opts = append(opts, matrix.WithLogger(c.Logger))
	}
	if c.Registerer != nil {
		opts = append(opts, matrix.WithRegisterer(c.Registerer))
	}

	return opts
}

// Run generates left and right from one generator, in that order, and
// verifies them.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Dim < 1 {
		return nil, errors.Wrapf(matrix.ErrInvalidDimensions, "crosscheck: dim %d", cfg.Dim)
	}
	if cfg.Cutoff < 0 {
		return nil, errors.Wrapf(matrix.ErrBadCutoff, "crosscheck: cutoff %d", cfg.Cutoff)
	}
	if cfg.Parallelism < 0 {
		return nil, errors.Errorf("crosscheck: parallelism %d must not be negative", cfg.Parallelism)
	}
	bound := cfg.Bound
	if bound == 0 {
		bound = matrix.DefaultBound
	}
	gen, err := matrix.NewGenerator(cfg.Seed, bound)
	if err != nil {
		return nil, errors.Wrap(err, "crosscheck: generator")
	}
	left, err := gen.NewRandom(cfg.Dim, cfg.Dim)
	if err != nil {
		return nil, errors.Wrap(err, "crosscheck: left operand")
	}
	right, err := gen.NewRandom(cfg.Dim, cfg.Dim)
	if err != nil {
		return nil, errors.Wrap(err, "crosscheck: right operand")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	level.Info(logger).Log("msg", "generated operands", "dim", cfg.Dim, "seed", cfg.Seed, "bound", bound)

	return Verify(ctx, matrix.NewEngine(cfg.engineOptions()...), left, right, logger)
}

// Verify multiplies left×right naively and with eng and compares the results.
// The returned report is non-nil whenever both products were computed, even
// when the error is a mismatch, so callers can inspect the two results.
func Verify(ctx context.Context, eng *matrix.Engine, left, right matrix.Matrix, logger log.Logger) (*Report, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	rep := &Report{Left: left, Right: right}

	start := time.Now()
	naive, err := matrix.Mul(left, right)
	if err != nil {
		return nil, errors.Wrap(err, "crosscheck: naive multiply")
	}
	rep.Naive, rep.NaiveTime = naive, time.Since(start)
	level.Debug(logger).Log("msg", "naive multiply done", "duration", rep.NaiveTime)

	start = time.Now()
	fast, err := eng.Multiply(ctx, left, right)
	if err != nil {
		rep.Release()
		return nil, errors.Wrap(err, "crosscheck: strassen multiply")
	}
	rep.Strassen, rep.StrassenTime = fast, time.Since(start)
	level.Debug(logger).Log("msg", "strassen multiply done", "duration", rep.StrassenTime, "cutoff", eng.Cutoff())

	if mm, found := firstMismatch(naive, fast); found {
		level.Error(logger).Log("msg", "results differ", "row", mm.Row, "col", mm.Col)
		return rep, errors.WithStack(mm)
	}
	rep.Equal = true
	level.Info(logger).Log("msg", "results agree", "dim", left.Rows(),
		"naive", rep.NaiveTime, "strassen", rep.StrassenTime)

	return rep, nil
}

// firstMismatch scans a and b (same shape) in row-major order.
func firstMismatch(a, b matrix.Matrix) (Mismatch, bool) {
	if matrix.Equal(a, b) {
		return Mismatch{}, false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return Mismatch{Row: i, Col: j, Naive: av, Strassen: bv}, true
			}
		}
	}

	return Mismatch{Row: -1, Col: -1}, true
}
