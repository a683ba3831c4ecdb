// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Strassen's divide-and-conquer product of two equal-dimension square
//     matrices: seven half-size products per level instead of eight.
//   - Recursion works on zero-copy quadrant views; only the operand sums, the
//     seven products and the output are allocated at each level.
//
// Algorithm (a,b,c,d quadrants of left; e,f,g,h quadrants of right):
//
//	p1 = a(f−h)      p2 = (a+b)h      p3 = (c+d)e      p4 = d(g−e)
//	p5 = (a+d)(e+h)  p6 = (b−d)(g+h)  p7 = (a−c)(e+f)
//
//	top-left  = p5 + p4 − p2 + p6     top-right    = p1 + p2
//	bot-left  = p3 + p4               bot-right    = p1 + p5 − p3 − p7
//
// Ownership:
//   - Every owner allocated during a call is released before the call
//     returns, on success and on failure. The caller owns only the result.

package matrix

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

// Engine multiplies square matrices with Strassen's algorithm.
// An Engine is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	cutoff      int
	parallelism int
	alloc       Allocator
	logger      log.Logger
	metrics     *engineMetrics
}

// NewEngine builds an engine from the given options (see WithCutoff,
// WithParallelism, WithAllocator, WithLogger, WithRegisterer).
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)

	return &Engine{
		cutoff:      o.cutoff,
		parallelism: o.parallelism,
		alloc:       o.alloc,
		logger:      o.logger,
		metrics:     newEngineMetrics(o.registerer),
	}
}

// Cutoff returns the base-case dimension.
func (e *Engine) Cutoff() int { return e.cutoff }

// Parallelism returns the top-level fan-out bound.
func (e *Engine) Parallelism() int { return e.parallelism }

// Strassen multiplies a×b with a one-off engine using the given cutoff.
// Errors: ErrBadCutoff when cutoff < 1, otherwise as (*Engine).Multiply.
func Strassen(a, b Matrix, cutoff int) (*Dense, error) {
	if err := ValidateCutoff(cutoff); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}

	return NewEngine(WithCutoff(cutoff)).Multiply(context.Background(), a, b)
}

// Multiply returns left×right as a new owner.
// MAIN DESCRIPTION:
//   - Equivalent, entry for entry, to Mul(left, right) for every cutoff.
//
// Implementation:
//   - Stage 1: validate (non-nil, left square, right same shape).
//   - Stage 2: n ≤ cutoff ⇒ direct multiplication.
//   - Stage 3: odd n ⇒ pad BOTH operands with a zero row and column,
//     recurse on the even pair, trim the result back to n×n.
//   - Stage 4: even n ⇒ split into quadrant views, compute p1..p7
//     recursively, reassemble into the four quadrants of a fresh output.
//
// Behavior highlights:
//   - With Parallelism > 1 the seven top-level products run in an errgroup
//     bounded to Parallelism; the first failure cancels the rest.
//   - ctx is checked before every product; a cancelled ctx aborts with
//     ctx.Err() after releasing all temporaries.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare, ErrDimensionMismatch,
//     ErrAllocation, context errors.
//
// Complexity:
//   - Time O(n^log2(7)) above the cutoff, Space O(n²) live temporaries per level.
func (e *Engine) Multiply(ctx context.Context, left, right Matrix) (*Dense, error) {
	if err := ValidateStrassenOperands(left, right); err != nil {
		e.metrics.multiplies.WithLabelValues(outcomeFailure).Inc()
		return nil, matrixErrorf(opStrassen, err)
	}
	n := left.Rows()
	start := time.Now()
	level.Debug(e.logger).Log("msg", "strassen multiply", "n", n, "cutoff", e.cutoff, "parallelism", e.parallelism)

	out, err := e.multiply(ctx, left, right, 0)
	if err != nil {
		e.metrics.multiplies.WithLabelValues(outcomeFailure).Inc()
		level.Debug(e.logger).Log("msg", "strassen multiply failed", "n", n, "err", err)
		return nil, matrixErrorf(opStrassen, err)
	}

	elapsed := time.Since(start)
	e.metrics.multiplies.WithLabelValues(outcomeSuccess).Inc()
	e.metrics.duration.Observe(elapsed.Seconds())
	level.Debug(e.logger).Log("msg", "strassen multiply done", "rows", out.Rows(), "cols", out.Cols(), "duration", elapsed)

	return out, nil
}

// multiply is the recursive step on validated equal-dimension square operands.
func (e *Engine) multiply(ctx context.Context, l, r Matrix, depth int) (*Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := l.Rows()
	if n <= e.cutoff {
		e.metrics.baseCases.Inc()
		return MulWith(e.alloc, l, r)
	}
	if n%2 != 0 {
		return e.multiplyPadded(ctx, l, r, depth)
	}

	a, b, c, d, err := quadrants(l)
	if err != nil {
		return nil, err
	}
	qe, qf, qg, qh, err := quadrants(r)
	if err != nil {
		return nil, err
	}

	// p1..p7 in order.
	plans := [7]productPlan{
		{left: factor{x: a}, right: factor{x: qf, y: qh, op: OpSub}},
		{left: factor{x: a, y: b, op: OpAdd}, right: factor{x: qh}},
		{left: factor{x: c, y: d, op: OpAdd}, right: factor{x: qe}},
		{left: factor{x: d}, right: factor{x: qg, y: qe, op: OpSub}},
		{left: factor{x: a, y: d, op: OpAdd}, right: factor{x: qe, y: qh, op: OpAdd}},
		{left: factor{x: b, y: d, op: OpSub}, right: factor{x: qg, y: qh, op: OpAdd}},
		{left: factor{x: a, y: c, op: OpSub}, right: factor{x: qe, y: qf, op: OpAdd}},
	}

	var p [7]*Dense
	defer releaseAll(p[:])

	if depth == 0 && e.parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.parallelism)
		for i := range plans {
			i := i
			g.Go(func() error {
				res, err := e.product(gctx, plans[i], depth)
				if err != nil {
					return err
				}
				p[i] = res
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range plans {
			if p[i], err = e.product(ctx, plans[i], depth); err != nil {
				return nil, err
			}
		}
	}

	return e.assemble(n, p)
}

// multiplyPadded handles odd n: pad both operands, recurse, trim.
func (e *Engine) multiplyPadded(ctx context.Context, l, r Matrix, depth int) (*Dense, error) {
	n := l.Rows()
	lp, kind, err := PadToEvenWith(e.alloc, l)
	if err != nil {
		return nil, err
	}
	defer Release(lp)
	rp, _, err := PadToEvenWith(e.alloc, r)
	if err != nil {
		return nil, err
	}
	defer Release(rp)

	e.metrics.paddings.WithLabelValues(kind.String()).Inc()
	level.Debug(e.logger).Log("msg", "padding operands", "n", n, "kind", kind, "depth", depth)

	full, err := e.multiply(ctx, lp, rp, depth)
	if err != nil {
		return nil, err
	}
	defer Release(full)

	trimmed, err := Trim(full, n, n)
	if err != nil {
		return nil, err
	}

	return CopyWith(e.alloc, trimmed)
}

// factor is one operand of a product: x alone, or op(x, y) when y is set.
type factor struct {
	x, y Matrix
	op   Op
}

// eval returns x itself, or a fresh owner holding op(x, y).
// The result must be passed to Release, which ignores views.
func (f factor) eval(alloc Allocator) (Matrix, error) {
	if f.y == nil {
		return f.x, nil
	}

	return CombineWith(alloc, f.op, f.x, f.y)
}

// productPlan describes one of p1..p7.
type productPlan struct {
	left, right factor
}

// product materializes both factors, recurses one level down and releases
// the factor sums as soon as the recursive call returns.
func (e *Engine) product(ctx context.Context, p productPlan, depth int) (*Dense, error) {
	x, err := p.left.eval(e.alloc)
	if err != nil {
		return nil, err
	}
	defer Release(x)
	y, err := p.right.eval(e.alloc)
	if err != nil {
		return nil, err
	}
	defer Release(y)

	e.metrics.products.Inc()

	return e.multiply(ctx, x, y, depth+1)
}

// term is one accumulation step of a quadrant: dst = op(dst, m).
type term struct {
	op Op
	m  Matrix
}

// assemble writes the four output quadrants from p1..p7 into a fresh n×n owner.
// Each quadrant starts as a copy of one product and accumulates the others in place.
func (e *Engine) assemble(n int, p [7]*Dense) (*Dense, error) {
	p1, p2, p3, p4, p5, p6, p7 := p[0], p[1], p[2], p[3], p[4], p[5], p[6]

	out, err := Allocate(e.alloc, n, n)
	if err != nil {
		return nil, err
	}
	tl, tr, bl, br, err := quadrants(out)
	if err != nil {
		Release(out)
		return nil, err
	}

	steps := []struct {
		dst   *View
		first Matrix
		rest  []term
	}{
		{tl, p5, []term{{OpAdd, p4}, {OpSub, p2}, {OpAdd, p6}}},
		{tr, p1, []term{{OpAdd, p2}}},
		{bl, p3, []term{{OpAdd, p4}}},
		{br, p1, []term{{OpAdd, p5}, {OpSub, p3}, {OpSub, p7}}},
	}
	for _, s := range steps {
		if err = accumulate(s.dst, s.first, s.rest...); err != nil {
			Release(out)
			return nil, err
		}
	}

	return out, nil
}

// accumulate sets dst = first, then applies each term in order.
func accumulate(dst, first Matrix, terms ...term) error {
	if err := CopyInto(first, dst); err != nil {
		return err
	}
	for _, t := range terms {
		if err := CombineInPlace(t.op, t.m, dst); err != nil {
			return err
		}
	}

	return nil
}

// releaseAll releases every non-nil owner in ms.
func releaseAll(ms []*Dense) {
	for _, m := range ms {
		if m != nil {
			Release(m)
		}
	}
}
