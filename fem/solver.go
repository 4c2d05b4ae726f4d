// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// CGResults reports the outcome of one conjugate-gradient solve. A run that
// exhausts its iteration budget is reported with Converged=false; it is the
// caller's decision whether that is fatal.
type CGResults struct {
	U          la.Vector // solution
	Iterations int
	Residual   float64 // Euclidean norm of the final residual
	Converged  bool
}

// NumericalError indicates NaN propagation or a breakdown during the solve.
// It is fatal: the solution must not be used.
type NumericalError struct {
	Msg string
}

// Error returns the message
func (o *NumericalError) Error() string { return o.Msg }

// SolveCG solves K*u = f with the preconditioner-free conjugate-gradient
// method on the sparse triplet. x0 may be nil (zero start). The optional stop
// channel cancels the run at an iteration boundary, reported as
// non-convergence.
func SolveCG(kb *la.Triplet, f la.Vector, x0 la.Vector, maxIt int, tol float64, stop <-chan struct{}) (res *CGResults, err error) {

	n := len(f)
	K := kb.ToMatrix(nil)

	// state
	x := la.NewVector(n)
	if x0 != nil {
		copy(x, x0)
	}
	r := la.NewVector(n)  // residual
	p := la.NewVector(n)  // search direction
	ap := la.NewVector(n) // K*p

	// r = f - K*x
	la.SpMatVecMul(r, 1, K, x)
	for i := 0; i < n; i++ {
		r[i] = f[i] - r[i]
	}
	copy(p, r)
	rr := la.VecDot(r, r)

	res = &CGResults{U: x, Residual: math.Sqrt(rr)}
	if res.Residual < tol {
		res.Converged = true
		return
	}

	for it := 0; it < maxIt; it++ {

		// cancellation at iteration boundaries
		if stop != nil {
			select {
			case <-stop:
				res.Iterations = it
				return
			default:
			}
		}

		la.SpMatVecMul(ap, 1, K, p)
		pap := la.VecDot(p, ap)
		if pap == 0 {
			// breakdown: no progress possible along p
			res.Iterations = it
			return
		}
		alpha := rr / pap
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rrNew := la.VecDot(r, r)
		if math.IsNaN(rrNew) || math.IsInf(rrNew, 0) {
			return nil, &NumericalError{Msg: io.Sf("conjugate-gradient solve broke down at iteration %d (non-finite residual)", it+1)}
		}
		res.Iterations = it + 1
		res.Residual = math.Sqrt(rrNew)
		if res.Residual < tol {
			res.Converged = true
			return
		}
		beta := rrNew / rr
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
		rr = rrNew
	}
	return
}
