// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/numlab/integrate"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/matrixio"
	"github.com/katalvlaran/numlab/roots"
	"github.com/katalvlaran/numlab/search"
	"github.com/katalvlaran/numlab/sorting"
)

// loadPair reads <a> and <b> through the shared loader.
func (e *env) loadPair() (*matrix.Dense, *matrix.Dense, error) {
	pa, _ := e.args.String("<a>")
	pb, _ := e.args.String("<b>")
	a, err := e.loader.Load(pa)
	if err != nil {
		return nil, nil, err
	}
	b, err := e.loader.Load(pb)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// emit writes m to --out when given, else prints it.
func (e *env) emit(m matrix.Matrix) error {
	if out, _ := e.args.String("--out"); out != "" {
		if err := matrixio.WriteFile(out, m); err != nil {
			return err
		}
		e.logger.Info("result written", "path", out, "rows", m.Rows(), "cols", m.Cols())
		return nil
	}
	_, err := fmt.Fprint(e.stdout, m)
	return err
}

func runMultiply(e *env) error {
	variant := e.cfg.Variant
	if s, _ := e.args.String("--variant"); s != "" {
		v, err := matrix.ParseVariant(s)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		variant = v
	}
	if parallel, _ := e.args.Bool("--parallel"); parallel {
		e.cfg.Parallel = true
	}
	a, b, err := e.loadPair()
	if err != nil {
		return err
	}

	start := time.Now()
	opts := append(e.cfg.MatrixOptions(), matrix.WithLogger(e.logger))
	c, err := matrix.MultiplyContext(e.ctx, a, b, variant, opts...)
	if err != nil {
		return err
	}
	e.logger.Info("multiplied",
		"variant", variant.String(),
		"size", c.Rows(),
		"parallel", e.cfg.Parallel,
		"duration", time.Since(start),
	)

	return e.emit(c)
}

func runAdd(e *env) error {
	a, b, err := e.loadPair()
	if err != nil {
		return err
	}
	c, err := matrix.Add(a, b)
	if err != nil {
		return err
	}
	return e.emit(c)
}

func runSub(e *env) error {
	a, b, err := e.loadPair()
	if err != nil {
		return err
	}
	c, err := matrix.Sub(a, b)
	if err != nil {
		return err
	}
	return e.emit(c)
}

func runKron(e *env) error {
	a, b, err := e.loadPair()
	if err != nil {
		return err
	}
	c, err := matrix.Kron(a, b)
	if err != nil {
		return err
	}
	return e.emit(c)
}

func runLU(e *env) error {
	pa, _ := e.args.String("<a>")
	a, err := e.loader.Load(pa)
	if err != nil {
		return err
	}
	l, u, err := matrix.LU(a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "L:\n%vU:\n%v", l, u)
	return err
}

func runIntegrate(e *env) error {
	f, lo, hi, err := e.funcAndBounds("<lo>", "<hi>")
	if err != nil {
		return err
	}
	method := choice(e.args, "trapezoid", "simpson", "romberg")

	var v float64
	switch method {
	case "romberg":
		v, err = integrate.Romberg(f, lo, hi)
	default:
		n, perr := e.args.Int("--n")
		if perr != nil {
			return fmt.Errorf("%w: --n: %w", errUsage, perr)
		}
		if method == "simpson" {
			v, err = integrate.Simpson(f, lo, hi, n)
		} else {
			v, err = integrate.Trapezoid(f, lo, hi, n)
		}
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "%.10g\n", v)
	return err
}

func runRoot(e *env) error {
	f, x0, x1, err := e.funcAndBounds("<x0>", "<x1>")
	if err != nil {
		return err
	}

	var r roots.Result
	switch choice(e.args, "bisection", "newton", "falsi", "secant") {
	case "bisection":
		r, err = roots.Bisection(f, x0, x1)
	case "newton":
		r, err = roots.NewtonRaphson(f, x0)
	case "falsi":
		r, err = roots.RegulaFalsi(f, x0, x1)
	default:
		r, err = roots.Secant(f, x0, x1)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "%.10g (%d iterations)\n", r.Root, r.Iterations)
	return err
}

// funcAndBounds resolves <expr> and two numeric positionals.
func (e *env) funcAndBounds(k0, k1 string) (func(float64) float64, float64, float64, error) {
	name, _ := e.args.String("<expr>")
	f, err := lookupFunc(name)
	if err != nil {
		return nil, 0, 0, err
	}
	s0, _ := e.args.String(k0)
	s1, _ := e.args.String(k1)
	v0, err := parseFloat(k0, s0)
	if err != nil {
		return nil, 0, 0, err
	}
	v1, err := parseFloat(k1, s1)
	if err != nil {
		return nil, 0, 0, err
	}
	return f, v0, v1, nil
}

var sorters = map[string]func([]float64) []float64{
	"bubble":    sorting.Bubble[float64],
	"insertion": sorting.Insertion[float64],
	"selection": sorting.Selection[float64],
	"merge":     sorting.Merge[float64],
}

func runSort(e *env) error {
	values, err := parseFloats("<values>", stringList(e.args, "<values>"))
	if err != nil {
		return err
	}
	method := choice(e.args, "bubble", "insertion", "selection", "merge")
	_, err = fmt.Fprintln(e.stdout, formatFloats(sorters[method](values)))
	return err
}

func runSearch(e *env) error {
	ts, _ := e.args.String("<target>")
	target, err := parseFloat("<target>", ts)
	if err != nil {
		return err
	}
	values, err := parseFloats("<values>", stringList(e.args, "<values>"))
	if err != nil {
		return err
	}
	m, err := search.ParseMethod(choice(e.args, "linear", "binary", "interpolation"))
	if err != nil {
		return err
	}
	sorted := slices.IsSorted(values)
	if m != search.MethodLinear && !sorted {
		return fmt.Errorf("%w: %s search needs ascending values", errUsage, m)
	}

	idx, found, err := search.Search(values, target, sorted, m)
	if err != nil {
		return err
	}
	if !found {
		_, err = fmt.Fprintln(e.stdout, "not found")
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "found at index %d\n", idx)
	return err
}
