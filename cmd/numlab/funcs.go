// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// catalogue is the fixed set of named functions integrate and root accept.
var catalogue = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"exp":   math.Exp,
	"poly3": func(x float64) float64 { return x*x*x - x - 2 },
	"sq2":   func(x float64) float64 { return x*x - 2 },
	"recip": func(x float64) float64 { return 1 / (1 + x*x) },
}

func lookupFunc(name string) (func(float64) float64, error) {
	if f, ok := catalogue[strings.ToLower(name)]; ok {
		return f, nil
	}
	known := make([]string, 0, len(catalogue))
	for k := range catalogue {
		known = append(known, k)
	}
	slices.Sort(known)
	return nil, fmt.Errorf("%w: unknown function %q (known: %s)",
		errUsage, name, strings.Join(known, ", "))
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errUsage, name, err)
	}
	return v, nil
}

func parseFloats(name string, ss []string) ([]float64, error) {
	out := make([]float64, len(ss))
	var err error
	for i, s := range ss {
		if out[i], err = parseFloat(fmt.Sprintf("%s[%d]", name, i), s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
