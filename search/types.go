// SPDX-License-Identifier: MIT
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search dispatch.
var (
	// ErrUnknownMethod is returned for a Method outside the declared set.
	ErrUnknownMethod = errors.New("search: unknown method")

	// ErrVertexNotFound is returned when a queried vertex is absent.
	ErrVertexNotFound = errors.New("search: vertex not found")
)

// Number is the set of element types Interpolation can position over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Method selects the array search algorithm used by Search on sorted input.
type Method int

const (
	// MethodLinear scans left to right.
	MethodLinear Method = iota + 1
	// MethodBinary halves the range each step.
	MethodBinary
	// MethodInterpolation probes at the linearly interpolated position.
	MethodInterpolation
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodBinary:
		return "binary"
	case MethodInterpolation:
		return "interpolation"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a case-insensitive name onto a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return MethodLinear, nil
	case "binary":
		return MethodBinary, nil
	case "interpolation":
		return MethodInterpolation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}
