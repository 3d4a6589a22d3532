// SPDX-License-Identifier: MIT
package matrixio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for a Format outside the enum or an unrecognized extension.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrMalformed is returned when a document does not describe a rectangular matrix.
	ErrMalformed = errors.New("matrixio: malformed matrix document")
)

// Format is the serialization of a matrix file.
type Format int

const (
	FormatYAML Format = iota + 1
	FormatJSON
	FormatText
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Compression is the stream codec wrapped around a file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

// String returns the extension-style name.
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// DetectPath splits a path into its compression and format.
//
//	m.yaml      → none, yaml
//	m.json.gz   → gzip, json
//	m.txt.lz4   → lz4,  text
//
// Errors: ErrUnknownFormat when the inner extension is not yaml, yml, json, txt, csv or mat.
func DetectPath(path string) (Compression, Format, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := CompressionNone
	switch filepath.Ext(name) {
	case ".gz":
		comp = CompressionGzip
	case ".zst":
		comp = CompressionZstd
	case ".lz4":
		comp = CompressionLZ4
	}
	if comp != CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return comp, FormatYAML, nil
	case ".json":
		return comp, FormatJSON, nil
	case ".txt", ".csv", ".mat":
		return comp, FormatText, nil
	}

	return comp, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}
