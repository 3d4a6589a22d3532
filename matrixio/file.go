// SPDX-License-Identifier: MIT
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/numlab/matrix"
)

// stack closes the codec layer first, then the file.
type stack struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (s *stack) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// zstdReadCloser adapts *zstd.Decoder, whose Close returns nothing.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Open opens path for reading through the decompressor named by its extension.
func Open(path string) (io.ReadCloser, error) {
	comp, _, err := DetectPath(path)
	if err != nil && !errors.Is(err, ErrUnknownFormat) {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch comp {
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &stack{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &stack{Reader: zr, closers: []io.Closer{zstdReadCloser{zr}, f}}, nil
	case CompressionLZ4:
		return &stack{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	}

	return f, nil
}

// Create creates or truncates path for writing through the compressor named
// by its extension. Close must be called to flush the codec.
func Create(path string) (io.WriteCloser, error) {
	comp, _, err := DetectPath(path)
	if err != nil && !errors.Is(err, ErrUnknownFormat) {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch comp {
	case CompressionGzip:
		gz := gzip.NewWriter(f)
		return &stack{Writer: gz, closers: []io.Closer{gz, f}}, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &stack{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(f)
		return &stack{Writer: lw, closers: []io.Closer{lw, f}}, nil
	}

	return f, nil
}

// ReadFile decodes the matrix stored at path.
//
// Errors: ErrUnknownFormat, ErrMalformed, or the filesystem/codec error.
func ReadFile(path string) (*matrix.Dense, error) {
	_, format, err := DetectPath(path)
	if err != nil {
		return nil, err
	}
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, err := Decode(rc, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return matrix.NewFromRows(rows)
}

// WriteFile encodes m to path in the format and compression its extension names.
func WriteFile(path string, m matrix.Matrix) (err error) {
	_, format, err := DetectPath(path)
	if err != nil {
		return err
	}
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(wc, m, format)
}
