// SPDX-License-Identifier: MIT
package matrixio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/matrix"
)

// Document is the mapping form of a matrix file.
type Document struct {
	Name string      `yaml:"name,omitempty" json:"name,omitempty"`
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

// Decode reads one matrix from r in format f and checks it is rectangular.
//
// Errors: ErrUnknownFormat, ErrMalformed (wrapping the parser or shape error).
func Decode(r io.Reader, f Format) ([][]float64, error) {
	var (
		rows [][]float64
		err  error
	)
	switch f {
	case FormatYAML, FormatJSON:
		rows, err = decodeYAML(r)
	case FormatText:
		rows, err = decodeText(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err = matrix.ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return rows, nil
}

// decodeYAML accepts a top-level sequence of rows or a Document mapping.
func decodeYAML(r io.Reader) ([][]float64, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var rows [][]float64
		if err := node.Decode(&rows); err != nil {
			return nil, err
		}
		return rows, nil
	case yaml.MappingNode:
		var doc Document
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Rows, nil
	}

	return nil, fmt.Errorf("line %d: expected a list of rows or a mapping", node.Line)
}

// decodeText parses whitespace or comma separated rows.
func decodeText(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == ';'
		})
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// Encode writes m to w in format f. Text output uses strconv 'g' formatting,
// so values survive a Decode round trip exactly.
//
// Errors: ErrUnknownFormat, matrix.ErrNilMatrix, or the writer's error.
func Encode(w io.Writer, m matrix.Matrix, f Format) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	rows, err := rowsOf(m)
	if err != nil {
		return err
	}

	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(Document{Rows: rows}); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		return json.NewEncoder(w).Encode(Document{Rows: rows})
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, row := range rows {
			for j, v := range row {
				if j > 0 {
					_ = bw.WriteByte(' ')
				}
				_, _ = bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			_ = bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// rowsOf extracts a row-slice copy from any Matrix.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	rows := make([][]float64, m.Rows())
	var err error
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return rows, nil
}
