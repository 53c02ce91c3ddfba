// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/numeric"
	"github.com/katalvlaran/lvmat/sparse"
)

// matrixInput holds the flags that describe the operand of every command.
type matrixInput struct {
	rows    int
	cols    int
	entries []string
	integer bool
}

func (in *matrixInput) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&in.rows, "rows", 0, "Number of rows")
	cmd.Flags().IntVar(&in.cols, "cols", 0, "Number of columns")
	cmd.Flags().StringArrayVarP(&in.entries, "entry", "e", nil, "Non-zero entry as row,col,value (repeatable)")
	cmd.Flags().BoolVar(&in.integer, "int", false, "Use integer arithmetic (division truncates)")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
}

// run builds the operand with the element type selected by --int and hands it
// to the matching instantiation of the command body.
func (in *matrixInput) run(w io.Writer,
	withFloat func(io.Writer, *sparse.Matrix[float64]) error,
	withInt func(io.Writer, *sparse.Matrix[int64]) error,
) error {
	if in.integer {
		m, err := build(in, parseInt)
		if err != nil {
			return err
		}
		return withInt(w, m)
	}
	m, err := build(in, parseFloat)
	if err != nil {
		return err
	}
	return withFloat(w, m)
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
func parseInt(s string) (int64, error)     { return strconv.ParseInt(s, 10, 64) }

// build creates the sparse operand from --rows, --cols and every --entry.
// A later entry for the same cell overwrites an earlier one.
func build[T numeric.Number](in *matrixInput, parse func(string) (T, error)) (*sparse.Matrix[T], error) {
	m, err := sparse.New[T](in.rows, in.cols)
	if err != nil {
		return nil, fmt.Errorf("--rows %d --cols %d: %w", in.rows, in.cols, err)
	}
	for _, raw := range in.entries {
		row, col, v, err := parseEntry(raw, parse)
		if err != nil {
			return nil, err
		}
		if err = m.AddValue(row, col, v); err != nil {
			return nil, fmt.Errorf("--entry %q: %w", raw, err)
		}
	}
	slog.Debug("Parsed matrix", "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NonZeroCount())

	return m, nil
}

// parseEntry splits "row,col,value".
func parseEntry[T numeric.Number](raw string, parse func(string) (T, error)) (row, col int, v T, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return 0, 0, v, fmt.Errorf("--entry %q: want row,col,value", raw)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, v, fmt.Errorf("--entry %q: row: %w", raw, err)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, v, fmt.Errorf("--entry %q: col: %w", raw, err)
	}
	if v, err = parse(strings.TrimSpace(parts[2])); err != nil {
		return 0, 0, v, fmt.Errorf("--entry %q: value: %w", raw, err)
	}

	return row, col, v, nil
}
