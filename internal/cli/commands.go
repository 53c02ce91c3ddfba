// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/numeric"
	"github.com/katalvlaran/lvmat/sparse"
)

func (c *CLI) newDetCommand() *cobra.Command {
	var in matrixInput
	cmd := &cobra.Command{
		Use:     "det",
		Short:   "Print the determinant of a square matrix",
		Example: `  lvmat det --rows 2 --cols 2 -e 0,0,1 -e 0,1,2 -e 1,0,3 -e 1,1,4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return in.run(cmd.OutOrStdout(), printDet[float64], printDet[int64])
		},
	}
	in.addFlags(cmd)
	return cmd
}

func printDet[T numeric.Number](w io.Writer, m *sparse.Matrix[T]) error {
	d, err := m.Determinant()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v\n", d)
	return err
}

func (c *CLI) newInverseCommand() *cobra.Command {
	var in matrixInput
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Print the inverse of a square matrix as (row, col) = value lines",
		Example: `  lvmat inverse --rows 2 --cols 2 -e 0,0,4 -e 0,1,7 -e 1,0,2 -e 1,1,6
  lvmat inverse --int --rows 2 --cols 2 -e 0,0,2 -e 0,1,1 -e 1,0,1 -e 1,1,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return in.run(cmd.OutOrStdout(), printInverse[float64], printInverse[int64])
		},
	}
	in.addFlags(cmd)
	return cmd
}

func printInverse[T numeric.Number](w io.Writer, m *sparse.Matrix[T]) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	if !numeric.IsFloat[T]() {
		slog.Debug("Integer inverse truncates every quotient toward zero")
	}
	_, err = io.WriteString(w, inv.String())
	return err
}

func (c *CLI) newInfoCommand() *cobra.Command {
	var in matrixInput
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print shape, density, sums and structural properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			return in.run(cmd.OutOrStdout(), printInfo[float64], printInfo[int64])
		},
	}
	in.addFlags(cmd)
	return cmd
}

func printInfo[T numeric.Number](w io.Writer, m *sparse.Matrix[T]) error {
	fmt.Fprintf(w, "shape: %dx%d\n", m.Rows(), m.Cols())
	fmt.Fprintf(w, "non-zero: %d\n", m.NonZeroCount())
	fmt.Fprintf(w, "density: %.4f\n", m.Density())
	fmt.Fprintf(w, "sum: %v\n", m.TotalSum())
	if !m.IsEmpty() {
		lo, err := m.Min()
		if err != nil {
			return err
		}
		hi, err := m.Max()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "min: %v\nmax: %v\n", lo, hi)
	}
	if m.IsSquare() {
		tr, err := m.Trace()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "trace: %v\n", tr)
	}
	fmt.Fprintf(w, "square: %t\ndiagonal: %t\nidentity: %t\n", m.IsSquare(), m.IsDiagonal(), m.IsIdentity())
	return nil
}

func (c *CLI) newMulCommand() *cobra.Command {
	var in matrixInput
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply the matrix by its transpose and print the product",
		RunE: func(cmd *cobra.Command, args []string) error {
			return in.run(cmd.OutOrStdout(), printGram[float64], printGram[int64])
		},
	}
	in.addFlags(cmd)
	return cmd
}

func printGram[T numeric.Number](w io.Writer, m *sparse.Matrix[T]) error {
	p, err := sparse.Mul(m, m.Transpose())
	if err != nil {
		return err
	}
	slog.Debug("Computed product", "rows", p.Rows(), "cols", p.Cols(), "nnz", p.NonZeroCount())
	_, err = io.WriteString(w, p.String())
	return err
}
