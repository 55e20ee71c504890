package vdbscan

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is an N×N symmetric, non-negative dissimilarity matrix with
// a zero diagonal. It is shared read-only by every clustering stage and never
// copied: recursive passes differ only in the index subsets they look at.
type DistanceMatrix struct {
	sym *mat.SymDense
	n   int
}

// NewDistanceMatrix wraps sym after validating that every entry is
// non-negative and the diagonal is zero. Symmetry is guaranteed by the
// storage type.
func NewDistanceMatrix(sym *mat.SymDense) (*DistanceMatrix, error) {
	if sym == nil {
		return nil, fmt.Errorf("vdbscan: nil matrix: %w", ErrConfiguration)
	}
	n := sym.SymmetricDim()
	for i := 0; i < n; i++ {
		if sym.At(i, i) != 0 {
			return nil, fmt.Errorf("vdbscan: diagonal entry (%d,%d) = %v, want 0: %w",
				i, i, sym.At(i, i), ErrConfiguration)
		}
		for j := i + 1; j < n; j++ {
			if sym.At(i, j) < 0 {
				return nil, fmt.Errorf("vdbscan: negative distance %v at (%d,%d): %w",
					sym.At(i, j), i, j, ErrConfiguration)
			}
		}
	}
	return &DistanceMatrix{sym: sym, n: n}, nil
}

// DistanceMatrixFromRows builds a validated DistanceMatrix from a dense
// row-major matrix. The rows must form a square, symmetric, non-negative
// matrix with a zero diagonal.
func DistanceMatrixFromRows(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return &DistanceMatrix{}, nil
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("vdbscan: row %d has %d columns, want %d: %w",
				i, len(row), n, ErrDimensionMismatch)
		}
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("vdbscan: matrix not symmetric at (%d,%d): %v != %v: %w",
					i, j, rows[i][j], rows[j][i], ErrConfiguration)
			}
			sym.SetSym(i, j, rows[i][j])
		}
	}
	return NewDistanceMatrix(sym)
}

// N returns the number of items.
func (dm *DistanceMatrix) N() int { return dm.n }

// At returns the distance between items i and j.
func (dm *DistanceMatrix) At(i, j int) float64 { return dm.sym.At(i, j) }
