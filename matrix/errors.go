// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for grep-ability. Callers match
// with errors.Is; context is attached at the detection site via matrixErrorf.

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrNilMatrix indicates that a nil matrix (or slice) was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned for empty matrices where at least one row and
	// one column are required.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a noise vector whose length differs from the partition's column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf attaches an operation tag to a sentinel, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return errors.Wrapf(err, "%s", tag)
}
