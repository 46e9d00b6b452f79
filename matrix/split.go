// SPDX-License-Identifier: MIT

// Package matrix: quadrant partitioning and block concatenation.
//
// Split and Join are exact inverses: Join(Split(m)) equals m cell for cell.
// Both allocate; no block ever aliases its parent.
package matrix

import "fmt"

// Split partitions an even square matrix into four half×half quadrants by
// contiguous row/column ranges. No value is transformed.
//
//	TopLeft     = rows[0:h]   × cols[0:h]
//	TopRight    = rows[0:h]   × cols[h:n]
//	BottomLeft  = rows[h:n]   × cols[0:h]
//	BottomRight = rows[h:n]   × cols[h:n]
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidShape when m is not square or its dimension is odd.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Split(m Matrix) (Quadrants, error) {
	d, err := AsDense(m)
	if err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}
	if err = ValidateNonEmpty(d); err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}
	if err = ValidateEvenSquare(d); err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}

	h := d.r / 2

	return Quadrants{
		TopLeft:     d.block(0, 0, h, h),
		TopRight:    d.block(0, h, h, h),
		BottomLeft:  d.block(h, 0, h, h),
		BottomRight: d.block(h, h, h, h),
	}, nil
}

// HStack concatenates l and r side by side: [l r].
//
// Errors:
//   - ErrNilMatrix; ErrInvalidShape when row counts differ.
func HStack(l, r Matrix) (*Dense, error) {
	dl, dr, err := resolvePair(l, r, opHStack)
	if err != nil {
		return nil, err
	}
	if dl.r != dr.r {
		return nil, matrixErrorf(opHStack,
			fmt.Errorf("rows %d vs %d: %w", dl.r, dr.r, ErrInvalidShape))
	}

	cols := dl.c + dr.c
	out := newDense(dl.r, cols)
	for i := 0; i < dl.r; i++ {
		copy(out.data[i*cols:i*cols+dl.c], dl.data[i*dl.c:(i+1)*dl.c])
		copy(out.data[i*cols+dl.c:(i+1)*cols], dr.data[i*dr.c:(i+1)*dr.c])
	}

	return out, nil
}

// VStack stacks t on top of b.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidShape when column counts differ.
func VStack(t, b Matrix) (*Dense, error) {
	dt, db, err := resolvePair(t, b, opVStack)
	if err != nil {
		return nil, err
	}
	if dt.c != db.c {
		return nil, matrixErrorf(opVStack,
			fmt.Errorf("cols %d vs %d: %w", dt.c, db.c, ErrInvalidShape))
	}

	out := newDense(dt.r+db.r, dt.c)
	copy(out.data, dt.data)
	copy(out.data[len(dt.data):], db.data)

	return out, nil
}

// Join reassembles four quadrants: VStack(HStack(TL, TR), HStack(BL, BR)).
//
// Errors:
//   - ErrNilMatrix when a quadrant is missing.
//   - ErrInvalidShape when quadrant shapes differ.
func Join(q Quadrants) (*Dense, error) {
	for _, blk := range []*Dense{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight} {
		if err := ValidateNotNil(blk); err != nil {
			return nil, matrixErrorf(opJoin, err)
		}
		if blk.r != q.TopLeft.r || blk.c != q.TopLeft.c {
			return nil, matrixErrorf(opJoin,
				fmt.Errorf("quadrant %dx%d vs %dx%d: %w", blk.r, blk.c, q.TopLeft.r, q.TopLeft.c, ErrInvalidShape))
		}
	}

	top, err := HStack(q.TopLeft, q.TopRight)
	if err != nil {
		return nil, matrixErrorf(opJoin, err)
	}
	bottom, err := HStack(q.BottomLeft, q.BottomRight)
	if err != nil {
		return nil, matrixErrorf(opJoin, err)
	}

	return VStack(top, bottom)
}

func resolvePair(a, b Matrix, tag string) (*Dense, *Dense, error) {
	da, err := AsDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, db, nil
}
