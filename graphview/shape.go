// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graphview

import (
	"fmt"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
)

// DynamicDim marks a dimension whose extent is only known at execution time.
const DynamicDim = -1

// Shape describes the element type and dimensions of one tensor value flowing
// over an edge of the graph.
//
// A zero-valued Shape (dtypes.InvalidDType) means the shape is unknown -- the
// graph collaborator did not provide it. The oracle treats values with unknown
// shapes as unsupported, it never panics on them.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// MakeShape returns a Shape with the given element type and dimensions.
// Scalars have no dimensions. Use DynamicDim for dimensions only known at
// execution time.
func MakeShape(dtype dtypes.DType, dimensions ...int) Shape {
	return Shape{DType: dtype, Dimensions: dimensions}
}

// Ok returns whether the shape carries a valid element type.
func (s Shape) Ok() bool {
	return s.DType != dtypes.InvalidDType
}

// Rank of the shape. Scalars have rank 0.
func (s Shape) Rank() int {
	return len(s.Dimensions)
}

// IsDynamic returns whether any dimension is only known at execution time.
func (s Shape) IsDynamic() bool {
	for _, dim := range s.Dimensions {
		if dim == DynamicDim {
			return true
		}
	}
	return false
}

// NumElements returns the total number of elements, or DynamicDim if the shape
// has any dynamic dimension.
func (s Shape) NumElements() int {
	size := 1
	for _, dim := range s.Dimensions {
		if dim == DynamicDim {
			return DynamicDim
		}
		size *= dim
	}
	return size
}

// Clone makes a deep copy of the Shape.
func (s Shape) Clone() Shape {
	s2 := Shape{DType: s.DType}
	if s.Dimensions != nil {
		s2.Dimensions = make([]int, len(s.Dimensions))
		copy(s2.Dimensions, s.Dimensions)
	}
	return s2
}

// Equal returns whether s and s2 have the same element type and dimensions.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType || len(s.Dimensions) != len(s2.Dimensions) {
		return false
	}
	for i, dim := range s.Dimensions {
		if dim != s2.Dimensions[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer. E.g.: "(Float32)[2 3]", "(Int64)[?]" for a
// dynamic dimension.
func (s Shape) String() string {
	if !s.Ok() {
		return "(unknown)"
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	parts := make([]string, 0, len(s.Dimensions))
	for _, dim := range s.Dimensions {
		if dim == DynamicDim {
			parts = append(parts, "?")
		} else {
			parts = append(parts, fmt.Sprintf("%d", dim))
		}
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(parts, " "))
}
