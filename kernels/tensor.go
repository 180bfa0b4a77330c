// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/gomlx/offload/graphview"
)

// Tensor is the minimal host-side tensor handed to kernel instances: a shape
// plus a flat data slice of the matching element type.
//
// Supported data slices: []float32, []float64, []float16.Float16,
// []bfloat16.BFloat16, []int32 and []int64.
type Tensor struct {
	shape graphview.Shape
	data  any
}

// NewTensor wraps a flat data slice into a Tensor. It panics with a stack
// trace if the slice type doesn't match the shape's dtype, or its length
// doesn't match the shape's size -- wiring tensors is graph-building
// territory.
func NewTensor(shape graphview.Shape, data any) *Tensor {
	dtype, length := sliceInfo(data)
	if dtype == dtypes.InvalidDType {
		exceptions.Panicf("kernels.NewTensor: unsupported data slice type %T", data)
	}
	if dtype != shape.DType {
		exceptions.Panicf("kernels.NewTensor: data slice is %s, shape is %s", dtype, shape)
	}
	if length != shape.NumElements() {
		exceptions.Panicf("kernels.NewTensor: data has %d elements, shape %s wants %d", length, shape, shape.NumElements())
	}
	return &Tensor{shape: shape, data: data}
}

func sliceInfo(data any) (dtypes.DType, int) {
	switch v := data.(type) {
	case []float32:
		return dtypes.Float32, len(v)
	case []float64:
		return dtypes.Float64, len(v)
	case []float16.Float16:
		return dtypes.Float16, len(v)
	case []bfloat16.BFloat16:
		return dtypes.BFloat16, len(v)
	case []int32:
		return dtypes.Int32, len(v)
	case []int64:
		return dtypes.Int64, len(v)
	}
	return dtypes.InvalidDType, 0
}

// Shape of the tensor.
func (t *Tensor) Shape() graphview.Shape { return t.shape }

// DType of the tensor's elements.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// NumElements of the flat data.
func (t *Tensor) NumElements() int { return t.shape.NumElements() }

// Data returns the flat data slice. Cast it according to DType.
func (t *Tensor) Data() any { return t.data }

// scalarReaders is the enum-keyed table of typed adapter closures used to
// read a single-element tensor of any supported element type as a float64,
// the reflection-free analogue of a per-type dispatch template.
var scalarReaders = map[dtypes.DType]func(data any) float64{
	dtypes.Float32:  func(data any) float64 { return float64(data.([]float32)[0]) },
	dtypes.Float64:  func(data any) float64 { return data.([]float64)[0] },
	dtypes.Float16:  func(data any) float64 { return float64(data.([]float16.Float16)[0].Float32()) },
	dtypes.BFloat16: func(data any) float64 { return float64(data.([]bfloat16.BFloat16)[0].Float32()) },
	dtypes.Int32:    func(data any) float64 { return float64(data.([]int32)[0]) },
	dtypes.Int64:    func(data any) float64 { return float64(data.([]int64)[0]) },
}

// ScalarAsFloat64 reads a single-element tensor as a float64, whatever its
// element type.
func ScalarAsFloat64(t *Tensor) (float64, error) {
	if t == nil {
		return 0, errors.New("nil tensor")
	}
	if t.NumElements() != 1 {
		return 0, errors.Errorf("tensor %s is not a single-element tensor", t.shape)
	}
	reader, found := scalarReaders[t.DType()]
	if !found {
		return 0, errors.Errorf("no scalar reader for dtype %s", t.DType())
	}
	return reader(t.data), nil
}
