// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/gomlx/offload/graphview"
)

func scaleContext(input, scale, output *Tensor) *Context {
	return NewContext([]*Tensor{input, scale}, []*Tensor{output})
}

func TestScaleCompute(t *testing.T) {
	instance, err := ScaleKernel().Create(scaleNode(t, nil))
	require.NoError(t, err)

	input := NewTensor(graphview.MakeShape(dtypes.Float32, 4), []float32{1, -2, 3, 0})
	scale := NewTensor(graphview.MakeShape(dtypes.Float64), []float64{2})
	out := make([]float32, 4)
	output := NewTensor(graphview.MakeShape(dtypes.Float32, 4), out)

	require.NoError(t, instance.Compute(scaleContext(input, scale, output)))
	assert.Equal(t, []float32{2, -4, 6, 0}, out)
}

func TestScaleDown(t *testing.T) {
	instance, err := ScaleKernel().Create(scaleNode(t, graphview.Attributes{"scale_down": int64(1)}))
	require.NoError(t, err)

	input := NewTensor(graphview.MakeShape(dtypes.Float64, 3), []float64{2, 4, -8})
	scale := NewTensor(graphview.MakeShape(dtypes.Float64), []float64{2})
	out := make([]float64, 3)
	output := NewTensor(graphview.MakeShape(dtypes.Float64, 3), out)

	require.NoError(t, instance.Compute(scaleContext(input, scale, output)))
	assert.Equal(t, []float64{1, 2, -4}, out)
}

func TestScaleFloat16(t *testing.T) {
	instance, err := ScaleKernel().Create(scaleNode(t, nil))
	require.NoError(t, err)

	input := NewTensor(graphview.MakeShape(dtypes.Float16, 2),
		[]float16.Float16{float16.Fromfloat32(1.5), float16.Fromfloat32(-2)})
	// The scale factor's own dtype is independent of the data dtype.
	scale := NewTensor(graphview.MakeShape(dtypes.Int32), []int32{4})
	out := make([]float16.Float16, 2)
	output := NewTensor(graphview.MakeShape(dtypes.Float16, 2), out)

	require.NoError(t, instance.Compute(scaleContext(input, scale, output)))
	assert.Equal(t, float32(6), out[0].Float32())
	assert.Equal(t, float32(-8), out[1].Float32())
}

func TestScaleErrors(t *testing.T) {
	instance, err := ScaleKernel().Create(scaleNode(t, nil))
	require.NoError(t, err)

	input := NewTensor(graphview.MakeShape(dtypes.Float32, 2), []float32{1, 2})
	output := NewTensor(graphview.MakeShape(dtypes.Float32, 2), make([]float32, 2))

	// Zero scale.
	zero := NewTensor(graphview.MakeShape(dtypes.Float32), []float32{0})
	require.Error(t, instance.Compute(scaleContext(input, zero, output)))

	// Non-scalar scale.
	vector := NewTensor(graphview.MakeShape(dtypes.Float32, 2), []float32{1, 2})
	require.Error(t, instance.Compute(scaleContext(input, vector, output)))

	// Mismatched output shape.
	good := NewTensor(graphview.MakeShape(dtypes.Float32), []float32{2})
	small := NewTensor(graphview.MakeShape(dtypes.Float32, 1), make([]float32, 1))
	require.Error(t, instance.Compute(scaleContext(input, good, small)))

	// Wrong arity.
	require.Error(t, instance.Compute(NewContext([]*Tensor{input}, []*Tensor{output})))
}
