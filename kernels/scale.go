// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/gomlx/offload/devices"
	"github.com/gomlx/offload/graphview"
	"github.com/gomlx/offload/ops"
)

// The Scale extension op computes output = input * scale, elementwise, where
// scale is a single-element tensor of any numeric type. When the scale_down
// attribute is set, it computes output = input / scale instead -- useful for
// gradient accumulation averaging without materializing the reciprocal on the
// host.

// ScaleKernel returns the host-side reference kernel for the Scale op.
func ScaleKernel() Kernel { return scaleKernel{} }

type scaleKernel struct{}

// Create implements Kernel, binding the scale_down attribute at creation
// time.
func (scaleKernel) Create(node *graphview.Node) (Instance, error) {
	return &scaleInstance{scaleDown: node.IntAttr("scale_down", 0) != 0}, nil
}

type scaleInstance struct {
	scaleDown bool
}

// Compute implements Instance.
func (s *scaleInstance) Compute(ctx *Context) error {
	if ctx.NumInputs() != 2 || ctx.NumOutputs() != 1 {
		return errors.Errorf("Scale expects 2 inputs and 1 output, got %d and %d", ctx.NumInputs(), ctx.NumOutputs())
	}
	input, output := ctx.Input(0), ctx.Output(0)
	value, err := ScalarAsFloat64(ctx.Input(1))
	if err != nil {
		return errors.WithMessage(err, "Scale input 1")
	}
	if value == 0 {
		return errors.New("Scale value must not be 0")
	}
	if s.scaleDown {
		value = 1 / value
	}
	if !output.Shape().Equal(input.Shape()) {
		return errors.Errorf("Scale output shape %s must match input shape %s", output.Shape(), input.Shape())
	}
	switch in := input.data.(type) {
	case []float32:
		out := output.data.([]float32)
		for i, v := range in {
			out[i] = v * float32(value)
		}
	case []float64:
		out := output.data.([]float64)
		for i, v := range in {
			out[i] = v * value
		}
	case []float16.Float16:
		out := output.data.([]float16.Float16)
		for i, v := range in {
			out[i] = float16.Fromfloat32(v.Float32() * float32(value))
		}
	case []bfloat16.BFloat16:
		out := output.data.([]bfloat16.BFloat16)
		for i, v := range in {
			out[i] = bfloat16.FromFloat32(v.Float32() * float32(value))
		}
	default:
		return errors.Errorf("Scale has no kernel for dtype %s", input.DType())
	}
	return nil
}

// RegisterScaleKernels registers the Scale reference kernel for the CPU kind,
// on the element types the accelerator version serves.
func RegisterScaleKernels(registry *Registry) error {
	for _, dtype := range []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.BFloat16} {
		if err := registry.Register(Key{Op: ops.OpTypeScale, Kind: devices.KindCPU, DType: dtype}, ScaleKernel()); err != nil {
			return err
		}
	}
	return nil
}
