// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dataops

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/offload/devices"
	"github.com/gomlx/offload/graphview"
	"github.com/gomlx/offload/ops"
)

// newCheckers builds the table of operator-specific structural validators.
// The table is constructed explicitly per oracle instance -- there is no
// process-wide registry to mutate.
func newCheckers() map[ops.OpType]checker {
	return map[ops.OpType]checker{
		ops.OpTypeArgMax:             checkArgMinMax,
		ops.OpTypeArgMin:             checkArgMinMax,
		ops.OpTypeBatchNormalization: checkBatchNormalization,
		ops.OpTypeCast:               checkCast,
		ops.OpTypeConvTranspose:      checkConvTranspose,
		ops.OpTypeGather:             checkGather,
		ops.OpTypeMaxPool:            checkMaxPool,
		ops.OpTypePad:                checkPad,
		ops.OpTypeReshape:            checkReshape,
		ops.OpTypeResize:             checkResize,
		ops.OpTypeScale:              checkScale,
		ops.OpTypeSoftmax:            checkSoftmax,
		ops.OpTypeWhere:              checkWhere,
	}
}

// checkArgMinMax: the select_last_index tie-break is not implemented by any
// device kernel.
func checkArgMinMax(d *DataOps, node *graphview.Node) (bool, string) {
	if node.IntAttr("select_last_index", 0) != 0 {
		return false, "select_last_index is not supported"
	}
	return true, ""
}

// checkBatchNormalization: only inference mode, with the single normalized
// output. Training mode adds running mean/variance outputs.
func checkBatchNormalization(d *DataOps, node *graphview.Node) (bool, string) {
	if node.IntAttr("training_mode", 0) != 0 || node.NumOutputs() > 1 {
		return false, "BatchNormalization in training mode is not supported"
	}
	return true, ""
}

// checkCast: the target element type must itself be executable on the device.
func checkCast(d *DataOps, node *graphview.Node) (bool, string) {
	name := node.StrAttr("to", "")
	if name == "" {
		return false, "Cast is missing the \"to\" attribute"
	}
	dtype, err := dtypes.DTypeString(name)
	if err != nil {
		return false, fmt.Sprintf("Cast to unknown dtype %q", name)
	}
	if !d.caps.DTypes[dtype] {
		return false, fmt.Sprintf("Cast to %s is not supported on %s", dtype, d.device)
	}
	return true, ""
}

// checkConvTranspose: the NPU compiler cannot derive buffer sizes when the
// output shape is forced by attribute.
func checkConvTranspose(d *DataOps, node *graphview.Node) (bool, string) {
	if d.device.Kind == devices.KindNPU && node.HasAttr("output_shape") {
		return false, "ConvTranspose with an explicit output_shape is not supported on NPU"
	}
	return true, ""
}

// checkGather: indices must be an integer tensor.
func checkGather(d *DataOps, node *graphview.Node) (bool, string) {
	if node.NumInputs() < 2 {
		return false, "Gather requires data and indices inputs"
	}
	indices := node.InputShape(1)
	if indices.DType != dtypes.Int32 && indices.DType != dtypes.Int64 {
		return false, fmt.Sprintf("Gather indices must be Int32 or Int64, got %s", indices.DType)
	}
	return true, ""
}

// checkMaxPool: the optional indices output has no device kernel anywhere,
// and the NPU pooling unit has no dilation support.
func checkMaxPool(d *DataOps, node *graphview.Node) (bool, string) {
	if node.NumOutputs() > 1 {
		return false, "MaxPool with the indices output is not supported"
	}
	if d.device.Kind == devices.KindNPU {
		for _, dilation := range node.IntsAttr("dilations") {
			if dilation > 1 {
				return false, "MaxPool with dilations is not supported on NPU"
			}
		}
	}
	return true, ""
}

// checkPad: only the three standard modes; the NPU cannot crop (negative
// pads).
func checkPad(d *DataOps, node *graphview.Node) (bool, string) {
	switch mode := node.StrAttr("mode", "constant"); mode {
	case "constant", "reflect", "edge":
	default:
		return false, fmt.Sprintf("Pad mode %q is not supported", mode)
	}
	if d.device.Kind == devices.KindNPU {
		for _, pad := range node.IntsAttr("pads") {
			if pad < 0 {
				return false, "Pad with negative pads is not supported on NPU"
			}
		}
	}
	return true, ""
}

// checkReshape: allowzero changes how zero dims in the target shape are
// interpreted and no device kernel implements it.
func checkReshape(d *DataOps, node *graphview.Node) (bool, string) {
	if node.IntAttr("allowzero", 0) != 0 {
		return false, "Reshape with allowzero is not supported"
	}
	return true, ""
}

// checkResize: restrictions mirror the device interpolation units.
func checkResize(d *DataOps, node *graphview.Node) (bool, string) {
	if node.StrAttr("coordinate_transformation_mode", "half_pixel") == "tf_crop_and_resize" {
		return false, "Resize with tf_crop_and_resize is not supported"
	}
	if d.device.Kind == devices.KindNPU && node.StrAttr("mode", "nearest") == "cubic" {
		return false, "Resize with cubic interpolation is not supported on NPU"
	}
	return true, ""
}

// checkScale: the scale factor must be a statically known single-element
// tensor so the kernel can read it as a scalar.
func checkScale(d *DataOps, node *graphview.Node) (bool, string) {
	if node.NumInputs() != 2 {
		return false, fmt.Sprintf("Scale requires exactly 2 inputs, got %d", node.NumInputs())
	}
	scale := node.InputShape(1)
	if !scale.Ok() || scale.NumElements() != 1 {
		return false, "Scale input 1 must be a single-element tensor"
	}
	return true, ""
}

// checkSoftmax: the NPU softmax unit only normalizes over the innermost
// dimension.
func checkSoftmax(d *DataOps, node *graphview.Node) (bool, string) {
	if d.device.Kind != devices.KindNPU {
		return true, ""
	}
	rank := node.OutputShape(0).Rank()
	axis := node.IntAttr("axis", -1)
	if axis != -1 && axis != int64(rank-1) {
		return false, "Softmax over a non-innermost axis is not supported on NPU"
	}
	return true, ""
}

// checkWhere: the condition input must be boolean.
func checkWhere(d *DataOps, node *graphview.Node) (bool, string) {
	if node.NumInputs() < 3 {
		return false, "Where requires condition, x and y inputs"
	}
	if condition := node.InputShape(0); condition.DType != dtypes.Bool {
		return false, fmt.Sprintf("Where condition must be Bool, got %s", condition.DType)
	}
	return true, ""
}
