// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package devices

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/offload/ops"
)

func TestParse(t *testing.T) {
	device, err := Parse("NPU_FP16")
	require.NoError(t, err)
	assert.Equal(t, KindNPU, device.Kind)
	assert.Equal(t, PrecisionFP16, device.Precision)
	assert.Equal(t, "NPU_FP16", device.String())
	assert.True(t, device.Valid())

	// Bare kind defaults to FP32, case-insensitive.
	device, err = Parse("gpu")
	require.NoError(t, err)
	assert.Equal(t, KindGPU, device.Kind)
	assert.Equal(t, PrecisionFP32, device.Precision)
}

func TestParseErrors(t *testing.T) {
	for name, descriptor := range map[string]string{
		"empty":             "",
		"unknown kind":      "TPU_FP32",
		"unknown precision": "GPU_FP8",
		"no matrix":         "NPU_FP32", // valid kind and precision, but no support table
		"cpu fp16":          "CPU_FP16",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(descriptor)
			require.Error(t, err, "Parse(%q) should fail", descriptor)
		})
	}
}

func TestCapabilities(t *testing.T) {
	cpu, err := Parse("CPU_FP32")
	require.NoError(t, err)
	npu, err := Parse("NPU_FP16")
	require.NoError(t, err)

	cpuCaps := cpu.Capabilities()
	npuCaps := npu.Capabilities()

	assert.True(t, cpuCaps.SupportsDynamicShapes)
	assert.False(t, npuCaps.SupportsDynamicShapes)

	assert.True(t, cpuCaps.Operations[ops.OpTypeErf])
	assert.False(t, npuCaps.Operations[ops.OpTypeErf])
	assert.True(t, npuCaps.Operations[ops.OpTypeConv])
	assert.False(t, npuCaps.Operations[ops.OpTypeScale])

	assert.True(t, cpuCaps.DTypes[dtypes.Float64])
	assert.False(t, npuCaps.DTypes[dtypes.Float64])
	assert.True(t, npuCaps.DTypes[dtypes.Float16])
}

func TestCapabilitiesClone(t *testing.T) {
	device, err := Parse("GPU_FP16")
	require.NoError(t, err)
	caps := device.Capabilities()
	clone := caps.Clone()
	require.Equal(t, len(caps.Operations), len(clone.Operations))
	require.Equal(t, len(caps.DTypes), len(clone.DTypes))
	assert.Equal(t, caps.SupportsDynamicShapes, clone.SupportsDynamicShapes)

	// The clone is independent of the shared table.
	clone.Operations[ops.OpTypeErf] = false
	clone.DTypes[dtypes.Float64] = true
	assert.True(t, device.Capabilities().Operations[ops.OpTypeErf])
	assert.False(t, device.Capabilities().DTypes[dtypes.Float64])
}

func TestSupportedDescriptors(t *testing.T) {
	descriptors := SupportedDescriptors()
	assert.Equal(t, []string{"CPU_FP32", "GPU_FP16", "GPU_FP32", "NPU_FP16"}, descriptors)
}
