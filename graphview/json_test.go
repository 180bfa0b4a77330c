// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graphview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/offload/ops"
)

func TestJSONRoundTrip(t *testing.T) {
	g := New("roundtrip")
	input := g.AddInput(MakeShape(dtypes.Float32, 1, 3, DynamicDim))
	conv := g.AddNode(ops.OpTypeConv, "conv0", []Edge{input},
		[]Shape{MakeShape(dtypes.Float32, 1, 16, DynamicDim)},
		Attributes{"pads": []int64{1, 1}, "group": int64(1)})
	relu := g.AddNode(ops.OpTypeRelu, "relu0", []Edge{conv.Out(0)},
		[]Shape{MakeShape(dtypes.Float32, 1, 16, DynamicDim)}, nil)
	g.AddOutput(relu.Out(0))

	var buffer bytes.Buffer
	require.NoError(t, g.Save(&buffer))

	loaded, err := Load(&buffer)
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", loaded.Name())
	assert.Equal(t, g.NumNodes(), loaded.NumNodes())
	assert.Equal(t, g.NumInputs(), loaded.NumInputs())
	assert.Equal(t, g.NumOutputs(), loaded.NumOutputs())
	for idx := 0; idx < g.NumNodes(); idx++ {
		want, got := g.Node(NodeIdx(idx)), loaded.Node(NodeIdx(idx))
		assert.Equal(t, want.OpType(), got.OpType())
		assert.Equal(t, want.Name(), got.Name())
		assert.Equal(t, want.Inputs(), got.Inputs())
		for i := 0; i < want.NumOutputs(); i++ {
			assert.True(t, want.OutputShape(i).Equal(got.OutputShape(i)))
		}
	}
	// Attributes survive the trip through JSON's type system.
	assert.Equal(t, []int64{1, 1}, loaded.Node(0).IntsAttr("pads"))
	assert.Equal(t, int64(1), loaded.Node(0).IntAttr("group", -1))
	assert.Equal(t, g.Output(0), loaded.Output(0))
}

func TestLoadRejectsMalformedGraphs(t *testing.T) {
	for name, jsonText := range map[string]string{
		"unknown op": `{"nodes": [{"op": "Frobnicate", "outputs": [{"dtype": "Float32", "dims": [1]}]}]}`,
		"unknown dtype": `{"nodes": [{"op": "Relu", "inputs": [],
			"outputs": [{"dtype": "Decimal128", "dims": [1]}]}]}`,
		"dangling input": `{"nodes": [{"op": "Relu", "inputs": [{"node": 7, "output": 0}],
			"outputs": [{"dtype": "Float32", "dims": [1]}]}]}`,
		"dangling graph output": `{"nodes": [{"op": "Constant",
			"outputs": [{"dtype": "Float32", "dims": [1]}]}], "outputs": [{"node": 0, "output": 2}]}`,
		"not json": `{"nodes": [`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(jsonText))
			require.Error(t, err)
		})
	}
}
