// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graphview

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/offload/ops"
)

func buildSmallGraph(t *testing.T) *Graph {
	t.Helper()
	g := New("small")
	input := g.AddInput(MakeShape(dtypes.Float32, 2, 3))
	relu := g.AddNode(ops.OpTypeRelu, "relu0", []Edge{input}, []Shape{MakeShape(dtypes.Float32, 2, 3)}, nil)
	neg := g.AddNode(ops.OpTypeNeg, "neg0", []Edge{relu.Out(0)}, []Shape{MakeShape(dtypes.Float32, 2, 3)}, nil)
	add := g.AddNode(ops.OpTypeAdd, "add0", []Edge{relu.Out(0), neg.Out(0)}, []Shape{MakeShape(dtypes.Float32, 2, 3)}, nil)
	g.AddOutput(add.Out(0))
	return g
}

func TestGraphBuilder(t *testing.T) {
	g := buildSmallGraph(t)
	require.NoError(t, g.Validate())
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 1, g.NumInputs())
	assert.Equal(t, 1, g.NumOutputs())

	relu := g.Node(0)
	require.NotNil(t, relu)
	assert.Equal(t, ops.OpTypeRelu, relu.OpType())
	assert.Equal(t, "relu0", relu.Name())
	assert.True(t, relu.Input(0).IsGraphInput())
	assert.Equal(t, MakeShape(dtypes.Float32, 2, 3), relu.InputShape(0))

	add := g.Node(2)
	assert.Equal(t, Edge{Producer: 0, Output: 0}, add.Input(0))
	assert.Equal(t, Edge{Producer: 1, Output: 0}, add.Input(1))

	// Out-of-range lookups return nil/invalid, not panics.
	assert.Nil(t, g.Node(17))
	assert.False(t, g.Node(2).OutputShape(3).Ok())
}

func TestGraphConsumers(t *testing.T) {
	g := buildSmallGraph(t)
	// relu0 feeds both neg0 (#1) and add0 (#2), once each.
	assert.Equal(t, []NodeIdx{1, 2}, g.Consumers(0))
	assert.Equal(t, []NodeIdx{2}, g.Consumers(1))
	assert.Empty(t, g.Consumers(2))
	assert.Nil(t, g.Consumers(99))
}

func TestGraphBuilderPanicsOnMalformedWiring(t *testing.T) {
	g := New("broken")
	input := g.AddInput(MakeShape(dtypes.Float32, 4))

	// Forward reference.
	require.Panics(t, func() {
		g.AddNode(ops.OpTypeRelu, "relu0", []Edge{{Producer: 5, Output: 0}},
			[]Shape{MakeShape(dtypes.Float32, 4)}, nil)
	})
	// Out-of-range graph input.
	require.Panics(t, func() {
		g.AddNode(ops.OpTypeRelu, "relu0", []Edge{{Producer: InvalidNodeIdx, Output: 3}},
			[]Shape{MakeShape(dtypes.Float32, 4)}, nil)
	})
	// No outputs.
	require.Panics(t, func() {
		g.AddNode(ops.OpTypeRelu, "relu0", []Edge{input}, nil, nil)
	})
	// Output edge referring to a non-existent output slot.
	relu := g.AddNode(ops.OpTypeRelu, "relu0", []Edge{input}, []Shape{MakeShape(dtypes.Float32, 4)}, nil)
	require.Panics(t, func() { g.AddOutput(relu.Out(1)) })
}

func TestGraphValidateCatchesDanglingEdges(t *testing.T) {
	g := buildSmallGraph(t)
	require.NoError(t, g.Validate())

	// Corrupt the graph behind the builder's back, as a misbehaving graph
	// collaborator would.
	g.nodes[2].inputs[1] = Edge{Producer: 12, Output: 0}
	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling")

	g = buildSmallGraph(t)
	g.outputs[0] = Edge{Producer: 1, Output: 7}
	require.Error(t, g.Validate())
}

func TestNodeAttrs(t *testing.T) {
	g := New("attrs")
	input := g.AddInput(MakeShape(dtypes.Float32, 1, 8))
	node := g.AddNode(ops.OpTypeSoftmax, "softmax0", []Edge{input},
		[]Shape{MakeShape(dtypes.Float32, 1, 8)},
		Attributes{
			"axis":  int64(1),
			"alpha": 0.5,
			"mode":  "fast",
			"pads":  []int64{0, 1, 0, 1},
			// JSON-decoded graphs carry numbers as float64 and lists as []any.
			"dilations": []any{float64(1), float64(2)},
		})

	assert.True(t, node.HasAttr("axis"))
	assert.False(t, node.HasAttr("beta"))
	assert.Equal(t, int64(1), node.IntAttr("axis", -1))
	assert.Equal(t, int64(-1), node.IntAttr("missing", -1))
	assert.Equal(t, 0.5, node.FloatAttr("alpha", 0))
	assert.Equal(t, "fast", node.StrAttr("mode", "nearest"))
	assert.Equal(t, []int64{0, 1, 0, 1}, node.IntsAttr("pads"))
	assert.Equal(t, []int64{1, 2}, node.IntsAttr("dilations"))
	assert.Nil(t, node.IntsAttr("missing"))
}

func TestShape(t *testing.T) {
	s := MakeShape(dtypes.Float32, 2, DynamicDim)
	assert.True(t, s.Ok())
	assert.True(t, s.IsDynamic())
	assert.Equal(t, DynamicDim, s.NumElements())
	assert.Equal(t, "(Float32)[2 ?]", s.String())

	static := MakeShape(dtypes.Int64, 3, 4)
	assert.False(t, static.IsDynamic())
	assert.Equal(t, 12, static.NumElements())
	assert.Equal(t, 0, MakeShape(dtypes.Float32).Rank())
	assert.Equal(t, 1, MakeShape(dtypes.Float32).NumElements())

	clone := s.Clone()
	assert.True(t, clone.Equal(s))
	clone.Dimensions[0] = 7
	assert.False(t, clone.Equal(s))
	assert.False(t, Shape{}.Ok())
}
