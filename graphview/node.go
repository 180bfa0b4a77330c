// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graphview

import (
	"fmt"
	"strings"

	"github.com/gomlx/offload/ops"
)

// NodeIdx is the index of a node within its graph. It is stable for the
// lifetime of the graph and is the identity the partition planner works with.
type NodeIdx int

// InvalidNodeIdx is used for edge endpoints that are not nodes: the producer
// side of a graph input, and the consumer side of a graph output.
const InvalidNodeIdx = NodeIdx(-1)

// Edge identifies one tensor value by its producing endpoint: a node output or
// a graph input.
//
// When Producer is a valid node index, Output is the index of the producing
// node's output. When Producer is InvalidNodeIdx, the value is the graph input
// number Output.
type Edge struct {
	Producer NodeIdx
	Output   int
}

// IsGraphInput returns whether the edge is fed directly by a graph input,
// as opposed to another node's output.
func (e Edge) IsGraphInput() bool {
	return e.Producer == InvalidNodeIdx
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	if e.IsGraphInput() {
		return fmt.Sprintf("input#%d", e.Output)
	}
	return fmt.Sprintf("#%d.%d", e.Producer, e.Output)
}

// Attributes holds the static attributes of a node. Values are one of int64,
// float64, string or []int64 -- use the typed accessors on Node.
type Attributes map[string]any

// Node is one operation of the computation graph.
//
// Nodes are owned by their graph; the planner and the oracle hold only
// non-owning references for the duration of one partitioning pass and never
// mutate them.
type Node struct {
	graph   GraphView
	idx     NodeIdx
	opType  ops.OpType
	name    string
	inputs  []Edge
	outputs []Shape
	attrs   Attributes
}

// Idx returns the node's index within its graph.
func (n *Node) Idx() NodeIdx { return n.idx }

// OpType returns the node's operator type.
func (n *Node) OpType() ops.OpType { return n.opType }

// Name returns the node's name. Names are for diagnostics only and need not
// be unique.
func (n *Node) Name() string { return n.name }

// NumInputs returns the number of input edges.
func (n *Node) NumInputs() int { return len(n.inputs) }

// Input returns the i-th input edge.
func (n *Node) Input(i int) Edge { return n.inputs[i] }

// Inputs returns the node's input edges. The returned slice is owned by the
// node and must not be modified.
func (n *Node) Inputs() []Edge { return n.inputs }

// NumOutputs returns the number of output values the node produces.
func (n *Node) NumOutputs() int { return len(n.outputs) }

// OutputShape returns the shape of the i-th output value. Returns an invalid
// Shape if i is out of range.
func (n *Node) OutputShape(i int) Shape {
	if i < 0 || i >= len(n.outputs) {
		return Shape{}
	}
	return n.outputs[i]
}

// InputShape resolves the shape of the i-th input value through the owning
// graph. Returns an invalid Shape if the edge cannot be resolved -- the
// oracle treats that as unsupported rather than failing.
func (n *Node) InputShape(i int) Shape {
	if i < 0 || i >= len(n.inputs) {
		return Shape{}
	}
	edge := n.inputs[i]
	if edge.IsGraphInput() {
		if edge.Output < 0 || edge.Output >= n.graph.NumInputs() {
			return Shape{}
		}
		return n.graph.InputShape(edge.Output)
	}
	producer := n.graph.Node(edge.Producer)
	if producer == nil {
		return Shape{}
	}
	return producer.OutputShape(edge.Output)
}

// HasAttr returns whether the node carries the given attribute.
func (n *Node) HasAttr(name string) bool {
	_, found := n.attrs[name]
	return found
}

// IntAttr returns the integer attribute name, or defaultValue if absent or of
// a different type. JSON-decoded graphs store numbers as float64; integral
// float64 values are accepted.
func (n *Node) IntAttr(name string, defaultValue int64) int64 {
	switch v := n.attrs[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		if v == float64(int64(v)) {
			return int64(v)
		}
	}
	return defaultValue
}

// FloatAttr returns the float attribute name, or defaultValue if absent or of
// a different type.
func (n *Node) FloatAttr(name string, defaultValue float64) float64 {
	switch v := n.attrs[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return defaultValue
}

// StrAttr returns the string attribute name, or defaultValue if absent.
func (n *Node) StrAttr(name, defaultValue string) string {
	if v, ok := n.attrs[name].(string); ok {
		return v
	}
	return defaultValue
}

// IntsAttr returns the integer-list attribute name, or nil if absent.
func (n *Node) IntsAttr(name string) []int64 {
	switch v := n.attrs[name].(type) {
	case []int64:
		return v
	case []any:
		ints := make([]int64, 0, len(v))
		for _, elem := range v {
			switch e := elem.(type) {
			case int64:
				ints = append(ints, e)
			case float64:
				ints = append(ints, int64(e))
			default:
				return nil
			}
		}
		return ints
	}
	return nil
}

// String implements fmt.Stringer. E.g.: "#2 Conv(#0.0, #1.0) -> [(Float32)[1 16 28 28]]".
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	inputs := make([]string, len(n.inputs))
	for i, edge := range n.inputs {
		inputs[i] = edge.String()
	}
	outputs := make([]string, len(n.outputs))
	for i, shape := range n.outputs {
		outputs[i] = shape.String()
	}
	return fmt.Sprintf("#%d %s(%s) -> [%s]", n.idx, n.opType, strings.Join(inputs, ", "), strings.Join(outputs, ", "))
}
