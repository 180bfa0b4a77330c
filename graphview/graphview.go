// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package graphview defines the read-only computation graph interface consumed
// by the offload partition planner, along with a reference in-memory
// implementation (Graph) used by hosts, tests and tools.
//
// The graph is an immutable directed acyclic multigraph: Nodes connected by
// Edges carrying tensor values. The planner never mutates it, it only walks
// nodes in index order and follows edges.
//
// To simplify error handling during graph construction, the Graph builder
// methods "throw" (panic) with a stack trace on malformed wiring -- see
// package github.com/gomlx/exceptions. Graphs deserialized from external data
// are checked with Validate instead, which returns an error.
package graphview

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/gomlx/offload/ops"
)

// GraphView is the read-only view of a computation graph consumed by the
// partition planner and the operator support oracle.
//
// Implementations must provide a stable node iteration order: Node(i) for
// i in [0, NumNodes()) always enumerates the same nodes in the same order.
// This is what makes partitioning deterministic and compiled-subgraph caching
// by the host reproducible.
type GraphView interface {
	// Name of the graph, for diagnostics.
	Name() string

	// NumNodes returns the number of nodes in the graph.
	NumNodes() int

	// Node returns the node at the given index, or nil if out of range.
	Node(idx NodeIdx) *Node

	// NumInputs returns the number of graph-level inputs (values fed by the
	// host at execution time).
	NumInputs() int

	// InputShape returns the shape of the i-th graph input.
	InputShape(i int) Shape

	// NumOutputs returns the number of graph-level outputs.
	NumOutputs() int

	// Output returns the edge producing the i-th graph output.
	Output(i int) Edge

	// Consumers returns the indices of the nodes consuming any output of the
	// given node, in ascending order, without duplicates.
	Consumers(idx NodeIdx) []NodeIdx

	// Validate checks the structural integrity of the graph: every edge
	// endpoint must resolve to an existing graph input, node output or graph
	// output. A validation failure is a contract violation by the graph owner
	// and is fatal for any partitioning pass over it.
	Validate() error
}

// Graph is the reference in-memory GraphView implementation.
//
// Build it with New, AddInput, AddNode and AddOutput. Once handed to a
// Planner it must not be modified anymore and must outlive the Planner.
type Graph struct {
	name      string
	inputs    []Shape
	nodes     []*Node
	outputs   []Edge
	consumers [][]NodeIdx
}

// Compile-time check that *Graph implements GraphView.
var _ GraphView = (*Graph)(nil)

// New creates an empty Graph with the given name.
func New(name string) *Graph {
	return &Graph{name: name}
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// NumNodes returns the number of nodes added so far.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Node returns the node at the given index, or nil if out of range.
func (g *Graph) Node(idx NodeIdx) *Node {
	if idx < 0 || int(idx) >= len(g.nodes) {
		return nil
	}
	return g.nodes[idx]
}

// NumInputs returns the number of graph inputs.
func (g *Graph) NumInputs() int { return len(g.inputs) }

// InputShape returns the shape of the i-th graph input.
func (g *Graph) InputShape(i int) Shape {
	if i < 0 || i >= len(g.inputs) {
		return Shape{}
	}
	return g.inputs[i]
}

// NumOutputs returns the number of graph outputs.
func (g *Graph) NumOutputs() int { return len(g.outputs) }

// Output returns the edge producing the i-th graph output.
func (g *Graph) Output(i int) Edge {
	if i < 0 || i >= len(g.outputs) {
		return Edge{Producer: InvalidNodeIdx, Output: -1}
	}
	return g.outputs[i]
}

// AddInput declares a graph-level input with the given shape and returns the
// edge by which nodes can consume it.
func (g *Graph) AddInput(shape Shape) Edge {
	if !shape.Ok() {
		exceptions.Panicf("graphview.Graph %q: AddInput with invalid shape", g.name)
	}
	g.inputs = append(g.inputs, shape)
	g.consumersInvalidated()
	return Edge{Producer: InvalidNodeIdx, Output: len(g.inputs) - 1}
}

// AddNode appends a node to the graph and returns it.
//
// Inputs must refer to graph inputs or to outputs of previously added nodes
// (the index order is a topological order by construction). It panics with a
// stack trace on malformed wiring: forward or out-of-range references, or
// invalid output shapes.
func (g *Graph) AddNode(opType ops.OpType, name string, inputs []Edge, outputs []Shape, attrs Attributes) *Node {
	idx := NodeIdx(len(g.nodes))
	for i, edge := range inputs {
		if edge.IsGraphInput() {
			if edge.Output < 0 || edge.Output >= len(g.inputs) {
				exceptions.Panicf("graphview.Graph %q: node %q input %d refers to graph input %d, graph has %d inputs",
					g.name, name, i, edge.Output, len(g.inputs))
			}
			continue
		}
		if edge.Producer >= idx || edge.Producer < 0 {
			exceptions.Panicf("graphview.Graph %q: node %q (#%d) input %d refers to node #%d -- inputs must refer to previously added nodes",
				g.name, name, idx, i, edge.Producer)
		}
		if producer := g.nodes[edge.Producer]; edge.Output < 0 || edge.Output >= producer.NumOutputs() {
			exceptions.Panicf("graphview.Graph %q: node %q input %d refers to output %d of node %q, which has %d outputs",
				g.name, name, i, edge.Output, producer.name, producer.NumOutputs())
		}
	}
	if len(outputs) == 0 {
		exceptions.Panicf("graphview.Graph %q: node %q must produce at least one output", g.name, name)
	}
	for i, shape := range outputs {
		if !shape.Ok() {
			exceptions.Panicf("graphview.Graph %q: node %q output %d has an invalid shape", g.name, name, i)
		}
	}
	node := &Node{
		graph:   g,
		idx:     idx,
		opType:  opType,
		name:    name,
		inputs:  append([]Edge(nil), inputs...),
		outputs: append([]Shape(nil), outputs...),
		attrs:   attrs,
	}
	g.nodes = append(g.nodes, node)
	g.consumersInvalidated()
	return node
}

// Out returns the edge carrying the node's i-th output value, convenient when
// wiring up a graph by hand.
func (n *Node) Out(i int) Edge {
	return Edge{Producer: n.idx, Output: i}
}

// AddOutput marks the value produced by the given edge as a graph output.
func (g *Graph) AddOutput(edge Edge) {
	if err := g.checkEdge(edge); err != nil {
		exceptions.Panicf("graphview.Graph %q: AddOutput: %v", g.name, err)
	}
	g.outputs = append(g.outputs, edge)
}

// Consumers returns the indices of nodes consuming any output of the given
// node, ascending, without duplicates. The underlying table is built lazily
// and cached until the graph changes.
func (g *Graph) Consumers(idx NodeIdx) []NodeIdx {
	if idx < 0 || int(idx) >= len(g.nodes) {
		return nil
	}
	if g.consumers == nil {
		g.buildConsumers()
	}
	return g.consumers[idx]
}

func (g *Graph) consumersInvalidated() {
	g.consumers = nil
}

func (g *Graph) buildConsumers() {
	g.consumers = make([][]NodeIdx, len(g.nodes))
	for _, node := range g.nodes {
		seen := make(map[NodeIdx]bool)
		for _, edge := range node.inputs {
			if edge.IsGraphInput() || seen[edge.Producer] {
				continue
			}
			seen[edge.Producer] = true
			g.consumers[edge.Producer] = append(g.consumers[edge.Producer], node.idx)
		}
	}
	// Nodes are scanned in ascending order, so each consumer list is already
	// sorted.
}

func (g *Graph) checkEdge(edge Edge) error {
	if edge.IsGraphInput() {
		if edge.Output < 0 || edge.Output >= len(g.inputs) {
			return errors.Errorf("edge refers to graph input %d, graph has %d inputs", edge.Output, len(g.inputs))
		}
		return nil
	}
	if edge.Producer < 0 || int(edge.Producer) >= len(g.nodes) {
		return errors.Errorf("edge refers to node #%d, graph has %d nodes", edge.Producer, len(g.nodes))
	}
	if producer := g.nodes[edge.Producer]; edge.Output < 0 || edge.Output >= producer.NumOutputs() {
		return errors.Errorf("edge refers to output %d of node %q (#%d), which has %d outputs",
			edge.Output, producer.name, edge.Producer, producer.NumOutputs())
	}
	return nil
}

// Validate checks the structural integrity of the graph. See GraphView.Validate.
func (g *Graph) Validate() error {
	for _, node := range g.nodes {
		for i, edge := range node.inputs {
			if err := g.checkEdge(edge); err != nil {
				return errors.WithMessagef(err, "graph %q: node %q (#%d) input %d is dangling", g.name, node.name, node.idx, i)
			}
		}
		if len(node.outputs) == 0 {
			return errors.Errorf("graph %q: node %q (#%d) has no outputs", g.name, node.name, node.idx)
		}
	}
	for i, edge := range g.outputs {
		if err := g.checkEdge(edge); err != nil {
			return errors.WithMessagef(err, "graph %q: output %d is dangling", g.name, i)
		}
	}
	return nil
}

// String implements fmt.Stringer with a short summary of the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph %q: %d inputs, %d nodes, %d outputs", g.name, len(g.inputs), len(g.nodes), len(g.outputs))
}
