// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package partition implements the offload partition planner: it walks a
// computation graph once, classifies every node with the dataops oracle, and
// groups the supported nodes into maximal connected subgraphs (Capabilities)
// the host runtime can compile and dispatch to the device as independent
// executable units.
//
// Unsupported nodes are not an error -- they stay with the host and act as
// partition boundaries. Two supported nodes land in the same Capability iff
// they are connected by a path of edges passing only through supported nodes.
//
// A Planner performs a single synchronous, CPU-bound pass: create one Planner
// per (graph, device) partitioning request. Results are deterministic given
// the graph's node order, which the host relies on for compiled-subgraph
// caching.
package partition

import (
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/offload/dataops"
	"github.com/gomlx/offload/devices"
	"github.com/gomlx/offload/graphview"
	"github.com/gomlx/offload/pkg/support/sets"
)

// Planner partitions one graph for one device configuration.
//
// The graph is borrowed and must outlive the Planner. Planners are not safe
// for concurrent use; Execute is meant to be called once.
type Planner struct {
	graph  graphview.GraphView
	device devices.Device
	oracle *dataops.DataOps

	executed        bool
	whollySupported bool
}

// NewPlanner creates a Planner for the given graph and device descriptor
// (e.g. "NPU_FP16", see package devices).
//
// Invalid construction arguments -- a nil graph or an empty/unrecognized
// device descriptor -- are reported here, not deferred to Execute.
func NewPlanner(graph graphview.GraphView, deviceDescriptor string) (*Planner, error) {
	if graph == nil {
		return nil, errors.New("partition.NewPlanner: graph must not be nil")
	}
	device, err := devices.Parse(deviceDescriptor)
	if err != nil {
		return nil, errors.WithMessage(err, "partition.NewPlanner")
	}
	return &Planner{
		graph:  graph,
		device: device,
		oracle: dataops.New(device),
	}, nil
}

// Device the planner targets.
func (p *Planner) Device() devices.Device { return p.device }

// Execute runs the partitioning pass and returns the Capabilities, ownership
// transferring to the caller.
//
// It fails only if the graph collaborator is structurally inconsistent
// (dangling edge endpoints); no partial result is returned in that case.
func (p *Planner) Execute() ([]*Capability, error) {
	if err := p.graph.Validate(); err != nil {
		return nil, errors.WithMessage(err, "partition: cannot partition a structurally inconsistent graph")
	}
	numNodes := p.graph.NumNodes()
	supported, numSupported := p.classify()
	components := p.group(supported, numSupported)
	capabilities := p.materialize(components)

	// An empty graph is wholly supported by convention (vacuously): there is
	// nothing the device cannot execute.
	p.whollySupported = numSupported == numNodes && len(components) <= 1
	p.executed = true
	klog.V(1).Infof("partition[%s]: graph %q: %d/%d nodes supported, %d capabilities, wholly supported: %v",
		p.device, p.graph.Name(), numSupported, numNodes, len(capabilities), p.whollySupported)
	return capabilities, nil
}

// IsWhollySupportedGraph returns whether the last Execute found the entire
// graph to reduce to a single Capability spanning all nodes. Only valid after
// Execute has run; it returns false before that.
func (p *Planner) IsWhollySupportedGraph() bool {
	if !p.executed {
		klog.Warning("partition: IsWhollySupportedGraph queried before Execute, result is meaningless")
		return false
	}
	return p.whollySupported
}

// classify queries the oracle for every node, in index order.
func (p *Planner) classify() (supported []bool, numSupported int) {
	numNodes := p.graph.NumNodes()
	supported = make([]bool, numNodes)
	for idx := range numNodes {
		node := p.graph.Node(graphview.NodeIdx(idx))
		ok, reason := p.oracle.SupportedWithReason(node)
		supported[idx] = ok
		if ok {
			numSupported++
		} else if klog.V(2).Enabled() {
			klog.Infof("partition[%s]: node %s stays on host: %s", p.device, node, reason)
		}
	}
	return
}

// group computes the maximal connected components of the subgraph induced by
// the supported nodes: edges touching an unsupported node do not connect.
//
// Components are discovered by ascending minimum node index and their node
// lists are ascending, making the result deterministic.
func (p *Planner) group(supported []bool, numSupported int) [][]graphview.NodeIdx {
	visited := sets.Make[graphview.NodeIdx](numSupported)
	var components [][]graphview.NodeIdx
	for start := range supported {
		startIdx := graphview.NodeIdx(start)
		if !supported[start] || visited.Has(startIdx) {
			continue
		}
		var component []graphview.NodeIdx
		queue := []graphview.NodeIdx{startIdx}
		visited.Insert(startIdx)
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)
			node := p.graph.Node(current)
			for _, edge := range node.Inputs() {
				if edge.IsGraphInput() || !supported[edge.Producer] || visited.Has(edge.Producer) {
					continue
				}
				visited.Insert(edge.Producer)
				queue = append(queue, edge.Producer)
			}
			for _, consumer := range p.graph.Consumers(current) {
				if !supported[consumer] || visited.Has(consumer) {
					continue
				}
				visited.Insert(consumer)
				queue = append(queue, consumer)
			}
		}
		slices.Sort(component)
		components = append(components, component)
	}
	return components
}

// materialize builds one Capability per component, deriving the boundary
// edges: any edge with exactly one endpoint inside the component is a
// boundary input (component on the destination side) or output (component on
// the source side). Edges wholly internal to a component are not boundary.
func (p *Planner) materialize(components [][]graphview.NodeIdx) []*Capability {
	numNodes := p.graph.NumNodes()
	componentOf := make([]int, numNodes)
	for i := range componentOf {
		componentOf[i] = -1
	}
	capabilities := make([]*Capability, len(components))
	for compID, component := range components {
		for _, idx := range component {
			componentOf[idx] = compID
		}
		capabilities[compID] = &Capability{Nodes: component}
	}

	for idx := range numNodes {
		consumer := graphview.NodeIdx(idx)
		consumerComp := componentOf[idx]
		node := p.graph.Node(consumer)
		for slot, edge := range node.Inputs() {
			producerComp := -1
			if !edge.IsGraphInput() {
				producerComp = componentOf[edge.Producer]
			}
			if producerComp == consumerComp {
				// Internal edge, or neither endpoint offloaded.
				continue
			}
			boundary := Boundary{Producer: edge.Producer, Output: edge.Output, Consumer: consumer, Slot: slot}
			if consumerComp >= 0 {
				c := capabilities[consumerComp]
				c.Inputs = append(c.Inputs, boundary)
			}
			if producerComp >= 0 {
				c := capabilities[producerComp]
				c.Outputs = append(c.Outputs, boundary)
			}
		}
	}
	for i := 0; i < p.graph.NumOutputs(); i++ {
		edge := p.graph.Output(i)
		if edge.IsGraphInput() {
			continue
		}
		producerComp := componentOf[edge.Producer]
		if producerComp < 0 {
			continue
		}
		c := capabilities[producerComp]
		c.Outputs = append(c.Outputs, Boundary{
			Producer: edge.Producer,
			Output:   edge.Output,
			Consumer: graphview.InvalidNodeIdx,
			Slot:     i,
		})
	}

	// Inputs were collected by ascending (Consumer, Slot) already; outputs
	// get the documented (Producer, Output, Consumer, Slot) order.
	for _, c := range capabilities {
		slices.SortFunc(c.Outputs, compareOutputs)
	}
	return capabilities
}

func compareOutputs(a, b Boundary) int {
	if a.Producer != b.Producer {
		return int(a.Producer - b.Producer)
	}
	if a.Output != b.Output {
		return a.Output - b.Output
	}
	// Graph outputs (Consumer == InvalidNodeIdx) sort before node consumers
	// of the same value: InvalidNodeIdx is -1.
	if a.Consumer != b.Consumer {
		return int(a.Consumer - b.Consumer)
	}
	return a.Slot - b.Slot
}
