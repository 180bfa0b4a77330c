// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/offload/graphview"
)

// Boundary identifies one edge crossing a Capability's border: exactly one of
// its endpoints is inside the capability.
//
// Producer is InvalidNodeIdx when the value is fed by a graph input (Output is
// then the graph input number). Consumer is InvalidNodeIdx when the value is
// consumed as a graph output (Slot is then the graph output number).
type Boundary struct {
	Producer graphview.NodeIdx
	Output   int
	Consumer graphview.NodeIdx
	Slot     int
}

// String implements fmt.Stringer.
func (b Boundary) String() string {
	producer := graphview.Edge{Producer: b.Producer, Output: b.Output}.String()
	if b.Consumer == graphview.InvalidNodeIdx {
		return fmt.Sprintf("%s -> output#%d", producer, b.Slot)
	}
	return fmt.Sprintf("%s -> #%d.in%d", producer, b.Consumer, b.Slot)
}

// Capability is one maximal connected group of supported nodes, handed back
// to the host runtime to compile and dispatch as a single executable unit.
//
// Ownership transfers to the caller of Planner.Execute; the planner keeps no
// reference.
type Capability struct {
	// Nodes inside the capability, ascending.
	Nodes []graphview.NodeIdx

	// Inputs are the edges entering the capability (values it consumes from
	// outside), ordered by (Consumer, Slot).
	Inputs []Boundary

	// Outputs are the edges leaving the capability (values it produces that
	// are consumed outside, including graph outputs), ordered by
	// (Producer, Output, Consumer, Slot).
	Outputs []Boundary
}

// NumNodes returns the number of nodes in the capability.
func (c *Capability) NumNodes() int { return len(c.Nodes) }

// Contains returns whether the given node belongs to the capability, using a
// binary search over the ascending node list.
func (c *Capability) Contains(idx graphview.NodeIdx) bool {
	_, found := slices.BinarySearch(c.Nodes, idx)
	return found
}

// String implements fmt.Stringer with a short summary.
func (c *Capability) String() string {
	nodes := make([]string, len(c.Nodes))
	for i, idx := range c.Nodes {
		nodes[i] = fmt.Sprintf("#%d", idx)
	}
	return fmt.Sprintf("Capability{%d nodes: [%s], %d inputs, %d outputs}",
		len(c.Nodes), strings.Join(nodes, " "), len(c.Inputs), len(c.Outputs))
}
