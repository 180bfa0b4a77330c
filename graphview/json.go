// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graphview

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/gomlx/offload/ops"
)

// JSON interchange format for graphs, used by tests and the offload_planner
// tool to share fixtures. It is not the host runtime's serialization format.
//
// Example:
//
//	{
//	  "name": "mnist",
//	  "inputs": [{"dtype": "Float32", "dims": [1, 1, 28, 28]}],
//	  "nodes": [
//	    {"op": "Conv", "name": "conv0",
//	     "inputs": [{"node": -1, "output": 0}],
//	     "outputs": [{"dtype": "Float32", "dims": [1, 16, 28, 28]}]}
//	  ],
//	  "outputs": [{"node": 0, "output": 0}]
//	}

type jsonShape struct {
	DType string `json:"dtype"`
	Dims  []int  `json:"dims,omitempty"`
}

type jsonEdge struct {
	Node   int `json:"node"`
	Output int `json:"output"`
}

type jsonNode struct {
	Op      string         `json:"op"`
	Name    string         `json:"name,omitempty"`
	Inputs  []jsonEdge     `json:"inputs,omitempty"`
	Outputs []jsonShape    `json:"outputs"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

type jsonGraph struct {
	Name    string      `json:"name,omitempty"`
	Inputs  []jsonShape `json:"inputs,omitempty"`
	Nodes   []jsonNode  `json:"nodes"`
	Outputs []jsonEdge  `json:"outputs,omitempty"`
}

func shapeToJSON(s Shape) jsonShape {
	return jsonShape{DType: s.DType.String(), Dims: s.Dimensions}
}

func shapeFromJSON(js jsonShape) (Shape, error) {
	dtype, err := dtypes.DTypeString(js.DType)
	if err != nil {
		return Shape{}, errors.Wrapf(err, "unknown dtype %q", js.DType)
	}
	return Shape{DType: dtype, Dimensions: js.Dims}, nil
}

// Load reads a graph in the JSON interchange format and validates its
// structure. Malformed wiring is reported as an error, never a panic, since
// the data comes from outside the process.
func Load(r io.Reader) (*Graph, error) {
	var jg jsonGraph
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&jg); err != nil {
		return nil, errors.Wrap(err, "failed to decode graph JSON")
	}
	g := New(jg.Name)
	for i, js := range jg.Inputs {
		shape, err := shapeFromJSON(js)
		if err != nil {
			return nil, errors.WithMessagef(err, "graph input %d", i)
		}
		g.inputs = append(g.inputs, shape)
	}
	for i, jn := range jg.Nodes {
		opType, err := ops.OpTypeString(jn.Op)
		if err != nil {
			return nil, errors.Wrapf(err, "node %d (%q): unknown op %q", i, jn.Name, jn.Op)
		}
		node := &Node{
			graph:  g,
			idx:    NodeIdx(i),
			opType: opType,
			name:   jn.Name,
			attrs:  jn.Attrs,
		}
		for _, je := range jn.Inputs {
			node.inputs = append(node.inputs, Edge{Producer: NodeIdx(je.Node), Output: je.Output})
		}
		for j, js := range jn.Outputs {
			shape, err := shapeFromJSON(js)
			if err != nil {
				return nil, errors.WithMessagef(err, "node %d (%q) output %d", i, jn.Name, j)
			}
			node.outputs = append(node.outputs, shape)
		}
		g.nodes = append(g.nodes, node)
	}
	for _, je := range jg.Outputs {
		g.outputs = append(g.outputs, Edge{Producer: NodeIdx(je.Node), Output: je.Output})
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Save writes the graph in the JSON interchange format.
func (g *Graph) Save(w io.Writer) error {
	jg := jsonGraph{Name: g.name}
	for _, shape := range g.inputs {
		jg.Inputs = append(jg.Inputs, shapeToJSON(shape))
	}
	for _, node := range g.nodes {
		jn := jsonNode{
			Op:    node.opType.String(),
			Name:  node.name,
			Attrs: node.attrs,
		}
		for _, edge := range node.inputs {
			jn.Inputs = append(jn.Inputs, jsonEdge{Node: int(edge.Producer), Output: edge.Output})
		}
		for _, shape := range node.outputs {
			jn.Outputs = append(jn.Outputs, shapeToJSON(shape))
		}
		jg.Nodes = append(jg.Nodes, jn)
	}
	for _, edge := range g.outputs {
		jg.Outputs = append(jg.Outputs, jsonEdge{Node: int(edge.Producer), Output: edge.Output})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&jg); err != nil {
		return errors.Wrapf(err, "failed to encode graph %q to JSON", g.name)
	}
	return nil
}
