// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// offload_planner partitions a computation graph (in the graphview JSON
// interchange format) for a target device and reports the resulting
// capabilities.
//
// Usage:
//
//	offload_planner -device=NPU_FP16 model.json
//	offload_planner -device=GPU_FP16 -verdicts model.json
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gomlx/offload/dataops"
	"github.com/gomlx/offload/devices"
	"github.com/gomlx/offload/graphview"
	"github.com/gomlx/offload/partition"
)

var (
	flagDevice = flag.String("device", "CPU_FP32",
		fmt.Sprintf("Target device descriptor. One of: %s.", strings.Join(devices.SupportedDescriptors(), ", ")))
	flagVerdicts = flag.Bool("verdicts", false,
		"Also print the per-node oracle verdicts, including why rejected nodes stay on the host.")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Errorf("Missing graph JSON file to partition. See 'offload_planner -help'.")
		os.Exit(1)
	}
	if len(args) > 1 {
		klog.Errorf("Too many arguments. See 'offload_planner -help'.")
		os.Exit(1)
	}
	report(args[0])
}

func report(graphPath string) {
	file := must.M1(os.Open(graphPath))
	defer func() { _ = file.Close() }()
	graph := must.M1(graphview.Load(file))

	planner := must.M1(partition.NewPlanner(graph, *flagDevice))
	capabilities := must.M1(planner.Execute())

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s on %s", graph, planner.Device())))

	if *flagVerdicts {
		printVerdicts(graph, planner.Device())
	}
	printCapabilities(graph, capabilities)
	fmt.Printf("Wholly supported graph: %v\n\n", planner.IsWhollySupportedGraph())
}

func printVerdicts(graph *graphview.Graph, device devices.Device) {
	oracle := dataops.New(device)
	table := newPlainTable(true)
	table.Row("Node", "Op", "Supported", "Reason")
	for idx := 0; idx < graph.NumNodes(); idx++ {
		node := graph.Node(graphview.NodeIdx(idx))
		ok, reason := oracle.SupportedWithReason(node)
		supported := "yes"
		if !ok {
			supported = "no"
		}
		table.Row(fmt.Sprintf("#%d %s", idx, node.Name()), node.OpType().String(), supported, reason)
	}
	fmt.Println(table.Render())
}

func printCapabilities(graph *graphview.Graph, capabilities []*partition.Capability) {
	if len(capabilities) == 0 {
		fmt.Println("No capabilities: every node stays on the host.")
		return
	}
	table := newPlainTable(true)
	table.Row("Capability", "Nodes", "Node Indices", "Inputs", "Outputs")
	for i, capability := range capabilities {
		table.Row(
			fmt.Sprintf("%d", i),
			humanize.Comma(int64(capability.NumNodes())),
			nodeList(capability),
			fmt.Sprintf("%d", len(capability.Inputs)),
			fmt.Sprintf("%d", len(capability.Outputs)))
	}
	fmt.Println(table.Render())
}

// nodeList formats the capability's node indices, elided in the middle when
// too long for a table cell.
func nodeList(capability *partition.Capability) string {
	const maxShown = 8
	indices := capability.Nodes
	parts := make([]string, 0, maxShown+1)
	if len(indices) <= maxShown {
		for _, idx := range indices {
			parts = append(parts, fmt.Sprintf("#%d", idx))
		}
	} else {
		for _, idx := range indices[:maxShown/2] {
			parts = append(parts, fmt.Sprintf("#%d", idx))
		}
		parts = append(parts, "…")
		for _, idx := range indices[len(indices)-maxShown/2:] {
			parts = append(parts, fmt.Sprintf("#%d", idx))
		}
	}
	return strings.Join(parts, " ")
}
