// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dataops implements the operator support oracle: a pure,
// stateless-per-query classifier answering "can device D execute node N with
// its current input/output types and attributes?".
//
// Support is decided in layers:
//
//  1. Operator allow-list lookup in the device's support matrix.
//  2. Type constraints: every input and output element type must be in the
//     device's supported dtype set, and dynamic shapes are rejected on
//     devices that require static shapes.
//  3. Operator-specific structural checks (attribute ranges, unsupported
//     attribute combinations) layered on top.
//
// Classification is never an error: unknown operators and malformed nodes
// (missing shape information the oracle structurally needs) are simply
// reported as unsupported.
package dataops

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/gomlx/offload/devices"
	"github.com/gomlx/offload/graphview"
	"github.com/gomlx/offload/ops"
)

// DataOps answers per-node support queries for one fixed device
// configuration.
//
// It is stateless across queries except for an internal memo of allow-list
// lookups, which is scoped to the instance: create one DataOps per partition
// pass (the Planner does this) and instances never share state.
type DataOps struct {
	device   devices.Device
	caps     devices.Capabilities
	checkers map[ops.OpType]checker
	opMemo   map[ops.OpType]bool
}

// checker is an operator-specific structural validator, run only after the
// allow-list and dtype layers accepted the node.
type checker func(d *DataOps, node *graphview.Node) (ok bool, reason string)

// New creates a DataOps oracle for the given device. The device must have
// been created by devices.Parse, which guarantees a support matrix exists.
func New(device devices.Device) *DataOps {
	return &DataOps{
		device:   device,
		caps:     device.Capabilities(),
		checkers: newCheckers(),
		opMemo:   make(map[ops.OpType]bool),
	}
}

// Device the oracle answers queries for.
func (d *DataOps) Device() devices.Device { return d.device }

// IsSupported returns whether the device can execute the given node.
func (d *DataOps) IsSupported(node *graphview.Node) bool {
	ok, _ := d.SupportedWithReason(node)
	return ok
}

// SupportedWithReason returns whether the device can execute the given node,
// and if not, a short diagnostic reason. The reason is ephemeral, meant for
// logging only.
func (d *DataOps) SupportedWithReason(node *graphview.Node) (bool, string) {
	ok, reason := d.classify(node)
	if !ok && klog.V(3).Enabled() {
		klog.Infof("dataops[%s]: rejecting %s: %s", d.device, node, reason)
	}
	return ok, reason
}

func (d *DataOps) classify(node *graphview.Node) (bool, string) {
	if node == nil {
		return false, "nil node"
	}
	opType := node.OpType()
	if !d.opAllowed(opType) {
		return false, fmt.Sprintf("operator %s is not in the %s allow-list", opType, d.device)
	}
	for i := 0; i < node.NumOutputs(); i++ {
		if ok, reason := d.checkShape(node.OutputShape(i), "output", i); !ok {
			return false, reason
		}
	}
	for i := 0; i < node.NumInputs(); i++ {
		if ok, reason := d.checkShape(node.InputShape(i), "input", i); !ok {
			return false, reason
		}
	}
	if check, found := d.checkers[opType]; found {
		return check(d, node)
	}
	return true, ""
}

func (d *DataOps) checkShape(shape graphview.Shape, role string, i int) (bool, string) {
	if !shape.Ok() {
		return false, fmt.Sprintf("%s %d has no shape information", role, i)
	}
	if !d.caps.DTypes[shape.DType] {
		return false, fmt.Sprintf("%s %d dtype %s is not supported on %s", role, i, shape.DType, d.device)
	}
	if shape.IsDynamic() && !d.caps.SupportsDynamicShapes {
		return false, fmt.Sprintf("%s %d has a dynamic shape, %s requires static shapes", role, i, d.device)
	}
	return true, ""
}

// opAllowed memoizes the allow-list lookup per operator type. Unknown or
// invalid operator types are never allowed.
func (d *DataOps) opAllowed(opType ops.OpType) bool {
	if allowed, found := d.opMemo[opType]; found {
		return allowed
	}
	allowed := opType > ops.OpTypeInvalid && opType < ops.OpTypeLast && d.caps.Operations[opType]
	d.opMemo[opType] = allowed
	return allowed
}
