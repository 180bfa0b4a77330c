// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package kernels provides the custom-operator registry the host runtime uses
// to dispatch extension ops (ops outside the device's native set) to
// host-side implementations.
//
// A Kernel is registered per (operator, device kind, element type) in an
// explicitly constructed Registry -- there is no process-wide registry. The
// Kernel interface collapses the "plain compute function vs. stateful kernel
// struct" duality: both are a factory producing an Instance bound to one
// node's static attributes, plus a Compute over an execution context.
package kernels

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/gomlx/offload/devices"
	"github.com/gomlx/offload/graphview"
	"github.com/gomlx/offload/ops"
)

// Context is the execution context of one node invocation: its input tensors
// and pre-allocated output tensors.
type Context struct {
	inputs  []*Tensor
	outputs []*Tensor
}

// NewContext assembles an execution context from input and output tensors.
func NewContext(inputs, outputs []*Tensor) *Context {
	return &Context{inputs: inputs, outputs: outputs}
}

// NumInputs of the context.
func (c *Context) NumInputs() int { return len(c.inputs) }

// Input returns the i-th input tensor, or nil if out of range.
func (c *Context) Input(i int) *Tensor {
	if i < 0 || i >= len(c.inputs) {
		return nil
	}
	return c.inputs[i]
}

// NumOutputs of the context.
func (c *Context) NumOutputs() int { return len(c.outputs) }

// Output returns the i-th output tensor, or nil if out of range.
func (c *Context) Output(i int) *Tensor {
	if i < 0 || i >= len(c.outputs) {
		return nil
	}
	return c.outputs[i]
}

// Instance is a kernel bound to one node's static attributes, ready to
// compute. Instances may hold state between Compute calls (e.g. scratch
// buffers); they are not safe for concurrent use.
type Instance interface {
	Compute(ctx *Context) error
}

// Kernel creates Instances for nodes. Implementations read the node's
// attributes at creation time, so Compute doesn't re-parse them per call.
type Kernel interface {
	Create(node *graphview.Node) (Instance, error)
}

// ComputeFn adapts a plain, stateless compute function into a Kernel.
type ComputeFn func(ctx *Context) error

// Create implements Kernel.
func (f ComputeFn) Create(node *graphview.Node) (Instance, error) {
	return computeFnInstance{f}, nil
}

type computeFnInstance struct {
	fn ComputeFn
}

func (i computeFnInstance) Compute(ctx *Context) error {
	return i.fn(ctx)
}

// Key identifies one kernel registration: the operator, the device kind it
// serves and the element type of the node's first input.
type Key struct {
	Op    ops.OpType
	Kind  devices.Kind
	DType dtypes.DType
}

// Registry maps Keys to Kernels. Construct it explicitly with NewRegistry and
// populate it at setup time; lookups afterwards are read-only, so a populated
// Registry is safe to share across planners.
type Registry struct {
	kernels map[Key]Kernel
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[Key]Kernel)}
}

// Register adds a kernel for the given key. Duplicate registrations are a
// setup bug and reported as an error.
func (r *Registry) Register(key Key, kernel Kernel) error {
	if kernel == nil {
		return errors.Errorf("kernels: nil kernel registered for %v", key)
	}
	if _, found := r.kernels[key]; found {
		return errors.Errorf("kernels: duplicate registration for op %s on %s with dtype %s", key.Op, key.Kind, key.DType)
	}
	r.kernels[key] = kernel
	return nil
}

// Lookup returns the kernel registered for the key, if any.
func (r *Registry) Lookup(key Key) (Kernel, bool) {
	kernel, found := r.kernels[key]
	return kernel, found
}

// Create resolves the kernel for the given node on the given device kind --
// keyed by the node's first input element type -- and creates an Instance
// bound to the node.
func (r *Registry) Create(node *graphview.Node, kind devices.Kind) (Instance, error) {
	if node == nil {
		return nil, errors.New("kernels: cannot create an instance for a nil node")
	}
	if node.NumInputs() == 0 {
		return nil, errors.Errorf("kernels: node %s has no inputs to key the kernel dtype on", node)
	}
	key := Key{Op: node.OpType(), Kind: kind, DType: node.InputShape(0).DType}
	kernel, found := r.kernels[key]
	if !found {
		return nil, errors.Errorf("kernels: no kernel for op %s on %s with dtype %s", key.Op, key.Kind, key.DType)
	}
	return kernel.Create(node)
}
