// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package devices

import (
	"maps"

	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/offload/ops"
)

// Capabilities holds mappings of what is supported by a device configuration.
type Capabilities struct {
	// Operations supported by the device.
	// If not listed, it's assumed to be false, hence not supported.
	Operations map[ops.OpType]bool

	// DTypes list the tensor element types supported by the device.
	// If not listed, it's assumed to be false, hence not supported.
	DTypes map[dtypes.DType]bool

	// SupportsDynamicShapes indicates whether the device can execute nodes
	// whose shapes are only known at execution time.
	SupportsDynamicShapes bool
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.Operations = make(map[ops.OpType]bool, len(c.Operations))
	maps.Copy(c2.Operations, c.Operations)
	c2.DTypes = make(map[dtypes.DType]bool, len(c.DTypes))
	maps.Copy(c2.DTypes, c.DTypes)
	c2.SupportsDynamicShapes = c.SupportsDynamicShapes
	return c2
}
