// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomlx/offload/graphview"
)

func TestCapabilityContains(t *testing.T) {
	c := &Capability{Nodes: []graphview.NodeIdx{1, 4, 7}}
	assert.True(t, c.Contains(4))
	assert.False(t, c.Contains(2))
	assert.False(t, c.Contains(-1))
	assert.Equal(t, 3, c.NumNodes())
}

func TestBoundaryString(t *testing.T) {
	internal := Boundary{Producer: 2, Output: 0, Consumer: 5, Slot: 1}
	assert.Equal(t, "#2.0 -> #5.in1", internal.String())

	fromInput := Boundary{Producer: graphview.InvalidNodeIdx, Output: 3, Consumer: 0, Slot: 0}
	assert.Equal(t, "input#3 -> #0.in0", fromInput.String())

	toOutput := Boundary{Producer: 1, Output: 0, Consumer: graphview.InvalidNodeIdx, Slot: 2}
	assert.Equal(t, "#1.0 -> output#2", toOutput.String())
}
