// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package devices defines the accelerator device descriptors the offload
// planner targets, and the per-device operator/dtype support matrices the
// oracle consults.
//
// A device descriptor is a string of the form "<kind>_<precision>", e.g.
// "CPU_FP32", "GPU_FP16" or "NPU_FP16". A bare kind ("GPU") defaults to the
// FP32 precision profile. Unknown descriptors are a configuration error
// reported at parse time, never deferred to partitioning.
package devices

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind of accelerator device.
type Kind int

const (
	KindInvalid Kind = iota
	KindCPU
	KindGPU
	KindNPU
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "CPU"
	case KindGPU:
		return "GPU"
	case KindNPU:
		return "NPU"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Precision profile the device is configured for.
type Precision int

const (
	PrecisionInvalid Precision = iota
	PrecisionFP32
	PrecisionFP16
)

// String implements fmt.Stringer.
func (p Precision) String() string {
	switch p {
	case PrecisionFP32:
		return "FP32"
	case PrecisionFP16:
		return "FP16"
	}
	return fmt.Sprintf("Precision(%d)", p)
}

// Device identifies one target accelerator configuration: a device kind plus
// its precision profile. It is immutable and cheap to copy.
type Device struct {
	Kind      Kind
	Precision Precision
}

// String returns the canonical descriptor, e.g. "NPU_FP16".
func (d Device) String() string {
	return fmt.Sprintf("%s_%s", d.Kind, d.Precision)
}

// Valid returns whether both kind and precision are set.
func (d Device) Valid() bool {
	return d.Kind != KindInvalid && d.Precision != PrecisionInvalid
}

// Parse converts a device descriptor string into a Device.
//
// It fails for empty or unrecognized descriptors, and for kind/precision
// combinations with no support matrix (e.g. "NPU_FP32" -- the NPU only runs
// reduced precision).
func Parse(descriptor string) (Device, error) {
	if descriptor == "" {
		return Device{}, errors.New("empty device descriptor -- expected \"<kind>_<precision>\", e.g. \"GPU_FP16\"")
	}
	kindStr, precisionStr, hasPrecision := strings.Cut(descriptor, "_")
	var device Device
	switch strings.ToUpper(kindStr) {
	case "CPU":
		device.Kind = KindCPU
	case "GPU":
		device.Kind = KindGPU
	case "NPU":
		device.Kind = KindNPU
	default:
		return Device{}, errors.Errorf("unknown device kind %q in descriptor %q", kindStr, descriptor)
	}
	if !hasPrecision {
		device.Precision = PrecisionFP32
	} else {
		switch strings.ToUpper(precisionStr) {
		case "FP32":
			device.Precision = PrecisionFP32
		case "FP16":
			device.Precision = PrecisionFP16
		default:
			return Device{}, errors.Errorf("unknown precision %q in descriptor %q", precisionStr, descriptor)
		}
	}
	if _, err := capabilitiesFor(device); err != nil {
		return Device{}, err
	}
	return device, nil
}

// Capabilities returns the immutable support matrix for the device. The
// returned value is shared, callers must Clone it before modifying.
//
// It panics if the device was not created by Parse -- Parse already checked a
// matrix exists.
func (d Device) Capabilities() Capabilities {
	caps, err := capabilitiesFor(d)
	if err != nil {
		panic(err)
	}
	return caps
}
