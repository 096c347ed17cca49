// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// DeviceKind is the class of a placement target.
type DeviceKind uint8

const (
	// DeviceCPU is host memory.
	DeviceCPU DeviceKind = iota
	// DeviceCUDA is an accelerator addressed by ordinal.
	DeviceCUDA
)

// String returns "cpu" or "cuda".
func (k DeviceKind) String() string {
	switch k {
	case DeviceCPU:
		return "cpu"
	case DeviceCUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// Device identifies where a tensor's data is declared to live.
// Two devices are equal when both Kind and Index match.
type Device struct {
	Kind  DeviceKind
	Index int
}

// CPU is the default host device.
var CPU = Device{Kind: DeviceCPU}

// CUDA returns the accelerator device with the given ordinal.
func CUDA(index int) Device {
	return Device{Kind: DeviceCUDA, Index: index}
}

// String formats the device as "<kind>:<index>".
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Kind, d.Index)
}

// ParseDevice parses "cpu", "cpu:0", "cuda" or "cuda:N".
// An omitted ordinal means 0.
func ParseDevice(s string) (Device, error) {
	kind, ord, hasOrd := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	var d Device
	switch kind {
	case "cpu":
		d.Kind = DeviceCPU
	case "cuda", "gpu":
		d.Kind = DeviceCUDA
	default:
		return Device{}, fmt.Errorf("ParseDevice(%q): %w", s, ErrUnknownDevice)
	}
	if hasOrd {
		n, err := strconv.Atoi(ord)
		if err != nil || n < 0 {
			return Device{}, fmt.Errorf("ParseDevice(%q): %w", s, ErrUnknownDevice)
		}
		d.Index = n
	}

	return d, nil
}
