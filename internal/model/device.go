package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	RuntimePrefix    = "com.apple.CoreSimulator.SimRuntime."
	DeviceTypePrefix = "com.apple.CoreSimulator.SimDeviceType."

	unknownRuntime    = "[unknown runtime]"
	unknownDeviceType = "[unknown device type]"

	// TimestampLayout is how creation times are shown next to a device.
	TimestampLayout = "2006-01-02 15:04:05 -0700"
)

// Device is one simulator registered with CoreSimulator.
//
// Runtime and DeviceType are nil when simctl did not report them. Values
// are fixed at construction; use the accessors to read them.
type Device struct {
	runtime    *string
	name       string
	deviceType *string
	identifier string
	timestamp  time.Time
}

// NewDevice builds a Device. A nil runtime or deviceType marks the
// attribute as unknown.
func NewDevice(runtime *string, name string, deviceType *string, identifier string, timestamp time.Time) Device {
	return Device{
		runtime:    cloneString(runtime),
		name:       name,
		deviceType: cloneString(deviceType),
		identifier: identifier,
		timestamp:  timestamp,
	}
}

func (d Device) Runtime() (string, bool) {
	if d.runtime == nil {
		return "", false
	}
	return *d.runtime, true
}

func (d Device) DeviceType() (string, bool) {
	if d.deviceType == nil {
		return "", false
	}
	return *d.deviceType, true
}

func (d Device) Name() string         { return d.name }
func (d Device) Identifier() string   { return d.identifier }
func (d Device) Timestamp() time.Time { return d.timestamp }

// EquivalentTo reports whether both devices have a known runtime and device
// type and both match exactly.
func (d Device) EquivalentTo(other Device) bool {
	if d.runtime == nil || d.deviceType == nil {
		return false
	}
	if other.runtime == nil || other.deviceType == nil {
		return false
	}
	return *d.runtime == *other.runtime && *d.deviceType == *other.deviceType
}

// String renders the device for the duplicate report, e.g.
// "iPhone 15 (iOS-17-0) – iPhone-15 5A1D... [2024-01-02 10:00:00 +0000]".
func (d Device) String() string {
	return fmt.Sprintf("%s (%s) – %s %s [%s]",
		d.name,
		displayIdentifier(d.runtime, RuntimePrefix, unknownRuntime),
		displayIdentifier(d.deviceType, DeviceTypePrefix, unknownDeviceType),
		d.identifier,
		d.timestamp.Format(TimestampLayout),
	)
}

func displayIdentifier(value *string, prefix, placeholder string) string {
	if value == nil {
		return placeholder
	}
	return strings.ReplaceAll(*value, prefix, "")
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr is a convenience for building optional identifiers.
func StringPtr(s string) *string {
	return &s
}
