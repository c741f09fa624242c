package registry

import (
	"fmt"
	"sort"
	"time"

	"github.com/ThomasCrouzet/simdedupe/internal/model"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
)

// Lister fetches the device registry through the simctl executor.
type Lister interface {
	ListDevices() ([]byte, error)
}

// TimeResolver returns the creation time of a device.
type TimeResolver interface {
	CreationTime(identifier string) (time.Time, error)
}

// List returns every registered device ordered by creation time, oldest
// first. Devices with equal timestamps keep their listing order.
func List(l Lister, r TimeResolver) ([]model.Device, error) {
	data, err := l.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	entries, err := simctl.ParseDeviceList(data)
	if err != nil {
		return nil, err
	}

	devices := make([]model.Device, 0, len(entries))
	for _, e := range entries {
		ts, err := r.CreationTime(e.UDID)
		if err != nil {
			return nil, err
		}
		runtime := e.Runtime
		devices = append(devices, model.NewDevice(&runtime, e.Name, e.DeviceTypeIdentifier, e.UDID, ts))
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Timestamp().Before(devices[j].Timestamp())
	})

	return devices, nil
}
