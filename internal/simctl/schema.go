package simctl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one device from the registry listing, tagged with the runtime
// it was listed under.
type Entry struct {
	Runtime              string
	Name                 string
	DeviceTypeIdentifier *string
	UDID                 string
}

// deviceList represents the JSON output of `simctl list -j devices`.
type deviceList struct {
	Devices json.RawMessage `json:"devices"`
}

type deviceDescriptor struct {
	Name                 string  `json:"name"`
	DeviceTypeIdentifier *string `json:"deviceTypeIdentifier"`
	UDID                 string  `json:"udid"`
}

// ParseDeviceList flattens a `simctl list -j devices` document into entries.
// Runtimes keep the order simctl printed them in, and devices keep their
// order within each runtime.
func ParseDeviceList(data []byte) ([]Entry, error) {
	var list deviceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &ParseError{Reason: "invalid json", Err: err}
	}
	if len(list.Devices) == 0 || bytes.Equal(list.Devices, []byte("null")) {
		return nil, &ParseError{Reason: `missing "devices" object`}
	}

	dec := json.NewDecoder(bytes.NewReader(list.Devices))
	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Reason: `reading "devices"`, Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &ParseError{Reason: `"devices" is not an object`}
	}

	var entries []Entry
	seen := make(map[string]string)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Reason: "reading runtime key", Err: err}
		}
		runtime, ok := tok.(string)
		if !ok {
			return nil, &ParseError{Reason: fmt.Sprintf("unexpected token %v", tok)}
		}

		var descriptors []deviceDescriptor
		if err := dec.Decode(&descriptors); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("devices for runtime %q", runtime), Err: err}
		}

		for i, d := range descriptors {
			if d.UDID == "" {
				return nil, &ParseError{Reason: fmt.Sprintf("device %d of runtime %q has no udid", i, runtime)}
			}
			if prev, dup := seen[d.UDID]; dup {
				return nil, &ParseError{Reason: fmt.Sprintf("udid %s listed under both %q and %q", d.UDID, prev, runtime)}
			}
			seen[d.UDID] = runtime

			entries = append(entries, Entry{
				Runtime:              runtime,
				Name:                 d.Name,
				DeviceTypeIdentifier: d.DeviceTypeIdentifier,
				UDID:                 d.UDID,
			})
		}
	}

	return entries, nil
}
