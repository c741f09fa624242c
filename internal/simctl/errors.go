package simctl

import (
	"fmt"
	"strings"
)

// CommandError wraps a simctl invocation that exited unsuccessfully.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("simctl %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError reports a device listing that is not the JSON shape simctl
// produces for `list -j devices`.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing device list: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing device list: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
