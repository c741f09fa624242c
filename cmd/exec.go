package cmd

import (
	"errors"
	"os/exec"

	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
)

// findExecutable wraps exec.LookPath for testability.
var findExecutable = exec.LookPath

// hintFor suggests a fix for a failed run.
func hintFor(err error) string {
	if errors.Is(err, exec.ErrNotFound) {
		return "set simctl.launcher in simdedupe.yml to the path of xcrun"
	}
	var cerr *simctl.CommandError
	if errors.As(err, &cerr) {
		return "make sure Xcode command line tools are installed: xcode-select --install"
	}
	var perr *simctl.ParseError
	if errors.As(err, &perr) {
		return "check that 'xcrun simctl list -j devices' prints valid JSON"
	}
	return ""
}
