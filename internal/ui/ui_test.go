package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessKeepsText(t *testing.T) {
	assert.Contains(t, Success("Done!"), "Done!")
}

func TestFormatError(t *testing.T) {
	out := FormatError("Deduplication failed", "simctl list -j devices: exit status 72", "install Xcode")
	assert.Contains(t, out, "Error: Deduplication failed")
	assert.Contains(t, out, "  simctl list -j devices: exit status 72\n")
	assert.Contains(t, out, "Hint: install Xcode")

	bare := FormatError("unknown flag: --nope", "", "")
	assert.Contains(t, bare, "Error: unknown flag: --nope")
	assert.NotContains(t, bare, "Hint:")
}
