package simctl

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLauncher is the executable that hosts the simctl subcommand.
const DefaultLauncher = "xcrun"

// Executor runs device registry commands.
type Executor interface {
	// ListDevices returns the raw `simctl list -j devices` document.
	ListDevices() ([]byte, error)
	// Delete removes the device with the given udid.
	Delete(udid string) error
}

// runFunc executes a command and returns its stdout and stderr.
type runFunc func(name string, args ...string) (stdout, stderr []byte, err error)

// Client talks to simctl through the launcher binary.
type Client struct {
	Launcher string
	// RegistryJSON, when set, is read instead of running `simctl list`.
	RegistryJSON string

	log zerolog.Logger
	run runFunc
}

// NewClient returns a Client. An empty launcher means DefaultLauncher.
func NewClient(launcher, registryJSON string, log zerolog.Logger) *Client {
	if launcher == "" {
		launcher = DefaultLauncher
	}
	return &Client{
		Launcher:     launcher,
		RegistryJSON: registryJSON,
		log:          log,
		run:          runCommand,
	}
}

func (c *Client) ListDevices() ([]byte, error) {
	if c.RegistryJSON != "" {
		c.log.Debug().Str("file", c.RegistryJSON).Msg("reading device list snapshot")
		data, err := os.ReadFile(c.RegistryJSON)
		if err != nil {
			return nil, fmt.Errorf("reading device list snapshot: %w", err)
		}
		return data, nil
	}
	return c.simctl("list", "-j", "devices")
}

func (c *Client) Delete(udid string) error {
	_, err := c.simctl("delete", udid)
	return err
}

func (c *Client) simctl(args ...string) ([]byte, error) {
	full := append([]string{"simctl"}, args...)
	c.log.Debug().Str("launcher", c.Launcher).Strs("args", full).Msg("running simctl")

	stdout, stderr, err := c.run(c.Launcher, full...)
	if err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(string(stderr)),
			Err:    err,
		}
	}
	return stdout, nil
}

func runCommand(name string, args ...string) ([]byte, []byte, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	return out, stderr.Bytes(), err
}
