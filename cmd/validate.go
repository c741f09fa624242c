package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/simdedupe/internal/config"
	"github.com/ThomasCrouzet/simdedupe/internal/logging"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
	"github.com/ThomasCrouzet/simdedupe/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your simdedupe.yml configuration",
	Long: `Check that simctl can be launched, that a configured device list snapshot
parses, and that the simulator devices directory exists.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// check is one validation result.
type check struct {
	Field      string
	OK         bool
	Message    string
	Suggestion string
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Failed to load config", err.Error(), "run 'simdedupe init' to create a config file"))
		return reported(err)
	}

	fmt.Println(ui.Bold("Validating simdedupe.yml..."))

	passed := 0
	failed := 0
	for _, c := range validate(cfg) {
		if c.OK {
			ui.ValidationOK(c.Field, c.Message)
			passed++
		} else {
			ui.ValidationErr(c.Field, c.Message, c.Suggestion)
			failed++
		}
	}

	fmt.Println()
	if failed == 0 {
		fmt.Println(ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed)))
		return nil
	}

	fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	return reported(fmt.Errorf("%d validation errors", failed))
}

func validate(cfg *config.Config) []check {
	var checks []check

	if path, err := findExecutable(cfg.Simctl.Launcher); err != nil {
		checks = append(checks, check{
			Field:      "simctl.launcher",
			Message:    fmt.Sprintf("%s not found in PATH", cfg.Simctl.Launcher),
			Suggestion: "install Xcode command line tools or point simctl.launcher at xcrun",
		})
	} else {
		checks = append(checks, check{Field: "simctl.launcher", OK: true, Message: path})
	}

	if cfg.Simctl.RegistryJSON != "" {
		checks = append(checks, validateSnapshot(cfg.Simctl.RegistryJSON))
	}

	if info, err := os.Stat(cfg.DevicesDir); err != nil || !info.IsDir() {
		checks = append(checks, check{
			Field:      "devices_dir",
			Message:    fmt.Sprintf("directory not found: %s", cfg.DevicesDir),
			Suggestion: "simulators without a data directory are treated as just created",
		})
	} else {
		checks = append(checks, check{Field: "devices_dir", OK: true, Message: cfg.DevicesDir})
	}

	if _, err := logging.New(cfg.Log); err != nil {
		checks = append(checks, check{
			Field:      "log.level",
			Message:    err.Error(),
			Suggestion: "use one of: debug, info, warn, error",
		})
	} else {
		checks = append(checks, check{Field: "log.level", OK: true, Message: cfg.Log.Level})
	}

	return checks
}

func validateSnapshot(path string) check {
	data, err := os.ReadFile(path)
	if err != nil {
		return check{
			Field:      "simctl.registry_json",
			Message:    fmt.Sprintf("file not found: %s", path),
			Suggestion: "check the path or remove registry_json to use live simctl output",
		}
	}
	entries, err := simctl.ParseDeviceList(data)
	if err != nil {
		return check{
			Field:      "simctl.registry_json",
			Message:    err.Error(),
			Suggestion: "regenerate it with: xcrun simctl list -j devices > " + path,
		}
	}
	return check{
		Field:   "simctl.registry_json",
		OK:      true,
		Message: fmt.Sprintf("%d devices", len(entries)),
	}
}
