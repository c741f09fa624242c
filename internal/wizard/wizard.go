package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Launcher:   simctl.DefaultLauncher,
		DevicesDir: detection.DevicesDir,
		LogLevel:   "warn",
	}
	if detection.LauncherPath != "" {
		answers.Launcher = detection.LauncherPath
	}

	var hints []string
	if detection.LauncherPath != "" {
		hints = append(hints, fmt.Sprintf("simctl launcher found: %s", detection.LauncherPath))
	} else {
		hints = append(hints, "xcrun not found in PATH")
	}
	if detection.DevicesDir != "" {
		hints = append(hints, fmt.Sprintf("Simulator data: %s", detection.DevicesDir))
	}
	if len(detection.Snapshots) > 0 {
		hints = append(hints, fmt.Sprintf("Device list snapshots: %s", strings.Join(detection.Snapshots, ", ")))
	}

	desc := "Where simdedupe finds simctl.\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")

	// Step 1: where devices come from
	source := "live"
	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should the device list be read?").
				Description(desc).
				Options(
					huh.NewOption("Run simctl list (live)", "live"),
					huh.NewOption("Read a saved simctl list -j devices file", "snapshot"),
				).
				Value(&source),
		),
	)
	if err := sourceForm.Run(); err != nil {
		return nil, err
	}

	// Step 2: paths and behaviour
	var fields []huh.Field
	fields = append(fields,
		huh.NewInput().
			Title("simctl launcher").
			Description("Deletions always run through this binary").
			Value(&answers.Launcher),
	)
	if source == "snapshot" {
		if len(detection.Snapshots) > 0 {
			answers.RegistryJSON = detection.Snapshots[0]
		}
		fields = append(fields,
			huh.NewInput().
				Title("Device list snapshot path").
				Value(&answers.RegistryJSON),
		)
	}
	fields = append(fields,
		huh.NewInput().
			Title("Simulator devices directory").
			Description("Used to find when each simulator was created").
			Value(&answers.DevicesDir),
		huh.NewConfirm().
			Title("Ask before deleting duplicates?").
			Value(&answers.Confirm),
		huh.NewSelect[string]().
			Title("Log level").
			Options(
				huh.NewOption("Warn", "warn"),
				huh.NewOption("Info", "info"),
				huh.NewOption("Debug", "debug"),
			).
			Value(&answers.LogLevel),
	)

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return nil, err
	}

	return answers, nil
}

// ConfirmDeletion asks whether n duplicate simulators should be deleted.
func ConfirmDeletion(n int) (bool, error) {
	plural := ""
	if n > 1 {
		plural = "s"
	}

	confirmed := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete %d duplicate simulator%s?", n, plural)).
		Affirmative("Delete").
		Negative("Keep").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
