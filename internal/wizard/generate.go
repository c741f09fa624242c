package wizard

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/ThomasCrouzet/simdedupe/internal/config"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	Launcher     string
	RegistryJSON string
	DevicesDir   string
	Confirm      bool
	LogLevel     string
}

const configHeader = "# simdedupe configuration\n# Every key can be overridden with SIMDEDUPE_<KEY>, e.g. SIMDEDUPE_CONFIRM=true\n\n"

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	cfg := config.Config{
		Simctl: config.SimctlConfig{
			Launcher:     answers.Launcher,
			RegistryJSON: answers.RegistryJSON,
		},
		DevicesDir: answers.DevicesDir,
		Confirm:    answers.Confirm,
		Log: config.LogConfig{
			Level:  answers.LogLevel,
			Format: "console",
		},
	}
	if cfg.Simctl.Launcher == "" {
		cfg.Simctl.Launcher = simctl.DefaultLauncher
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
