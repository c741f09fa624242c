package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ThomasCrouzet/simdedupe/internal/birthtime"
	"github.com/ThomasCrouzet/simdedupe/internal/config"
	"github.com/ThomasCrouzet/simdedupe/internal/logging"
	"github.com/ThomasCrouzet/simdedupe/internal/pipeline"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
	"github.com/ThomasCrouzet/simdedupe/internal/ui"
	"github.com/ThomasCrouzet/simdedupe/internal/wizard"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "simdedupe",
	Short: "Find and delete duplicate iOS simulators",
	Long: `simdedupe lists every simulator known to simctl, finds devices that repeat
an earlier device's runtime and device type, prints them and deletes the
later ones. The earliest created device of each kind is kept.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDedupe,
}

// Execute runs the CLI. Errors a command has not already printed, such as
// unknown commands or flags, are printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var rerr *reportedError
		if !errors.As(err, &rerr) {
			fmt.Fprint(rootCmd.ErrOrStderr(), ui.FormatError(err.Error(), "", "run 'simdedupe --help' for usage"))
		}
	}
	return err
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func reported(err error) error {
	return &reportedError{err: err}
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: simdedupe.yml)")
}

func initConfig() {
	config.Bind(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.FileName)
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

func runDedupe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Failed to load config", err.Error(), "run 'simdedupe validate' to check your config"))
		return reported(err)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Invalid log level", err.Error(), "use one of: debug, info, warn, error"))
		return reported(err)
	}

	opts := pipeline.Options{
		Executor: simctl.NewClient(cfg.Simctl.Launcher, cfg.Simctl.RegistryJSON, log),
		Resolver: birthtime.NewResolver(cfg.DevicesDir, log),
		Out:      cmd.OutOrStdout(),
		Log:      log,
	}
	if cfg.Confirm {
		opts.Confirm = wizard.ConfirmDeletion
	}

	outcome, err := pipeline.Run(opts)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Deduplication failed", err.Error(), hintFor(err)))
		return reported(err)
	}

	log.Debug().Stringer("outcome", outcome).Msg("run finished")
	return nil
}
