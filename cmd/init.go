package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/simdedupe/internal/config"
	"github.com/ThomasCrouzet/simdedupe/internal/ui"
	"github.com/ThomasCrouzet/simdedupe/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a simdedupe.yml config file interactively",
	Long: `Look for xcrun, the CoreSimulator devices directory and saved device lists,
then write a config file through an interactive wizard.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.FileName + ".yml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Scanning environment..."))
	detection := wizard.Detect(nil)

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Println(ui.Success(fmt.Sprintf("Created %s", configPath)))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("simdedupe validate"))
	fmt.Printf("           %s\n", ui.Hint("then run simdedupe to remove duplicates"))

	return nil
}
