// Colorpick is a terminal color picker.
//
// It edits one color through synchronized RGB, HSL and HSV component
// fields, normalized float fields and a hex field. The same session can be
// shared with other clients over WebSocket and advertised on the local
// network.
//
// Usage:
//
//	colorpick [command] [flags]
//
// Running without arguments launches the interactive picker.
// See 'colorpick --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/colorpick/internal/config"
	"github.com/muurk/colorpick/internal/logging"
	"github.com/muurk/colorpick/internal/tui"
	"github.com/muurk/colorpick/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configFile string
	precision  int
)

var rootCmd = &cobra.Command{
	Use:   "colorpick",
	Short: "Terminal Color Picker",
	Long: `A color picker for the terminal.

Edit a color through RGB, HSL or HSV components, normalized floats or a hex
code. Every field follows the others as you type without clobbering the
field you are editing.

If no command is specified, the interactive picker will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitializeFromEnv(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	RunE: runPicker,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: $COLORPICK_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "Decimal places shown in numeric fields (default: from settings)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Detailed())
	},
}

// settingsPath returns the --config flag or the default settings path.
func settingsPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.ConfigPath()
}

func loadSettings() (*config.Settings, string, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, "", err
	}
	settings, err := config.LoadFrom(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	return settings, path, nil
}

// effectivePrecision applies the --precision flag over the stored setting
// without changing what gets saved.
func effectivePrecision(settings *config.Settings) (int, error) {
	if precision < 0 {
		return settings.Precision, nil
	}
	if precision > config.MaxPrecision {
		return 0, fmt.Errorf("--precision must be between 0 and %d", config.MaxPrecision)
	}
	return precision, nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	settings, path, err := loadSettings()
	if err != nil {
		return err
	}

	digits, err := effectivePrecision(settings)
	if err != nil {
		return err
	}

	final, err := tui.Run(settings.Color(), digits)
	if err != nil {
		return err
	}

	settings.Remember(final)
	if err := settings.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
