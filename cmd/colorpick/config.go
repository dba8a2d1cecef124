package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/colorpick/internal/config"
	"github.com/muurk/colorpick/internal/ui"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)

	configResetCmd.Flags().BoolVarP(&configResetYes, "yes", "y", false, "Reset without asking")
}

var configResetYes bool

// configCmd groups the settings subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and change colorpick settings",
	Long: `Read and change the settings file.

Settings are layered: built-in defaults, then the YAML file, then
COLORPICK_* environment variables (for example COLORPICK_PRECISION=3 or
COLORPICK_SERVER_ADDR=:9000). 'config set' only writes the file.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings()
		if err != nil {
			return err
		}
		value, err := settings.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Example: `  colorpick config set color_space hsl
  colorpick config set precision 3
  colorpick config set server.advertise true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, path, err := loadSettings()
		if err != nil {
			return err
		}
		if err := settings.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := settings.SaveTo(path); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		value, _ := settings.Get(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", ui.SuccessMarker, args[0], value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, path, err := loadSettings()
		if err != nil {
			return err
		}
		values := make(map[string]string, len(config.Keys()))
		for _, key := range config.Keys() {
			values[key], _ = settings.Get(key)
		}
		printer := ui.NewPrinter(cmd.OutOrStdout())
		printer.PrintHeader("SETTINGS", path, ui.DetailsFromMap(values))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every setting to its default",
	Long: `Overwrite the settings file with built-in defaults. The last color,
the color space and the server settings are all lost.`,
	Example: `  colorpick config reset
  colorpick config reset --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !configResetYes {
			ok := ui.Confirm(cmd.InOrStdin(), out, "RESET SETTINGS", []string{
				"Every setting in " + path + " returns to its default",
				"The last picked color is forgotten",
			})
			if !ok {
				return nil
			}
		}

		if err := config.Default().SaveTo(path); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Fprintf(out, "%s settings reset\n", ui.SuccessMarker)
		return nil
	},
}
