// Package config manages the colorpick settings file.
//
// Settings are stored as YAML in an OS-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/colorpick/config.yaml or $HOME/.config/colorpick/config.yaml
//   - macOS: $HOME/.config/colorpick/config.yaml
//   - Windows: %LOCALAPPDATA%\colorpick\config.yaml
//
// COLORPICK_CONFIG overrides the path.
//
// # Loading
//
// Load layers three sources, lowest precedence first:
//  1. built-in defaults (Default)
//  2. the YAML file, if it exists
//  3. COLORPICK_* environment variables, e.g. COLORPICK_PRECISION=3 or
//     COLORPICK_SERVER_ADDR=:9000
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.Remember(picker.Color())
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// The only color data ever persisted is a hex code and a color space name.
package config
