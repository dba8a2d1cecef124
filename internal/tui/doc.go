// Package tui implements the interactive terminal color picker.
//
// The picker shows a saturation/value surface, a hue slider, a swatch, a
// color space selector and seven text fields: three native components,
// three normalized floats and the hex code. All of it is driven by one
// picker session, so typing into a field never disturbs the text being
// typed while every other field follows the color.
//
// # Keys
//
//   - tab / shift+tab: move focus between fields and the color map
//   - arrows (map focused): move the saturation/value cursor
//   - [ and ] (map focused): move the hue
//   - ctrl+s: cycle the color space (RGB, HSL, HSV)
//   - ctrl+y: copy #hex to the clipboard
//   - f1: toggle the full key list
//   - esc / ctrl+c: quit
//
// Run returns the final color so the caller can persist it.
package tui
