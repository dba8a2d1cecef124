// Package ui renders styled, non-interactive terminal output for the
// colorpick CLI: command headers, result boxes and color swatches.
//
// These components follow a "render once and exit" pattern and are used by
// commands such as convert and discover. Confirm asks before destructive
// commands like 'config reset', and Progress draws the bar shown while
// discover browses the network. The interactive picker lives in
// package tui and reuses the palette and swatch helpers defined here.
//
// # Logging Integration
//
// This package expects logging to be controlled via the COLORPICK_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
//
// # Usage Example
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Color Conversion", "colorpick convert", []ui.Detail{
//	    {Key: "From", Value: "hsl"},
//	})
//	p.Println(ui.RenderSwatch(rgb, 20, 3))
//	p.PrintSuccess("Converted", []ui.Detail{{Key: "Hex", Value: "#ff0000"}})
package ui
