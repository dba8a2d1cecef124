// Package fieldsync mirrors model values into user-editable text fields
// without fighting the user.
//
// A naive two-way binding rewrites a field every time the model changes,
// including the change the user just caused by typing into that field.
// The rewrite reformats the text ("1.50" becomes "1.5"), moves the caret
// and can trigger another edit event. SyncDisplayedValue breaks the loop:
// it only overwrites a field when the displayed number and the model value
// differ at the field's precision.
//
// # Numeric Fields
//
//	f := fieldsync.NewField("float0", "1.0", 2, floatfmt.Formatter(1, 2))
//	f.SetText("1.50")       // user typing
//	f.Sync(1.5, false)      // false: "1.50" already shows 1.5
//	f.Sync(0.25, false)     // true: text becomes "0.25"
//
// # Hex Fields
//
// HexField applies the same rule to a hex code: text that already names
// the model's color (in any case, with or without '#') is left alone.
package fieldsync
