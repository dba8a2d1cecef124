package fieldsync

import "github.com/muurk/colorpick/internal/floatfmt"

// Field is a numeric text field bound to one model value. Its text is
// changed either by the user (SetText) or by Sync.
type Field struct {
	ID        string
	Precision int
	Format    FormatFunc

	text string
}

// NewField creates a field showing text.
func NewField(id, text string, precision int, format FormatFunc) *Field {
	return &Field{
		ID:        id,
		Precision: precision,
		Format:    format,
		text:      text,
	}
}

// Text returns the displayed text.
func (f *Field) Text() string {
	return f.text
}

// SetText records text typed by the user.
func (f *Field) SetText(text string) {
	f.text = text
}

// Value parses the displayed text, falling back to 0.
func (f *Field) Value() float64 {
	return floatfmt.ParseOr(f.text, 0)
}

// Sync brings the field in line with value and reports whether the
// displayed text changed.
func (f *Field) Sync(value float64, force bool) bool {
	text, overwrite := SyncDisplayedValue(f.text, value, f.Precision, force, f.Format)
	if !overwrite {
		return false
	}
	changed := text != f.text
	f.text = text
	return changed
}

// HexField is a text field bound to the model's hex code.
type HexField struct {
	ID string

	text string
}

// NewHexField creates a hex field showing text.
func NewHexField(id, text string) *HexField {
	return &HexField{ID: id, text: text}
}

// Text returns the displayed text.
func (f *HexField) Text() string {
	return f.text
}

// SetText records text typed by the user.
func (f *HexField) SetText(text string) {
	f.text = text
}

// Sync brings the field in line with code and reports whether the
// displayed text changed.
func (f *HexField) Sync(code string, force bool) bool {
	text, overwrite := SyncHexCode(f.text, code, force)
	if !overwrite {
		return false
	}
	changed := text != f.text
	f.text = text
	return changed
}
