package picker

import (
	"go.uber.org/zap"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/fieldsync"
	"github.com/muurk/colorpick/internal/floatfmt"
	"github.com/muurk/colorpick/internal/logging"
)

// DefaultPrecision is the number of decimal places shown and compared in
// numeric fields.
const DefaultPrecision = 2

// syncMode selects which fields are force-overwritten after a model change.
type syncMode int

const (
	// syncEdit keeps any field whose text already shows the new value.
	syncEdit syncMode = iota
	// syncSpace forces numeric fields; their meaning changed.
	syncSpace
	// syncReset forces every field.
	syncReset
)

// Option configures a Picker.
type Option func(*Picker)

// WithColor sets the initial color. The default is white in RGB.
func WithColor(c color.DynamicColor) Option {
	return func(p *Picker) {
		p.color = c
	}
}

// WithPrecision sets the decimal precision of numeric fields. Negative
// values are ignored.
func WithPrecision(precision int) Option {
	return func(p *Picker) {
		if precision >= 0 {
			p.precision = precision
		}
	}
}

// WithListener registers the field update listener.
func WithListener(l Listener) Option {
	return func(p *Picker) {
		p.listener = l
	}
}

// Picker is one picker session. It is not safe for concurrent use; callers
// serialize input events.
type Picker struct {
	color     color.DynamicColor
	hsv       color.Hsv
	precision int
	listener  Listener

	numeric [Hex]*fieldsync.Field
	hex     *fieldsync.HexField
}

// New creates a session. All fields start out showing the initial color.
func New(opts ...Option) *Picker {
	p := &Picker{
		color:     color.White(),
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.hsv = color.ToColor[color.Hsv](p.color)

	componentFormat := floatfmt.Formatter(0, p.precision)
	floatFormat := floatfmt.Formatter(1, p.precision)

	components := p.color.Components()
	floats := p.color.Floats()
	for axis := 0; axis < 3; axis++ {
		id := Component0 + FieldID(axis)
		p.numeric[id] = fieldsync.NewField(id.String(), componentFormat(components[axis]), p.precision, componentFormat)

		id = Float0 + FieldID(axis)
		p.numeric[id] = fieldsync.NewField(id.String(), floatFormat(floats[axis]), p.precision, floatFormat)
	}
	p.hex = fieldsync.NewHexField(Hex.String(), p.color.HexCode())

	return p
}

// Color returns the model color.
func (p *Picker) Color() color.DynamicColor {
	return p.color
}

// Hsv returns the hue/saturation/value cursor.
func (p *Picker) Hsv() color.Hsv {
	return p.hsv
}

// Precision returns the decimal precision of numeric fields.
func (p *Picker) Precision() int {
	return p.precision
}

// HexCode returns the model's hex code without '#'.
func (p *Picker) HexCode() string {
	return p.color.HexCode()
}

// Info returns labels and units of the current color space.
func (p *Picker) Info() color.Info {
	return p.color.Space().Info()
}

// Text returns the displayed text of a field.
func (p *Picker) Text(id FieldID) (string, error) {
	switch {
	case id == Hex:
		return p.hex.Text(), nil
	case id.Valid():
		return p.numeric[id].Text(), nil
	default:
		return "", ErrUnknownField
	}
}

// Texts returns the displayed text of every field.
func (p *Picker) Texts() map[FieldID]string {
	texts := make(map[FieldID]string, fieldCount)
	for _, id := range AllFields() {
		texts[id], _ = p.Text(id)
	}
	return texts
}

// Input handles text typed into a field. Numeric text that does not parse
// counts as 0; an invalid hex code leaves the model unchanged. Unknown
// fields are logged and ignored.
func (p *Picker) Input(id FieldID, text string) {
	switch {
	case id == Hex:
		p.hex.SetText(text)
		rgb, err := color.RgbFromHexCode(fieldsync.NormalizeHex(text))
		if err != nil {
			logging.Debug("Ignoring invalid hex input", zap.String("text", text), zap.Error(err))
			return
		}
		p.update("hex", color.DynamicFromColor(rgb).SetColorSpace(p.color.Space()), syncEdit, true)

	case id.IsComponent():
		p.numeric[id].SetText(text)
		p.update("components", p.color.SetComponents(p.groupValues(Component0)), syncEdit, true)

	case id.IsFloat():
		p.numeric[id].SetText(text)
		p.update("floats", p.color.SetFloats(p.groupValues(Float0)), syncEdit, true)

	default:
		logging.Warn("Input for unknown field", zap.Int("field", int(id)))
	}
}

// groupValues parses the three fields starting at first.
func (p *Picker) groupValues(first FieldID) color.Triple {
	var values color.Triple
	for axis := range values {
		values[axis] = p.numeric[first+FieldID(axis)].Value()
	}
	return values
}

// SetColorSpace switches the model to space. The cursor is kept since the
// perceived color does not change.
func (p *Picker) SetColorSpace(space color.Space) {
	if !space.Valid() {
		logging.Warn("Ignoring invalid color space", zap.Int("space", int(space)))
		return
	}
	if space == p.color.Space() {
		return
	}
	p.update("space", p.color.SetColorSpace(space), syncSpace, false)
}

// SetHue sets the cursor hue from a drag fraction in [0,1].
func (p *Picker) SetHue(fraction float64) {
	p.drag("hue", 0, fraction)
}

// SetSaturation sets the cursor saturation from a drag fraction in [0,1].
func (p *Picker) SetSaturation(fraction float64) {
	p.drag("saturation", 1, fraction)
}

// SetValue sets the cursor value from a drag fraction in [0,1].
func (p *Picker) SetValue(fraction float64) {
	p.drag("value", 2, fraction)
}

func (p *Picker) drag(source string, axis int, fraction float64) {
	p.hsv = p.hsv.WithFloat(axis, fraction)
	next := color.DynamicFromColor(p.hsv).SetColorSpace(p.color.Space())
	p.update(source, next, syncEdit, false)
}

// SetColor replaces the model and rewrites every field.
func (p *Picker) SetColor(c color.DynamicColor) {
	p.update("set", c, syncReset, true)
}

// Adopt takes over a model and cursor produced by another session sharing
// the same color. Fields are forced only if the space changed.
func (p *Picker) Adopt(c color.DynamicColor, hsv color.Hsv) {
	mode := syncEdit
	if c.Space() != p.color.Space() {
		mode = syncSpace
	}
	p.hsv = hsv
	p.update("adopt", c, mode, false)
}

func (p *Picker) update(source string, next color.DynamicColor, mode syncMode, deriveHsv bool) {
	p.color = next
	if deriveHsv {
		p.hsv = color.ToColor[color.Hsv](next)
	}
	logging.LogColorChange(source, next.Space().String(), next.Components())

	p.syncFields(mode)
}

// syncFields runs the synchronizer for every field against the current
// model and notifies the listener of overwritten fields.
func (p *Picker) syncFields(mode syncMode) {
	components := p.color.Components()
	floats := p.color.Floats()
	forceNumeric := mode != syncEdit

	for axis := 0; axis < 3; axis++ {
		p.syncNumeric(Component0+FieldID(axis), components[axis], forceNumeric)
		p.syncNumeric(Float0+FieldID(axis), floats[axis], forceNumeric)
	}

	if p.hex.Sync(p.color.HexCode(), mode == syncReset) {
		p.notify(Hex, p.hex.Text())
	}
}

func (p *Picker) syncNumeric(id FieldID, value float64, force bool) {
	field := p.numeric[id]
	before := field.Text()
	changed := field.Sync(value, force)
	logging.LogFieldSync(id.String(), before, value, changed)
	if changed {
		p.notify(id, field.Text())
	}
}

func (p *Picker) notify(id FieldID, text string) {
	if p.listener != nil {
		p.listener(FieldUpdate{Field: id, Text: text})
	}
}
