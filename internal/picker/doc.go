// Package picker holds one color picker session: the model color, the
// hue/saturation/value cursor and every editable field derived from them.
//
// A session has no references to any UI. Front ends (the terminal UI and
// the sync server) feed it input events through plain method calls and
// receive FieldUpdate notifications for the fields whose text must change.
//
// # Input Events
//
// Each method below is one input event. It updates the model exactly once
// and then synchronizes every field against that single new value:
//
//	p.Input(picker.Component0, "12.5") // user typed into a field
//	p.SetColorSpace(color.HSL)          // space selector
//	p.SetSaturation(0.3)                // drag on the sat/value surface
//	p.SetHue(0.5)                       // drag on the hue slider
//
// # Fields
//
// Seven fields are kept: three components in the native range of the
// current space, three normalized floats and the hex code. Numeric fields
// are synchronized through fieldsync, so the field being typed into keeps
// its text ("1.50" is not reformatted to "1.5"). A space switch forces
// every numeric field since the same number now means something else.
//
// # The HSV Cursor
//
// The saturation/value surface and the hue slider edit a separately held
// Hsv value. Converting a gray through RGB would reset its hue to 0, so
// drag events edit the cursor directly and only derive the model from it.
// Edits made through the text fields re-derive the cursor from the model.
package picker
