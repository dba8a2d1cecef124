package picker

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned for field ids outside the session's fields.
var ErrUnknownField = errors.New("unknown field")

// FieldID identifies one editable field of a session.
type FieldID int

const (
	Component0 FieldID = iota
	Component1
	Component2
	Float0
	Float1
	Float2
	Hex

	fieldCount
)

var fieldNames = [...]string{
	Component0: "component0",
	Component1: "component1",
	Component2: "component2",
	Float0:     "float0",
	Float1:     "float1",
	Float2:     "float2",
	Hex:        "hex",
}

// AllFields returns every field id in display order.
func AllFields() []FieldID {
	ids := make([]FieldID, 0, fieldCount)
	for id := Component0; id < fieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id names a field.
func (id FieldID) Valid() bool {
	return id >= Component0 && id < fieldCount
}

func (id FieldID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("field(%d)", int(id))
	}
	return fieldNames[id]
}

// ParseFieldID parses a field name such as "component1" or "hex".
func ParseFieldID(name string) (FieldID, error) {
	for id, n := range fieldNames {
		if n == name {
			return FieldID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// IsComponent reports whether id is one of the native component fields.
func (id FieldID) IsComponent() bool {
	return id >= Component0 && id <= Component2
}

// IsFloat reports whether id is one of the normalized float fields.
func (id FieldID) IsFloat() bool {
	return id >= Float0 && id <= Float2
}

// Axis returns the component index 0..2 for numeric fields and -1 for the
// hex field.
func (id FieldID) Axis() int {
	switch {
	case id.IsComponent():
		return int(id - Component0)
	case id.IsFloat():
		return int(id - Float0)
	default:
		return -1
	}
}

// FieldUpdate reports that the text of a field was overwritten by the
// session.
type FieldUpdate struct {
	Field FieldID
	Text  string
}

// Listener receives field updates. It is called synchronously from the
// input event that caused them.
type Listener func(FieldUpdate)
