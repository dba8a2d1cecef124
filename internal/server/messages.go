package server

import (
	"errors"

	"github.com/muurk/colorpick/internal/color"
)

// Message types.
const (
	TypeEdit  = "edit"
	TypeSpace = "space"
	TypeDrag  = "drag"
	TypeState = "state"
	TypeError = "error"
)

// Drag axes.
const (
	AxisHue        = "hue"
	AxisSaturation = "saturation"
	AxisValue      = "value"
)

var (
	// ErrUnknownMessage is returned for messages with an unrecognized type.
	ErrUnknownMessage = errors.New("unknown message type")

	// ErrUnknownAxis is returned for drag messages on an unrecognized axis.
	ErrUnknownAxis = errors.New("unknown drag axis")

	// ErrUnknownClient is returned for events from a client that already left.
	ErrUnknownClient = errors.New("unknown client")
)

// ClientMessage is an input event sent by a client.
type ClientMessage struct {
	Type  string  `json:"type"`
	Field string  `json:"field,omitempty"`
	Text  string  `json:"text,omitempty"`
	Space string  `json:"space,omitempty"`
	Axis  string  `json:"axis,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// StateMessage describes the shared color and the fields of the receiving
// client that were overwritten.
type StateMessage struct {
	Type       string            `json:"type"`
	ClientID   string            `json:"client_id,omitempty"`
	Space      color.Space       `json:"space"`
	Components color.Triple      `json:"components"`
	Hsv        color.Triple      `json:"hsv"`
	Hex        string            `json:"hex"`
	Labels     [3]string         `json:"labels"`
	Units      [3]string         `json:"units"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
