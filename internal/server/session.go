package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/logging"
	"github.com/muurk/colorpick/internal/metrics"
	"github.com/muurk/colorpick/internal/picker"
)

// sendBuffer is the number of outgoing messages queued per client before
// the client is considered too slow and dropped.
const sendBuffer = 32

// client is one connected WebSocket peer.
type client struct {
	id         string
	remoteAddr string
	send       chan []byte
	limiter    *rate.Limiter

	// Guarded by Session.mu.
	picker  *picker.Picker
	pending map[string]string
}

// newClient creates a client. A rateLimit of 0 disables throttling.
func newClient(id, remoteAddr string, rateLimit int) *client {
	c := &client{
		id:         id,
		remoteAddr: remoteAddr,
		send:       make(chan []byte, sendBuffer),
		pending:    make(map[string]string),
	}
	if rateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
	}
	return c
}

// allow reports whether the rate limiter admits another message.
func (c *client) allow() bool {
	return c.limiter == nil || c.limiter.Allow()
}

// Session owns the shared color and the connected clients.
type Session struct {
	mu        sync.Mutex
	precision int
	color     color.DynamicColor
	hsv       color.Hsv
	clients   map[string]*client
	metrics   *metrics.Manager
}

// NewSession creates a session starting at initial.
func NewSession(initial color.DynamicColor, precision int, m *metrics.Manager) *Session {
	return &Session{
		precision: precision,
		color:     initial,
		hsv:       color.ToColor[color.Hsv](initial),
		clients:   make(map[string]*client),
		metrics:   m,
	}
}

// Color returns the shared color.
func (s *Session) Color() color.DynamicColor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// ClientCount returns the number of connected clients.
func (s *Session) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// join registers c and queues its welcome state carrying every field.
func (s *Session) join(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.picker = picker.New(
		picker.WithColor(s.color),
		picker.WithPrecision(s.precision),
		picker.WithListener(func(u picker.FieldUpdate) {
			c.pending[u.Field.String()] = u.Text
		}),
	)
	c.picker.Adopt(s.color, s.hsv)
	clear(c.pending)

	s.clients[c.id] = c
	s.metrics.ClientConnected()

	fields := make(map[string]string, len(picker.AllFields()))
	for id, text := range c.picker.Texts() {
		fields[id.String()] = text
	}
	state := s.state(fields)
	state.ClientID = c.id
	s.enqueue(c, state)
}

// leave unregisters c and closes its send queue.
func (s *Session) leave(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(c)
}

// closeAll drops every client.
func (s *Session) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		s.drop(c)
	}
}

// drop must be called with s.mu held. It is a no-op for clients already
// dropped.
func (s *Session) drop(c *client) {
	if s.clients[c.id] != c {
		return
	}
	delete(s.clients, c.id)
	close(c.send)
	s.metrics.ClientDisconnected()
}

// Apply handles one input event from the client with the given id. The
// shared color is updated once and every client is synchronized and sent
// its state.
func (s *Session) Apply(clientID string, msg ClientMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	origin, ok := s.clients[clientID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClient, clientID)
	}

	kind, err := applyMessage(origin.picker, msg)
	if err != nil {
		return err
	}

	s.color = origin.picker.Color()
	s.hsv = origin.picker.Hsv()

	for _, c := range s.clients {
		if c != origin {
			c.picker.Adopt(s.color, s.hsv)
		}
		s.flush(c)
	}

	s.metrics.RecordEdit(kind)
	s.metrics.ObserveHandle(time.Since(start))
	return nil
}

// reject sends an error message to the client.
func (s *Session) reject(clientID string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.RecordInvalid()
	logging.Debug("Rejected client message", zap.String("client_id", clientID), zap.Error(cause))

	if c, ok := s.clients[clientID]; ok {
		s.enqueue(c, ErrorMessage{Type: TypeError, Error: cause.Error()})
	}
}

// applyMessage performs msg on p and returns the edit kind for metrics.
func applyMessage(p *picker.Picker, msg ClientMessage) (string, error) {
	switch msg.Type {
	case TypeEdit:
		id, err := picker.ParseFieldID(msg.Field)
		if err != nil {
			return "", err
		}
		p.Input(id, msg.Text)
		switch {
		case id.IsComponent():
			return metrics.KindComponent, nil
		case id.IsFloat():
			return metrics.KindFloat, nil
		default:
			return metrics.KindHex, nil
		}

	case TypeSpace:
		space, err := color.ParseSpace(msg.Space)
		if err != nil {
			return "", err
		}
		p.SetColorSpace(space)
		return metrics.KindSpace, nil

	case TypeDrag:
		switch msg.Axis {
		case AxisHue:
			p.SetHue(msg.Value)
		case AxisSaturation:
			p.SetSaturation(msg.Value)
		case AxisValue:
			p.SetValue(msg.Value)
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownAxis, msg.Axis)
		}
		return metrics.KindDrag, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

// flush sends c its pending field updates along with the shared state.
// Must be called with s.mu held.
func (s *Session) flush(c *client) {
	overwritten := len(c.pending)
	for range overwritten {
		s.metrics.RecordFieldSync(true)
	}
	for range len(picker.AllFields()) - overwritten {
		s.metrics.RecordFieldSync(false)
	}

	fields := make(map[string]string, overwritten)
	for k, v := range c.pending {
		fields[k] = v
	}
	clear(c.pending)

	s.enqueue(c, s.state(fields))
}

func (s *Session) state(fields map[string]string) StateMessage {
	info := s.color.Space().Info()
	return StateMessage{
		Type:       TypeState,
		Space:      s.color.Space(),
		Components: s.color.Components(),
		Hsv:        s.hsv.Components(),
		Hex:        s.color.HexCode(),
		Labels:     info.Labels,
		Units:      info.Units,
		Fields:     fields,
	}
}

// enqueue queues v for c without blocking. A client whose queue is full is
// dropped. Must be called with s.mu held.
func (s *Session) enqueue(c *client, v any) {
	if s.clients[c.id] != c {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error("Failed to encode message", zap.String("client_id", c.id), zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	default:
		logging.Warn("Client send queue full, dropping client",
			zap.String("client_id", c.id),
			zap.String("remote_addr", c.remoteAddr),
		)
		s.drop(c)
	}
}
