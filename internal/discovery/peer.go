package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Peer is a colorpick sync server found on the network.
type Peer struct {
	// Instance is the advertised service instance name (e.g., "studio")
	Instance string

	// Hostname is the mDNS hostname (e.g., "studio-mac.local.")
	Hostname string

	// IP is the peer address, IPv4 when available
	IP string

	// Port is the HTTP port the server listens on
	Port int

	// Metadata contains the TXT record data: "path", "space", "version"
	// and "tls"
	Metadata map[string]string

	// DiscoveredAt is when the peer was discovered
	DiscoveredAt time.Time
}

func (p *Peer) String() string {
	return fmt.Sprintf("colorpick %s (%s) at %s", p.Instance, p.Hostname, p.hostPort())
}

func (p *Peer) hostPort() string {
	return net.JoinHostPort(p.IP, strconv.Itoa(p.Port))
}

// Secure reports whether the peer advertised TLS.
func (p *Peer) Secure() bool {
	return p.GetMetadata("tls") == "1"
}

// BaseURL returns the HTTP base URL of the peer.
func (p *Peer) BaseURL() string {
	if p.Secure() {
		return "https://" + p.hostPort()
	}
	return "http://" + p.hostPort()
}

// WebSocketURL returns the URL of the peer's sync endpoint.
func (p *Peer) WebSocketURL() string {
	path := p.GetMetadata("path")
	if path == "" {
		path = DefaultPath
	}
	scheme := "ws://"
	if p.Secure() {
		scheme = "wss://"
	}
	return scheme + p.hostPort() + path
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (p *Peer) GetMetadata(key string) string {
	if p.Metadata == nil {
		return ""
	}
	return p.Metadata[key]
}
