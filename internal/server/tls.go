package server

import (
	"crypto/tls"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/colorpick/internal/logging"
)

// ErrIncompleteTLS is returned when only one of certificate and key is set.
var ErrIncompleteTLS = errors.New("TLS needs both a certificate and a key")

// NewTLSConfig loads a PEM certificate and key for serving wss://.
func NewTLSConfig(certPath, keyPath string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	logging.Info("TLS configuration created from files",
		zap.String("cert", certPath),
		zap.String("key", keyPath),
	)
	return buildTLSConfig(cert), nil
}

// NewTLSConfigFromPEM builds a TLS configuration from in-memory PEM data.
func NewTLSConfigFromPEM(certPEM, keyPEM []byte) (*tls.Config, error) {
	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate from memory: %w", err)
	}
	return buildTLSConfig(cert), nil
}

// LoadTLS returns nil when neither path is set, and ErrIncompleteTLS when
// only one is.
func LoadTLS(certPath, keyPath string) (*tls.Config, error) {
	switch {
	case certPath == "" && keyPath == "":
		return nil, nil
	case certPath == "" || keyPath == "":
		return nil, ErrIncompleteTLS
	}
	return NewTLSConfig(certPath, keyPath)
}

func buildTLSConfig(cert tls.Certificate) *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		VerifyConnection: func(cs tls.ConnectionState) error {
			logging.LogTLSHandshake(cs.ServerName, cs.Version, cs.CipherSuite)
			return nil
		},
	}
}

// WebSocketScheme returns "wss" when config serves TLS and "ws" otherwise.
func (c Config) WebSocketScheme() string {
	if c.TLS != nil {
		return "wss"
	}
	return "ws"
}
