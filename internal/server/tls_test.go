package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muurk/colorpick/internal/color"
)

// selfSignedPEM returns a certificate for 127.0.0.1 and its key.
func selfSignedPEM(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "colorpick test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		IsCA:         true,

		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate() error = %v", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalECPrivateKey() error = %v", err)
	}

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM
}

func writePEMFiles(t *testing.T) (certPath, keyPath string, certPEM []byte) {
	t.Helper()
	certPEM, keyPEM := selfSignedPEM(t)
	dir := t.TempDir()
	certPath = filepath.Join(dir, "cert.pem")
	keyPath = filepath.Join(dir, "key.pem")
	if err := os.WriteFile(certPath, certPEM, 0o600); err != nil {
		t.Fatalf("WriteFile(cert) error = %v", err)
	}
	if err := os.WriteFile(keyPath, keyPEM, 0o600); err != nil {
		t.Fatalf("WriteFile(key) error = %v", err)
	}
	return certPath, keyPath, certPEM
}

func TestNewTLSConfig(t *testing.T) {
	certPath, keyPath, _ := writePEMFiles(t)

	config, err := NewTLSConfig(certPath, keyPath)
	if err != nil {
		t.Fatalf("NewTLSConfig() error = %v", err)
	}
	if len(config.Certificates) != 1 {
		t.Errorf("Certificates = %d, want 1", len(config.Certificates))
	}
	if config.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %x, want TLS 1.2", config.MinVersion)
	}
}

func TestNewTLSConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewTLSConfig(filepath.Join(dir, "missing.pem"), filepath.Join(dir, "missing.key")); err == nil {
		t.Error("NewTLSConfig() with missing files should fail")
	}
	if _, err := NewTLSConfigFromPEM([]byte("not a cert"), []byte("not a key")); err == nil {
		t.Error("NewTLSConfigFromPEM() with garbage should fail")
	}
}

func TestLoadTLS(t *testing.T) {
	certPath, keyPath, _ := writePEMFiles(t)

	tests := []struct {
		name    string
		cert    string
		key     string
		wantNil bool
		wantErr error
	}{
		{"neither", "", "", true, nil},
		{"cert only", certPath, "", true, ErrIncompleteTLS},
		{"key only", "", keyPath, true, ErrIncompleteTLS},
		{"both", certPath, keyPath, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadTLS(tt.cert, tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadTLS() error = %v, want %v", err, tt.wantErr)
			}
			if (config == nil) != tt.wantNil {
				t.Errorf("LoadTLS() config = %v, wantNil %v", config, tt.wantNil)
			}
		})
	}
}

func TestConfig_WebSocketScheme(t *testing.T) {
	if got := (Config{}).WebSocketScheme(); got != "ws" {
		t.Errorf("WebSocketScheme() = %q, want ws", got)
	}
	if got := (Config{TLS: &tls.Config{}}).WebSocketScheme(); got != "wss" {
		t.Errorf("WebSocketScheme() with TLS = %q, want wss", got)
	}
}

func TestServe_TLS(t *testing.T) {
	certPEM, keyPEM := selfSignedPEM(t)
	config, err := NewTLSConfigFromPEM(certPEM, keyPEM)
	if err != nil {
		t.Fatalf("NewTLSConfigFromPEM() error = %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	srv := New(Config{Initial: color.White(), Precision: 2, TLS: config}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ctx, ln)
	}()

	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(certPEM) {
		t.Fatal("AppendCertsFromPEM() failed")
	}
	dialer := websocket.Dialer{
		TLSClientConfig:  &tls.Config{RootCAs: roots},
		HandshakeTimeout: 5 * time.Second,
	}

	url := "wss://" + ln.Addr().String() + "/ws"
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) error = %v", url, err)
	}
	defer conn.Close()

	state := readState(t, conn)
	if state.Hex != "ffffff" {
		t.Errorf("Hex = %q, want ffffff", state.Hex)
	}

	plain := "ws://" + ln.Addr().String() + "/ws"
	if plainConn, _, err := websocket.DefaultDialer.Dial(plain, nil); err == nil {
		plainConn.Close()
		t.Errorf("Dial(%s) without TLS should fail", plain)
	}

	cancel()
	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
