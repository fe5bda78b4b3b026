package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/espresso-emporium-server/internal/model"
)

// NewSecurityLayer returns a TLS listener factory when enableTLS is set and
// a plain TCP one otherwise.
func NewSecurityLayer(enableTLS bool, certFileName, keyFileName string) model.SecurityLayer {
	if enableTLS {
		return NewTLSListener(certFileName, keyFileName)
	}
	return NewPlainListener()
}

// TLSListener opens TLS listeners from a PEM certificate and key pair.
type TLSListener struct {
	certFileName string
	keyFileName  string
}

// NewTLSListener creates a new TLSListener instance.
func NewTLSListener(certFileName, keyFileName string) *TLSListener {
	return &TLSListener{
		certFileName: certFileName,
		keyFileName:  keyFileName,
	}
}

// Listen loads the key pair and listens on addr. TLS 1.2 is the minimum
// accepted version.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.keyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"http/1.1"},
	}
	return tls.Listen(protocol, addr, tlsConfig)
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

// NewPlainListener creates a new PlainListener instance.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen listens on addr without TLS.
func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
