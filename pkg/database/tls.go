package database

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSOptions names the files used for a mutual TLS connection.
type TLSOptions struct {
	CertFile string
	KeyFile  string
	CAFile   string
}

// Enabled reports whether any TLS file was given.
func (o TLSOptions) Enabled() bool {
	return o.CertFile != "" || o.KeyFile != "" || o.CAFile != ""
}

// TLSConfig creates a TLS config for connecting over (m)TLS. The client
// certificate is optional, but cert and key must be given together.
//
// Example usage:
//
//	cfg, err := TLSConfig(TLSOptions{CAFile: "ca.pem"})
//	if err != nil {
//		return err
//	}
func TLSConfig(opts TLSOptions) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if opts.CertFile != "" || opts.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load certfile/keyfile")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if opts.CAFile != "" {
		caCert, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load CAfile")
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.Errorf("no certificates found in %s", opts.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
