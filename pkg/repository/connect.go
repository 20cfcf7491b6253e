package repository

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectOptions describes how to reach the database
type ConnectOptions struct {
	URI string
	// CAFile is a PEM bundle of trusted roots. Empty means the system pool.
	CAFile         string
	AppName        string
	ConnectTimeout time.Duration
}

// ConnectionError is returned when the database could not be reached,
// the certificate could not be verified or the credentials were rejected
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Connect opens a client and pings the primary so that an unreachable
// endpoint is reported here rather than on the first write
func Connect(ctx context.Context, o ConnectOptions) (*mongo.Client, error) {
	co := options.Client().ApplyURI(o.URI)
	if o.AppName != "" {
		co.SetAppName(o.AppName)
	}
	if o.ConnectTimeout > 0 {
		co.SetConnectTimeout(o.ConnectTimeout)
		co.SetServerSelectionTimeout(o.ConnectTimeout)
	}
	if o.CAFile != "" {
		tc, err := tlsConfig(o.CAFile)
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}
		co.SetTLSConfig(tc)
	}

	client, err := mongo.Connect(ctx, co)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &ConnectionError{Err: fmt.Errorf("Error during pinging the primary with: %w", err)}
	}

	return client, nil
}

func tlsConfig(caFile string) (*tls.Config, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("Error during reading CA bundle %s with: %w", caFile, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("Error during parsing CA bundle %s with: no certificate found", caFile)
	}

	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}
