package database

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"arangodoc/internal/config"
	"arangodoc/internal/connection"
	"arangodoc/internal/logging"
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// Version describes the server.
type Version struct {
	Server  string            `json:"server"`
	Version string            `json:"version"`
	License string            `json:"license,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// GetVersion fetches the version of the server.
type GetVersion struct {
	method.Sealed
	method.JSONResult[Version]
	details bool
}

func NewGetVersion() GetVersion {
	return GetVersion{}
}

// WithDetails returns a copy that also asks for build details.
func (m GetVersion) WithDetails(details bool) GetVersion {
	m.details = details
	return m
}

func (GetVersion) Operation() method.Operation { return method.Read }
func (GetVersion) Path() string { return protocol.PathAPIVersion }
func (GetVersion) Header() method.Parameters { return nil }
func (GetVersion) Content() any { return nil }
func (GetVersion) ReturnType() protocol.ReturnType { return protocol.WholeBody }

func (m GetVersion) Parameters() method.Parameters {
	params := method.NewParameters(1)
	if m.details {
		params.SetBool(protocol.ParamDetails, true)
	}
	return params
}

var newTransport = func(endpoint, database string, opts ...connection.Option) (connection.Transport, error) {
	return connection.NewHTTPTransport(endpoint, database, opts...)
}

// Authentication picks the credentials configured in c: a token, a JWT secret or a user name
// with password, in that order. It returns nil when none is configured.
func Authentication(c config.ArangoConfig) connection.Authentication {
	switch {
	case c.Token != "":
		return connection.BearerToken(c.Token)
	case c.JWTSecret != "":
		return connection.JWTSecret(c.JWTSecret, c.User)
	case c.User != "":
		return connection.BasicAuth(c.User, c.Password)
	default:
		return nil
	}
}

// NewConnection builds the transport described by c and verifies connectivity. When reg is not
// nil the client metrics are registered with it.
func NewConnection(c config.ArangoConfig, logger logging.Logger, reg prometheus.Registerer) (connection.Transport, error) {
	opts := []connection.Option{
		connection.WithTimeout(c.Timeout()),
		connection.WithLogger(logger),
	}
	if auth := Authentication(c); auth != nil {
		opts = append(opts, connection.WithAuthentication(auth))
	}
	if reg != nil {
		metrics, err := connection.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("register client metrics: %w", err)
		}
		opts = append(opts, connection.WithMetrics(metrics))
	}

	t, err := newTransport(c.Endpoint, c.Database, opts...)
	if err != nil {
		return nil, fmt.Errorf("arango transport: %w", err)
	}

	// Verify connectivity with a short timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	version, err := connection.Execute(ctx, t, NewGetVersion())
	if err != nil {
		return nil, fmt.Errorf("arango ping: %w", err)
	}

	logger.Infow("connected to database",
		"endpoint", c.Endpoint,
		"database", c.Database,
		"server", version.Server,
		"version", version.Version,
	)
	return t, nil
}
