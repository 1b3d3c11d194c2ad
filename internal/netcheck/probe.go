// Package netcheck provides the synchronous connectivity probe consulted
// before the first listings fetch.
package netcheck

import (
	"net"
	"time"
)

const defaultDialTimeout = 2 * time.Second

// defaultHosts are well-known endpoints used to decide reachability. The
// probe succeeds on the first host that accepts a TCP connection.
var defaultHosts = []string{
	"api.kufar.by:443",
	"1.1.1.1:443",
	"8.8.8.8:53",
}

// Probe reports whether network connectivity is currently available.
type Probe struct {
	hosts   []string
	timeout time.Duration
	dial    func(network, address string, timeout time.Duration) (net.Conn, error)
}

// Option configures the Probe.
type Option func(*Probe)

// WithHosts overrides the probed endpoints.
func WithHosts(hosts ...string) Option {
	return func(p *Probe) {
		p.hosts = hosts
	}
}

// WithDialTimeout sets the per-host dial timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(p *Probe) {
		p.timeout = d
	}
}

// New creates a connectivity probe.
func New(opts ...Option) *Probe {
	p := &Probe{
		hosts:   defaultHosts,
		timeout: defaultDialTimeout,
		dial:    net.DialTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsConnected returns true if any probe host accepts a connection.
func (p *Probe) IsConnected() bool {
	for _, host := range p.hosts {
		conn, err := p.dial("tcp", host, p.timeout)
		if err == nil {
			_ = conn.Close()
			return true
		}
	}
	return false
}

// Always is a probe with a fixed answer, for tests and for forcing
// offline/online behavior.
type Always bool

// IsConnected returns the fixed answer.
func (a Always) IsConnected() bool { return bool(a) }
