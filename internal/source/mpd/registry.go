package mpd

import (
	"sync"
	"time"
)

// Registry deduplicates MPD clients by server address so that several
// fragments watching the same server share one connection. It is built
// at startup and passed to whatever needs a client; entries are dialed
// lazily on first use and torn down together by Close.
type Registry struct {
	mu      sync.Mutex
	timeout time.Duration
	clients map[string]*Client
}

// NewRegistry creates an empty registry. A zero timeout falls back to
// DefaultTimeout.
func NewRegistry(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Registry{
		timeout: timeout,
		clients: make(map[string]*Client),
	}
}

// Client returns the shared client for addr, dialing on first use.
func (r *Registry) Client(addr string) (*Client, error) {
	if addr == "" {
		addr = DefaultAddr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[addr]; ok {
		return c, nil
	}
	c, err := DialTimeout(addr, r.timeout)
	if err != nil {
		return nil, err
	}
	r.clients[addr] = c
	return c, nil
}

// Len returns the number of live connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close disconnects every client. The registry is reusable afterwards;
// the next Client call dials fresh.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var first error
	for addr, c := range r.clients {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.clients, addr)
	}
	return first
}
