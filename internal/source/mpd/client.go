package mpd

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
)

// DefaultAddr is the conventional MPD server address.
const DefaultAddr = "127.0.0.1:6600"

// DefaultTimeout bounds dialing and each command round trip.
const DefaultTimeout = 5 * time.Second

// Errors reported by the client.
var (
	ErrProtocol = errors.New("unexpected mpd response")
	ErrServer   = errors.New("mpd server error")
	ErrClosed   = errors.New("mpd connection closed")
)

// Client is a connection to one MPD server. Methods are safe for
// concurrent use; commands are serialized on the single socket.
type Client struct {
	addr    string
	timeout time.Duration
	version string

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	closed bool
}

// Dial connects to the MPD server at addr with the default timeout.
func Dial(addr string) (*Client, error) {
	return DialTimeout(addr, DefaultTimeout)
}

// DialTimeout connects to the MPD server at addr. The timeout applies
// to the dial, the handshake, and every later command round trip.
func DialTimeout(addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to mpd at %s: %w", addr, err)
	}
	c := &Client{
		addr:    addr,
		timeout: timeout,
		conn:    conn,
		reader:  bufio.NewReader(conn),
	}
	if err := c.handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// handshake consumes the server banner, e.g. "OK MPD 0.23.5".
func (c *Client) handshake() error {
	_ = c.conn.SetReadDeadline(time.Now().Add(c.timeout))
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading mpd banner: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	if !strings.HasPrefix(line, "OK MPD ") {
		return fmt.Errorf("%w: banner %q", ErrProtocol, line)
	}
	c.version = strings.TrimPrefix(line, "OK MPD ")
	return nil
}

// Addr returns the server address this client dialed.
func (c *Client) Addr() string {
	return c.addr
}

// Version returns the protocol version the server announced.
func (c *Client) Version() string {
	return c.version
}

// Status fetches the player status.
func (c *Client) Status() (Status, error) {
	attrs, err := c.command("status")
	if err != nil {
		return Status{}, err
	}
	return parseStatus(attrs), nil
}

// CurrentSong fetches the song the server is playing, if any.
func (c *Client) CurrentSong() (Song, error) {
	attrs, err := c.command("currentsong")
	if err != nil {
		return Song{}, err
	}
	return parseSong(attrs), nil
}

// Close shuts the connection down. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// command sends one command and collects its key: value reply. Repeated
// keys keep the first value, matching how MPD lists multi-value tags.
func (c *Client) command(name string) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	deadline := time.Now().Add(c.timeout)
	_ = c.conn.SetDeadline(deadline)
	if _, err := fmt.Fprintf(c.conn, "%s\n", name); err != nil {
		return nil, fmt.Errorf("sending %s: %w", name, err)
	}

	attrs := make(map[string]string)
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading %s reply: %w", name, err)
		}
		line = strings.TrimSuffix(line, "\n")
		if line == "OK" {
			return attrs, nil
		}
		if msg, ok := strings.CutPrefix(line, "ACK "); ok {
			return nil, fmt.Errorf("%w: %s", ErrServer, msg)
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: line %q", ErrProtocol, line)
		}
		if _, dup := attrs[key]; !dup {
			attrs[key] = value
		}
	}
}
