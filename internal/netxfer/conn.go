// Package netxfer receives YAML documents over a websocket and reports
// transfer progress while they arrive.
//
// A document is sent as a text frame holding a YAML header ("size: N")
// followed by binary frames carrying N bytes of YAML body. A binary frame
// with no header before it is a complete document on its own.
package netxfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"gopkg.in/yaml.v3"

	"github.com/justinpbarnett/modal/internal/logging"
)

// ErrClosed is returned once the connection is gone and every queued
// document has been received.
var ErrClosed = errors.New("netxfer: connection closed")

// Document is a received YAML mapping.
type Document map[string]any

// Stats describes the transfer in progress. Active is false between
// documents.
type Stats struct {
	Active bool
	Done   int
	Total  int
}

type header struct {
	Size int `yaml:"size"`
}

// Conn reads documents off a websocket in a background goroutine.
type Conn struct {
	ws  *websocket.Conn
	log *slog.Logger

	mu    sync.Mutex
	queue []Document
	stats Stats
	body  []byte
	err   error

	ready chan struct{}
	done  chan struct{}
}

// Dial connects to a websocket URL.
func Dial(ctx context.Context, url string) (*Conn, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	ws, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	return NewConn(ws), nil
}

// NewConn starts reading from an open websocket.
func NewConn(ws *websocket.Conn) *Conn {
	c := &Conn{
		ws:    ws,
		log:   logging.ForComponent(logging.CompNet),
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *Conn) readLoop() {
	defer close(c.done)
	for {
		kind, data, err := c.ws.ReadMessage()
		if err != nil {
			c.fail(err)
			return
		}
		if err := c.handle(kind, data); err != nil {
			c.fail(err)
			return
		}
	}
}

func (c *Conn) handle(kind int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch kind {
	case websocket.TextMessage:
		var h header
		if err := yaml.Unmarshal(data, &h); err != nil {
			return fmt.Errorf("parsing header: %w", err)
		}
		if h.Size < 0 {
			return fmt.Errorf("parsing header: negative size %d", h.Size)
		}
		c.stats = Stats{Active: true, Total: h.Size}
		c.body = c.body[:0]
		c.log.Debug("transfer started", "size", h.Size)
		if h.Size == 0 {
			return c.finish()
		}
		return nil

	case websocket.BinaryMessage:
		if !c.stats.Active {
			c.stats = Stats{Active: true, Total: len(data)}
			c.body = c.body[:0]
		}
		c.body = append(c.body, data...)
		c.stats.Done = len(c.body)
		if c.stats.Done > c.stats.Total {
			return fmt.Errorf("transfer overran: %d of %d bytes", c.stats.Done, c.stats.Total)
		}
		if c.stats.Done == c.stats.Total {
			return c.finish()
		}
	}
	return nil
}

// finish parses the buffered body. Called with mu held.
func (c *Conn) finish() error {
	doc := Document{}
	if err := yaml.Unmarshal(c.body, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	c.log.Debug("transfer complete", "bytes", len(c.body))
	c.queue = append(c.queue, doc)
	c.stats = Stats{}
	c.body = c.body[:0]
	select {
	case c.ready <- struct{}{}:
	default:
	}
	return nil
}

func (c *Conn) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		c.err = ErrClosed
	} else {
		c.err = fmt.Errorf("%w: %w", ErrClosed, err)
		c.log.Warn("connection lost", "error", err)
	}
	c.stats = Stats{}
}

// Stats returns the progress of the document currently arriving.
func (c *Conn) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Conn) pop() (Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) > 0 {
		doc := c.queue[0]
		c.queue = c.queue[1:]
		return doc, nil
	}
	return nil, c.err
}

// Receive returns the next complete document, waiting up to timeout for
// one to arrive. It returns nil, nil when none arrived in time.
func (c *Conn) Receive(timeout time.Duration) (Document, error) {
	if doc, err := c.pop(); doc != nil || err != nil || timeout <= 0 {
		return doc, err
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-c.ready:
	case <-c.done:
	case <-t.C:
	}
	return c.pop()
}

// Close sends a close frame and tears the connection down.
func (c *Conn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	err := c.ws.Close()
	<-c.done
	return err
}

// WriteDocument sends doc as a header followed by binary frames of at
// most chunk bytes.
func WriteDocument(ws *websocket.Conn, doc Document, chunk int) error {
	body, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	h, err := yaml.Marshal(header{Size: len(body)})
	if err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	if err := ws.WriteMessage(websocket.TextMessage, h); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if chunk <= 0 {
		chunk = len(body)
	}
	for len(body) > 0 {
		n := min(chunk, len(body))
		if err := ws.WriteMessage(websocket.BinaryMessage, body[:n]); err != nil {
			return fmt.Errorf("writing body: %w", err)
		}
		body = body[n:]
	}
	return nil
}
