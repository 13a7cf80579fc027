// Package memory is an in-process stand-in for the FIFO transport. Channels
// behave like named pipes: a send only lands when the path exists and a
// reader is listening.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/fifochat/internal/ports"
)

const defaultBuffer = 64

type channel struct {
	queue     chan []byte
	listening bool
}

type Channels struct {
	mu       sync.Mutex
	channels map[string]*channel
	buffer   int
}

var _ ports.Channels = (*Channels)(nil)

// NewChannels returns an empty namespace. buffer bounds each channel queue;
// zero means the default.
func NewChannels(buffer int) *Channels {
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &Channels{channels: map[string]*channel{}, buffer: buffer}
}

func (c *Channels) Create(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.channels[path]; !ok {
		c.channels[path] = &channel{queue: make(chan []byte, c.buffer)}
	}

	return nil
}

func (c *Channels) Remove(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.channels, path)
	return nil
}

// Exists reports whether path has been created and not removed.
func (c *Channels) Exists(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.channels[path]
	return ok
}

func (c *Channels) Listen(path string) (ports.Inbox, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch, ok := c.channels[path]
	if !ok {
		return nil, fmt.Errorf("open channel %q for reading: no such channel", path)
	}
	ch.listening = true

	return &Inbox{owner: c, path: path, ch: ch}, nil
}

func (c *Channels) Send(ctx context.Context, path string, record []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	ch, ok := c.channels[path]
	listening := ok && ch.listening
	c.mu.Unlock()

	if !listening {
		return fmt.Errorf("open channel %q: %w", path, ports.ErrUnreachable)
	}

	data := append([]byte(nil), record...)
	select {
	case ch.queue <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("write channel %q: queue full: %w", path, ports.ErrShortWrite)
	}
}

type Inbox struct {
	owner *Channels
	path  string
	ch    *channel
}

var _ ports.Inbox = (*Inbox)(nil)

func (in *Inbox) Receive(ctx context.Context, timeout time.Duration) ([]byte, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case data := <-in.ch.queue:
		return data, nil
	case <-expired:
		return nil, fmt.Errorf("read channel %q: %w", in.path, ports.ErrTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (in *Inbox) Drain(ctx context.Context) ([][]byte, error) {
	var records [][]byte
	for {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		select {
		case data := <-in.ch.queue:
			records = append(records, data)
		default:
			return records, nil
		}
	}
}

func (in *Inbox) Close() error {
	in.owner.mu.Lock()
	defer in.owner.mu.Unlock()

	in.ch.listening = false
	return nil
}
