package ports

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnreachable = errors.New("channel unreachable")
	ErrShortWrite  = errors.New("short write to channel")
	ErrShortRead   = errors.New("short read from channel")
	ErrTimeout     = errors.New("timed out waiting for channel")
)

// Sender writes one whole record into the channel at path. The channel is
// opened just before the write and closed right after.
type Sender interface {
	Send(ctx context.Context, path string, record []byte) error
}

// Inbox is the read side of a channel owned by the current process.
type Inbox interface {
	// Receive blocks for one record. A zero timeout waits until ctx is done.
	Receive(ctx context.Context, timeout time.Duration) ([]byte, error)
	// Drain returns every record already buffered without blocking.
	Drain(ctx context.Context) ([][]byte, error)
	Close() error
}

type Channels interface {
	Sender
	Create(path string) error
	Listen(path string) (Inbox, error)
	Remove(path string) error
}
