package fifo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/fifochat/internal/ports"
	"golang.org/x/sys/unix"
)

const (
	// Owner read/write, group write: the original chat FIFO permissions.
	channelMode = 0o620

	// Linux PIPE_BUF: writes up to this size are atomic.
	atomicWriteSize = 4096

	defaultPollInterval = 100 * time.Millisecond
	defaultWriteTimeout = time.Second
)

type Options struct {
	RecordSize   int
	WriteTimeout time.Duration
	PollInterval time.Duration
}

type Channels struct {
	recordSize   int
	writeTimeout time.Duration
	pollInterval time.Duration
}

var _ ports.Channels = (*Channels)(nil)

func NewChannels(opts Options) (*Channels, error) {
	if opts.RecordSize <= 0 {
		return nil, fmt.Errorf("record size must be positive, got %d", opts.RecordSize)
	}
	if opts.RecordSize > atomicWriteSize {
		return nil, fmt.Errorf("record size %d exceeds atomic pipe write size %d", opts.RecordSize, atomicWriteSize)
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	return &Channels{
		recordSize:   opts.RecordSize,
		writeTimeout: opts.WriteTimeout,
		pollInterval: opts.PollInterval,
	}, nil
}

func (c *Channels) Create(path string) error {
	if err := unix.Mkfifo(path, channelMode); err != nil && !errors.Is(err, unix.EEXIST) {
		return fmt.Errorf("create channel %q: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat channel %q: %w", path, err)
	}
	if info.Mode()&os.ModeNamedPipe == 0 {
		return fmt.Errorf("create channel %q: path exists and is not a fifo", path)
	}

	// mkfifo honours the umask; the mode has to be set explicitly.
	if err := os.Chmod(path, channelMode); err != nil {
		return fmt.Errorf("chmod channel %q: %w", path, err)
	}

	return nil
}

func (c *Channels) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove channel %q: %w", path, err)
	}

	return nil
}

// Listen opens the read end of path and keeps a write end open as well, so
// the reader never sees end-of-stream while no peer has the channel open.
func (c *Channels) Listen(path string) (ports.Inbox, error) {
	read, err := os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open channel %q for reading: %w", path, err)
	}

	keepalive, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		_ = read.Close()
		return nil, fmt.Errorf("open channel %q keepalive writer: %w", path, err)
	}

	return &Inbox{
		path:         path,
		read:         read,
		keepalive:    keepalive,
		recordSize:   c.recordSize,
		pollInterval: c.pollInterval,
	}, nil
}

func (c *Channels) Send(ctx context.Context, path string, record []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(record) != c.recordSize {
		return fmt.Errorf("send to %q: record is %d bytes, want %d: %w", path, len(record), c.recordSize, ports.ErrShortWrite)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		if unreachable(err) {
			return fmt.Errorf("open channel %q: %w: %w", path, ports.ErrUnreachable, err)
		}
		return fmt.Errorf("open channel %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close channel %q: %w", path, closeErr))
		}
	}()

	deadline := time.Now().Add(c.writeTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := f.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline on %q: %w", path, err)
	}

	n, err := f.Write(record)
	if err != nil {
		if errors.Is(err, unix.EPIPE) {
			return fmt.Errorf("write channel %q: %w: %w", path, ports.ErrUnreachable, err)
		}
		return fmt.Errorf("write channel %q: %w", path, err)
	}
	if n != len(record) {
		return fmt.Errorf("write channel %q: wrote %d of %d bytes: %w", path, n, len(record), ports.ErrShortWrite)
	}

	return nil
}

func unreachable(err error) bool {
	return errors.Is(err, unix.ENXIO) || errors.Is(err, os.ErrNotExist)
}

type Inbox struct {
	path         string
	read         *os.File
	keepalive    *os.File
	recordSize   int
	pollInterval time.Duration
}

var _ ports.Inbox = (*Inbox)(nil)

func (in *Inbox) Receive(ctx context.Context, timeout time.Duration) ([]byte, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	buf := make([]byte, in.recordSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slice := time.Now().Add(in.pollInterval)
		if !deadline.IsZero() && deadline.Before(slice) {
			slice = deadline
		}
		if err := in.read.SetReadDeadline(slice); err != nil {
			return nil, fmt.Errorf("set read deadline on %q: %w", in.path, err)
		}

		n, err := in.read.Read(buf)
		switch {
		case err == nil && n == in.recordSize:
			return buf, nil
		case err == nil:
			return buf[:n], fmt.Errorf("read channel %q: got %d of %d bytes: %w", in.path, n, in.recordSize, ports.ErrShortRead)
		case errors.Is(err, os.ErrDeadlineExceeded):
			if !deadline.IsZero() && !time.Now().Before(deadline) {
				return nil, fmt.Errorf("read channel %q: %w", in.path, ports.ErrTimeout)
			}
		default:
			return nil, fmt.Errorf("read channel %q: %w", in.path, err)
		}
	}
}

// Drain reads straight from the descriptor, which is non-blocking: EAGAIN
// means the channel holds nothing more.
func (in *Inbox) Drain(ctx context.Context) ([][]byte, error) {
	// A deadline left over from Receive would fail the raw read outright.
	if err := in.read.SetReadDeadline(time.Time{}); err != nil {
		return nil, fmt.Errorf("clear read deadline on %q: %w", in.path, err)
	}

	raw, err := in.read.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("access channel %q: %w", in.path, err)
	}

	var records [][]byte
	for {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		buf := make([]byte, in.recordSize)
		var n int
		var readErr error
		if err := raw.Read(func(fd uintptr) bool {
			n, readErr = unix.Read(int(fd), buf)
			return true
		}); err != nil {
			return records, fmt.Errorf("read channel %q: %w", in.path, err)
		}

		switch {
		case errors.Is(readErr, unix.EAGAIN), readErr == nil && n == 0:
			return records, nil
		case readErr != nil:
			return records, fmt.Errorf("read channel %q: %w", in.path, readErr)
		case n != in.recordSize:
			return records, fmt.Errorf("read channel %q: got %d of %d bytes: %w", in.path, n, in.recordSize, ports.ErrShortRead)
		}

		records = append(records, buf)
	}
}

func (in *Inbox) Close() error {
	return errors.Join(in.read.Close(), in.keepalive.Close())
}
