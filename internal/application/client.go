package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/fifochat/internal/domain"
	"github.com/bnema/fifochat/internal/ports"
	"go.uber.org/zap"
)

var (
	ErrRequestRejected = errors.New("request rejected by server")
	ErrNoResponse      = errors.New("no response from server")
)

const defaultResponseTimeout = 5 * time.Second

// Client is one chat session. It owns the channel at its layout's client path
// for as long as it is open.
type Client struct {
	id       domain.ClientID
	layout   domain.ChannelLayout
	timeout  time.Duration
	channels ports.Channels
	inbox    ports.Inbox
	clock    ports.Clock
	logger   *zap.Logger
	pending  []IncomingMessage
}

// OpenClient creates and starts listening on the client's own channel.
func OpenClient(cfg ClientConfig, channels ports.Channels, clock ports.Clock, logger *zap.Logger) (*Client, error) {
	if cfg.ID <= 0 {
		return nil, fmt.Errorf("client id must be positive, got %d", cfg.ID)
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.ResponseTimeout <= 0 {
		cfg.ResponseTimeout = defaultResponseTimeout
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	path := cfg.Layout.ClientPath(cfg.ID)
	if err := channels.Create(path); err != nil {
		return nil, fmt.Errorf("create client channel: %w", err)
	}

	inbox, err := channels.Listen(path)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("listen on client channel: %w", err), channels.Remove(path))
	}

	return &Client{
		id:       cfg.ID,
		layout:   cfg.Layout,
		timeout:  cfg.ResponseTimeout,
		channels: channels,
		inbox:    inbox,
		clock:    clock,
		logger:   logger.With(zap.Int32("client_pid", int32(cfg.ID))),
	}, nil
}

func (c *Client) ID() domain.ClientID {
	return c.id
}

func (c *Client) Path() string {
	return c.layout.ClientPath(c.id)
}

func (c *Client) Connect(ctx context.Context) error {
	if err := c.request(ctx, domain.ConnectRequest(c.id)); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	return nil
}

func (c *Client) CheckConnection(ctx context.Context) error {
	if err := c.request(ctx, domain.CheckConnectionRequest(c.id)); err != nil {
		return fmt.Errorf("check connection: %w", err)
	}

	return nil
}

func (c *Client) Send(ctx context.Context, msg OutgoingMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := c.request(ctx, msg.request(c.id)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.request(ctx, domain.DisconnectRequest(c.id)); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}

	return nil
}

// Drain returns the messages kept while awaiting acknowledgements followed by
// whatever is already buffered in the channel. It never blocks.
func (c *Client) Drain(ctx context.Context) ([]IncomingMessage, error) {
	err := c.collect(ctx)
	messages := c.pending
	c.pending = nil

	return messages, err
}

// collect moves buffered deliveries to the pending queue and drops buffered
// acknowledgements, which belong to requests that already gave up waiting.
func (c *Client) collect(ctx context.Context) error {
	for {
		records, err := c.inbox.Drain(ctx)
		for _, data := range records {
			var resp domain.Response
			if decodeErr := resp.UnmarshalBinary(data); decodeErr != nil {
				c.logger.Warn("discarding malformed record", zap.Error(decodeErr))
				continue
			}
			if resp.System {
				c.logger.Debug("dropping stale acknowledgement", zap.Int32("seq", resp.SeqNum), zap.Bool("ok", resp.OK()))
				continue
			}
			c.pending = append(c.pending, c.incoming(resp))
		}

		switch {
		case err == nil:
			return nil
		case errors.Is(err, ports.ErrShortRead) && ctx.Err() == nil:
			c.logger.Warn("discarding short record", zap.Error(err))
		default:
			return fmt.Errorf("drain inbox: %w", err)
		}
	}
}

// Close stops listening and removes the client's channel.
func (c *Client) Close() error {
	return errors.Join(c.inbox.Close(), c.channels.Remove(c.Path()))
}

func (c *Client) request(ctx context.Context, req domain.Request) error {
	data, err := req.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := c.collect(ctx); err != nil {
		return err
	}
	if err := c.channels.Send(ctx, c.layout.ServerPath, data); err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	resp, err := c.awaitAck(ctx)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return ErrRequestRejected
	}

	return nil
}

// awaitAck reads the client channel until a system response arrives. Chat
// deliveries read on the way are queued for the next Drain.
func (c *Client) awaitAck(ctx context.Context) (domain.Response, error) {
	deadline := c.clock.Now().Add(c.timeout)

	for {
		remaining := deadline.Sub(c.clock.Now())
		if remaining <= 0 {
			return domain.Response{}, ErrNoResponse
		}

		data, err := c.inbox.Receive(ctx, remaining)
		if err != nil {
			if errors.Is(err, ports.ErrTimeout) {
				return domain.Response{}, ErrNoResponse
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return domain.Response{}, ctxErr
			}
			if errors.Is(err, ports.ErrShortRead) {
				c.logger.Warn("discarding short record", zap.Error(err))
				continue
			}
			return domain.Response{}, fmt.Errorf("receive response: %w", err)
		}

		var resp domain.Response
		if err := resp.UnmarshalBinary(data); err != nil {
			c.logger.Warn("discarding malformed record", zap.Error(err))
			continue
		}
		if resp.System {
			return resp, nil
		}

		c.pending = append(c.pending, c.incoming(resp))
	}
}

func (c *Client) incoming(resp domain.Response) IncomingMessage {
	return IncomingMessage{
		From:       resp.Origin,
		Global:     resp.Global,
		Text:       resp.Message,
		ReceivedAt: c.clock.Now(),
	}
}
