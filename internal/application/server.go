package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/fifochat/internal/domain"
	"github.com/bnema/fifochat/internal/ports"
	"go.uber.org/zap"
)

// Server owns the client registry and answers requests one at a time. It is
// not safe for concurrent use.
type Server struct {
	registry *domain.Registry
	sender   ports.Sender
	layout   domain.ChannelLayout
	logger   *zap.Logger
	metrics  ports.ServerMetrics
	seq      int32
}

func NewServer(cfg ServerConfig, sender ports.Sender, logger *zap.Logger, metrics ports.ServerMetrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &Server{
		registry: domain.NewRegistry(cfg.MaxClients),
		sender:   sender,
		layout:   cfg.Layout,
		logger:   logger,
		metrics:  metrics,
	}
}

// Clients returns the registered ids in connection order.
func (s *Server) Clients() []domain.ClientID {
	return s.registry.IDs()
}

// Serve handles requests from inbox until ctx is done. Malformed records are
// logged and dropped without a reply.
func (s *Server) Serve(ctx context.Context, inbox ports.Inbox) error {
	for {
		data, err := inbox.Receive(ctx, 0)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			if errors.Is(err, ports.ErrShortRead) {
				s.discard(err)
				continue
			}
			return fmt.Errorf("receive request: %w", err)
		}

		var req domain.Request
		if err := req.UnmarshalBinary(data); err != nil {
			s.discard(err)
			continue
		}

		s.Handle(ctx, req)
	}
}

func (s *Server) discard(err error) {
	s.metrics.RecordDiscarded()
	s.logger.Warn("discarding malformed record", zap.Error(err))
}

// Handle applies one request to the registry, performs any deliveries and
// acknowledges the origin.
func (s *Server) Handle(ctx context.Context, req domain.Request) Outcome {
	kind := classify(req)
	logger := s.logger.With(
		zap.String("kind", string(kind)),
		zap.Int32("client_pid", int32(req.Origin)),
		zap.Int32("seq", s.seq),
	)

	var outcome Outcome
	switch kind {
	case RequestConnect:
		outcome = s.connect(req, logger)
	case RequestDisconnect:
		outcome = s.disconnect(req, logger)
	case RequestCheck, RequestSystem:
		outcome = Outcome{Status: domain.StatusOK}
	case RequestGlobal:
		outcome = s.broadcast(ctx, req, logger)
	default:
		outcome = s.direct(ctx, req, logger)
	}

	s.acknowledge(ctx, req.Origin, outcome.Status, logger)
	s.metrics.RequestHandled(string(kind), string(outcome.Status))
	s.metrics.ClientsConnected(s.registry.Len())
	s.seq += req.SeqLen

	return outcome
}

func (s *Server) connect(req domain.Request, logger *zap.Logger) Outcome {
	switch {
	case s.registry.Contains(req.Origin):
		logger.Warn("client already connected")
		return Outcome{Status: domain.StatusFAIL}
	case s.registry.Full():
		logger.Warn("registry full, refusing client", zap.Int("max_clients", s.registry.Cap()))
		return Outcome{Status: domain.StatusFAIL}
	}

	if err := s.registry.Insert(req.Origin); err != nil {
		logger.Warn("register client", zap.Error(err))
		return Outcome{Status: domain.StatusFAIL}
	}

	logger.Info("client connected", zap.Int("clients", s.registry.Len()))
	return Outcome{Status: domain.StatusOK}
}

func (s *Server) disconnect(req domain.Request, logger *zap.Logger) Outcome {
	if err := s.registry.Remove(req.Origin); err != nil {
		logger.Warn("disconnect from unregistered client")
		return Outcome{Status: domain.StatusFAIL}
	}

	logger.Info("client disconnected", zap.Int("clients", s.registry.Len()))
	return Outcome{Status: domain.StatusOK}
}

func (s *Server) broadcast(ctx context.Context, req domain.Request, logger *zap.Logger) Outcome {
	outcome := Outcome{Status: domain.StatusOK}

	for _, id := range s.registry.IDs() {
		if id == req.Origin {
			continue
		}

		evicted, err := s.deliver(ctx, req, id)
		if err != nil {
			outcome.Status = domain.StatusFAIL
			logger.Warn("global delivery failed", zap.Int32("dest_pid", int32(id)), zap.Error(err))
			if evicted {
				outcome.Evicted = append(outcome.Evicted, id)
			}
			continue
		}
		outcome.Delivered = append(outcome.Delivered, id)
	}

	logger.Debug("global message relayed", zap.Int("delivered", len(outcome.Delivered)))
	return outcome
}

func (s *Server) direct(ctx context.Context, req domain.Request, logger *zap.Logger) Outcome {
	logger = logger.With(zap.Int32("dest_pid", int32(req.Dest)))

	if req.Dest == req.Origin {
		logger.Warn("ignoring message addressed to its sender")
		return Outcome{Status: domain.StatusOK}
	}
	if !s.registry.Contains(req.Dest) {
		logger.Warn("ignoring message for unregistered client")
		return Outcome{Status: domain.StatusOK}
	}

	evicted, err := s.deliver(ctx, req, req.Dest)
	if err != nil {
		logger.Warn("direct delivery failed", zap.Error(err))
		outcome := Outcome{Status: domain.StatusFAIL}
		if evicted {
			outcome.Evicted = []domain.ClientID{req.Dest}
		}
		return outcome
	}

	return Outcome{Status: domain.StatusOK, Delivered: []domain.ClientID{req.Dest}}
}

// deliver writes req to recipient's channel. A recipient whose channel has no
// reader is removed from the registry.
func (s *Server) deliver(ctx context.Context, req domain.Request, recipient domain.ClientID) (bool, error) {
	err := s.write(ctx, recipient, domain.Delivery(req, recipient, s.seq))
	s.metrics.DeliveryAttempted(err == nil)
	if err == nil || !errors.Is(err, ports.ErrUnreachable) {
		return false, err
	}

	if removeErr := s.registry.Remove(recipient); removeErr != nil {
		return false, err
	}
	s.metrics.ClientEvicted()
	s.logger.Info("evicted unreachable client", zap.Int32("client_pid", int32(recipient)))

	return true, err
}

func (s *Server) acknowledge(ctx context.Context, origin domain.ClientID, status domain.Status, logger *zap.Logger) {
	if err := s.write(ctx, origin, domain.Ack(origin, s.seq, status)); err != nil {
		logger.Warn("acknowledge request", zap.String("status", string(status)), zap.Error(err))
	}
}

func (s *Server) write(ctx context.Context, recipient domain.ClientID, resp domain.Response) error {
	data, err := resp.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	path := s.layout.ClientPath(recipient)
	if err := s.sender.Send(ctx, path, data); err != nil {
		return fmt.Errorf("send to client %d: %w", recipient, err)
	}

	return nil
}

func classify(req domain.Request) RequestKind {
	if req.System {
		switch req.Message {
		case domain.MessageNewClient:
			return RequestConnect
		case domain.MessageDisconnect:
			return RequestDisconnect
		case domain.MessageCheckConnection:
			return RequestCheck
		default:
			return RequestSystem
		}
	}

	if req.Global {
		return RequestGlobal
	}
	return RequestDirect
}
