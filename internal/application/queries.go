package application

import (
	"time"

	"github.com/bnema/fifochat/internal/domain"
)

type RequestKind string

const (
	RequestConnect    RequestKind = "connect"
	RequestDisconnect RequestKind = "disconnect"
	RequestCheck      RequestKind = "check"
	RequestSystem     RequestKind = "system"
	RequestGlobal     RequestKind = "global"
	RequestDirect     RequestKind = "direct"
)

// Outcome reports what the server did with one request.
type Outcome struct {
	Status    domain.Status
	Delivered []domain.ClientID
	Evicted   []domain.ClientID
}

// IncomingMessage is a chat delivery read from the client's own channel.
type IncomingMessage struct {
	From       domain.ClientID
	Global     bool
	Text       string
	ReceivedAt time.Time
}
