package application

import (
	"fmt"
	"time"

	"github.com/bnema/fifochat/internal/domain"
)

type ServerConfig struct {
	Layout     domain.ChannelLayout
	MaxClients int
}

type ClientConfig struct {
	ID              domain.ClientID
	Layout          domain.ChannelLayout
	ResponseTimeout time.Duration
}

// OutgoingMessage is a chat message composed by the user. Dest is ignored for
// global messages.
type OutgoingMessage struct {
	Global bool
	Dest   domain.ClientID
	Text   string
}

func (m OutgoingMessage) Validate() error {
	if !m.Global && m.Dest <= 0 {
		return fmt.Errorf("direct message needs a destination pid, got %d", m.Dest)
	}

	return nil
}

func (m OutgoingMessage) request(origin domain.ClientID) domain.Request {
	if m.Global {
		return domain.GlobalMessage(origin, m.Text)
	}

	return domain.DirectMessage(origin, m.Dest, m.Text)
}
