package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ClientID is the process id a client registers under. It matches pid_t on
// the wire.
type ClientID int32

func (id ClientID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseClientID(raw string) (ClientID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("client pid is empty")
	}

	value, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse client pid %q: %w", raw, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("client pid must be positive, got %d", value)
	}

	return ClientID(value), nil
}

// ChannelLayout names the server's well-known FIFO and the per-client FIFOs.
// Client and server must agree on it.
type ChannelLayout struct {
	ServerPath     string
	ClientTemplate string
}

func (l ChannelLayout) Validate() error {
	if strings.TrimSpace(l.ServerPath) == "" {
		return errors.New("server channel path is required")
	}
	if strings.Count(l.ClientTemplate, "%") != 1 || !strings.Contains(l.ClientTemplate, "%d") {
		return fmt.Errorf("client channel template %q must contain exactly one %%d", l.ClientTemplate)
	}

	return nil
}

func (l ChannelLayout) ClientPath(id ClientID) string {
	return fmt.Sprintf(l.ClientTemplate, int64(id))
}
