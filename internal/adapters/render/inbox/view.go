package inbox

import (
	"fmt"
	"strings"

	"github.com/bnema/fifochat/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const stampLayout = "15:04:05"

func header(count int, s styles) []string {
	return []string{
		s.title.Render("Inbox"),
		s.header.Render(fmt.Sprintf("messages: %d", count)),
	}
}

func renderEmpty(s styles) string {
	lines := append(header(0, s), s.empty.Render("No new messages."))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderView(messages []application.IncomingMessage, s styles) string {
	lines := header(len(messages), s)
	for _, msg := range messages {
		lines = append(lines, renderMessage(msg, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(msg application.IncomingMessage, s styles) string {
	heading := []string{}
	if !msg.ReceivedAt.IsZero() {
		heading = append(heading, s.stamp.Render(msg.ReceivedAt.Format(stampLayout)))
	}
	heading = append(heading,
		s.sender.Render(fmt.Sprintf("from %d", msg.From)),
		s.scope.Render(scopeLabel(msg.Global)),
	)

	body := strings.TrimRight(msg.Text, "\n")
	if body == "" {
		body = "(empty message)"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(heading, " "),
		s.body.Render(body),
	)
}

func scopeLabel(global bool) string {
	if global {
		return "(global)"
	}

	return "(direct)"
}
