package inbox

import (
	"testing"
	"time"

	"github.com/bnema/fifochat/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyInbox(t *testing.T) {
	output, err := Render(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "Inbox")
	assert.Contains(t, output, "messages: 0")
	assert.Contains(t, output, "No new messages.")
}

func TestRenderMessages(t *testing.T) {
	at := time.Date(2026, 2, 14, 11, 5, 9, 0, time.UTC)

	output, err := Render([]application.IncomingMessage{
		{From: 4242, Text: "hi there\nsecond line\n", ReceivedAt: at},
		{From: 17, Global: true, Text: "everyone"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "messages: 2")
	assert.Contains(t, output, "11:05:09")
	assert.Contains(t, output, "from 4242")
	assert.Contains(t, output, "(direct)")
	assert.Contains(t, output, "hi there")
	assert.Contains(t, output, "second line")
	assert.Contains(t, output, "from 17")
	assert.Contains(t, output, "(global)")
	assert.Contains(t, output, "everyone")
	assert.NotContains(t, output, "No new messages.")
}

func TestRenderEmptyMessageBody(t *testing.T) {
	output, err := Render([]application.IncomingMessage{{From: 3}})

	require.NoError(t, err)
	assert.Contains(t, output, "(empty message)")
}

func TestModelWaitsForDrainedBatch(t *testing.T) {
	m := model{batch: []application.IncomingMessage{{From: 8, Text: "queued"}}, styles: newStyles()}
	assert.Empty(t, m.View())

	msg := m.Init()()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	shown := next.(model)
	assert.False(t, shown.empty())
	assert.Contains(t, shown.View(), "queued")

	unchanged, cmd := m.Update("ignored")
	assert.Nil(t, cmd)
	assert.Empty(t, unchanged.View())
}
