package fifo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/fifochat/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecordSize = 16

func newTestChannels(t *testing.T) *Channels {
	t.Helper()

	channels, err := NewChannels(Options{
		RecordSize:   testRecordSize,
		WriteTimeout: 200 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	return channels
}

func record(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, testRecordSize)
}

func TestNewChannelsRejectsInvalidRecordSize(t *testing.T) {
	t.Parallel()

	_, err := NewChannels(Options{})
	assert.ErrorContains(t, err, "record size must be positive")

	_, err = NewChannels(Options{RecordSize: atomicWriteSize + 1})
	assert.ErrorContains(t, err, "exceeds atomic pipe write size")
}

func TestCreateMakesNamedPipeWithChannelMode(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "sv")

	require.NoError(t, channels.Create(path))
	// Creating twice is fine.
	require.NoError(t, channels.Create(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeNamedPipe)
	assert.Equal(t, os.FileMode(channelMode), info.Mode().Perm())
}

func TestCreateRejectsRegularFile(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	err := channels.Create(path)
	assert.ErrorContains(t, err, "not a fifo")
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "sv")
	require.NoError(t, channels.Create(path))

	require.NoError(t, channels.Remove(path))
	require.NoError(t, channels.Remove(path))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSendReceiveRoundTrip(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "client.1")
	require.NoError(t, channels.Create(path))

	inbox, err := channels.Listen(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inbox.Close() })

	ctx := context.Background()
	require.NoError(t, channels.Send(ctx, path, record('a')))
	require.NoError(t, channels.Send(ctx, path, record('b')))

	got, err := inbox.Receive(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, record('a'), got)

	got, err = inbox.Receive(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, record('b'), got)
}

func TestSendWithoutReaderIsUnreachable(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	dir := t.TempDir()

	orphan := filepath.Join(dir, "client.2")
	require.NoError(t, channels.Create(orphan))
	err := channels.Send(context.Background(), orphan, record('x'))
	assert.ErrorIs(t, err, ports.ErrUnreachable)

	err = channels.Send(context.Background(), filepath.Join(dir, "missing"), record('x'))
	assert.ErrorIs(t, err, ports.ErrUnreachable)
}

func TestSendRejectsWrongRecordSize(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	err := channels.Send(context.Background(), filepath.Join(t.TempDir(), "sv"), []byte("short"))
	assert.ErrorIs(t, err, ports.ErrShortWrite)
}

func TestSendHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := channels.Send(ctx, filepath.Join(t.TempDir(), "sv"), record('x'))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReceiveTimesOut(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "client.3")
	require.NoError(t, channels.Create(path))

	inbox, err := channels.Listen(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inbox.Close() })

	start := time.Now()
	_, err = inbox.Receive(context.Background(), 50*time.Millisecond)
	assert.ErrorIs(t, err, ports.ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestReceiveStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "client.4")
	require.NoError(t, channels.Create(path))

	inbox, err := channels.Listen(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inbox.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err = inbox.Receive(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrainReturnsBufferedRecords(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "client.5")
	require.NoError(t, channels.Create(path))

	inbox, err := channels.Listen(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inbox.Close() })

	ctx := context.Background()
	empty, err := inbox.Drain(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// A timed-out Receive leaves a read deadline behind.
	_, err = inbox.Receive(ctx, 20*time.Millisecond)
	require.ErrorIs(t, err, ports.ErrTimeout)

	require.NoError(t, channels.Send(ctx, path, record('1')))
	require.NoError(t, channels.Send(ctx, path, record('2')))

	records, err := inbox.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{record('1'), record('2')}, records)

	records, err = inbox.Drain(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSendAfterInboxClosedIsUnreachable(t *testing.T) {
	t.Parallel()

	channels := newTestChannels(t)
	path := filepath.Join(t.TempDir(), "client.6")
	require.NoError(t, channels.Create(path))

	inbox, err := channels.Listen(path)
	require.NoError(t, err)
	require.NoError(t, inbox.Close())

	err = channels.Send(context.Background(), path, record('z'))
	assert.ErrorIs(t, err, ports.ErrUnreachable)
}
