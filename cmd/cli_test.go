package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/fifochat/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestServerHelp(t *testing.T) {
	stdout, _, err := executeServerCLI(t, t.TempDir(), "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fifochat-server")
	assert.Contains(t, stdout, "--metrics-addr")
	assert.Contains(t, stdout, "--config")
}

func TestClientHelp(t *testing.T) {
	stdout, _, err := executeClientCLI(t, t.TempDir(), "", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fifochat-client")
	assert.Contains(t, stdout, "--config")
}

func TestClientRejectsPositionalArguments(t *testing.T) {
	_, _, err := executeClientCLI(t, t.TempDir(), "", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeServerCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)

	stdout, _, err = executeClientCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestConfigInitWritesDefaultFile(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeServerCLI(t, home, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, ".fifochat", "config.toml")
	assert.Contains(t, stdout, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/tmp/fifochat_sv")

	_, _, err = executeClientCLI(t, home, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file already exists")

	_, _, err = executeClientCLI(t, home, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInitHonoursConfigFlag(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "custom.toml")

	_, _, err := executeServerCLI(t, home, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(home, ".fifochat", "config.toml"))
}

func TestServerRejectsInvalidConfig(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".fifochat", "config.toml"), "[server]\nmax_clients = -1\n")

	_, _, err := executeServerCLI(t, home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.max_clients must be positive")
}

func TestClientFailsWithoutServer(t *testing.T) {
	home := t.TempDir()
	dir := writeConfigFixture(t, home)

	stdout, _, err := executeClientCLI(t, home, "q\n")
	require.Error(t, err)
	assert.Contains(t, stdout, "Client PID: ")
	assert.Contains(t, stdout, "Could not connect to server")
	assertNoClientChannels(t, dir)
}

func TestClientSendAndReadAgainstServer(t *testing.T) {
	home := t.TempDir()
	dir := writeConfigFixture(t, home)
	serverOut, stopServer := startServerCLI(t, home)

	script := strings.Join([]string{
		"x",
		"s",
		"hello world",
		"second line",
		".",
		"maybe",
		"y",
		"r",
		"q",
	}, "\n") + "\n"

	stdout, _, err := executeClientCLI(t, home, script)
	require.NoError(t, err)
	assert.Contains(t, stdout, fmt.Sprintf("Client PID: %d", os.Getpid()))
	assert.Contains(t, stdout, "Connected to server")
	assert.Contains(t, stdout, "Choose an option:\n  r) read messages\n  s) send a message\n  q) quit\n> ")
	assert.Contains(t, stdout, "Please enter a valid choice")
	assert.Contains(t, stdout, "Please answer y or n")
	assert.Contains(t, stdout, "Message sent")
	assert.Contains(t, stdout, "No new messages.")
	assert.Contains(t, stdout, "Disconnected from server")
	assertNoClientChannels(t, dir)

	require.NoError(t, stopServer())
	assert.Contains(t, serverOut.String(), "server listening")
	assert.Contains(t, serverOut.String(), "client connected")
	assert.Contains(t, serverOut.String(), "client disconnected")
	assert.NoFileExists(t, filepath.Join(dir, "sv"))
}

func TestClientDirectMessageToSelfPromptsForPID(t *testing.T) {
	home := t.TempDir()
	dir := writeConfigFixture(t, home)
	_, stopServer := startServerCLI(t, home)

	script := strings.Join([]string{
		"s",
		"note to self",
		".",
		"n",
		"abc",
		"0",
		fmt.Sprint(os.Getpid()),
		"q",
	}, "\n") + "\n"

	stdout, _, err := executeClientCLI(t, home, script)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "Please enter a valid PID"))
	assert.Contains(t, stdout, "Message sent")
	assertNoClientChannels(t, dir)

	require.NoError(t, stopServer())
}

func TestClientTreatsEndOfInputAsQuit(t *testing.T) {
	home := t.TempDir()
	dir := writeConfigFixture(t, home)
	_, stopServer := startServerCLI(t, home)

	stdout, _, err := executeClientCLI(t, home, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Disconnected from server")
	assertNoClientChannels(t, dir)

	require.NoError(t, stopServer())
}

func executeServerCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	return executeCommand(newServerRootCmd(), "", args...)
}

func executeClientCLI(t *testing.T, home string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	return executeCommand(newClientRootCmd(), stdin, args...)
}

func executeCommand(root *cobra.Command, stdin string, args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// startServerCLI runs the server command until the returned stop function is
// called. The output buffer must only be read after stop returns.
func startServerCLI(t *testing.T, home string) (*bytes.Buffer, func() error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newServerRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- root.ExecuteContext(ctx)
	}()

	serverPath := filepath.Join(home, "chat", "sv")
	require.Eventually(t, func() bool {
		fd, err := unix.Open(serverPath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			return false
		}
		_ = unix.Close(fd)
		return true
	}, 5*time.Second, 10*time.Millisecond)

	stopped := false
	var result error
	stop := func() error {
		if !stopped {
			stopped = true
			cancel()
			result = <-done
		}
		return result
	}
	t.Cleanup(func() { _ = stop() })

	return stdout, stop
}

// writeConfigFixture points the channels at a private directory under home and
// returns that directory.
func writeConfigFixture(t *testing.T, home string) string {
	t.Helper()

	dir := filepath.Join(home, "chat")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	config := fmt.Sprintf(`version = 1

[channels]
server_path = %q
client_template = %q

[client]
response_timeout = "2s"

[log]
level = "info"
`, filepath.Join(dir, "sv"), filepath.Join(dir, "client.%d"))
	writeFile(t, filepath.Join(home, ".fifochat", "config.toml"), config)

	return dir
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func assertNoClientChannels(t *testing.T, dir string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "client.*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
