package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bnema/fifochat/internal/application"
	"github.com/bnema/fifochat/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

const (
	menuText = `Choose an option:
  r) read messages
  s) send a message
  q) quit`
	messageTerminator = "."
	disconnectGrace   = time.Second
)

var (
	errConnectionLost = errors.New("connection to server lost")
	errQuit           = errors.New("quit")
)

type clientOptions struct {
	configPath string
}

func runClient(cmd *cobra.Command, opts *clientOptions) (err error) {
	app, err := wireApp(opts.configPath, cmd.ErrOrStderr(), zapcore.WarnLevel)
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()

	id := domain.ClientID(app.pid())
	client, err := application.OpenClient(application.ClientConfig{
		ID:              id,
		Layout:          app.settings.Layout,
		ResponseTimeout: app.settings.ResponseTimeout,
	}, app.channels, app.clock, app.logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGQUIT)
	defer stop()

	s := &session{
		client:  client,
		in:      newLineReader(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		styles:  newCLIStyles(),
		render:  app.inboxRenderer,
		timeout: app.settings.ResponseTimeout,
	}
	s.printf("Client PID: %s\n", s.styles.pid.Render(id.String()))

	if err := runConnectSpinner(ctx, cmd.ErrOrStderr(), client.Connect); err != nil {
		s.failure("Could not connect to server: %v", err)
		return fmt.Errorf("connect to server: %w", err)
	}
	s.success("Connected to server at %s", app.settings.Layout.ServerPath)

	loopErr := s.loop(ctx)
	interrupted := ctx.Err() != nil
	// A second interrupt during the disconnect terminates the process.
	stop()

	switch {
	case errors.Is(loopErr, errConnectionLost):
		s.failure("Connection to server lost")
		return loopErr
	case interrupted:
		s.printf("\nInterrupted, disconnecting...\n")
	case loopErr != nil && !errors.Is(loopErr, errQuit):
		s.failure("%v", loopErr)
	}

	return s.disconnect(cmd.Context())
}

type session struct {
	client  *application.Client
	in      *lineReader
	out     io.Writer
	styles  cliStyles
	render  func([]application.IncomingMessage) (string, error)
	timeout time.Duration
}

// loop runs the menu until the user quits, input ends, the context is
// cancelled or the server stops answering heartbeats.
func (s *session) loop(ctx context.Context) error {
	for {
		if err := s.client.CheckConnection(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %w", errConnectionLost, err)
		}

		s.showMenu()
		choice, err := s.ask(ctx, "> ")
		if err != nil {
			return inputEnded(err)
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "r":
			if err := s.showMessages(ctx, true); err != nil {
				return err
			}
		case "s":
			if err := s.showMessages(ctx, false); err != nil {
				return err
			}
			if err := s.compose(ctx); err != nil {
				return err
			}
		case "q":
			return errQuit
		default:
			s.failure("Please enter a valid choice")
		}
	}
}

func (s *session) showMessages(ctx context.Context, always bool) error {
	messages, err := s.client.Drain(ctx)
	if err != nil {
		return err
	}
	if len(messages) == 0 && !always {
		return nil
	}

	rendered, err := s.render(messages)
	if err != nil {
		return fmt.Errorf("render messages: %w", err)
	}
	s.printf("%s\n", rendered)

	return nil
}

func (s *session) compose(ctx context.Context) error {
	s.printf("%s\n", s.styles.prompt.Render(fmt.Sprintf("Type your message, end with a line containing only %q:", messageTerminator)))

	lines := []string{}
	for {
		line, err := s.in.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if line == messageTerminator {
			break
		}
		lines = append(lines, line)
	}
	msg := application.OutgoingMessage{Text: strings.Join(lines, "\n")}

	global, err := s.askGlobal(ctx)
	if err != nil {
		return inputEnded(err)
	}
	msg.Global = global

	if !global {
		dest, err := s.askDestination(ctx)
		if err != nil {
			return inputEnded(err)
		}
		msg.Dest = dest
	}

	err = s.client.Send(ctx, msg)
	switch {
	case err == nil:
		s.success("Message sent")
	case errors.Is(err, application.ErrRequestRejected):
		s.failure("Message could not be delivered")
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		s.failure("Could not send message: %v", err)
	}

	return nil
}

func (s *session) askGlobal(ctx context.Context) (bool, error) {
	for {
		answer, err := s.ask(ctx, "Global message? [y/n]: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			s.failure("Please answer y or n")
		}
	}
}

func (s *session) askDestination(ctx context.Context) (domain.ClientID, error) {
	for {
		answer, err := s.ask(ctx, "Destination PID: ")
		if err != nil {
			return 0, err
		}

		id, err := domain.ParseClientID(answer)
		if err == nil {
			return id, nil
		}
		s.failure("Please enter a valid PID")
	}
}

func (s *session) disconnect(parent context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), s.timeout+disconnectGrace)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		s.failure("Could not disconnect from server: %v", err)
		return err
	}
	s.success("Disconnected from server")

	return nil
}

// showMenu styles each line on its own; a multi-line render pads every line to
// the widest one.
func (s *session) showMenu() {
	for _, line := range strings.Split(menuText, "\n") {
		s.printf("%s\n", s.styles.menu.Render(line))
	}
}

func (s *session) ask(ctx context.Context, prompt string) (string, error) {
	s.printf("%s", s.styles.prompt.Render(prompt))
	return s.in.Next(ctx)
}

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *session) success(format string, args ...any) {
	s.printf("%s\n", s.styles.success.Render(fmt.Sprintf(format, args...)))
}

func (s *session) failure(format string, args ...any) {
	s.printf("%s\n", s.styles.failure.Render(fmt.Sprintf(format, args...)))
}

// inputEnded maps end of input to a quit request.
func inputEnded(err error) error {
	if errors.Is(err, io.EOF) {
		return errQuit
	}

	return err
}
