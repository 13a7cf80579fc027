package cmd

import (
	"fmt"
	"io"
	"os"

	inboxrender "github.com/bnema/fifochat/internal/adapters/render/inbox"
	settingsstore "github.com/bnema/fifochat/internal/adapters/settings/toml"
	"github.com/bnema/fifochat/internal/adapters/transport/fifo"
	"github.com/bnema/fifochat/internal/application"
	"github.com/bnema/fifochat/internal/domain"
	"github.com/bnema/fifochat/internal/logging"
	"github.com/bnema/fifochat/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	settings      settingsstore.Settings
	channels      ports.Channels
	logger        *zap.Logger
	clock         ports.Clock
	inboxRenderer func([]application.IncomingMessage) (string, error)
	pid           func() int
}

func wireApp(configPath string, logOutput io.Writer, minLevel zapcore.Level) (*app, error) {
	store, err := settingsstore.NewStore(viper.New(), configPath)
	if err != nil {
		return nil, fmt.Errorf("wire settings store: %w", err)
	}

	settings, err := store.Load()
	if err != nil {
		return nil, err
	}

	logCfg := settings.Log
	logCfg.Output = logOutput
	if level, _ := logging.ParseLevel(logCfg.Level); level < minLevel {
		logCfg.Level = minLevel.String()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	channels, err := fifo.NewChannels(fifo.Options{
		RecordSize:   int(domain.RecordSize),
		WriteTimeout: settings.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("wire fifo channels: %w", err)
	}

	return &app{
		settings:      settings,
		channels:      channels,
		logger:        logger,
		clock:         ports.SystemClock{},
		inboxRenderer: inboxrender.Render,
		pid:           os.Getpid,
	}, nil
}
