package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/fifochat/internal/domain"
	"github.com/bnema/fifochat/internal/logging"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".fifochat"
	configFile      = "config.toml"
	envPrefix       = "FIFOCHAT"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	versionKey         = "version"
	serverPathKey      = "channels.server_path"
	clientTemplateKey  = "channels.client_template"
	maxClientsKey      = "server.max_clients"
	responseTimeoutKey = "client.response_timeout"
	writeTimeoutKey    = "transport.write_timeout"
	logLevelKey        = "log.level"
	logDevelopmentKey  = "log.development"
	metricsAddrKey     = "metrics.addr"
)

var ErrConfigExists = errors.New("config file already exists")

type Settings struct {
	Layout          domain.ChannelLayout
	MaxClients      int
	ResponseTimeout time.Duration
	WriteTimeout    time.Duration
	Log             logging.Config
	MetricsAddr     string
}

func Defaults() Settings {
	return Settings{
		Layout: domain.ChannelLayout{
			ServerPath:     "/tmp/fifochat_sv",
			ClientTemplate: "/tmp/fifochat_client.%d",
		},
		MaxClients:      domain.DefaultRegistryCapacity,
		ResponseTimeout: 5 * time.Second,
		WriteTimeout:    time.Second,
		Log:             logging.Config{Level: "info"},
	}
}

func (s Settings) Validate() error {
	var errs []error
	if err := s.Layout.Validate(); err != nil {
		errs = append(errs, err)
	}
	if s.MaxClients <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", maxClientsKey, s.MaxClients))
	}
	if s.ResponseTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", responseTimeoutKey, s.ResponseTimeout))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", writeTimeoutKey, s.WriteTimeout))
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Store resolves settings from defaults, the config file and FIFOCHAT_*
// environment variables, in increasing precedence.
type Store struct {
	cfg      *viper.Viper
	path     string
	explicit bool
}

// NewStore prepares cfg. An empty path selects ~/.fifochat/config.toml, which
// may be absent; an explicit path must exist when loaded.
func NewStore(cfg *viper.Viper, path string) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
		path = filepath.Join(homeDir, configDir, configFile)
	} else {
		cfg.SetConfigFile(path)
	}
	cfg.SetConfigType(configType)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	defaults := Defaults()
	cfg.SetDefault(versionKey, currentSchemaVersion)
	cfg.SetDefault(serverPathKey, defaults.Layout.ServerPath)
	cfg.SetDefault(clientTemplateKey, defaults.Layout.ClientTemplate)
	cfg.SetDefault(maxClientsKey, defaults.MaxClients)
	cfg.SetDefault(responseTimeoutKey, defaults.ResponseTimeout)
	cfg.SetDefault(writeTimeoutKey, defaults.WriteTimeout)
	cfg.SetDefault(logLevelKey, defaults.Log.Level)
	cfg.SetDefault(logDevelopmentKey, defaults.Log.Development)
	cfg.SetDefault(metricsAddrKey, defaults.MetricsAddr)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	return &Store{cfg: cfg, path: filepath.Clean(absPath), explicit: explicit}, nil
}

// Path is where the config file is read from and where WriteDefault writes.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load() (Settings, error) {
	if err := s.cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if s.explicit || !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := validateVersion(s.cfg.GetInt(versionKey)); err != nil {
		return Settings{}, err
	}

	settings := Settings{
		Layout: domain.ChannelLayout{
			ServerPath:     s.cfg.GetString(serverPathKey),
			ClientTemplate: s.cfg.GetString(clientTemplateKey),
		},
		MaxClients:      s.cfg.GetInt(maxClientsKey),
		ResponseTimeout: s.cfg.GetDuration(responseTimeoutKey),
		WriteTimeout:    s.cfg.GetDuration(writeTimeoutKey),
		Log: logging.Config{
			Level:       s.cfg.GetString(logLevelKey),
			Development: s.cfg.GetBool(logDevelopmentKey),
		},
		MetricsAddr: s.cfg.GetString(metricsAddrKey),
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}

	return settings, nil
}

// WriteDefault writes the default settings to Path. An existing file is left
// alone unless force is set.
func (s *Store) WriteDefault(force bool) error {
	if !force {
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, s.path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	return writeSchema(s.path, toSchema(Defaults()))
}

func writeSchema(path string, file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}
