package toml

import "fmt"

const currentSchemaVersion = 1

// fileSchema is the on-disk shape written by config init. Durations are kept
// as strings ("5s") so the file stays readable by hand and by viper.
type fileSchema struct {
	Version   int             `toml:"version"`
	Channels  channelsSchema  `toml:"channels"`
	Server    serverSchema    `toml:"server"`
	Client    clientSchema    `toml:"client"`
	Transport transportSchema `toml:"transport"`
	Log       logSchema       `toml:"log"`
	Metrics   metricsSchema   `toml:"metrics"`
}

type channelsSchema struct {
	ServerPath     string `toml:"server_path"`
	ClientTemplate string `toml:"client_template"`
}

type serverSchema struct {
	MaxClients int `toml:"max_clients"`
}

type clientSchema struct {
	ResponseTimeout string `toml:"response_timeout"`
}

type transportSchema struct {
	WriteTimeout string `toml:"write_timeout"`
}

type logSchema struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type metricsSchema struct {
	Addr string `toml:"addr"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}

func toSchema(s Settings) fileSchema {
	file := fileSchema{
		Channels: channelsSchema{
			ServerPath:     s.Layout.ServerPath,
			ClientTemplate: s.Layout.ClientTemplate,
		},
		Server:    serverSchema{MaxClients: s.MaxClients},
		Client:    clientSchema{ResponseTimeout: s.ResponseTimeout.String()},
		Transport: transportSchema{WriteTimeout: s.WriteTimeout.String()},
		Log:       logSchema{Level: s.Log.Level, Development: s.Log.Development},
		Metrics:   metricsSchema{Addr: s.MetricsAddr},
	}
	file.applyDefaults()

	return file
}
