package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Profile    ProfileConfig  `mapstructure:"profile"`
	Display    DisplayConfig  `mapstructure:"display"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ProfileConfig is the config-backed identity collaborator: it tells the
// services which account the caller owns and whether they operate the ledger.
type ProfileConfig struct {
	Account  string `mapstructure:"account"`
	Operator bool   `mapstructure:"operator"`
}

type DisplayConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Profile:  ProfileConfig{},
		Display:  DisplayConfig{HistoryLimit: 50},
	}
}
