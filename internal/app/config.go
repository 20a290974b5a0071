package app

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"cryptokit/internal/store"
)

// ConfigFile is the name of the config file inside the home directory.
const ConfigFile = "config.toml"

// Config holds user defaults, read from <home>/config.toml.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Convert  ConvertConfig `toml:"convert"`
	RSA      RSAConfig     `toml:"rsa"`
}

// ConvertConfig holds default formats for the convert command.
type ConvertConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// RSAConfig holds defaults for RSA key generation.
type RSAConfig struct {
	Bits int `toml:"bits"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Convert:  ConvertConfig{From: "dec", To: "hex"},
		RSA:      RSAConfig{Bits: 2048},
	}
}

// LoadConfig reads home/config.toml over DefaultConfig. A missing file is not
// an error; unknown keys are.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(home, ConfigFile)
	b, err := store.ReadFile(path)
	if err != nil || b == nil {
		return cfg, err
	}
	md, err := toml.Decode(string(b), &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
