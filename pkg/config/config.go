package config

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/linktime/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "LINKTIME_"

	userConfigFile = "linktime/config.toml"
)

// Formats lists the accepted values of output.format.
var Formats = []string{"auto", "term", "text", "json", "yaml", "toml"}

// Config is the CLI configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
	Color  bool   `koanf:"color"`
}

// Load reads the layered configuration. An explicit path must exist; when
// path is empty the user config file is used if present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	source, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	found, err := xdg.SearchConfigFile(userConfigFile)
	if err != nil {
		// No user config is the common case.
		return "", nil
	}
	return found, nil
}

// envKey maps LINKTIME_OUTPUT_FORMAT to output.format.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	format := strings.ToLower(c.Output.Format)
	for _, f := range Formats {
		if format == f {
			c.Output.Format = format
			return nil
		}
	}
	return errors.Newf(errors.ErrConfigValid, "unknown output.format %q (want one of %s)",
		c.Output.Format, strings.Join(Formats, ", "))
}
