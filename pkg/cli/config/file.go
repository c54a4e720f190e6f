package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File holds the path of the optional TOML configuration file
type File struct {
	Path string
}

// Settings is the content of the configuration file
type Settings struct {
	MagicBackend string     `toml:"magic_backend"`
	MagicCommand string     `toml:"magic_command"`
	Extensions   []RuleSpec `toml:"extension"`
	Labels       []RuleSpec `toml:"label"`
}

// RuleSpec is an extra detection rule. Exactly one of Suffix (extension
// rules) or Keyword (label rules) is used.
type RuleSpec struct {
	Suffix  string `toml:"suffix"`
	Keyword string `toml:"keyword"`
	Type    string `toml:"type"`
}

// Flags returns CLI flags for the configuration file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("CARE_CONFIG"),
		},
	}
}

// Load reads the configuration file. Without a path, empty settings are returned.
func (c *File) Load() (*Settings, error) {
	if c.Path == "" {
		return &Settings{}, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Path))
	}

	var settings Settings
	if err := toml.Unmarshal(raw, &settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Path))
	}

	for _, r := range settings.Extensions {
		if r.Suffix == "" {
			return nil, goerr.New("extension rule requires suffix", goerr.V("path", c.Path))
		}
	}
	for _, r := range settings.Labels {
		if r.Keyword == "" {
			return nil, goerr.New("label rule requires keyword", goerr.V("path", c.Path))
		}
	}

	return &settings, nil
}
