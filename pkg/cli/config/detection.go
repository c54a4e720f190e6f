package config

import (
	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Detection holds archive type detection configuration
type Detection struct {
	FileType     string
	NoMagic      bool
	NoExtWarning bool
	MagicBackend string
}

// MutuallyExclusiveFlags returns the group of -T, -M and -W. Only one of
// them may be given.
func (c *Detection) MutuallyExclusiveFlags() cli.MutuallyExclusiveFlags {
	return cli.MutuallyExclusiveFlags{
		Category: "Detection",
		Flags: [][]cli.Flag{
			{
				&cli.StringFlag{
					Name:        "file-type",
					Aliases:     []string{"T"},
					Usage:       `archive type: "zip", or "tar" which includes gzip, bzip2 and xz compressed tar`,
					Destination: &c.FileType,
					Validator: func(s string) error {
						_, err := types.ParseArchiveType(s)
						return err
					},
				},
			},
			{
				&cli.BoolFlag{
					Name:        "no-magic",
					Aliases:     []string{"M"},
					Usage:       "don't sniff file content, guess archive type by filename extension",
					Destination: &c.NoMagic,
				},
			},
			{
				&cli.BoolFlag{
					Name:        "no-ext-warning",
					Aliases:     []string{"W"},
					Usage:       "suppress the warning printed when the content classifier is unavailable",
					Destination: &c.NoExtWarning,
				},
			},
		},
	}
}

// Flags returns CLI flags for the content classifier
func (c *Detection) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "magic-backend",
			Usage:       "Content classifier (file, builtin); overrides the config file",
			Category:    "Detection",
			Destination: &c.MagicBackend,
			Sources:     cli.EnvVars("CARE_MAGIC_BACKEND"),
		},
	}
}

// Detection converts the flags into a detection request
func (c *Detection) Detection() (model.Detection, error) {
	switch {
	case c.FileType != "":
		t, err := types.ParseArchiveType(c.FileType)
		if err != nil {
			return model.Detection{}, goerr.Wrap(err, "invalid --file-type")
		}
		return model.Detection{Strategy: model.StrategyExplicit, FileType: t}, nil

	case c.NoMagic:
		return model.Detection{Strategy: model.StrategyExtension}, nil

	default:
		return model.Detection{
			Strategy:        model.StrategySniff,
			SuppressWarning: c.NoExtWarning,
		}, nil
	}
}
