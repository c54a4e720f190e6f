package config

import "github.com/urfave/cli/v3"

// Output holds presentation configuration
type Output struct {
	WithFilename bool
	List         bool
}

// MutuallyExclusiveFlags returns the group of -f and -l
func (c *Output) MutuallyExclusiveFlags() cli.MutuallyExclusiveFlags {
	return cli.MutuallyExclusiveFlags{
		Category: "Output",
		Flags: [][]cli.Flag{
			{
				&cli.BoolFlag{
					Name:        "with-filename",
					Aliases:     []string{"f"},
					Usage:       `print the count as "<count> <archive>"`,
					Destination: &c.WithFilename,
				},
			},
			{
				&cli.BoolFlag{
					Name:        "list",
					Aliases:     []string{"l"},
					Usage:       "list the distinct root entries instead of counting them",
					Destination: &c.List,
				},
			},
		},
	}
}
