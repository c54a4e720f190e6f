package magic

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultCommand is the libmagic front end looked up in PATH
const DefaultCommand = "file"

// FileCommand classifies files by running the file(1) utility
type FileCommand struct {
	command string
}

// NewFileCommand creates a classifier running command (a name or a path)
func NewFileCommand(command string) *FileCommand {
	return &FileCommand{command: command}
}

// Classify returns the brief description printed by file(1)
func (c *FileCommand) Classify(ctx context.Context, path string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.command, "-b", "--", path)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", goerr.Wrap(err, "failed to run file command",
			goerr.V("command", c.command),
			goerr.V("path", path),
			goerr.V("stderr", stderr.String()),
		)
	}

	return strings.TrimSpace(string(out)), nil
}
