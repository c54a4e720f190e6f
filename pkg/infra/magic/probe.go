package magic

import (
	"os/exec"

	"github.com/m-mizutani/care/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Backend names a content classifier implementation
type Backend string

const (
	// BackendFile uses the file(1) utility (libmagic)
	BackendFile Backend = "file"
	// BackendBuiltin uses the in-process format identification
	BackendBuiltin Backend = "builtin"
)

// ParseBackend validates a backend name
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendFile, BackendBuiltin:
		return b, nil
	default:
		return "", goerr.New("unknown magic backend", goerr.V("backend", s))
	}
}

// Probe returns a capability probe for backend. The file backend is
// available only when command can be found; the builtin one always is.
func Probe(backend Backend, command string) interfaces.ClassifierProbe {
	return func() (interfaces.Classifier, bool) {
		switch backend {
		case BackendBuiltin:
			return NewBuiltin(), true
		case BackendFile:
			name := command
			if name == "" {
				name = DefaultCommand
			}
			resolved, err := exec.LookPath(name)
			if err != nil {
				return nil, false
			}
			return NewFileCommand(resolved), true
		default:
			return nil, false
		}
	}
}
