package usecase

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/care/pkg/domain/interfaces"
	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// FallbackWarning is printed when sniffing is requested but no classifier can be loaded
const FallbackWarning = "Warning: content classifier is unavailable; using filename extension to decide archive type"

// Resolver decides the archive type of a file
type Resolver struct {
	extensions *RuleTable
	labels     *RuleTable
	probe      interfaces.ClassifierProbe
	warnWriter io.Writer
}

// ResolverOption is a functional option for Resolver
type ResolverOption func(*Resolver)

// WithClassifierProbe sets the capability probe of the content classifier
func WithClassifierProbe(probe interfaces.ClassifierProbe) ResolverOption {
	return func(r *Resolver) {
		r.probe = probe
	}
}

// WithExtensionTable replaces the extension rule table
func WithExtensionTable(table *RuleTable) ResolverOption {
	return func(r *Resolver) {
		r.extensions = table
	}
}

// WithLabelTable replaces the classifier label rule table
func WithLabelTable(table *RuleTable) ResolverOption {
	return func(r *Resolver) {
		r.labels = table
	}
}

// WithWarningWriter sets where the fallback warning is written
func WithWarningWriter(w io.Writer) ResolverOption {
	return func(r *Resolver) {
		r.warnWriter = w
	}
}

func noClassifier() (interfaces.Classifier, bool) { return nil, false }

// NewResolver creates a Resolver with the built-in tables and no classifier
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		extensions: mustRuleTable(MatchSuffix, DefaultExtensionRules...),
		labels:     mustRuleTable(MatchContains, DefaultLabelRules...),
		probe:      noClassifier,
		warnWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the archive type of path according to detection
func (r *Resolver) Resolve(ctx context.Context, path string, detection model.Detection) (types.ArchiveType, error) {
	logger := ctxlog.From(ctx)

	switch detection.Strategy {
	case model.StrategyExplicit:
		if err := detection.FileType.Validate(); err != nil {
			return "", goerr.Wrap(err, "invalid explicit archive type")
		}
		return detection.FileType, nil

	case model.StrategyExtension:
		return r.GuessByExtension(path)

	case model.StrategySniff:
		classifier, ok := r.probe()
		if !ok {
			logger.Debug("Content classifier is not available, falling back to extension", "path", path)
			if !detection.SuppressWarning {
				r.warn()
			}
			return r.GuessByExtension(path)
		}

		label, err := classifier.Classify(ctx, path)
		if err != nil {
			return "", goerr.Wrap(err, "failed to classify file content", goerr.V("path", path))
		}
		logger.Debug("Classified file content", "path", path, "label", label)
		return r.GuessByLabel(label)

	default:
		return "", goerr.New("unknown detection strategy", goerr.V("strategy", detection.Strategy))
	}
}

// GuessByExtension matches the filename suffix against the extension table
func (r *Resolver) GuessByExtension(path string) (types.ArchiveType, error) {
	t, ok := r.extensions.Lookup(path)
	if !ok {
		return "", goerr.Wrap(model.ErrTypeUnrecognizable, "no extension rule matched", goerr.V("path", path))
	}
	return t, nil
}

// GuessByLabel matches a classifier label against the label table
func (r *Resolver) GuessByLabel(label string) (types.ArchiveType, error) {
	t, ok := r.labels.Lookup(label)
	if !ok {
		return "", goerr.Wrap(model.ErrTypeUnrecognizable, "no label rule matched", goerr.V("label", label))
	}
	return t, nil
}

func (r *Resolver) warn() {
	_, _ = color.New(color.FgYellow).Fprintln(r.warnWriter, FallbackWarning)
}
