package usecase

import (
	"context"

	"github.com/m-mizutani/care/pkg/domain/interfaces"
	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type inspectUseCase struct {
	resolver interfaces.ResolverUseCase
	lister   interfaces.EntryLister
}

// NewInspect creates a new InspectUseCase instance
func NewInspect(resolver interfaces.ResolverUseCase, lister interfaces.EntryLister) interfaces.InspectUseCase {
	return &inspectUseCase{
		resolver: resolver,
		lister:   lister,
	}
}

// Inspect resolves the archive type, lists its entries and aggregates their roots
func (uc *inspectUseCase) Inspect(ctx context.Context, req *model.InspectRequest) (*model.RootReport, error) {
	logger := ctxlog.From(ctx)

	archiveType, err := uc.resolver.Resolve(ctx, req.Path, req.Detection)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve archive type",
			goerr.V("path", req.Path),
			goerr.V("strategy", req.Detection.Strategy.String()),
		)
	}

	logger.Debug("Resolved archive type",
		"path", req.Path,
		"type", archiveType,
		"strategy", req.Detection.Strategy.String(),
	)

	entries, err := uc.lister.List(ctx, req.Path, archiveType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list archive entries",
			goerr.V("path", req.Path),
			goerr.V("type", archiveType),
		)
	}

	roots := model.CollectRoots(entries)

	logger.Debug("Counted root entries",
		"path", req.Path,
		"count", roots.Count(),
	)

	return &model.RootReport{
		Path:  req.Path,
		Type:  archiveType,
		Roots: roots.Entries(),
	}, nil
}
