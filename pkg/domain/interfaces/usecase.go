package interfaces

import (
	"context"

	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/care/pkg/domain/types"
)

// ResolverUseCase decides the archive type of a file
type ResolverUseCase interface {
	Resolve(ctx context.Context, path string, detection model.Detection) (types.ArchiveType, error)
}

// InspectUseCase counts root entries of an archive
type InspectUseCase interface {
	Inspect(ctx context.Context, req *model.InspectRequest) (*model.RootReport, error)
}
