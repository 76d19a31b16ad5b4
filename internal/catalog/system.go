package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/pagination"
)

// System defines the public contract for source catalog operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Source], error)

	ListByStatus(ctx context.Context, status string) ([]Source, error)
	Find(ctx context.Context, id uuid.UUID) (*Source, error)
	FindBySlug(ctx context.Context, slug string) (*Source, error)
	Register(ctx context.Context, cmd RegisterCommand) (*Source, error)
	Seed(ctx context.Context) (*SeedResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Source, error)
	UploadRaw(ctx context.Context, id uuid.UUID, cmd UploadCommand) (*Source, error)
	UploadText(ctx context.Context, id uuid.UUID, text string) error
	Text(ctx context.Context, id uuid.UUID) (string, error)
}
