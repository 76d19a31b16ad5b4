package segments

import (
	"context"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/pagination"
)

// System defines the public contract for segment persistence operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Segment], error)

	ListAll(ctx context.Context) ([]Segment, error)
	ListBySource(ctx context.Context, sourceID uuid.UUID) ([]Segment, error)
	ListByParallelGroup(ctx context.Context, group string) ([]Segment, error)
	Find(ctx context.Context, id uuid.UUID) (*Segment, error)
	Replace(ctx context.Context, sourceID uuid.UUID, drafts []Draft) ([]Segment, error)
	LinkParallel(ctx context.Context, a, b uuid.UUID) error
	ParallelOf(ctx context.Context, id uuid.UUID) ([]Segment, error)
}
