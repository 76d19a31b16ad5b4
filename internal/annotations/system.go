package annotations

import (
	"context"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/pagination"
)

// System defines the public contract for annotation persistence operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Annotation], error)

	ListAll(ctx context.Context) ([]Annotation, error)
	Find(ctx context.Context, id uuid.UUID) (*Annotation, error)
	FindBySegment(ctx context.Context, segmentID uuid.UUID) (*Annotation, error)
	Upsert(ctx context.Context, ann *Annotation) (*Annotation, error)
	UpsertMany(ctx context.Context, anns []*Annotation) error
}
