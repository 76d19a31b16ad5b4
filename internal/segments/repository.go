package segments

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/pagination"
	"github.com/avolkmann/cantor/pkg/query"
	"github.com/avolkmann/cantor/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a segment repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "segments"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Segment], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Title", "Content")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count segments: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	segs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("query segments: %w", err)
	}

	result := pagination.NewPageResult(segs, total, page.Page, page.PageSize)
	return &result, nil
}

// ListAll returns every segment in stable (source slug, ordering) order.
// This is the canonical corpus ordering used by the sampler and exporter.
func (r *repo) ListAll(ctx context.Context) ([]Segment, error) {
	q, args := query.NewBuilder(projection, defaultSort...).Build()

	segs, err := repository.QueryMany(ctx, r.db, q, args, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("query corpus segments: %w", err)
	}
	return segs, nil
}

func (r *repo) ListBySource(ctx context.Context, sourceID uuid.UUID) ([]Segment, error) {
	qb := query.NewBuilder(projection, query.SortField{Field: "Ordering"}).
		WhereEquals("SourceID", sourceID)

	q, args := qb.Build()
	segs, err := repository.QueryMany(ctx, r.db, q, args, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("query segments for source %s: %w", sourceID, err)
	}
	return segs, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Segment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	seg, err := repository.QueryOne(ctx, r.db, q, args, scanSegment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &seg, nil
}

// Replace atomically replaces all segments of a source with the given drafts.
// Re-segmentation of an already-segmented source never leaves a partial state.
// Drafts must carry unique, contiguous ordering from zero and non-empty content.
func (r *repo) Replace(ctx context.Context, sourceID uuid.UUID, drafts []Draft) ([]Segment, error) {
	if err := validateDrafts(drafts); err != nil {
		return nil, err
	}

	const insertSQL = `
		INSERT INTO segments(id, source_id, kind, title, content, content_hash, language, sender, recipient, segment_date, number, ordering)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM segments WHERE source_id = $1", sourceID,
		); err != nil {
			return struct{}{}, err
		}

		for _, d := range drafts {
			_, err := tx.ExecContext(ctx, insertSQL,
				uuid.New(),
				sourceID,
				d.Kind,
				d.Title,
				d.Content,
				HashContent(d.Content),
				d.Language,
				d.Sender,
				d.Recipient,
				d.SegmentDate,
				d.Number,
				d.Ordering,
			)
			if err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("segments replaced", "source_id", sourceID, "count", len(drafts))
	return r.ListBySource(ctx, sourceID)
}

// LinkParallel records a symmetric parallel-text relation between two segments.
// Re-linking the same pair is idempotent.
func (r *repo) LinkParallel(ctx context.Context, a, b uuid.UUID) error {
	if a == b {
		return ErrSelfLink
	}

	// canonical pair order keeps the relation symmetric with a single row
	lo, hi := a, b
	if strings.Compare(hi.String(), lo.String()) < 0 {
		lo, hi = hi, lo
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO segment_links(segment_a, segment_b)
			VALUES ($1, $2)
			ON CONFLICT (segment_a, segment_b) DO NOTHING`,
			lo, hi,
		)
		return struct{}{}, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("parallel segments linked", "a", a, "b", b)
	return nil
}

// ParallelOf returns the segments linked to the given segment.
// Either side of the symmetric relation may be queried.
func (r *repo) ParallelOf(ctx context.Context, id uuid.UUID) ([]Segment, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT %s FROM %s
		JOIN segment_links l ON seg.id = l.segment_a OR seg.id = l.segment_b
		WHERE (l.segment_a = $1 OR l.segment_b = $1) AND seg.id != $1
		ORDER BY src.slug, seg.ordering`,
		projection.Columns(),
		projection.From(),
	)

	segs, err := repository.QueryMany(ctx, r.db, q, []any{id}, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("query parallel segments for %s: %w", id, err)
	}
	return segs, nil
}

// ListByParallelGroup returns all segments whose sources share a parallel group,
// in stable (source slug, ordering) order.
func (r *repo) ListByParallelGroup(ctx context.Context, group string) ([]Segment, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE src.parallel_group = $1
		ORDER BY src.slug, seg.ordering`,
		projection.Columns(),
		projection.From(),
	)

	segs, err := repository.QueryMany(ctx, r.db, q, []any{group}, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("query parallel group %s: %w", group, err)
	}
	return segs, nil
}

// HashContent returns the hex sha256 content hash used for exact-duplicate detection.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func validateDrafts(drafts []Draft) error {
	if len(drafts) == 0 {
		return ErrInvalidSegment
	}

	seen := make(map[int]bool, len(drafts))
	for _, d := range drafts {
		if strings.TrimSpace(d.Content) == "" {
			return ErrInvalidSegment
		}
		if !validKind(d.Kind) {
			return fmt.Errorf("%w: %s", ErrInvalidKind, d.Kind)
		}
		if d.Ordering < 0 || d.Ordering >= len(drafts) || seen[d.Ordering] {
			return ErrInvalidOrdering
		}
		seen[d.Ordering] = true
	}
	return nil
}
