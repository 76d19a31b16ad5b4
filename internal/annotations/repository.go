package annotations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

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

// New creates an annotation repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "annotations"),
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
) (*pagination.PageResult[Annotation], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort...)
	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count annotations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	anns, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAnnotation)
	if err != nil {
		return nil, fmt.Errorf("query annotations: %w", err)
	}

	result := pagination.NewPageResult(anns, total, page.Page, page.PageSize)
	return &result, nil
}

// ListAll returns every annotation. Used by contradiction detection and export.
func (r *repo) ListAll(ctx context.Context) ([]Annotation, error) {
	q, args := query.NewBuilder(projection, defaultSort...).Build()

	anns, err := repository.QueryMany(ctx, r.db, q, args, scanAnnotation)
	if err != nil {
		return nil, fmt.Errorf("query all annotations: %w", err)
	}
	return anns, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Annotation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	ann, err := repository.QueryOne(ctx, r.db, q, args, scanAnnotation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &ann, nil
}

// FindBySegment returns the current annotation for a segment.
func (r *repo) FindBySegment(ctx context.Context, segmentID uuid.UUID) (*Annotation, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("SegmentID", segmentID).
		BuildSingleOrNull()

	ann, err := repository.QueryOne(ctx, r.db, q, args, scanAnnotation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &ann, nil
}

// Upsert replaces the segment's annotation atomically. Re-annotation
// never leaves a segment with zero or two annotations.
func (r *repo) Upsert(ctx context.Context, ann *Annotation) (*Annotation, error) {
	if err := validate(ann); err != nil {
		return nil, err
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, upsertTx(ctx, tx, ann)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("annotation upserted",
		"segment_id", ann.SegmentID,
		"tagger", ann.Tagger,
		"confidence", ann.Confidence,
	)
	return r.FindBySegment(ctx, ann.SegmentID)
}

// UpsertMany replaces a batch of annotations in a single transaction.
func (r *repo) UpsertMany(ctx context.Context, anns []*Annotation) error {
	for _, ann := range anns {
		if err := validate(ann); err != nil {
			return err
		}
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		for _, ann := range anns {
			if err := upsertTx(ctx, tx, ann); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("annotations upserted", "count", len(anns))
	return nil
}

func upsertTx(ctx context.Context, tx *sql.Tx, ann *Annotation) error {
	scores, err := json.Marshal(orEmptyScores(ann.Scores))
	if err != nil {
		return err
	}
	subtags, err := json.Marshal(orEmptySubtags(ann.Subtags))
	if err != nil {
		return err
	}
	topics, err := json.Marshal(orEmptyTopics(ann.Topics))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM annotations WHERE segment_id = $1", ann.SegmentID,
	); err != nil {
		return err
	}

	if ann.ID == uuid.Nil {
		ann.ID = uuid.New()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO annotations(id, segment_id, scores, subtags, topics, psych_state, confidence, tagger, contradiction_ref, contradiction_note, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		ann.ID,
		ann.SegmentID,
		scores,
		subtags,
		topics,
		ann.PsychState,
		ann.Confidence,
		ann.Tagger,
		ann.ContradictionRef,
		ann.ContradictionNote,
		ann.Notes,
	)
	return err
}

func validate(ann *Annotation) error {
	if ann.SegmentID == uuid.Nil {
		return fmt.Errorf("%w: missing segment id", ErrInvalidAnnotation)
	}
	if ann.Tagger != TaggerRule && ann.Tagger != TaggerAssisted {
		return fmt.Errorf("%w: %q", ErrUnknownTagger, ann.Tagger)
	}
	if ann.Confidence < 0 || ann.Confidence > 1 {
		return fmt.Errorf("%w: confidence out of range", ErrInvalidAnnotation)
	}

	for dim, score := range ann.Scores {
		if !ValidDimension(dim) {
			return fmt.Errorf("%w: unknown dimension %q", ErrInvalidAnnotation, dim)
		}
		if score < 0 || score > 1 {
			return fmt.Errorf("%w: score out of range for %s", ErrInvalidAnnotation, dim)
		}
	}

	for dim, tags := range ann.Subtags {
		for _, tag := range tags {
			if !ValidSubtag(dim, tag) {
				return fmt.Errorf("%w: unknown subtag %q for %s", ErrInvalidAnnotation, tag, dim)
			}
		}
	}

	for _, topic := range ann.Topics {
		if !ValidTopic(topic) {
			return fmt.Errorf("%w: unknown topic %q", ErrInvalidAnnotation, topic)
		}
	}

	return nil
}

func orEmptyScores(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

func orEmptySubtags(m map[string][]string) map[string][]string {
	if m == nil {
		return map[string][]string{}
	}
	return m
}

func orEmptyTopics(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
