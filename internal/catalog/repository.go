package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/pagination"
	"github.com/avolkmann/cantor/pkg/query"
	"github.com/avolkmann/cantor/pkg/repository"
	"github.com/avolkmann/cantor/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a source catalog repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "catalog"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Source], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Title", "Author", "Slug")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count sources: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	sources, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSource)
	if err != nil {
		return nil, fmt.Errorf("query sources: %w", err)
	}

	result := pagination.NewPageResult(sources, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) ListByStatus(ctx context.Context, status string) ([]Source, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	qb := query.NewBuilder(projection, defaultSort...).
		WhereEquals("Status", status)

	q, args := qb.Build()
	sources, err := repository.QueryMany(ctx, r.db, q, args, scanSource)
	if err != nil {
		return nil, fmt.Errorf("query sources by status: %w", err)
	}
	return sources, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Source, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	src, err := repository.QueryOne(ctx, r.db, q, args, scanSource)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &src, nil
}

func (r *repo) FindBySlug(ctx context.Context, slug string) (*Source, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Slug", slug)

	src, err := repository.QueryOne(ctx, r.db, q, args, scanSource)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &src, nil
}

const insertSourceSQL = `
	INSERT INTO sources(id, slug, title, author, date, tier, weight, language, format, status, content_tags, parallel_group)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id, slug, title, author, date, tier, weight, language, format, status, content_tags, parallel_group, page_count, created_at, updated_at`

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Source, error) {
	if err := validateRegister(cmd); err != nil {
		return nil, err
	}

	weight, err := WeightForTier(cmd.Tier)
	if err != nil {
		return nil, err
	}

	tags, err := encodeTags(cmd.ContentTags)
	if err != nil {
		return nil, err
	}

	args := []any{
		uuid.New(),
		cmd.Slug,
		cmd.Title,
		cmd.Author,
		cmd.Date,
		cmd.Tier,
		weight,
		cmd.Language,
		cmd.Format,
		StatusNotAcquired,
		tags,
		cmd.ParallelGroup,
	}

	src, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Source, error) {
		return repository.QueryOne(ctx, tx, insertSourceSQL, args, scanSource)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("source registered", "id", src.ID, "slug", src.Slug, "tier", src.Tier)
	return &src, nil
}

// Seed registers the documented source set idempotently.
// Sources whose slug is already present are skipped, never duplicated.
func (r *repo) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		for _, cmd := range seedSources {
			weight, err := WeightForTier(cmd.Tier)
			if err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", cmd.Slug, err)
			}

			tags, err := encodeTags(cmd.ContentTags)
			if err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", cmd.Slug, err)
			}

			res, err := tx.ExecContext(ctx, `
				INSERT INTO sources(id, slug, title, author, date, tier, weight, language, format, status, content_tags, parallel_group)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				ON CONFLICT (slug) DO NOTHING`,
				uuid.New(),
				cmd.Slug,
				cmd.Title,
				cmd.Author,
				cmd.Date,
				cmd.Tier,
				weight,
				cmd.Language,
				cmd.Format,
				StatusNotAcquired,
				tags,
				cmd.ParallelGroup,
			)
			if err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", cmd.Slug, err)
			}

			rows, err := res.RowsAffected()
			if err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", cmd.Slug, err)
			}

			if rows > 0 {
				result.Registered++
			} else {
				result.Skipped++
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("catalog seeded", "registered", result.Registered, "skipped", result.Skipped)
	return result, nil
}

// UpdateStatus applies an acquisition status transition. The row is locked
// for the duration of the transaction so concurrent acquisition workers
// cannot produce lost updates on the same source.
func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Source, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	src, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Source, error) {
		var current string
		err := tx.QueryRowContext(ctx,
			"SELECT status FROM sources WHERE id = $1 FOR UPDATE",
			id,
		).Scan(&current)
		if err != nil {
			return Source{}, err
		}

		if !CanTransition(current, status) {
			return Source{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
		}

		q := `
			UPDATE sources SET status = $2, updated_at = now()
			WHERE id = $1
			RETURNING id, slug, title, author, date, tier, weight, language, format, status, content_tags, parallel_group, page_count, created_at, updated_at`

		return repository.QueryOne(ctx, tx, q, []any{id, status}, scanSource)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("source status updated", "id", id, "status", status)
	return &src, nil
}

// UploadRaw stores the raw acquired bytes for a source. PDF uploads get
// their page count extracted and recorded on the source.
func (r *repo) UploadRaw(ctx context.Context, id uuid.UUID, cmd UploadCommand) (*Source, error) {
	src, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	key := rawStorageKey(src.ID, cmd.Filename)
	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload raw bytes for %s: %w", src.Slug, err)
	}

	if cmd.PageCount != nil {
		updated, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Source, error) {
			q := `
				UPDATE sources SET page_count = $2, updated_at = now()
				WHERE id = $1
				RETURNING id, slug, title, author, date, tier, weight, language, format, status, content_tags, parallel_group, page_count, created_at, updated_at`
			return repository.QueryOne(ctx, tx, q, []any{id, cmd.PageCount}, scanSource)
		})
		if err != nil {
			return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		src = &updated
	}

	r.logger.Info("raw bytes stored", "id", src.ID, "key", key, "size", len(cmd.Data))
	return src, nil
}

// UploadText stores the extracted plain text for a source.
func (r *repo) UploadText(ctx context.Context, id uuid.UUID, text string) error {
	src, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		return ErrInvalidSource
	}

	key := textStorageKey(src.ID)
	if err := r.storage.Upload(ctx, key, strings.NewReader(text), "text/plain; charset=utf-8"); err != nil {
		return fmt.Errorf("upload extracted text for %s: %w", src.Slug, err)
	}

	r.logger.Info("extracted text stored", "id", src.ID, "key", key, "size", len(text))
	return nil
}

// Text returns the extracted plain text for a source.
// Fails with ErrNoExtractedText when no text has been uploaded.
func (r *repo) Text(ctx context.Context, id uuid.UUID) (string, error) {
	src, err := r.Find(ctx, id)
	if err != nil {
		return "", err
	}

	reader, err := r.storage.Download(ctx, textStorageKey(src.ID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNoExtractedText, src.Slug)
		}
		return "", fmt.Errorf("download extracted text for %s: %w", src.Slug, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read extracted text for %s: %w", src.Slug, err)
	}

	return string(data), nil
}

func validateRegister(cmd RegisterCommand) error {
	if cmd.Slug == "" || cmd.Title == "" {
		return ErrInvalidSource
	}
	if !validFormat(cmd.Format) {
		return ErrInvalidFormat
	}
	return nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode content tags: %w", err)
	}
	return encoded, nil
}

func rawStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("sources/%s/raw/%s", id, filename)
}

func textStorageKey(id uuid.UUID) string {
	return fmt.Sprintf("sources/%s/text.txt", id)
}
