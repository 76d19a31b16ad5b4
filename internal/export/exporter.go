// Package export renders sampled, annotated segments into line-delimited
// training records and persists the resulting artifacts to blob storage.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/segments"
	"github.com/avolkmann/cantor/pkg/storage"
)

const artifactPrefix = "exports/"

// Item pairs a sampled segment with its annotation for rendering.
type Item struct {
	Segment    segments.Segment
	Annotation *annotations.Annotation
}

// System defines the public contract for export operations.
type System interface {
	Handler() *Handler

	Write(ctx context.Context, name, format string, items []Item, extra []TrainingRecord) (string, error)
	Artifacts(ctx context.Context) ([]string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type service struct {
	storage storage.System
	logger  *slog.Logger
}

// New creates an export service backed by blob storage.
func New(store storage.System, logger *slog.Logger) System {
	return &service{
		storage: store,
		logger:  logger.With("system", "export"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Render builds one serialized training-record line for a corpus item.
func Render(item Item, format string) ([]byte, error) {
	rec := TrainingRecord{
		System:   SystemPrompt,
		Prompt:   UserPrompt(item.Segment, item.Annotation),
		Response: item.Segment.Content,
		Provenance: Provenance{
			Source: item.Segment.SourceSlug,
			Tier:   item.Segment.Tier,
			Weight: item.Segment.Weight,
		},
	}
	return Serialize(rec, format)
}

// Write renders the items plus any pre-formed extra records into a
// single JSONL artifact and uploads it. Output ordering is stable, so
// identical inputs produce byte-identical artifacts. Items that fail to
// render are skipped and logged; the batch continues.
func (s *service) Write(
	ctx context.Context,
	name, format string,
	items []Item,
	extra []TrainingRecord,
) (string, error) {
	if !ValidFormat(format) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	ordered := make([]Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Segment, ordered[j].Segment
		if a.SourceSlug != b.SourceSlug {
			return a.SourceSlug < b.SourceSlug
		}
		return a.Ordering < b.Ordering
	})

	var buf bytes.Buffer
	written := 0

	for _, item := range ordered {
		line, err := Render(item, format)
		if err != nil {
			s.logger.Warn("skipping malformed segment",
				"segment_id", item.Segment.ID,
				"source", item.Segment.SourceSlug,
				"error", err,
			)
			continue
		}
		buf.Write(line)
		buf.WriteByte('\n')
		written++
	}

	for _, rec := range extra {
		line, err := Serialize(rec, format)
		if err != nil {
			return "", err
		}
		buf.Write(line)
		buf.WriteByte('\n')
		written++
	}

	key := artifactPrefix + name + ".jsonl"
	if err := s.storage.Upload(ctx, key, &buf, "application/jsonl"); err != nil {
		return "", fmt.Errorf("upload artifact %s: %w", key, err)
	}

	s.logger.Info("export artifact written",
		"key", key,
		"format", format,
		"records", written,
	)
	return key, nil
}

// Artifacts lists the keys of previously written export artifacts.
func (s *service) Artifacts(ctx context.Context) ([]string, error) {
	keys, err := s.storage.List(ctx, artifactPrefix)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return keys, nil
}

// Open returns a stream for a previously written artifact by name.
func (s *service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := s.storage.Download(ctx, artifactPrefix+name+".jsonl")
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, err
	}
	return reader, nil
}
