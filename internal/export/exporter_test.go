package export_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/segments"
	"github.com/avolkmann/cantor/pkg/lifecycle"
	"github.com/avolkmann/cantor/pkg/storage"
)

// memoryStorage is an in-memory stand-in for the blob store.
type memoryStorage struct {
	blobs map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{blobs: make(map[string][]byte)}
}

func (m *memoryStorage) Start(_ *lifecycle.Coordinator) error { return nil }

func (m *memoryStorage) Upload(_ context.Context, key string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	return nil
}

func (m *memoryStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	if _, ok := m.blobs[key]; !ok {
		return storage.ErrNotFound
	}
	delete(m.blobs, key)
	return nil
}

func (m *memoryStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memoryStorage) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for key := range m.blobs {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func testService(store storage.System) export.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return export.New(store, logger)
}

func testItems() []export.Item {
	return []export.Item{
		{
			Segment: segments.Segment{
				ID:         uuid.New(),
				Kind:       segments.KindSection,
				Content:    "Die Gesamtheit aller reellen Zahlen ist nicht abzählbar.",
				SourceSlug: "grundlagen-1883",
				Ordering:   0,
				Tier:       1,
				Weight:     1.0,
			},
		},
		{
			Segment: segments.Segment{
				ID:         uuid.New(),
				Kind:       segments.KindSection,
				Content:    "Cantor founded set theory.",
				SourceSlug: "dauben-1979",
				Ordering:   3,
				Tier:       3,
				Weight:     0.7,
			},
		},
	}
}

func TestWriteArtifact(t *testing.T) {
	store := newMemoryStorage()
	svc := testService(store)
	ctx := context.Background()

	key, err := svc.Write(ctx, "cantor-train", export.FormatChatML, testItems(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "exports/cantor-train.jsonl" {
		t.Errorf("got key %q", key)
	}

	reader, err := svc.Open(ctx, "cantor-train")
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer reader.Close()

	var records []*export.TrainingRecord
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		rec, err := export.Parse(scanner.Bytes(), export.FormatChatML)
		if err != nil {
			t.Fatalf("parse line: %v", err)
		}
		records = append(records, rec)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// items are sorted by source slug, so dauben comes first
	if records[0].Provenance.Source != "dauben-1979" {
		t.Errorf("got first source %q, want dauben-1979", records[0].Provenance.Source)
	}
	if records[0].System != export.SystemPrompt {
		t.Error("record missing the persona system prompt")
	}
	if records[1].Provenance != (export.Provenance{Source: "grundlagen-1883", Tier: 1, Weight: 1.0}) {
		t.Errorf("got provenance %+v", records[1].Provenance)
	}
}

func TestWriteDeterministicBytes(t *testing.T) {
	store := newMemoryStorage()
	svc := testService(store)
	ctx := context.Background()

	items := testItems()
	if _, err := svc.Write(ctx, "a", export.FormatAlpaca, items, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// reversed input order must produce the same artifact bytes
	reversed := []export.Item{items[1], items[0]}
	if _, err := svc.Write(ctx, "b", export.FormatAlpaca, reversed, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(store.blobs["exports/a.jsonl"], store.blobs["exports/b.jsonl"]) {
		t.Error("identical inputs produced different artifact bytes")
	}
}

func TestWriteAppendsExtraRecords(t *testing.T) {
	store := newMemoryStorage()
	svc := testService(store)
	ctx := context.Background()

	extra := []export.TrainingRecord{{
		System:     export.SystemPrompt,
		Prompt:     "Is it true that Kronecker drove you mad?",
		Response:   "No, that is not accurate.",
		Provenance: export.Provenance{Source: "contrastive-kronecker", Tier: 8, Weight: 0.0},
	}}

	if _, err := svc.Write(ctx, "with-extra", export.FormatOpenAIJSONL, testItems(), extra); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := bytes.Count(store.blobs["exports/with-extra.jsonl"], []byte{'\n'})
	if lines != 3 {
		t.Errorf("got %d lines, want 3", lines)
	}
}

func TestWriteInvalidFormat(t *testing.T) {
	svc := testService(newMemoryStorage())

	if _, err := svc.Write(context.Background(), "x", "parquet", nil, nil); !errors.Is(err, export.ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestArtifacts(t *testing.T) {
	store := newMemoryStorage()
	store.blobs["exports/train.jsonl"] = []byte("{}\n")
	store.blobs["exports/val.jsonl"] = []byte("{}\n")
	store.blobs["documents/source.pdf"] = []byte("pdf")

	svc := testService(store)

	keys, err := svc.Artifacts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"exports/train.jsonl", "exports/val.jsonl"}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("got %v, want %v", keys, want)
		}
	}
}

func TestOpenMissingArtifact(t *testing.T) {
	svc := testService(newMemoryStorage())

	if _, err := svc.Open(context.Background(), "nope"); !errors.Is(err, export.ErrArtifactNotFound) {
		t.Errorf("got %v, want ErrArtifactNotFound", err)
	}
}
