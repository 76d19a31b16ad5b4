package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/config"
	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/segments"
	"github.com/avolkmann/cantor/internal/synthetic"
	"github.com/avolkmann/cantor/internal/workflow"
	"github.com/avolkmann/cantor/pkg/pagination"
)

var errNotSupported = errors.New("not supported by fake")

type fakeCatalog struct {
	sources []catalog.Source
	texts   map[uuid.UUID]string
}

func (f *fakeCatalog) Handler(_ int64) *catalog.Handler { return nil }

func (f *fakeCatalog) List(_ context.Context, _ pagination.PageRequest, _ catalog.Filters) (*pagination.PageResult[catalog.Source], error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) ListByStatus(_ context.Context, status string) ([]catalog.Source, error) {
	var result []catalog.Source
	for _, src := range f.sources {
		if src.Status == status {
			result = append(result, src)
		}
	}
	return result, nil
}

func (f *fakeCatalog) Find(_ context.Context, _ uuid.UUID) (*catalog.Source, error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) FindBySlug(_ context.Context, _ string) (*catalog.Source, error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) Register(_ context.Context, _ catalog.RegisterCommand) (*catalog.Source, error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) Seed(_ context.Context) (*catalog.SeedResult, error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) UpdateStatus(_ context.Context, _ uuid.UUID, _ string) (*catalog.Source, error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) UploadRaw(_ context.Context, _ uuid.UUID, _ catalog.UploadCommand) (*catalog.Source, error) {
	return nil, errNotSupported
}

func (f *fakeCatalog) UploadText(_ context.Context, _ uuid.UUID, _ string) error {
	return errNotSupported
}

func (f *fakeCatalog) Text(_ context.Context, id uuid.UUID) (string, error) {
	return f.texts[id], nil
}

type fakeSegments struct {
	mu       sync.Mutex
	bySource map[uuid.UUID]catalog.Source
	store    map[uuid.UUID][]segments.Segment
	links    int
}

func newFakeSegments(sources []catalog.Source) *fakeSegments {
	bySource := make(map[uuid.UUID]catalog.Source, len(sources))
	for _, src := range sources {
		bySource[src.ID] = src
	}
	return &fakeSegments{
		bySource: bySource,
		store:    make(map[uuid.UUID][]segments.Segment),
	}
}

func (f *fakeSegments) Handler() *segments.Handler { return nil }

func (f *fakeSegments) List(_ context.Context, _ pagination.PageRequest, _ segments.Filters) (*pagination.PageResult[segments.Segment], error) {
	return nil, errNotSupported
}

func (f *fakeSegments) ListAll(_ context.Context) ([]segments.Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []segments.Segment
	for _, segs := range f.store {
		result = append(result, segs...)
	}
	return result, nil
}

func (f *fakeSegments) ListBySource(_ context.Context, sourceID uuid.UUID) ([]segments.Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[sourceID], nil
}

func (f *fakeSegments) ListByParallelGroup(_ context.Context, group string) ([]segments.Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []segments.Segment
	for sourceID, segs := range f.store {
		src := f.bySource[sourceID]
		if src.ParallelGroup != nil && *src.ParallelGroup == group {
			result = append(result, segs...)
		}
	}
	return result, nil
}

func (f *fakeSegments) Find(_ context.Context, _ uuid.UUID) (*segments.Segment, error) {
	return nil, errNotSupported
}

func (f *fakeSegments) Replace(_ context.Context, sourceID uuid.UUID, drafts []segments.Draft) ([]segments.Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	src := f.bySource[sourceID]
	segs := make([]segments.Segment, len(drafts))
	for i, draft := range drafts {
		segs[i] = segments.Segment{
			ID:          uuid.New(),
			SourceID:    sourceID,
			Kind:        draft.Kind,
			Title:       draft.Title,
			Content:     draft.Content,
			ContentHash: segments.HashContent(draft.Content),
			Language:    draft.Language,
			Sender:      draft.Sender,
			Recipient:   draft.Recipient,
			SegmentDate: draft.SegmentDate,
			Number:      draft.Number,
			Ordering:    draft.Ordering,
			SourceSlug:  src.Slug,
			SourceTitle: src.Title,
			Tier:        src.Tier,
			Weight:      src.Weight,
		}
	}

	f.store[sourceID] = segs
	return segs, nil
}

func (f *fakeSegments) LinkParallel(_ context.Context, _, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links++
	return nil
}

func (f *fakeSegments) ParallelOf(_ context.Context, _ uuid.UUID) ([]segments.Segment, error) {
	return nil, errNotSupported
}

type fakeAnnotations struct {
	mu    sync.Mutex
	store map[uuid.UUID]annotations.Annotation
}

func newFakeAnnotations() *fakeAnnotations {
	return &fakeAnnotations{store: make(map[uuid.UUID]annotations.Annotation)}
}

func (f *fakeAnnotations) Handler() *annotations.Handler { return nil }

func (f *fakeAnnotations) List(_ context.Context, _ pagination.PageRequest, _ annotations.Filters) (*pagination.PageResult[annotations.Annotation], error) {
	return nil, errNotSupported
}

func (f *fakeAnnotations) ListAll(_ context.Context) ([]annotations.Annotation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []annotations.Annotation
	for _, ann := range f.store {
		result = append(result, ann)
	}
	return result, nil
}

func (f *fakeAnnotations) Find(_ context.Context, _ uuid.UUID) (*annotations.Annotation, error) {
	return nil, errNotSupported
}

func (f *fakeAnnotations) FindBySegment(_ context.Context, segmentID uuid.UUID) (*annotations.Annotation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ann, ok := f.store[segmentID]
	if !ok {
		return nil, annotations.ErrNotFound
	}
	return &ann, nil
}

func (f *fakeAnnotations) Upsert(_ context.Context, ann *annotations.Annotation) (*annotations.Annotation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ann.ID == uuid.Nil {
		ann.ID = uuid.New()
	}
	f.store[ann.SegmentID] = *ann
	return ann, nil
}

func (f *fakeAnnotations) UpsertMany(ctx context.Context, anns []*annotations.Annotation) error {
	for _, ann := range anns {
		if _, err := f.Upsert(ctx, ann); err != nil {
			return err
		}
	}
	return nil
}

type writeCall struct {
	name   string
	format string
	items  int
	extra  int
}

type fakeExport struct {
	mu     sync.Mutex
	writes []writeCall
}

func (f *fakeExport) Handler() *export.Handler { return nil }

func (f *fakeExport) Write(_ context.Context, name, format string, items []export.Item, extra []export.TrainingRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.writes = append(f.writes, writeCall{
		name:   name,
		format: format,
		items:  len(items),
		extra:  len(extra),
	})
	return "exports/" + name + ".jsonl", nil
}

func (f *fakeExport) Artifacts(_ context.Context) ([]string, error) {
	return nil, errNotSupported
}

func (f *fakeExport) Open(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, errNotSupported
}

const germanLetter = `Halle, den 5. November 1882

Lieber Herr Dedekind!

Die Frage nach der Mächtigkeit des Kontinuums beschäftigt mich
unablässig. Das Diagonalverfahren zeigt, dass die Gesamtheit aller
reellen Zahlen nicht abzählbar ist.

Ihr ergebener
Georg Cantor`

const englishLetter = `Halle, den 5. November 1882

Dear Professor Dedekind!

The question concerning the cardinality of the continuum occupies me
without pause. The diagonal procedure shows that the collection of all
real numbers cannot be counted, and that there is consequently no
largest infinity among the transfinite numbers.

Yours sincerely,
Georg Cantor`

func testPipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{
		AnnotateConcurrency: 2,
		DivergenceThreshold: 0.5,
		TrainRatio:          0.8,
		Seed:                7,
		DefaultFormat:       export.FormatLlamaChat,
	}
}

func testRuntime(sources []catalog.Source, texts map[uuid.UUID]string) (*workflow.Runtime, *fakeSegments, *fakeExport) {
	segs := newFakeSegments(sources)
	exp := &fakeExport{}

	rt := &workflow.Runtime{
		Pipeline:    testPipelineConfig(),
		Catalog:     &fakeCatalog{sources: sources, texts: texts},
		Segments:    segs,
		Annotations: newFakeAnnotations(),
		Export:      exp,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return rt, segs, exp
}

func acquiredSource(slug string, tier int, format string, group *string) catalog.Source {
	weight, _ := catalog.WeightForTier(tier)
	return catalog.Source{
		ID:            uuid.New(),
		Slug:          slug,
		Title:         slug,
		Tier:          tier,
		Weight:        weight,
		Language:      "de",
		Format:        format,
		Status:        catalog.StatusAcquired,
		ParallelGroup: group,
	}
}

func TestExecutePipeline(t *testing.T) {
	src := acquiredSource("briefe-dedekind", 1, catalog.FormatLetter, nil)
	rt, _, exp := testRuntime(
		[]catalog.Source{src},
		map[uuid.UUID]string{src.ID: germanLetter},
	)

	result, err := workflow.Execute(context.Background(), rt, workflow.Request{
		Name:             "run",
		Format:           export.FormatChatML,
		Tagger:           annotations.TaggerRule,
		IncludeSynthetic: true,
		IncludeNegatives: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SourcesSegmented != 1 || result.SourcesFailed != 0 {
		t.Errorf("got %d segmented, %d failed", result.SourcesSegmented, result.SourcesFailed)
	}
	if result.Annotated == 0 {
		t.Error("no segments annotated")
	}
	if result.Sampled == 0 {
		t.Error("nothing sampled")
	}
	if result.TrainArtifact != "exports/run-train.jsonl" {
		t.Errorf("got train artifact %q", result.TrainArtifact)
	}
	if result.ValArtifact != "exports/run-val.jsonl" {
		t.Errorf("got val artifact %q", result.ValArtifact)
	}

	if len(exp.writes) != 2 {
		t.Fatalf("got %d export writes, want 2", len(exp.writes))
	}
	train, val := exp.writes[0], exp.writes[1]
	if train.format != export.FormatChatML {
		t.Errorf("got format %q", train.format)
	}

	// synthetic and contrastive streams merge into train only
	extraWant := len(synthetic.DialogueRecords()) + len(synthetic.NegativeRecords())
	if train.extra != extraWant {
		t.Errorf("got %d extra train records, want %d", train.extra, extraWant)
	}
	if val.extra != 0 {
		t.Errorf("got %d extra val records, want 0", val.extra)
	}
}

func TestExecuteIsolatesFailingSource(t *testing.T) {
	good := acquiredSource("briefe-dedekind", 1, catalog.FormatLetter, nil)
	empty := acquiredSource("verlorene-briefe", 2, catalog.FormatLetter, nil)

	rt, _, _ := testRuntime(
		[]catalog.Source{good, empty},
		map[uuid.UUID]string{good.ID: germanLetter, empty.ID: "   "},
	)

	result, err := workflow.Execute(context.Background(), rt, workflow.Request{
		Tagger: annotations.TaggerRule,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SourcesSegmented != 1 {
		t.Errorf("got %d segmented, want 1", result.SourcesSegmented)
	}
	if result.SourcesFailed != 1 {
		t.Errorf("got %d failed, want 1", result.SourcesFailed)
	}
}

func TestExecuteLinksParallelGroups(t *testing.T) {
	group := "briefwechsel-1882"
	german := acquiredSource("briefe-de", 1, catalog.FormatLetter, &group)
	english := acquiredSource("briefe-en", 3, catalog.FormatLetter, &group)

	rt, segs, _ := testRuntime(
		[]catalog.Source{german, english},
		map[uuid.UUID]string{german.ID: germanLetter, english.ID: englishLetter},
	)

	result, err := workflow.Execute(context.Background(), rt, workflow.Request{
		Tagger: annotations.TaggerRule,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SegmentsLinked == 0 {
		t.Error("no parallel segments linked")
	}
	if segs.links != result.SegmentsLinked {
		t.Errorf("result reports %d links, fake recorded %d", result.SegmentsLinked, segs.links)
	}
}

func TestExecuteAbortsOnEmptyPool(t *testing.T) {
	// tier 8 sources carry weight zero, leaving the default pool empty
	src := acquiredSource("bell-1937", 8, catalog.FormatLetter, nil)

	rt, _, exp := testRuntime(
		[]catalog.Source{src},
		map[uuid.UUID]string{src.ID: germanLetter},
	)

	_, err := workflow.Execute(context.Background(), rt, workflow.Request{
		Tagger: annotations.TaggerRule,
	})
	if err == nil {
		t.Fatal("expected pipeline to abort on an empty eligible pool")
	}
	if !strings.Contains(err.Error(), "insufficient corpus") {
		t.Errorf("got %v, want an insufficient corpus failure", err)
	}
	if len(exp.writes) != 0 {
		t.Errorf("got %d artifact writes after abort, want 0", len(exp.writes))
	}
}

func TestExecuteContradictionsPersisted(t *testing.T) {
	// same letter text from two sources in different tiers produces
	// identical topics with no score divergence, so nothing is flagged
	a := acquiredSource("quelle-a", 1, catalog.FormatLetter, nil)
	b := acquiredSource("quelle-b", 4, catalog.FormatLetter, nil)

	rt, _, _ := testRuntime(
		[]catalog.Source{a, b},
		map[uuid.UUID]string{a.ID: germanLetter, b.ID: germanLetter},
	)

	result, err := workflow.Execute(context.Background(), rt, workflow.Request{
		Tagger: annotations.TaggerRule,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Contradictions != 0 {
		t.Errorf("got %d contradictions for identical annotations, want 0", result.Contradictions)
	}
}
