// Package diagnose composes the entity extractor, the query
// degradation strategy and a literature searcher into a single
// diagnosis pass: extract, then search, then assemble the report.
package diagnose

import (
	"context"
	"crypto/rand"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/agrovista/agridiag/pkg/agridiag/catalog"
	"github.com/agrovista/agridiag/pkg/agridiag/extract"
	"github.com/agrovista/agridiag/pkg/agridiag/query"
)

// CauseFallback is substituted for causes when detection finds none.
// Crop, symptoms and virus candidates are never substituted: empty
// stays empty.
var CauseFallback = []string{"virus", "hongos", "deficiencias nutricionales"}

// Report is the diagnosis output: immutable once built, never
// persisted. Causes is never empty; Articles may be.
type Report struct {
	ID              string
	Crop            string // empty when no crop was detected
	Symptoms        []string
	Causes          []string
	VirusCandidates []string
	QueryUsed       string
	Articles        []query.Article
	GeneratedAt     time.Time
}

// Options configures an Engine.
type Options struct {
	Catalog     *catalog.Catalog
	Searcher    query.Searcher
	MaxArticles int // defaults to query.DefaultMaxArticles
}

// Engine runs integrated diagnoses. Safe to reuse across calls: the
// catalog is read-only and each call produces an independent report.
type Engine struct {
	extractor   *extract.Extractor
	runner      *query.Runner
	maxArticles int
	entropy     *ulid.MonotonicEntropy
}

// New creates an engine with the given dependencies.
func New(opts Options) *Engine {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	maxArticles := opts.MaxArticles
	if maxArticles <= 0 {
		maxArticles = query.DefaultMaxArticles
	}
	return &Engine{
		extractor:   extract.New(cat),
		runner:      query.NewRunner(opts.Searcher),
		maxArticles: maxArticles,
		entropy:     ulid.Monotonic(rand.Reader, 0),
	}
}

// Diagnose runs one extract-then-search pass over the user text and
// assembles the report. It never fails: absent input, failed
// similarity fallback and exhausted search levels all degrade to an
// emptier-but-valid report.
func (e *Engine) Diagnose(ctx context.Context, text string) Report {
	crop, _ := e.extractor.DetectCrop(text)
	symptoms := e.extractor.DetectSymptoms(text)
	causes := e.extractor.DetectCauses(text)
	virus := e.extractor.DetectVirus(symptoms, crop, text)

	causesOut := causes
	if len(causesOut) == 0 {
		causesOut = append([]string(nil), CauseFallback...)
		sort.Strings(causesOut)
	}

	articles, queryUsed := e.runner.Search(ctx, crop, symptoms, causes, text, e.maxArticles)

	return Report{
		ID:              ulid.MustNew(ulid.Now(), e.entropy).String(),
		Crop:            crop,
		Symptoms:        symptoms,
		Causes:          causesOut,
		VirusCandidates: virus,
		QueryUsed:       queryUsed,
		Articles:        articles,
		GeneratedAt:     time.Now(),
	}
}
