// Package extract detects crop, symptoms, causes and candidate
// viruses in free-text Spanish symptom reports.
//
// Detection is keyword/substring matching against the catalog; only
// symptom detection carries a TF-IDF similarity fallback, because
// symptom phrasing is far more variable than crop or vector names.
package extract

import (
	"sort"
	"strings"

	"github.com/agrovista/agridiag/pkg/agridiag/catalog"
	"github.com/agrovista/agridiag/pkg/agridiag/similarity"
	"github.com/agrovista/agridiag/pkg/agridiag/textnorm"
)

// SimilarityThreshold is the minimum cosine score for the fallback to
// accept a symptom category.
const SimilarityThreshold = 0.20

// Extractor runs entity detection against an immutable catalog.
type Extractor struct {
	cat *catalog.Catalog
}

// New creates an extractor over the given catalog.
func New(cat *catalog.Catalog) *Extractor {
	return &Extractor{cat: cat}
}

// DetectCrop returns the first crop (in catalog order) with a variant
// appearing as a substring of the cleaned text. Only the first match
// wins; there is no ranking among multiple crop mentions.
func (e *Extractor) DetectCrop(text string) (string, bool) {
	txt := textnorm.Clean(text)
	if txt == "" {
		return "", false
	}
	for _, crop := range e.cat.Crops() {
		for _, v := range crop.Variants {
			if strings.Contains(txt, v) {
				return crop.Name, true
			}
		}
	}
	return "", false
}

// DetectSymptoms returns the sorted set of symptom categories found
// in the text. Substring matching runs first; only when it finds
// nothing does the TF-IDF fallback score the text against a synthetic
// document per category (the category's variants joined by spaces). A
// degenerate corpus silently keeps the substring result.
func (e *Extractor) DetectSymptoms(text string) []string {
	txt := textnorm.Clean(text)
	found := make(map[string]struct{})

	for _, sym := range e.cat.Symptoms() {
		for _, v := range sym.Variants {
			if strings.Contains(txt, v) {
				found[sym.Name] = struct{}{}
				break
			}
		}
	}

	if len(found) == 0 {
		symptoms := e.cat.Symptoms()
		docs := make([]string, 0, len(symptoms)+1)
		docs = append(docs, txt)
		for _, sym := range symptoms {
			docs = append(docs, strings.Join(sym.Variants, " "))
		}
		if scores, ok := similarity.NewCorpus(docs).Scores(); ok {
			for i, score := range scores {
				if score >= SimilarityThreshold {
					found[symptoms[i].Name] = struct{}{}
				}
			}
		}
	}

	return sortedKeys(found)
}

// DetectCauses returns the sorted set of cause/vector categories in
// the text. Vector keywords and the broad cause groups (fungal,
// bacterial, nutrient deficiency, viral indicators) are all tested
// independently; multiple can fire at once. May be empty — the
// orchestrator applies the fallback, not this function.
func (e *Extractor) DetectCauses(text string) []string {
	txt := textnorm.Clean(text)
	found := make(map[string]struct{})

	for _, vec := range e.cat.Vectors() {
		for _, v := range vec.Variants {
			if strings.Contains(txt, v) {
				found[vec.Name] = struct{}{}
				break
			}
		}
	}

	for _, group := range e.cat.CauseGroups() {
		for _, kw := range group.Variants {
			if strings.Contains(txt, kw) {
				found[group.Name] = struct{}{}
				break
			}
		}
	}

	return sortedKeys(found)
}

// DetectVirus returns the sorted, deduplicated virus candidates for
// the detected symptoms. The crop's own virus table is used when it
// has one; otherwise all tables are consolidated (last-writer-wins on
// name collisions, see catalog.VirusPool). A virus is a candidate when
// at least one of its patterns appears inside a detected symptom name
// or in the cleaned raw text, counting each pattern at most once.
func (e *Extractor) DetectVirus(symptoms []string, crop, text string) []string {
	txt := textnorm.Clean(text)
	pool := e.cat.VirusPool(crop)

	candidates := make(map[string]struct{})
	for name, patterns := range pool {
		count := 0
		for _, p := range patterns {
			if strings.Contains(txt, p) {
				count++
				continue
			}
			for _, s := range symptoms {
				if strings.Contains(strings.ToLower(s), p) {
					count++
					break
				}
			}
		}
		if count >= 1 {
			candidates[name] = struct{}{}
		}
	}

	return sortedKeys(candidates)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
