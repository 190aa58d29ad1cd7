// Package similarity implements a small TF-IDF vector space used as
// the statistical fallback for symptom detection. The corpus is tiny
// (one query document plus one synthetic document per category), so
// everything is computed eagerly on construction.
package similarity

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Corpus is a TF-IDF vector space over a fixed document list.
// Document 0 is the query; documents 1..N are category references.
type Corpus struct {
	docs [][]string
}

// NewCorpus builds a corpus from whitespace-separated documents.
// Input is expected to be pre-cleaned (textnorm.Clean); terms shorter
// than two runes are ignored, matching the vectorizer convention of
// the original pipeline.
func NewCorpus(docs []string) *Corpus {
	tokenized := make([][]string, len(docs))
	for i, d := range docs {
		var terms []string
		for _, w := range strings.Fields(d) {
			if utf8.RuneCountInString(w) >= 2 {
				terms = append(terms, w)
			}
		}
		tokenized[i] = terms
	}
	return &Corpus{docs: tokenized}
}

// Scores returns the cosine similarity between document 0 and each of
// documents 1..N, in document order. The second return value is false
// when the corpus is degenerate (fewer than two documents, or an
// empty vocabulary), so callers can tell "ran and found nothing
// similar" apart from "could not run".
func (c *Corpus) Scores() ([]float64, bool) {
	if len(c.docs) < 2 {
		return nil, false
	}

	// Vocabulary and document frequencies.
	vocab := make(map[string]int)
	df := make(map[string]int)
	for _, doc := range c.docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}
	if len(vocab) == 0 {
		return nil, false
	}

	// Smoothed IDF, then L2-normalized TF-IDF vectors.
	n := float64(len(c.docs))
	idf := make([]float64, len(vocab))
	for term, idx := range vocab {
		idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([][]float64, len(c.docs))
	for i, doc := range c.docs {
		vec := make([]float64, len(vocab))
		for _, term := range doc {
			vec[vocab[term]] += idf[vocab[term]]
		}
		normalize(vec)
		vectors[i] = vec
	}

	scores := make([]float64, len(c.docs)-1)
	for i := 1; i < len(c.docs); i++ {
		scores[i-1] = dot(vectors[0], vectors[i])
	}
	return scores, true
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range vec {
		vec[i] *= inv
	}
}

func dot(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += a[i] * b[i]
	}
	return d
}
