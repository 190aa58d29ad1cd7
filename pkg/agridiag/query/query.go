// Package query builds the tiered literature-search queries and runs
// the degradation strategy against a literature searcher.
package query

import (
	"context"
	"strings"
)

// Article is one literature record returned by a Searcher. Either
// field may be empty; the core never mutates articles.
type Article struct {
	Title    string
	Abstract string
}

// Searcher executes a free-text query against a remote citation
// database and returns up to maxResults records. Implementations may
// retry or cache internally; the degradation strategy treats any
// error exactly like an empty result.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Article, error)
}

// TerminalQuery is the query reported when every degradation level
// comes back empty.
const TerminalQuery = "plant disease"

// LastResortCap bounds the requested article count at level 4.
const LastResortCap = 4

// Level is one degradation step: an ordinal 1–4, the literal query
// string built for it, and the result cap to request. Immutable once
// constructed.
type Level struct {
	Ordinal    int
	Query      string
	MaxResults int
}

// Plan builds the four degradation levels, most specific first.
// Symptoms are expected already translated (TranslateSymptoms).
func Plan(crop string, symptomsEN, causes []string, rawText string, maxResults int) []Level {
	return []Level{
		{Ordinal: 1, Query: levelSpecific(crop, symptomsEN, causes), MaxResults: maxResults},
		{Ordinal: 2, Query: levelGeneral(crop, symptomsEN), MaxResults: maxResults},
		{Ordinal: 3, Query: levelRescue(crop), MaxResults: maxResults},
		{Ordinal: 4, Query: quote(rawText), MaxResults: min(LastResortCap, maxResults)},
	}
}

// levelSpecific conjoins quoted crop, a disjunction of quoted symptom
// terms, a disjunction of quoted causes, and two fixed keyword
// disjunctions that steer the citation database toward plant
// pathology. Absent optional parts are omitted, never emitted empty.
func levelSpecific(crop string, symptomsEN, causes []string) string {
	var parts []string
	if crop != "" {
		parts = append(parts, quote(crop))
	}
	if len(symptomsEN) > 0 {
		parts = append(parts, disjunction(symptomsEN))
	}
	if len(causes) > 0 {
		parts = append(parts, disjunction(causes))
	}
	parts = append(parts, "(plant OR crop)", "(virus OR pathogen OR disease)")
	return strings.Join(parts, " AND ")
}

func levelGeneral(crop string, symptomsEN []string) string {
	var parts []string
	if crop != "" {
		parts = append(parts, quote(crop))
	}
	if len(symptomsEN) > 0 {
		parts = append(parts, disjunction(symptomsEN))
	}
	parts = append(parts, "plant disease")
	return strings.Join(parts, " AND ")
}

func levelRescue(crop string) string {
	if crop != "" {
		return quote(crop) + " AND virus"
	}
	return "plant disease AND virus"
}

func quote(s string) string {
	return `"` + s + `"`
}

func disjunction(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = quote(t)
	}
	return "(" + strings.Join(quoted, " OR ") + ")"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
