// Package terms summarizes term frequency across retrieved article
// titles and abstracts. Presentation-only: no decision logic depends
// on its output.
package terms

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agrovista/agridiag/pkg/agridiag/query"
	"github.com/agrovista/agridiag/pkg/agridiag/textnorm"
)

// TermCount is one ranked term with its frequency.
type TermCount struct {
	Term  string
	Count int
}

// Summarize counts token frequency over every article's title and
// abstract and returns the topN terms, highest count first. Ties
// break lexicographically so output is deterministic. A nil stopword
// set falls back to the built-in Spanish/English union.
func Summarize(articles []query.Article, topN int, stop textnorm.Stopwords) []TermCount {
	if stop == nil {
		stop = textnorm.DefaultStopwords()
	}

	counts := make(map[string]int)
	for _, a := range articles {
		for _, tok := range textnorm.Tokens(a.Title+" "+a.Abstract, stop) {
			counts[tok]++
		}
	}

	ranked := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, TermCount{Term: term, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Term < ranked[j].Term
		}
		return ranked[i].Count > ranked[j].Count
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// WriteCSV exports the articles as CSV with a titulo/resumen header.
func WriteCSV(w io.Writer, articles []query.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"titulo", "resumen"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range articles {
		if err := cw.Write([]string{a.Title, a.Abstract}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Histogram renders a text bar chart of the topK terms.
func Histogram(w io.Writer, counts []TermCount, topK int) {
	if topK > 0 && len(counts) > topK {
		counts = counts[:topK]
	}
	if len(counts) == 0 {
		fmt.Fprintln(w, "(sin términos)")
		return
	}

	width := 0
	for _, c := range counts {
		if len(c.Term) > width {
			width = len(c.Term)
		}
	}
	max := counts[0].Count
	for _, c := range counts {
		if c.Count > max {
			max = c.Count
		}
	}

	const barWidth = 40
	for _, c := range counts {
		bar := c.Count * barWidth / max
		if bar == 0 && c.Count > 0 {
			bar = 1
		}
		fmt.Fprintf(w, "%-*s %s %d\n", width, c.Term, strings.Repeat("█", bar), c.Count)
	}
}
