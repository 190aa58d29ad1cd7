package terms

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/agrovista/agridiag/pkg/agridiag/query"
	"github.com/agrovista/agridiag/pkg/agridiag/textnorm"
)

func TestSummarizeRanking(t *testing.T) {
	articles := []query.Article{
		{Title: "tomato virus", Abstract: "tomato yellowing symptoms"},
		{Title: "tomato blight", Abstract: "yellowing observed"},
	}

	got := Summarize(articles, 3, textnorm.DefaultStopwords())
	want := []TermCount{
		{Term: "tomato", Count: 3},
		{Term: "yellowing", Count: 2},
		{Term: "blight", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize = %v, want %v", got, want)
	}
}

func TestSummarizeTiesBreakLexicographically(t *testing.T) {
	articles := []query.Article{{Title: "zeta alfa", Abstract: ""}}

	got := Summarize(articles, 0, textnorm.DefaultStopwords())
	want := []TermCount{{Term: "alfa", Count: 1}, {Term: "zeta", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize = %v, want %v", got, want)
	}
}

func TestSummarizeSkipsStopwordsAndShortTerms(t *testing.T) {
	articles := []query.Article{{Title: "the of in", Abstract: "ab 12 xyz"}}

	got := Summarize(articles, 0, nil)
	want := []TermCount{{Term: "xyz", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize = %v, want %v", got, want)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	if got := Summarize(nil, 10, nil); len(got) != 0 {
		t.Errorf("Summarize(nil) = %v, want empty", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	articles := []query.Article{
		{Title: "Título, con coma", Abstract: "resumen"},
		{Title: "", Abstract: ""},
	}

	if err := WriteCSV(&buf, articles); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3", len(lines))
	}
	if lines[0] != "titulo,resumen" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Título, con coma"`) {
		t.Errorf("comma-bearing title not quoted: %q", lines[1])
	}
}

func TestHistogram(t *testing.T) {
	var buf bytes.Buffer
	Histogram(&buf, []TermCount{{Term: "virus", Count: 4}, {Term: "hoja", Count: 1}}, 15)

	out := buf.String()
	if !strings.Contains(out, "virus") || !strings.Contains(out, "hoja") {
		t.Errorf("histogram missing terms:\n%s", out)
	}
	if !strings.Contains(out, "4") || !strings.Contains(out, "1") {
		t.Errorf("histogram missing counts:\n%s", out)
	}
}

func TestHistogramEmpty(t *testing.T) {
	var buf bytes.Buffer
	Histogram(&buf, nil, 15)
	if !strings.Contains(buf.String(), "sin términos") {
		t.Errorf("empty histogram output = %q", buf.String())
	}
}
