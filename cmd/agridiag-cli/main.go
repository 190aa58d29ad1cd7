package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/agrovista/agridiag/internal/litcache"
	"github.com/agrovista/agridiag/internal/pubmed"
	"github.com/agrovista/agridiag/pkg/agridiag/config"
	"github.com/agrovista/agridiag/pkg/agridiag/diagnose"
	"github.com/agrovista/agridiag/pkg/agridiag/query"
	"github.com/agrovista/agridiag/pkg/agridiag/terms"
	"github.com/agrovista/agridiag/pkg/agridiag/textnorm"
)

const csvPath = "articulos_pubmed.csv"

func main() {
	var (
		email        = flag.String("email", "", "Contact email sent to the E-utilities API")
		apiKey       = flag.String("api-key", "", "NCBI API key (optional)")
		maxArticles  = flag.Int("max", query.DefaultMaxArticles, "Maximum articles per diagnosis")
		catalogPath  = flag.String("catalog", "", "Alternate catalog YAML (optional)")
		stoplistPath = flag.String("stoplist", "", "Alternate stoplist YAML (optional)")
		cachePath    = flag.String("cache", "", "SQLite article cache path (optional)")
		usePubmed    = flag.Bool("pubmed", true, "Query the PubMed backend (false runs offline)")
		texto        = flag.String("texto", "", "One-shot diagnosis text (non-interactive mode)")
	)
	flag.Parse()

	ctx := context.Background()

	loader := config.Loader{CatalogPath: *catalogPath, StoplistPath: *stoplistPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	searcher, cleanup, err := buildSearcher(ctx, *usePubmed, *email, *apiKey, *cachePath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	engine := diagnose.New(diagnose.Options{
		Catalog:     components.Catalog,
		Searcher:    searcher,
		MaxArticles: *maxArticles,
	})

	// One-shot mode
	if *texto != "" {
		printReport(engine.Diagnose(ctx, *texto))
		return
	}

	runMenu(ctx, engine, searcher, components.Stopwords)
}

// buildSearcher resolves backend availability once at startup: either
// the real client (optionally behind the sqlite cache) or a disabled
// searcher that always reports zero results.
func buildSearcher(ctx context.Context, usePubmed bool, email, apiKey, cachePath string) (query.Searcher, func(), error) {
	noop := func() {}

	if !usePubmed {
		return pubmed.NewDisabled(), noop, nil
	}

	var searcher query.Searcher = pubmed.New(email, apiKey)
	if cachePath == "" {
		return searcher, noop, nil
	}

	cache, err := litcache.Open(ctx, cachePath, searcher)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	return cache, func() { cache.Close() }, nil
}

func runMenu(ctx context.Context, engine *diagnose.Engine, searcher query.Searcher, stopwords textnorm.Stopwords) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\n=== SISTEMA DE DIAGNÓSTICO AGRÍCOLA ===")
		fmt.Println("1. Analizar artículos de PubMed")
		fmt.Println("2. Diagnóstico integrado")
		fmt.Println("3. Salir")
		fmt.Print("Selecciona una opción: ")

		if !scanner.Scan() {
			break
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			runLiterature(ctx, scanner, searcher, stopwords)
		case "2":
			runDiagnosis(ctx, scanner, engine)
		case "3":
			fmt.Println("Saliendo. ¡Hasta luego!")
			return
		default:
			fmt.Println("Opción inválida. Intenta nuevamente.")
		}
	}
}

func runLiterature(ctx context.Context, scanner *bufio.Scanner, searcher query.Searcher, stopwords textnorm.Stopwords) {
	fmt.Print("\nIngresa tu búsqueda para PubMed (ej: ToBRFV AND tomato): ")
	if !scanner.Scan() {
		return
	}
	q := strings.TrimSpace(scanner.Text())
	if q == "" {
		return
	}

	fmt.Print("Cantidad máxima de artículos (default 5): ")
	maxArticles := 5
	if scanner.Scan() {
		if n, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil && n > 0 {
			maxArticles = n
		}
	}

	fmt.Printf("\nBuscando artículos para: %s\n", q)
	articles, err := searcher.Search(ctx, q, maxArticles)
	if err != nil {
		log.Printf("error consultando PubMed: %v", err)
		return
	}
	if len(articles) == 0 {
		fmt.Println("No se encontraron artículos.")
		return
	}

	summarize(articles, stopwords)
}

// summarize writes the CSV export and prints the frequency histogram.
// Export failures are logged, never propagated.
func summarize(articles []query.Article, stopwords textnorm.Stopwords) {
	if f, err := os.Create(csvPath); err != nil {
		log.Printf("error guardando CSV: %v", err)
	} else {
		if err := terms.WriteCSV(f, articles); err != nil {
			log.Printf("error guardando CSV: %v", err)
		} else {
			fmt.Println("CSV guardado en:", csvPath)
		}
		f.Close()
	}

	counts := terms.Summarize(articles, 50, stopwords)
	if len(counts) == 0 {
		fmt.Println("No se encontraron términos para analizar.")
		return
	}

	fmt.Println("\nTérminos más frecuentes:")
	terms.Histogram(os.Stdout, counts, 15)
}

func runDiagnosis(ctx context.Context, scanner *bufio.Scanner, engine *diagnose.Engine) {
	fmt.Print("\nIngrese el texto del usuario/foro: ")
	if !scanner.Scan() {
		return
	}
	printReport(engine.Diagnose(ctx, strings.TrimSpace(scanner.Text())))
}

func printReport(r diagnose.Report) {
	fmt.Println("\n==============================")
	fmt.Println("  REPORTE FINAL INTEGRADO")
	fmt.Println("==============================")

	crop := r.Crop
	if crop == "" {
		crop = "No detectado"
	}
	fmt.Println("\nCultivo detectado:", crop)

	fmt.Println("\nSíntomas detectados:")
	printList(r.Symptoms)

	fmt.Println("\nCausas probables:")
	printList(r.Causes)

	fmt.Println("\nVirus posibles:")
	printList(r.VirusCandidates)

	fmt.Println("\nQuery PubMed generado:")
	fmt.Println(" ", r.QueryUsed)

	fmt.Println("\nArtículos científicos relevantes:")
	if len(r.Articles) == 0 {
		fmt.Println("  Ningún artículo encontrado.")
		return
	}
	for _, a := range r.Articles {
		title := a.Title
		if title == "" {
			title = "<sin título>"
		}
		fmt.Println("\n  •", title)
		fmt.Println("   ", truncate(a.Abstract, 300))
	}
}

func printList(items []string) {
	if len(items) == 0 {
		fmt.Println("  (ninguno)")
		return
	}
	for _, item := range items {
		fmt.Println("  -", item)
	}
}

func truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
