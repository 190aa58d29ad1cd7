package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agrovista/agridiag/pkg/agridiag/internalerr"
)

const sampleCatalog = `
crops:
  - name: Fresa
    variants: [fresa, frutilla, strawberry]
  - name: tomate
    variants: [tomate, tomato]
symptoms:
  - name: amarillamiento
    variants: [amarillo, hojas amarillas]
vectors:
  - name: mosca blanca
    variants: [mosca blanca, whitefly]
cause_groups:
  - name: hongos
    variants: [hongo, moho]
viruses:
  - crop: fresa
    viruses:
      - name: SMYEV (Strawberry mild yellow edge virus)
        patterns: [amarillamiento, bordes amarillos]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(writeFile(t, "catalog.yaml", sampleCatalog))
	if err != nil {
		t.Fatal(err)
	}

	crops := cat.Crops()
	if len(crops) != 2 {
		t.Fatalf("crop count = %d, want 2", len(crops))
	}
	// YAML order is the match order, names are lowercased.
	if crops[0].Name != "fresa" || crops[1].Name != "tomate" {
		t.Errorf("crop order = [%s, %s], want [fresa, tomate]", crops[0].Name, crops[1].Name)
	}

	pool := cat.VirusPool("fresa")
	if len(pool) != 1 {
		t.Errorf("fresa pool size = %d, want 1", len(pool))
	}
}

func TestLoadCatalogRejectsEmptyCrops(t *testing.T) {
	_, err := LoadCatalog(writeFile(t, "catalog.yaml", "symptoms:\n  - name: x\n    variants: [y]\n"))
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadCatalogRejectsGroupWithoutVariants(t *testing.T) {
	bad := `
crops:
  - name: tomate
    variants: []
symptoms:
  - name: amarillamiento
    variants: [amarillo]
`
	_, err := LoadCatalog(writeFile(t, "catalog.yaml", bad))
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	if comp.Catalog == nil || len(comp.Catalog.Crops()) == 0 {
		t.Error("default catalog not loaded")
	}
	if !comp.Stopwords.Contains("the") {
		t.Error("default stopwords not loaded")
	}
}

func TestLoaderWithFiles(t *testing.T) {
	loader := Loader{
		CatalogPath:  writeFile(t, "catalog.yaml", sampleCatalog),
		StoplistPath: writeFile(t, "stoplist.yaml", "terms: [foo, bar]\n"),
	}
	comp, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(comp.Catalog.Crops()) != 2 {
		t.Errorf("crop count = %d, want 2", len(comp.Catalog.Crops()))
	}
	if !comp.Stopwords.Contains("foo") || comp.Stopwords.Contains("the") {
		t.Error("stoplist file should replace the defaults")
	}
}
