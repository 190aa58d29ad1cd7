package catalog

import "strings"

// Catalog holds the lexicon the extractor matches against:
// - Crops: canonical crop names with their surface variants
// - Symptoms: observable abnormality categories with variant phrasings
// - Vectors: transmission vectors (whitefly, aphids, ...)
// - CauseGroups: broad causal classes fired by indicator words
// - Virus tables: per-crop virus → symptom-pattern lists
//
// Catalogs are built once at startup and never mutated afterwards.
// All keywords are normalized to lowercase on insertion so substring
// matching against cleaned text needs no further case handling.
type Catalog struct {
	crops       []Group
	symptoms    []Group
	vectors     []Group
	causeGroups []Group
	virus       []CropViruses
}

// Group maps a canonical category name to its surface-form variants.
type Group struct {
	Name     string
	Variants []string
}

// CropViruses holds one crop's virus table.
type CropViruses struct {
	Crop    string
	Viruses []VirusEntry
}

// VirusEntry associates a virus identifier with the symptom patterns
// that suggest it.
type VirusEntry struct {
	Name     string
	Patterns []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// AddCrop registers a crop. Crops are matched in insertion order and
// the first match wins, so registration order is significant.
func (c *Catalog) AddCrop(name string, variants []string) {
	c.crops = append(c.crops, newGroup(name, variants))
}

// AddSymptom registers a symptom category with its variant phrasings.
func (c *Catalog) AddSymptom(name string, variants []string) {
	c.symptoms = append(c.symptoms, newGroup(name, variants))
}

// AddVector registers a transmission vector with its keywords.
func (c *Catalog) AddVector(name string, variants []string) {
	c.vectors = append(c.vectors, newGroup(name, variants))
}

// AddCauseGroup registers a broad causal class (fungal, bacterial,
// nutrient deficiency, viral) with its indicator words. Every group is
// tested independently during cause detection.
func (c *Catalog) AddCauseGroup(name string, indicators []string) {
	c.causeGroups = append(c.causeGroups, newGroup(name, indicators))
}

// AddVirus registers a virus under a crop's table with the symptom
// patterns that suggest it. Tables keep insertion order so that the
// cross-crop pool merge stays deterministic.
func (c *Catalog) AddVirus(crop, virus string, patterns []string) {
	crop = strings.ToLower(crop)
	normalized := lowerAll(patterns)
	for i := range c.virus {
		if c.virus[i].Crop == crop {
			c.virus[i].Viruses = append(c.virus[i].Viruses, VirusEntry{Name: virus, Patterns: normalized})
			return
		}
	}
	c.virus = append(c.virus, CropViruses{
		Crop:    crop,
		Viruses: []VirusEntry{{Name: virus, Patterns: normalized}},
	})
}

// Crops returns the registered crops in match order.
func (c *Catalog) Crops() []Group { return c.crops }

// Symptoms returns the registered symptom categories.
func (c *Catalog) Symptoms() []Group { return c.symptoms }

// Vectors returns the registered transmission vectors.
func (c *Catalog) Vectors() []Group { return c.vectors }

// CauseGroups returns the broad causal classes.
func (c *Catalog) CauseGroups() []Group { return c.causeGroups }

// HasVirusTable reports whether a crop has its own virus table.
func (c *Catalog) HasVirusTable(crop string) bool {
	crop = strings.ToLower(crop)
	for _, t := range c.virus {
		if t.Crop == crop {
			return true
		}
	}
	return false
}

// VirusPool returns the virus → patterns table to scan for a crop.
// When the crop has no registered table (or is empty), all tables are
// consolidated into one pool. Cross-crop name collisions are
// last-writer-wins in table registration order: a virus appearing
// under two crops keeps only the later crop's pattern list. The merge
// is a plain key overwrite, not a union.
func (c *Catalog) VirusPool(crop string) map[string][]string {
	crop = strings.ToLower(crop)
	pool := make(map[string][]string)
	for _, t := range c.virus {
		if t.Crop == crop {
			pool = make(map[string][]string, len(t.Viruses))
			for _, v := range t.Viruses {
				pool[v.Name] = v.Patterns
			}
			return pool
		}
	}
	for _, t := range c.virus {
		for _, v := range t.Viruses {
			pool[v.Name] = v.Patterns
		}
	}
	return pool
}

func newGroup(name string, variants []string) Group {
	return Group{
		Name:     strings.ToLower(name),
		Variants: lowerAll(variants),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
