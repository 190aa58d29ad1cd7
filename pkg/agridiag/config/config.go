package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agrovista/agridiag/pkg/agridiag/catalog"
	"github.com/agrovista/agridiag/pkg/agridiag/internalerr"
)

// CatalogFile is the YAML shape of an alternate lexicon catalog.
//
// Crop order matters: it is the crop-detection match order.
type CatalogFile struct {
	Crops       []GroupEntry      `yaml:"crops"`
	Symptoms    []GroupEntry      `yaml:"symptoms"`
	Vectors     []GroupEntry      `yaml:"vectors"`
	CauseGroups []GroupEntry      `yaml:"cause_groups"`
	Viruses     []CropVirusEntry  `yaml:"viruses"`
}

// GroupEntry is one canonical name with its surface variants.
type GroupEntry struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
}

// CropVirusEntry is one crop's virus table.
type CropVirusEntry struct {
	Crop    string       `yaml:"crop"`
	Viruses []VirusEntry `yaml:"viruses"`
}

// VirusEntry is one virus with its associated symptom patterns.
type VirusEntry struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// LoadCatalog reads and validates a catalog YAML file.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return buildCatalog(file)
}

func buildCatalog(file CatalogFile) (*catalog.Catalog, error) {
	if len(file.Crops) == 0 {
		return nil, fmt.Errorf("%w: catalog has no crops", internalerr.ErrInvalidConfig)
	}
	if len(file.Symptoms) == 0 {
		return nil, fmt.Errorf("%w: catalog has no symptoms", internalerr.ErrInvalidConfig)
	}

	cat := catalog.New()
	for _, g := range file.Crops {
		if err := checkGroup("crop", g); err != nil {
			return nil, err
		}
		cat.AddCrop(g.Name, g.Variants)
	}
	for _, g := range file.Symptoms {
		if err := checkGroup("symptom", g); err != nil {
			return nil, err
		}
		cat.AddSymptom(g.Name, g.Variants)
	}
	for _, g := range file.Vectors {
		if err := checkGroup("vector", g); err != nil {
			return nil, err
		}
		cat.AddVector(g.Name, g.Variants)
	}
	for _, g := range file.CauseGroups {
		if err := checkGroup("cause group", g); err != nil {
			return nil, err
		}
		cat.AddCauseGroup(g.Name, g.Variants)
	}
	for _, cv := range file.Viruses {
		if cv.Crop == "" {
			return nil, fmt.Errorf("%w: virus table without crop", internalerr.ErrInvalidConfig)
		}
		for _, v := range cv.Viruses {
			if v.Name == "" || len(v.Patterns) == 0 {
				return nil, fmt.Errorf("%w: virus entry under %q needs a name and patterns", internalerr.ErrInvalidConfig, cv.Crop)
			}
			cat.AddVirus(cv.Crop, v.Name, v.Patterns)
		}
	}
	return cat, nil
}

func checkGroup(kind string, g GroupEntry) error {
	if g.Name == "" {
		return fmt.Errorf("%w: %s entry without name", internalerr.ErrInvalidConfig, kind)
	}
	if len(g.Variants) == 0 {
		return fmt.Errorf("%w: %s %q has no variants", internalerr.ErrInvalidConfig, kind, g.Name)
	}
	return nil
}

// Stoplist is the stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stoplist %s: %w", path, err)
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}
	return &sl, nil
}
