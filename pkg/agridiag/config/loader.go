package config

import (
	"fmt"

	"github.com/agrovista/agridiag/pkg/agridiag/catalog"
	"github.com/agrovista/agridiag/pkg/agridiag/textnorm"
)

// Loader loads optional configuration files and constructs the
// components the engine needs. Empty paths mean built-in defaults.
type Loader struct {
	CatalogPath  string
	StoplistPath string
}

// Components holds the loaded configuration components.
type Components struct {
	Catalog   *catalog.Catalog
	Stopwords textnorm.Stopwords
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.CatalogPath != "" {
		cat, err := LoadCatalog(l.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		comp.Catalog = cat
	} else {
		comp.Catalog = catalog.Default()
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stopwords = textnorm.NewStopwords(sl.Terms)
	} else {
		comp.Stopwords = textnorm.DefaultStopwords()
	}

	return comp, nil
}
