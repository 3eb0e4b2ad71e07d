package diagnostics

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates/en.yaml templates/ja.yaml
var templateFS embed.FS

// Language selects a template variant. Recognized: LangEN, LangJA.
type Language string

const (
	LangEN Language = "en"
	LangJA Language = "ja"
)

// catalog is a flat mapping from ErrorCode to its localized templates.
type catalog struct {
	byLang map[Language]map[ErrorCode]string
}

var (
	globalCatalog     *catalog
	globalCatalogOnce sync.Once
	globalCatalogErr  error
)

func loadCatalog() (*catalog, error) {
	c := &catalog{byLang: make(map[Language]map[ErrorCode]string)}
	files := map[Language]string{
		LangEN: "templates/en.yaml",
		LangJA: "templates/ja.yaml",
	}
	for lang, path := range files {
		raw, err := templateFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("diagnostics: reading %s: %w", path, err)
		}
		var m map[string]string
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("diagnostics: parsing %s: %w", path, err)
		}
		byCode := make(map[ErrorCode]string, len(m))
		for k, v := range m {
			byCode[ErrorCode(k)] = v
		}
		c.byLang[lang] = byCode
	}
	return c, nil
}

// getCatalog lazily loads and caches the embedded template catalog.
func getCatalog() *catalog {
	globalCatalogOnce.Do(func() {
		globalCatalog, globalCatalogErr = loadCatalog()
	})
	if globalCatalogErr != nil {
		// The catalog is embedded at build time; a failure here means the
		// embedded YAML is malformed, which is a compiler bug, not a
		// source-program error.
		panic(globalCatalogErr)
	}
	return globalCatalog
}

// template returns the message template for code in lang, falling back to
// English, and finally to a synthesized fallback naming the unknown code.
func (c *catalog) template(lang Language, code ErrorCode) string {
	if m, ok := c.byLang[lang]; ok {
		if t, ok := m[code]; ok {
			return t
		}
	}
	if t, ok := c.byLang[LangEN][code]; ok {
		return t
	}
	return fmt.Sprintf("unregistered diagnostic code %q", string(code))
}
