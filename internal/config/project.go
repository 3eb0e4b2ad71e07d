package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hhramberg/mirc/internal/diagnostics"
)

// Project is the optional mirc.yaml project file: defaults for the flags a
// user would otherwise repeat on every invocation. Mirrors the shape of the
// teacher's internal/ext.Config (LoadConfig/FindConfig/validate), scaled
// down to mirc's much smaller configuration surface.
type Project struct {
	// Lang selects the diagnostic template language ("en" or "ja"),
	// overridden by -en/-ja on the command line.
	Lang string `yaml:"lang,omitempty"`

	// DumpAST/DumpMIR default -dbg-ast-print/-dbg-mir-print.
	DumpAST bool `yaml:"dump_ast,omitempty"`
	DumpMIR bool `yaml:"dump_mir,omitempty"`

	// EmitWire defaults -emit-mir-wire.
	EmitWire bool `yaml:"emit_mir_wire,omitempty"`

	// CachePath defaults -cache; empty disables the cache.
	CachePath string `yaml:"cache,omitempty"`
}

// Language resolves p.Lang to a diagnostics.Language, defaulting to English
// for anything unrecognized or unset.
func (p *Project) Language() diagnostics.Language {
	if p != nil && p.Lang == "ja" {
		return diagnostics.LangJA
	}
	return diagnostics.LangEN
}

// Load reads and parses a mirc.yaml project file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// Find searches for mirc.yaml starting at dir and walking up to the
// filesystem root, the way the teacher's ext.FindConfig locates funxy.yaml.
// Returns "" with a nil error when nothing is found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "mirc.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		candidate = filepath.Join(dir, "mirc.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
