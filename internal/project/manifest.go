package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

// Manifest is the parsed contents of a vela.toml project file.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Build   BuildSection   `toml:"build"`
}

// PackageSection identifies the project and its entry source file.
type PackageSection struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// BuildSection configures what the build pipeline emits.
type BuildSection struct {
	// EmitLua enables the source-to-source translator pass.
	EmitLua bool `toml:"emit_lua"`
	// OutDir is where emitted artifacts are written, relative to the
	// manifest's directory. Defaults to "out" when empty.
	OutDir string `toml:"out_dir"`
	// RegionsFile points at a sidecar JSON file naming the type and
	// comment byte ranges for [package].entry, consumed by EmitLua.
	RegionsFile string `toml:"regions_file"`
}

var errMissingPackageName = fmt.Errorf("vela.toml: missing [package].name")
var errMissingEntry = fmt.Errorf("vela.toml: missing [package].entry")

// Load parses a vela.toml manifest from path and validates required fields.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if strings.TrimSpace(m.Package.Name) == "" {
		return Manifest{}, errMissingPackageName
	}
	// Package names round-trip through file paths and cache keys, so
	// fold them to a single normal form rather than trusting the
	// author's editor to have used one.
	m.Package.Name = norm.NFC.String(m.Package.Name)
	if strings.TrimSpace(m.Package.Entry) == "" {
		return Manifest{}, errMissingEntry
	}
	if strings.TrimSpace(m.Build.OutDir) == "" {
		m.Build.OutDir = "out"
	}
	return m, nil
}
