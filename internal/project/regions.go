package project

import (
	"encoding/json"
	"fmt"
	"os"

	"vela/internal/erase"
)

// RegionFile is the on-disk sidecar format naming the byte ranges a
// front end has already classified as type annotations or comments
// within a single source file. [build].regions_file in vela.toml
// points at one of these; this module has no parser of its own, so it
// trusts the sidecar rather than recomputing regions from source.
type RegionFile struct {
	Source         string         `json:"source"`
	TypeRegions    []erase.Region `json:"type_regions"`
	CommentRegions []erase.Region `json:"comment_regions"`
}

// LoadRegions reads and decodes a RegionFile from path.
func LoadRegions(path string) (RegionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegionFile{}, fmt.Errorf("failed to read regions file %q: %w", path, err)
	}
	var rf RegionFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return RegionFile{}, fmt.Errorf("failed to parse regions file %q: %w", path, err)
	}
	if rf.Source == "" {
		return RegionFile{}, fmt.Errorf("regions file %q: missing \"source\"", path)
	}
	return rf, nil
}
