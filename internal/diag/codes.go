package diag

import "fmt"

// Code classifies a diagnostic by the pipeline stage that raised it.
type Code uint16

const (
	// UnknownCode is the zero value, used only for diagnostics built
	// outside the named constructors below.
	UnknownCode Code = 0

	// Manifest/project-loading diagnostics.
	ManifestMissing   Code = 1000
	ManifestMalformed Code = 1001

	// Translator (external-interface) diagnostics, category 3 of the
	// core's error handling design: invariant violations in the
	// type-region/comment-region contract.
	EraseOverlappingRegion Code = 2000
	EraseRegionOutOfBounds Code = 2001
	EraseCommentStraddles  Code = 2002

	// Build pipeline diagnostics.
	PipelineLoweringFailed Code = 3000
	PipelineEmitFailed     Code = 3001
)

var codeNames = map[Code]string{
	UnknownCode:            "unknown",
	ManifestMissing:        "manifest-missing",
	ManifestMalformed:      "manifest-malformed",
	EraseOverlappingRegion: "erase-overlapping-region",
	EraseRegionOutOfBounds: "erase-region-out-of-bounds",
	EraseCommentStraddles:  "erase-comment-straddles-region",
	PipelineLoweringFailed: "pipeline-lowering-failed",
	PipelineEmitFailed:     "pipeline-emit-failed",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
