// Package erase strips static-type syntax out of a source file while
// leaving every other byte, including comments, exactly where it was.
//
// Erase is a translator, not a parser: it trusts the caller (the
// front end that produced typeRegions and commentRegions) to have
// already located every span that needs removing. Each erased byte is
// replaced by a space, except newlines, which are kept so that line
// and column numbers in the output match the input one-for-one. The
// output is therefore always the same length as the input.
package erase

import (
	"errors"
	"fmt"

	"vela/internal/source"
)

// Region is a half-open byte range [Start, End) within a single
// source file, matching source.Span's Start/End convention.
type Region struct {
	Start uint32
	End   uint32
}

var (
	// ErrRegionOutOfBounds is wrapped into the error returned by Erase
	// when a region falls outside src.
	ErrRegionOutOfBounds = errors.New("erase: region out of bounds")
	// ErrOverlappingRegion is wrapped into the error returned by Erase
	// when two type regions (or two comment regions) overlap.
	ErrOverlappingRegion = errors.New("erase: overlapping region")
	// ErrCommentStraddlesRegion is wrapped into the error returned by
	// Erase when a type region and a comment region partially overlap.
	ErrCommentStraddlesRegion = errors.New("erase: comment straddles region")
)

// Erase returns src with every byte inside a typeRegion replaced by a
// space (newlines excepted), leaving commentRegions and everything
// else untouched. Regions need not be pre-sorted. Erase returns an
// error, wrapping one of the Err sentinels above, if any region is out
// of bounds, two regions of the same kind overlap, or a type region
// partially overlaps a comment region.
func Erase(src string, typeRegions, commentRegions []Region) (string, error) {
	n, err := safecastLen(src)
	if err != nil {
		return "", err
	}
	if err := validateSorted(typeRegions, n); err != nil {
		return "", fmt.Errorf("type regions: %w", err)
	}
	if err := validateSorted(commentRegions, n); err != nil {
		return "", fmt.Errorf("comment regions: %w", err)
	}
	if err := validateDisjoint(typeRegions, commentRegions); err != nil {
		return "", err
	}

	out := []byte(src)
	for _, r := range typeRegions {
		for i := r.Start; i < r.End; i++ {
			if out[i] != '\n' {
				out[i] = ' '
			}
		}
	}
	return string(out), nil
}

func safecastLen(src string) (uint32, error) {
	n := len(src)
	if n < 0 || uint64(n) > 1<<32-1 {
		return 0, fmt.Errorf("erase: source too large (%d bytes)", n)
	}
	return uint32(n), nil
}

// validateSorted checks every region is in bounds and, once sorted by
// Start, that no two regions overlap. It does not mutate the caller's
// slice.
func validateSorted(regions []Region, n uint32) error {
	sorted := append([]Region(nil), regions...)
	sortRegions(sorted)
	for i, r := range sorted {
		if r.Start > r.End || r.End > n {
			return fmt.Errorf("%w: [%d,%d) in a %d-byte source", ErrRegionOutOfBounds, r.Start, r.End, n)
		}
		if i > 0 && r.Start < sorted[i-1].End {
			return fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlappingRegion, sorted[i-1].Start, sorted[i-1].End, r.Start, r.End)
		}
	}
	return nil
}

func validateDisjoint(typeRegions, commentRegions []Region) error {
	for _, t := range typeRegions {
		for _, c := range commentRegions {
			if t.Start < c.End && c.Start < t.End {
				return fmt.Errorf("%w: type [%d,%d) vs comment [%d,%d)", ErrCommentStraddlesRegion, t.Start, t.End, c.Start, c.End)
			}
		}
	}
	return nil
}

func sortRegions(regions []Region) {
	for i := 1; i < len(regions); i++ {
		for j := i; j > 0 && regions[j-1].Start > regions[j].Start; j-- {
			regions[j-1], regions[j] = regions[j], regions[j-1]
		}
	}
}

// SpanRegion converts a source.Span into a Region, discarding the file
// id; callers are expected to only mix spans from a single file.
func SpanRegion(span source.Span) Region {
	return Region{Start: span.Start, End: span.End}
}
