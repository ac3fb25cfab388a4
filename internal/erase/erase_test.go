package erase

import (
	"errors"
	"strings"
	"testing"
)

func TestEraseReplacesTypeRegionWithSpaces(t *testing.T) {
	src := "local x: int = 1\n"
	region := Region{Start: uint32(strings.Index(src, ": int")), End: uint32(strings.Index(src, " = "))}

	out, err := Erase(src, []Region{region}, nil)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if len(out) != len(src) {
		t.Fatalf("length changed: got %d want %d", len(out), len(src))
	}
	if out != "local x      = 1\n" {
		t.Fatalf("got %q", out)
	}
}

func TestErasePreservesNewlinesInsideRegion(t *testing.T) {
	src := "x: int\n = 1"
	region := Region{Start: 1, End: uint32(len(src) - 3)}

	out, err := Erase(src, []Region{region}, nil)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if strings.Count(out, "\n") != strings.Count(src, "\n") {
		t.Fatalf("newline count changed: got %q", out)
	}
}

func TestEraseLeavesCommentsUntouched(t *testing.T) {
	src := "x: int -- keep me\n"
	typeRegion := Region{Start: 1, End: 6}
	commentRegion := Region{Start: 7, End: uint32(len(src) - 1)}

	out, err := Erase(src, []Region{typeRegion}, []Region{commentRegion})
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if !strings.Contains(out, "-- keep me") {
		t.Fatalf("comment was altered: %q", out)
	}
}

// TestEraseMatchesSpecScenario5 pins spec §8 scenario 5's exact byte
// offsets. The spec states regions as inclusive [start,end]; Region is
// half-open, so a spec pair (start,end) becomes Region{start-1, end}
// (its 1-based inclusive start becomes a 0-based start, and its
// inclusive end already equals the half-open exclusive end).
func TestEraseMatchesSpecScenario5(t *testing.T) {
	src := "local x : integer = 1  -- n\n"
	typeRegion := Region{Start: 9 - 1, End: 18}
	commentRegion := Region{Start: 22 - 1, End: 26}

	out, err := Erase(src, []Region{typeRegion}, []Region{commentRegion})
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	want := "local x           = 1  -- n\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	if len(out) != len(src) {
		t.Fatalf("length changed: got %d want %d", len(out), len(src))
	}
	if !strings.Contains(out, "-- n") {
		t.Fatalf("comment was altered: %q", out)
	}
}

func TestEraseRejectsOutOfBoundsRegion(t *testing.T) {
	_, err := Erase("short", []Region{{Start: 0, End: 100}}, nil)
	if !errors.Is(err, ErrRegionOutOfBounds) {
		t.Fatalf("got %v, want ErrRegionOutOfBounds", err)
	}
}

func TestEraseRejectsOverlappingTypeRegions(t *testing.T) {
	_, err := Erase("0123456789", []Region{{Start: 0, End: 5}, {Start: 3, End: 8}}, nil)
	if !errors.Is(err, ErrOverlappingRegion) {
		t.Fatalf("got %v, want ErrOverlappingRegion", err)
	}
}

func TestEraseRejectsRegionStraddlingComment(t *testing.T) {
	_, err := Erase("0123456789", []Region{{Start: 0, End: 5}}, []Region{{Start: 3, End: 8}})
	if !errors.Is(err, ErrCommentStraddlesRegion) {
		t.Fatalf("got %v, want ErrCommentStraddlesRegion", err)
	}
}

func TestEraseAcceptsUnsortedRegions(t *testing.T) {
	src := "abcdefghij"
	regions := []Region{{Start: 6, End: 8}, {Start: 0, End: 2}}
	out, err := Erase(src, regions, nil)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if out != "  cdef  ij" {
		t.Fatalf("got %q", out)
	}
}
