package ir

import "testing"

func TestIterPreOrder(t *testing.T) {
	leaf1 := Move(noLoc, 1, Integer(1))
	leaf2 := Move(noLoc, 2, Integer(2))
	inner := If(noLoc, Bool(true), leaf1, NopCmd())
	root := Seq([]*Cmd{inner, leaf2})

	var got []*Cmd
	for c := range Iter(root) {
		got = append(got, c)
	}

	want := []*Cmd{root, inner, leaf1, inner.If.Else, leaf2}
	if len(got) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d: got %p, want %p", i, got[i], want[i])
		}
	}
}

func TestFlattenMatchesIter(t *testing.T) {
	root := Seq([]*Cmd{Move(noLoc, 1, Integer(1)), Move(noLoc, 2, Integer(2))})
	flat := Flatten(root)
	var viaIter []*Cmd
	for c := range Iter(root) {
		viaIter = append(viaIter, c)
	}
	if len(flat) != len(viaIter) {
		t.Fatalf("Flatten returned %d nodes, Iter walked %d", len(flat), len(viaIter))
	}
	for i := range flat {
		if flat[i] != viaIter[i] {
			t.Errorf("node %d differs between Flatten and Iter", i)
		}
	}
}

func TestIterStopsEarly(t *testing.T) {
	root := Seq([]*Cmd{Move(noLoc, 1, Integer(1)), Move(noLoc, 2, Integer(2)), Move(noLoc, 3, Integer(3))})
	count := 0
	for range Iter(root) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected the range to stop after 2 nodes, got %d", count)
	}
}
