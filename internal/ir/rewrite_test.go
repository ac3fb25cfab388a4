package ir

import "testing"

func TestMapVisitsChildrenBeforeParent(t *testing.T) {
	var order []string
	leaf := Move(noLoc, 1, Integer(1))
	root := Seq([]*Cmd{leaf})

	Map(root, func(c *Cmd) *Cmd {
		if c == leaf {
			order = append(order, "leaf")
		}
		if c == root {
			order = append(order, "root")
		}
		return nil
	})

	if len(order) != 2 || order[0] != "leaf" || order[1] != "root" {
		t.Errorf("expected bottom-up visitation [leaf root], got %v", order)
	}
}

func TestMapReplacesNodeWhenFReturnsNonNil(t *testing.T) {
	target := Move(noLoc, 1, Integer(1))
	replacement := Move(noLoc, 2, Integer(2))
	root := Seq([]*Cmd{target})

	got := Map(root, func(c *Cmd) *Cmd {
		if c == target {
			return replacement
		}
		return nil
	})

	if got.Seq.Cmds[0] != replacement {
		t.Error("Map should splice f's replacement into the parent's child slot")
	}
}

func TestMapIdentityWhenFAlwaysReturnsNil(t *testing.T) {
	leaf := Move(noLoc, 1, Integer(1))
	root := If(noLoc, Bool(true), leaf, NopCmd())

	got := Map(root, func(*Cmd) *Cmd { return nil })

	if got != root {
		t.Error("Map should keep the root node itself when f never replaces anything")
	}
	if got.If.Then != leaf {
		t.Error("Map should keep unreplaced children in place")
	}
}
