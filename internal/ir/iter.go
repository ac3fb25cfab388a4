package ir

// children returns the direct child commands of c in evaluation order.
// Only the five structured-control tags nest other commands; every
// other tag is a leaf as far as tree walking is concerned, even when
// its payload carries Values that reference locals.
func children(c *Cmd) []*Cmd {
	switch c.Tag {
	case CmdSeq:
		return c.Seq.Cmds
	case CmdIf:
		return []*Cmd{c.If.Then, c.If.Else}
	case CmdLoop:
		return []*Cmd{c.Loop.Body}
	case CmdFor:
		return []*Cmd{c.For.Body}
	default:
		return nil
	}
}

// Iter walks the tree rooted at root in pre-order: a node is yielded
// before its children, and children are visited left to right. Pass
// the returned sequence to a range statement; returning false from the
// loop body stops the walk early, same as any other range-over-func
// iterator.
func Iter(root *Cmd) func(yield func(*Cmd) bool) {
	return func(yield func(*Cmd) bool) {
		var walk func(c *Cmd) bool
		walk = func(c *Cmd) bool {
			if c == nil {
				return true
			}
			if !yield(c) {
				return false
			}
			for _, child := range children(c) {
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}

// Flatten collects every node of the tree rooted at root, pre-order.
func Flatten(root *Cmd) []*Cmd {
	var out []*Cmd
	for c := range Iter(root) {
		out = append(out, c)
	}
	return out
}
