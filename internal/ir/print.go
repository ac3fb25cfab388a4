package ir

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DumpTree writes a human-readable, indented rendering of f's command
// tree to w, for functions whose Body has not yet been lowered to
// basic blocks (Blocks is nil).
func DumpTree(w io.Writer, f *Function) {
	fmt.Fprintf(w, "func %s\n", f.Name)
	dumpCmd(w, f.Body, 1)
}

func dumpCmd(w io.Writer, c *Cmd, depth int) {
	if c == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch c.Tag {
	case CmdSeq:
		fmt.Fprintf(w, "%sseq\n", indent)
		for _, child := range c.Seq.Cmds {
			dumpCmd(w, child, depth+1)
		}
	case CmdIf:
		fmt.Fprintf(w, "%sif %s\n", indent, c.If.Cond)
		dumpCmd(w, c.If.Then, depth+1)
		fmt.Fprintf(w, "%selse\n", indent)
		dumpCmd(w, c.If.Else, depth+1)
	case CmdLoop:
		fmt.Fprintf(w, "%sloop\n", indent)
		dumpCmd(w, c.Loop.Body, depth+1)
	case CmdFor:
		fmt.Fprintf(w, "%sfor v%d = %s, %s, %s\n", indent, c.For.Dst, c.For.SrcStart, c.For.SrcLimit, c.For.SrcStep)
		dumpCmd(w, c.For.Body, depth+1)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, formatLeaf(c))
	}
}

// DumpBlocks writes a column-aligned listing of f's basic blocks to w,
// for functions whose Blocks have already been populated by
// GenerateBasicBlocks. Command text is padded with go-runewidth so
// columns of wide-rune-containing diagnostics (quoted string operands,
// field names) still line up in a monospace terminal.
func DumpBlocks(w io.Writer, f *Function) {
	fmt.Fprintf(w, "func %s\n", f.Name)
	for id, bb := range f.Blocks {
		fmt.Fprintf(w, "block %d:\n", id)
		for _, c := range bb.Cmds {
			line := "  " + formatLeaf(c)
			pad := 48 - runewidth.StringWidth(line)
			if pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			fmt.Fprintln(w, line)
		}
		switch {
		case bb.JmpFalse != nil:
			fmt.Fprintf(w, "  jmp_false %s -> block %d, else block %d\n", bb.JmpFalse.Cond, bb.JmpFalse.Target, bb.Next)
		case bb.Next != NoBlockID:
			fmt.Fprintf(w, "  jmp block %d\n", bb.Next)
		default:
			fmt.Fprintf(w, "  (exit)\n")
		}
	}
}

// DumpModule writes every function in mod to w, one after another.
// blocks selects DumpBlocks over DumpTree for functions that have
// already been lowered; passing blocks for a function whose Blocks is
// still nil prints an empty block listing.
func DumpModule(w io.Writer, mod *Module, blocks bool) {
	for _, f := range mod.Functions[1:] {
		if blocks {
			DumpBlocks(w, f)
		} else {
			DumpTree(w, f)
		}
		fmt.Fprintln(w)
	}
}

func formatLeaf(c *Cmd) string {
	dsts := GetDsts(c)
	srcs := GetSrcs(c)
	dstStrs := make([]string, len(dsts))
	for i, d := range dsts {
		dstStrs[i] = fmt.Sprintf("v%d", d)
	}
	srcStrs := make([]string, len(srcs))
	for i, s := range srcs {
		srcStrs[i] = s.String()
	}
	switch c.Tag {
	case CmdNop:
		return "nop"
	case CmdBreak:
		return "break"
	case CmdCheckGC:
		return "check_gc"
	case CmdRuntimeError:
		return fmt.Sprintf("runtime_error %q", c.RuntimeError.Msg)
	case CmdReturn:
		return fmt.Sprintf("return %s", strings.Join(srcStrs, ", "))
	}
	name := strings.TrimPrefix(c.Tag.String(), "ir.Cmd.")
	if len(dstStrs) == 0 {
		return fmt.Sprintf("%s %s", name, strings.Join(srcStrs, ", "))
	}
	return fmt.Sprintf("%s = %s %s", strings.Join(dstStrs, ", "), name, strings.Join(srcStrs, ", "))
}
