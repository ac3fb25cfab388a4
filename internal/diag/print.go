package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.Faint)
)

func severityColor(sev Severity) *color.Color {
	switch sev {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// PrintBag renders every diagnostic in b to w, one per line, colorized
// when enabled is true. Diagnostics are printed in their current order;
// callers that want deterministic output call Bag.Sort first.
func PrintBag(w io.Writer, b *Bag, enabled bool) {
	if b == nil {
		return
	}
	for _, d := range b.Items() {
		printOne(w, d, enabled)
	}
}

func printOne(w io.Writer, d Diagnostic, enabled bool) {
	sevText := d.Severity.String()
	codeText := d.Code.String()
	if enabled {
		sevText = severityColor(d.Severity).Sprint(sevText)
		codeText = codeColor.Sprint(codeText)
	}
	fmt.Fprintf(w, "%s[%s] %s: %s\n", sevText, codeText, d.Primary.String(), d.Message)
	for _, n := range d.Notes {
		fmt.Fprintf(w, "    note: %s: %s\n", n.Span.String(), n.Msg)
	}
}
