package buildpipeline

import (
	"fmt"

	"vela/internal/ir"
)

// ValidateEntry ensures mod exports exactly one function when entryName
// is empty, or that entryName names one of mod's exported functions
// when it is set. vela.toml's [package].entry supplies entryName.
func ValidateEntry(mod *ir.Module, entryName string) error {
	if mod == nil {
		return fmt.Errorf("missing module")
	}
	exported := mod.ExportedFunctions()
	if entryName == "" {
		switch len(exported) {
		case 0:
			return fmt.Errorf("module exports no functions; no entry to build")
		case 1:
			return nil
		default:
			return fmt.Errorf("module exports %d functions; set [package].entry to disambiguate", len(exported))
		}
	}
	for _, fID := range exported {
		if mod.Func(fID).Name == entryName {
			return nil
		}
	}
	return fmt.Errorf("entry %q is not among the module's exported functions", entryName)
}
