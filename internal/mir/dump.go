package mir

import (
	"fmt"
	"strings"
)

// Dump renders m as the textual MIR form (spec.md §6.2): a header comment
// naming the module, then each function in definition order.
func (m *Module) Dump() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("; module %s\n", m.Name))
	for _, fn := range m.Functions {
		fn.dump(&sb)
	}
	return sb.String()
}

func (f *Function) dump(sb *strings.Builder) {
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, fmt.Sprintf("%s %%%s", p.Typ.String(), p.Name))
	}
	sb.WriteString(fmt.Sprintf("define %s @%s(%s) {\n", f.ReturnType.String(), f.Name, strings.Join(params, ", ")))
	for _, b := range f.Blocks {
		b.dump(sb)
	}
	sb.WriteString("}\n")
}

func (b *BasicBlock) dump(sb *strings.Builder) {
	sb.WriteString(b.Name + ":\n")
	for _, instr := range b.Instructions {
		sb.WriteString("  " + instr.dump() + "\n")
	}
	if b.Term != nil {
		sb.WriteString("  " + b.Term.dump() + "\n")
	}
}
