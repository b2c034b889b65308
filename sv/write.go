package sv

import (
	"fmt"
	"io"
	"strings"
)

// Write renders m to w as SystemVerilog text, matching every stable
// format point of spec §6 exactly.
func Write(w io.Writer, m *Module) error {
	var b strings.Builder
	writeModule(&b, m)
	_, err := io.WriteString(w, b.String())
	return err
}

// Render is Write into a string, for golden-file comparison in tests.
func Render(m *Module) string {
	var b strings.Builder
	writeModule(&b, m)
	return b.String()
}

func writeModule(b *strings.Builder, m *Module) {
	fmt.Fprintf(b, "module %s (\n", m.Name)
	for i, p := range m.Ports {
		writePortDecl(b, p, i == len(m.Ports)-1)
	}
	b.WriteString(");\n")

	if !m.Stub {
		for _, w := range m.Wires {
			writeWireDecl(b, w)
		}
		for _, inst := range m.Instances {
			writeInstance(b, inst)
		}
		for _, a := range m.Assigns {
			fmt.Fprintf(b, "  assign %s = %s;\n", renderExpr(a.LHS), renderExpr(a.RHS))
		}
	}

	b.WriteString("endmodule\n")
}

func writePortDecl(b *strings.Builder, p Port, last bool) {
	width := ""
	if p.Width > 1 {
		width = fmt.Sprintf(" [%d:0]", p.Width-1)
	}
	sep := ","
	if last {
		sep = ""
	}
	fmt.Fprintf(b, "  %s wire%s %s%s\n", p.Dir.keyword(), width, p.Name, sep)
}

func writeWireDecl(b *strings.Builder, w Wire) {
	width := ""
	if w.Width > 1 {
		width = fmt.Sprintf(" [%d:0]", w.Width-1)
	}
	fmt.Fprintf(b, "  wire%s %s;\n", width, w.Name)
}

func writeInstance(b *strings.Builder, inst Instance) {
	fmt.Fprintf(b, "  %s", inst.Module)
	if len(inst.Params) > 0 {
		b.WriteString(" #(\n")
		for i, p := range inst.Params {
			sep := ","
			if i == len(inst.Params)-1 {
				sep = ""
			}
			fmt.Fprintf(b, "    .%s(%s)%s\n", p.Name, p.Value.render(), sep)
		}
		b.WriteString("  )")
	}
	fmt.Fprintf(b, " %s (\n", inst.Name)
	for i, c := range inst.Conns {
		sep := ","
		if i == len(inst.Conns)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "    .%s(%s)%s\n", c.Port, renderExpr(c.Expr), sep)
	}
	b.WriteString("  );\n")
}

func renderExpr(e Expr) string {
	switch v := e.(type) {
	case nil:
		return ""
	case Empty:
		return ""
	case Ref:
		return v.Name
	case Bit:
		return fmt.Sprintf("%s[%d]", v.Name, v.Index)
	case Part:
		return fmt.Sprintf("%s[%d:%d]", v.Name, v.Msb, v.Lsb)
	case Literal:
		return v.render()
	case Concat:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = renderExpr(item)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
