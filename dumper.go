package forthwith

import (
	"fmt"
	"io"
)

// WordInfo describes one dictionary entry for inspection tooling (the REPL
// word listing, test failure dumps).
type WordInfo struct {
	Index    int
	Name     string
	Kind     string
	Builtin  bool
	Shadowed bool     // a newer entry with the same name exists
	Body     []string // decompiled body, empty for built-ins
}

// Words returns every dictionary entry in definition order, shadowed entries
// included.
func (vm *VM) Words() []WordInfo {
	infos := make([]WordInfo, len(vm.words.words))
	for i, w := range vm.words.words {
		latest, _ := vm.words.lookup(w.name)
		body := make([]string, 0, len(w.body))
		for _, t := range w.body {
			body = append(body, vm.formatToken(t))
		}
		infos[i] = WordInfo{
			Index:    i,
			Name:     w.name,
			Kind:     w.kind.String(),
			Builtin:  w.kind != wordExpand,
			Shadowed: latest != i,
			Body:     body,
		}
	}
	return infos
}

// formatToken renders a token for humans, naming ref targets rather than
// leaving bare indices.
func (vm *VM) formatToken(t token) string {
	if t.kind == tokenRef && t.ref >= 0 && t.ref < len(vm.words.words) {
		return fmt.Sprintf("%v@%v", vm.words.words[t.ref].name, t.ref)
	}
	return t.String()
}

// DumpTo writes a plain-text dump of the stack and dictionary, used by
// failing tests and the REPL.
func (vm *VM) DumpTo(out io.Writer) {
	vmDumper{vm: vm, out: out}.dump()
}

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.vm.stack)
	if q := dump.vm.queue; q != nil && q.len() > 0 {
		fmt.Fprintf(dump.out, "  queue: %v\n", q)
	}
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, info := range dump.vm.Words() {
		dump.dumpWord(info)
	}
}

func (dump vmDumper) dumpWord(info WordInfo) {
	fmt.Fprintf(dump.out, "  @%v %v", info.Index, info.Name)
	if !info.Builtin {
		fmt.Fprintf(dump.out, " :")
		for _, tok := range info.Body {
			fmt.Fprintf(dump.out, " %v", tok)
		}
		fmt.Fprintf(dump.out, " ;")
	} else {
		fmt.Fprintf(dump.out, " <%v>", info.Kind)
	}
	if info.Shadowed {
		fmt.Fprintf(dump.out, " (shadowed)")
	}
	fmt.Fprintf(dump.out, "\n")
}
