package forthwith

// A word is one named, executable dictionary entry.  Built-ins carry an empty
// body; compiled words carry the token sequence accumulated by the colon
// compiler and run by re-injection into the token queue.
type word struct {
	name string
	kind wordKind
	body []token
}

// wordKind enumerates every behavior a word can have.  Keeping the set closed
// lets the evaluator dispatch through a single switch instead of function
// values, and lets each behavior be tested in isolation.
type wordKind int

const (
	wordArith wordKind = iota // + - * / dispatched by the word's own name
	wordDup
	wordDrop
	wordSwap
	wordOver
	wordNop    // the ":" placeholder; intercepted by index, never dispatched
	wordExpand // compiled definition, body re-injected at the queue front
)

var wordKindNames = [...]string{
	wordArith:  "arith",
	wordDup:    "dup",
	wordDrop:   "drop",
	wordSwap:   "swap",
	wordOver:   "over",
	wordNop:    "nop",
	wordExpand: "expand",
}

func (k wordKind) String() string {
	if int(k) < len(wordKindNames) {
		return wordKindNames[k]
	}
	return "invalid"
}

// wordTable is the append-only dictionary.  Entries are never removed or
// mutated in place; redefining a name appends a fresh entry that shadows the
// old one, and indices stay valid for the table's lifetime.
type wordTable struct {
	words []word
}

// define appends w and returns its index, the table length before the append.
func (wt *wordTable) define(w word) int {
	index := len(wt.words)
	wt.words = append(wt.words, w)
	return index
}

// lookup scans from the newest entry backward so that the most recent
// definition of a name wins.  Names are matched byte-exact; tokenize already
// upper-cased them.
func (wt *wordTable) lookup(name string) (int, bool) {
	for i := len(wt.words) - 1; i >= 0; i-- {
		if wt.words[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// colonName is the control word that hands the evaluator over to the colon
// compiler.  Its table slot is looked up once at VM construction and matched
// by index in the eval loop.
const colonName = ":"

func builtinTable() wordTable {
	var wt wordTable
	for _, name := range []string{"+", "-", "*", "/"} {
		wt.define(word{name: name, kind: wordArith})
	}
	wt.define(word{name: "DUP", kind: wordDup})
	wt.define(word{name: "DROP", kind: wordDrop})
	wt.define(word{name: "SWAP", kind: wordSwap})
	wt.define(word{name: "OVER", kind: wordOver})
	wt.define(word{name: colonName, kind: wordNop})
	return wt
}
