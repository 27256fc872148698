package forthwith

// compile consumes a colon definition from the token queue: a name token,
// a body, and the ";" terminator.  Body word references are bound to table
// indices immediately, so redefining a referenced word afterward does not
// change an already compiled body; the cost is that forward references,
// including self-recursion, are rejected here rather than deferred.
//
// Any failure leaves the word table untouched: the entry is appended only
// when the terminator has been seen.
func (vm *VM) compile() error {
	t, ok := vm.queue.popFront()
	if !ok || t.kind != tokenWord {
		vm.logf("compile: no name token")
		return ErrInvalidWord
	}
	name := t.name

	var body []token
	for {
		t, ok := vm.queue.popFront()
		if !ok {
			vm.logf("compile %v: unterminated", name)
			return ErrInvalidWord
		}
		switch {
		case t.kind == tokenWord && t.name == ";":
			index := vm.words.define(word{name: name, kind: wordExpand, body: body})
			vm.logf("compile %v -> @%v %v", name, index, body)
			return nil
		case t.kind == tokenWord:
			index, found := vm.words.lookup(t.name)
			if !found {
				vm.logf("compile %v: unresolved %q", name, t.name)
				return ErrInvalidWord
			}
			body = append(body, refToken(index))
		default:
			body = append(body, t)
		}
	}
}
