package forthwith

import "context"

// VM ties one operand stack, one token queue, and one word table together as
// a single-owner session.  The stack and the word table persist across Eval
// calls; the queue is rebuilt from the input text at the start of each call
// and drained (or abandoned on error) by its end.  Nothing here is safe for
// concurrent use: a VM belongs to exactly one caller.
type VM struct {
	stack []int
	queue *tokenQueue
	words wordTable
	colon int // table slot of ":", matched by index in step

	logfn     func(mess string, args ...interface{})
	stepLimit int
	steps     int
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

func (vm *VM) push(val int) {
	vm.stack = append(vm.stack, val)
}

func (vm *VM) pop() (val int) {
	i := len(vm.stack) - 1
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val
}

// step interprets one token off the front of the queue.
//
// A word token is resolved to its table index and the index re-pushed at the
// front rather than executed directly; freshly tokenized words and refs from
// compiled bodies thereby funnel through the same path on the next step.
func (vm *VM) step() error {
	if vm.stepLimit != 0 {
		if vm.steps++; vm.steps > vm.stepLimit {
			vm.logf("halt after %v steps", vm.stepLimit)
			return ErrStepLimit
		}
	}

	t, ok := vm.queue.popFront()
	if !ok {
		return nil
	}

	switch t.kind {
	case tokenWord:
		index, found := vm.words.lookup(t.name)
		if !found {
			vm.logf("lookup %q failed", t.name)
			return ErrUnknownWord
		}
		vm.logf("resolve %v -> @%v", t.name, index)
		vm.queue.pushFront(refToken(index))

	case tokenRef:
		if t.ref == vm.colon {
			return vm.compile()
		}
		return vm.invoke(t.ref)

	case tokenNumber:
		vm.logf("push %v", t.num)
		vm.push(t.num)
	}
	return nil
}

// invoke runs the behavior of the word at the given table index against the
// stack and the queue.  Behavior dispatch is a closed switch over wordKind;
// arithmetic additionally dispatches on the word's own name.
func (vm *VM) invoke(index int) error {
	w := &vm.words.words[index]
	vm.logf("exec @%v %v %v -- s:%v", index, w.name, w.kind, vm.stack)

	switch w.kind {
	case wordArith:
		if len(vm.stack) < 2 {
			return ErrStackUnderflow
		}
		b, a := vm.pop(), vm.pop()
		var v int
		switch w.name {
		case "+":
			v = a + b
		case "-":
			v = a - b
		case "*":
			v = a * b
		case "/":
			if b == 0 {
				return ErrDivisionByZero
			}
			v = a / b
		}
		vm.push(v)

	case wordDup:
		if len(vm.stack) < 1 {
			return ErrStackUnderflow
		}
		vm.push(vm.stack[len(vm.stack)-1])

	case wordDrop:
		if len(vm.stack) < 1 {
			return ErrStackUnderflow
		}
		vm.pop()

	case wordSwap:
		if len(vm.stack) < 2 {
			return ErrStackUnderflow
		}
		b, a := vm.pop(), vm.pop()
		vm.push(b)
		vm.push(a)

	case wordOver:
		if len(vm.stack) < 2 {
			return ErrStackUnderflow
		}
		vm.push(vm.stack[len(vm.stack)-2])

	case wordNop:

	case wordExpand:
		// Textual macro substitution, not a call: the body lands at the
		// front of the queue and the next steps interpret it in place.
		// A definition that names itself therefore expands forever;
		// WithStepLimit is the only brake.
		vm.queue.inject(w.body)
	}
	return nil
}

// Eval tokenizes input into a fresh queue, discarding any queue abandoned by
// a prior failed call, and steps until the queue is empty or a step fails.
// Stack and word-table effects applied before a failure stay applied.
func (vm *VM) Eval(input string) error {
	return vm.EvalContext(context.Background(), input)
}

// EvalContext is Eval with a cancellation point between steps.  The core
// language has no suspension points of its own; this is the only way to end
// an unbounded expansion short of WithStepLimit.
func (vm *VM) EvalContext(ctx context.Context, input string) error {
	vm.queue = tokenize(input)
	vm.steps = 0
	vm.logf("eval %v", vm.queue)
	for vm.queue.len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.step(); err != nil {
			return err
		}
	}
	return nil
}

// Stack returns a snapshot of the operand stack, bottom-to-top.
func (vm *VM) Stack() []int {
	out := make([]int, len(vm.stack))
	copy(out, vm.stack)
	return out
}
