package forthwith

import "strings"

// tokenQueue holds tokens still to be interpreted.  The evaluator consumes
// from the front; expanding a compiled word injects its body back at the
// front, so the queue doubles as the macro-expansion work list.
type tokenQueue struct {
	toks []token
}

func (q *tokenQueue) len() int { return len(q.toks) }

func (q *tokenQueue) popFront() (token, bool) {
	if len(q.toks) == 0 {
		return token{}, false
	}
	t := q.toks[0]
	q.toks = q.toks[1:]
	return t, true
}

func (q *tokenQueue) pushFront(t token) {
	q.toks = append(q.toks, token{})
	copy(q.toks[1:], q.toks)
	q.toks[0] = t
}

func (q *tokenQueue) pushBack(t token) {
	q.toks = append(q.toks, t)
}

// inject places body at the front of the queue in original order, so that
// body[0] is the next token interpreted.
func (q *tokenQueue) inject(body []token) {
	if len(body) == 0 {
		return
	}
	q.toks = append(append(make([]token, 0, len(body)+len(q.toks)), body...), q.toks...)
}

func (q *tokenQueue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range q.toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
