package forthwith

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// A token is one lexical unit of pending work: an unresolved word name, a
// word-table index bound during resolution or compilation, or an integer
// literal.  Tokens are plain values and are freely copied.
type token struct {
	kind tokenKind
	name string // tokenWord only, upper-cased
	ref  int    // tokenRef only
	num  int    // tokenNumber only
}

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenRef
	tokenNumber
)

func wordToken(name string) token { return token{kind: tokenWord, name: name} }
func refToken(index int) token    { return token{kind: tokenRef, ref: index} }
func numberToken(val int) token   { return token{kind: tokenNumber, num: val} }

func (t token) String() string {
	switch t.kind {
	case tokenWord:
		return t.name
	case tokenRef:
		return fmt.Sprintf("@%v", t.ref)
	case tokenNumber:
		return strconv.Itoa(t.num)
	}
	return fmt.Sprintf("?token(%v)", int(t.kind))
}

// tokenize splits input on whitespace and control runes, classifying each
// fragment as either an integer literal or an upper-cased word name.  Word
// names are case-insensitive, so normalization happens once here rather than
// on every lookup.  Fragments that fail integer parsing are not an error at
// this stage; they become word tokens and surface later as a resolution
// failure if no such word exists.
func tokenize(input string) *tokenQueue {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
	var queue tokenQueue
	for _, field := range fields {
		if n, err := strconv.ParseInt(field, 10, strconv.IntSize); err == nil {
			queue.pushBack(numberToken(int(n)))
		} else {
			queue.pushBack(wordToken(strings.ToUpper(field)))
		}
	}
	return &queue
}
