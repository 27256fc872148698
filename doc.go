/* Package forthwith implements a minimal Forth-like interpreter.

Input text is split into whitespace-delimited tokens.  A token that parses as
a base-10 integer is pushed onto the operand stack; anything else names a word
in the dictionary.  The built-in words are the arithmetic operators + - * /
and the stack shufflers DUP, DROP, SWAP, and OVER.  Word names are
case-insensitive.

New words are compiled with a colon definition:

	: SQ DUP * ;
	4 SQ        ( leaves 16 )

Word references inside a definition are bound to their dictionary slots at
compile time, so a later redefinition of an inner word does not change an
already compiled body.  Redefining a name appends a fresh dictionary entry
that shadows the old one; nothing is ever removed from the dictionary.

Running a compiled word substitutes its stored token sequence at the front of
the pending-token queue in place of a call.  There is no return stack, which
means a definition that names itself expands without bound; the interpreter
does not detect this, though WithStepLimit can bound an Eval call.

A VM keeps its stack and dictionary across Eval calls.  The package-level
Interpret function is the embedding boundary: one fresh VM per call, with the
resulting stack (or a fixed error string) rendered as text.
*/
package forthwith
