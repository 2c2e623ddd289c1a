// Package viewpath implements view paths: a small language for addressing a
// location inside a tree-shaped document.
//
// A path is a sequence of segments:
//   - Field: a member name, bare (`user`, `2fa_enabled`) or quoted (`"first name"`)
//   - Index: a signed array offset in brackets (`[0]`, `[-1]`)
//   - Coalesce: ordered member alternatives, first present wins (`(id | uuid)`)
//
// Grammar:
//
//	path       := step*
//	step       := dot-step | index-step
//	dot-step   := ( "." )? ( field | coalesce )
//	index-step := "[" signed-int "]"
//	field      := bare-ident | quoted
//	coalesce   := "(" field ( "|" field )* ")"
//	bare-ident := [0-9]* [A-Za-z_] [0-9A-Za-z_]*
//	quoted     := '"' any-char-except-unescaped-quote* '"'
//
// The dot is optional only on the first step. Paths render back to the same
// canonical text they were parsed from: `a.b[0].c`, `a[0][1]`, `(a | b).c`.
package viewpath
