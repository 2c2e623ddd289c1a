package viewpath

import "fmt"

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenWord
	tokenQuoted
	tokenDot
	tokenLBracket
	tokenRBracket
	tokenLParen
	tokenRParen
	tokenPipe
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of path"
	case tokenWord:
		return "word"
	case tokenQuoted:
		return "quoted field"
	case tokenDot:
		return "'.'"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenPipe:
		return "'|'"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// token literals are slices of the input, quotes included for tokenQuoted.
type token struct {
	typ     tokenType
	literal string
	pos     int
}

func (t token) describe() string {
	switch t.typ {
	case tokenWord, tokenQuoted:
		return fmt.Sprintf("%s %s", t.typ, t.literal)
	default:
		return t.typ.String()
	}
}

func lex(input string) ([]token, error) {
	tokens := make([]token, 0, len(input)/2+1)
	pos := 0

	for pos < len(input) {
		ch := input[pos]
		if isSpace(ch) {
			pos++
			continue
		}

		if isWordByte(ch) || (ch == '-' && pos+1 < len(input) && isDigit(input[pos+1])) {
			start := pos
			pos++
			for pos < len(input) && isWordByte(input[pos]) {
				pos++
			}
			tokens = append(tokens, token{typ: tokenWord, literal: input[start:pos], pos: start})
			continue
		}

		if ch == '"' {
			end, err := lexQuoted(input, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{typ: tokenQuoted, literal: input[pos:end], pos: pos})
			pos = end
			continue
		}

		typ, ok := punctuation[ch]
		if !ok {
			return nil, pathError("unexpected character %q at position %d", ch, pos)
		}
		tokens = append(tokens, token{typ: typ, literal: input[pos : pos+1], pos: pos})
		pos++
	}

	tokens = append(tokens, token{typ: tokenEOF, pos: len(input)})
	return tokens, nil
}

var punctuation = map[byte]tokenType{
	'.': tokenDot,
	'[': tokenLBracket,
	']': tokenRBracket,
	'(': tokenLParen,
	')': tokenRParen,
	'|': tokenPipe,
}

// lexQuoted returns the offset just past the closing quote. A backslash
// escapes the byte that follows it; the escape itself is kept in the name.
func lexQuoted(input string, start int) (int, error) {
	for pos := start + 1; pos < len(input); pos++ {
		switch input[pos] {
		case '\\':
			pos++
		case '"':
			return pos + 1, nil
		}
	}
	return 0, pathError("unterminated quoted field at position %d", start)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordByte(ch byte) bool {
	return ch == '_' || isDigit(ch) || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
