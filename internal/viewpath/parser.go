package viewpath

import (
	"strconv"
	"strings"
)

type parserState struct {
	tokens []token
	pos    int
}

// Parse parses a view path. The empty string is the root path.
// Parsing either yields a complete path or an error wrapping ErrInvalidPath.
func Parse(input string) (*Path, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	state := parserState{tokens: tokens}
	path := Root()
	for state.current().typ != tokenEOF {
		segment, err := state.parseStep(path.IsRoot())
		if err != nil {
			return nil, err
		}
		path.PushBack(segment)
	}

	return path, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(input string) *Path {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *parserState) current() token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *parserState) advance() token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parserState) expect(typ tokenType) error {
	tok := p.current()
	if tok.typ != typ {
		return pathError("expected %s but found %s at position %d", typ, tok.describe(), tok.pos)
	}
	p.advance()
	return nil
}

func (p *parserState) parseStep(first bool) (Segment, error) {
	tok := p.current()

	switch tok.typ {
	case tokenLBracket:
		return p.parseIndex()
	case tokenDot:
		p.advance()
		return p.parseNamed(true)
	case tokenWord, tokenQuoted, tokenLParen:
		if !first {
			return Segment{}, pathError("expected '.' before %s at position %d", tok.describe(), tok.pos)
		}
		return p.parseNamed(false)
	default:
		return Segment{}, pathError("unexpected %s at position %d", tok.describe(), tok.pos)
	}
}

// parseNamed parses a field or a coalesce group.
func (p *parserState) parseNamed(afterDot bool) (Segment, error) {
	tok := p.current()
	switch tok.typ {
	case tokenLParen:
		return p.parseCoalesce()
	case tokenWord, tokenQuoted:
		field, err := p.parseField()
		if err != nil {
			return Segment{}, err
		}
		return FieldSegment(field), nil
	}

	if afterDot {
		return Segment{}, pathError("expected field or coalesce after '.' but found %s at position %d", tok.describe(), tok.pos)
	}
	return Segment{}, pathError("unexpected %s at position %d", tok.describe(), tok.pos)
}

func (p *parserState) parseField() (Field, error) {
	tok := p.current()
	switch tok.typ {
	case tokenQuoted:
		p.advance()
		return NewField(tok.literal), nil
	case tokenWord:
		if !IsValidFieldName(tok.literal) {
			return Field{}, pathError("invalid field name %q at position %d", tok.literal, tok.pos)
		}
		p.advance()
		return Field{Name: tok.literal}, nil
	default:
		return Field{}, pathError("expected field but found %s at position %d", tok.describe(), tok.pos)
	}
}

func (p *parserState) parseIndex() (Segment, error) {
	open := p.advance()

	tok := p.current()
	if tok.typ != tokenWord {
		if tok.typ == tokenEOF {
			return Segment{}, pathError("unterminated index at position %d", open.pos)
		}
		return Segment{}, pathError("expected index but found %s at position %d", tok.describe(), tok.pos)
	}

	digits := strings.TrimPrefix(tok.literal, "-")
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Segment{}, pathError("invalid index %q at position %d", tok.literal, tok.pos)
	}

	i, err := strconv.Atoi(tok.literal)
	if err != nil {
		return Segment{}, pathError("index %s out of range at position %d", tok.literal, tok.pos)
	}
	p.advance()

	if p.current().typ == tokenEOF {
		return Segment{}, pathError("unterminated index at position %d", open.pos)
	}
	if err := p.expect(tokenRBracket); err != nil {
		return Segment{}, err
	}

	return IndexSegment(i), nil
}

func (p *parserState) parseCoalesce() (Segment, error) {
	open := p.advance()

	first, err := p.parseField()
	if err != nil {
		return Segment{}, err
	}

	var rest []Field
	for p.current().typ == tokenPipe {
		p.advance()
		field, err := p.parseField()
		if err != nil {
			return Segment{}, err
		}
		rest = append(rest, field)
	}

	if p.current().typ == tokenEOF {
		return Segment{}, pathError("unterminated coalesce at position %d", open.pos)
	}
	if err := p.expect(tokenRParen); err != nil {
		return Segment{}, err
	}

	return CoalesceSegment(first, rest...), nil
}
