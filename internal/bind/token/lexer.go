package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lex errors
var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnmatchedDelimiter = errors.New("unmatched delimiter")
	ErrMalformedMarker    = errors.New("malformed option marker")
)

// Lex converts declaration source text into a token stream.
//
// Surface syntax:
//
//	leader-map : "g d" goto.definition "g r" goto.references
//	:prefix "SPC" :ext ("f f" file.find)
//	normal-map "x" delete.char :: insert-map "C-w" kill.word
//
// ":name" is an option keyword, a bare ":" is the plain separator, "::"
// is the reset separator and ":ext" the extended-binding marker.
// Double-quoted strings, (lists), [vectors], 'quoted symbols, integers
// and true/false are values; any other bare word is a symbol. "#" starts
// a comment running to end of line.
func Lex(src string) ([]Token, error) {
	l := &lexer{src: src}
	var toks []Token

	for {
		l.skipSpace()
		if l.eof() {
			return toks, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek() byte {
	return l.src[l.pos]
}

func (l *lexer) skipSpace() {
	for !l.eof() {
		switch c := l.peek(); {
		case c == '#':
			for !l.eof() && l.peek() != '\n' {
				l.pos++
			}
		case unicode.IsSpace(rune(c)):
			l.pos++
		default:
			return
		}
	}
}

// next lexes one token. The leading character decides the shape.
func (l *lexer) next() (Token, error) {
	switch c := l.peek(); c {
	case '(':
		items, err := l.readSeq('(', ')')
		if err != nil {
			return Token{}, err
		}
		return Value(List(items)), nil
	case '[':
		items, err := l.readSeq('[', ']')
		if err != nil {
			return Token{}, err
		}
		return Value(Vector(items)), nil
	case ')', ']':
		return Token{}, fmt.Errorf("%w: %q at offset %d", ErrUnmatchedDelimiter, c, l.pos)
	case '"':
		s, err := l.readString()
		if err != nil {
			return Token{}, err
		}
		return Value(s), nil
	case '\'':
		v, err := l.readQuoted()
		if err != nil {
			return Token{}, err
		}
		return Value(v), nil
	case ':':
		return l.readMarker()
	default:
		return Value(l.readAtom()), nil
	}
}

// readMarker lexes ":", "::", ":ext" and ":name" forms.
func (l *lexer) readMarker() (Token, error) {
	start := l.pos
	l.pos++ // ':'
	word := l.readWord()
	switch word {
	case "":
		return Sep(), nil
	case ":":
		return Reset(), nil
	case "ext":
		return Ext(), nil
	}
	if strings.Contains(word, ":") {
		return Token{}, fmt.Errorf("%w: %q at offset %d", ErrMalformedMarker, ":"+word, start)
	}
	return Keyword(word), nil
}

// readQuoted lexes a 'datum: either a quoted list or a symbol taken
// verbatim, never reinterpreted as a number or boolean.
func (l *lexer) readQuoted() (any, error) {
	l.pos++ // '\''
	if !l.eof() && l.peek() == '(' {
		items, err := l.readSeq('(', ')')
		if err != nil {
			return nil, err
		}
		return List(items), nil
	}
	return Symbol(l.readWord()), nil
}

// readSeq lexes a delimited value sequence. Elements are plain values;
// marker syntax has no meaning inside a sequence.
func (l *lexer) readSeq(open, close byte) ([]any, error) {
	start := l.pos
	l.pos++ // open
	items := make([]any, 0, 4)

	for {
		l.skipSpace()
		if l.eof() {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnmatchedDelimiter, open, start)
		}
		switch c := l.peek(); c {
		case close:
			l.pos++
			return items, nil
		case '(':
			nested, err := l.readSeq('(', ')')
			if err != nil {
				return nil, err
			}
			items = append(items, List(nested))
		case '[':
			nested, err := l.readSeq('[', ']')
			if err != nil {
				return nil, err
			}
			items = append(items, Vector(nested))
		case ')', ']':
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnmatchedDelimiter, c, l.pos)
		case '"':
			s, err := l.readString()
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		case '\'':
			v, err := l.readQuoted()
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		default:
			items = append(items, l.readAtom())
		}
	}
}

// readString lexes a double-quoted string with backslash escapes.
func (l *lexer) readString() (string, error) {
	start := l.pos
	l.pos++ // '"'
	var sb strings.Builder

	for !l.eof() {
		c := l.peek()
		l.pos++
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			if l.eof() {
				return "", fmt.Errorf("%w at offset %d", ErrUnterminatedString, start)
			}
			e := l.peek()
			l.pos++
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(e)
			}
		default:
			sb.WriteByte(c)
		}
	}
	return "", fmt.Errorf("%w at offset %d", ErrUnterminatedString, start)
}

// readAtom lexes a bare word and classifies it as a bool, integer,
// float or symbol.
func (l *lexer) readAtom() any {
	word := l.readWord()
	switch word {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(word); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(word, 64); err == nil {
		return f
	}
	return Symbol(word)
}

// readWord consumes characters up to whitespace or a delimiter.
func (l *lexer) readWord() string {
	start := l.pos
	for !l.eof() {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicode.IsSpace(r) || strings.ContainsRune(`()[]"'#`, r) {
			break
		}
		l.pos += size
	}
	return l.src[start:l.pos]
}
