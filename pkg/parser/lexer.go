package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// Lexer tokenizes SQL input. Which runes start and continue bare
// identifiers, and which open delimited identifiers, is decided by the
// dialect.
type Lexer struct {
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset after ch
	ch      rune // current rune, 0 at end of input
	line    int  // line of ch (1-based)
	col     int  // column of ch in runes (1-based)

	dialect dialect.Dialect

	// Comments collected during lexing.
	Comments []*token.Comment
}

// NewLexer creates a Lexer for input using d's lexical rules.
func NewLexer(input string, d dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		dialect: d,
	}
	l.readChar()
	return l
}

// Tokenize lexes the whole input. The returned slice always ends with an
// EOF token.
func Tokenize(input string, d dialect.Dialect) ([]token.Token, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	l := NewLexer(input, d)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// readChar advances to the next rune.
func (l *Lexer) readChar() {
	if l.readPos > len(l.input) {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.pos = l.readPos
	l.col++
	if l.pos == len(l.input) {
		l.ch = 0
		l.readPos = len(l.input) + 1
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.readPos += w
}

// peekChar returns the rune after ch without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) *LexError {
	return &LexError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NextToken returns the next token. At end of input it returns EOF
// tokens indefinitely.
func (l *Lexer) NextToken() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	pos := l.currentPos()
	if l.atEOF() {
		return token.Token{Type: token.EOF, Pos: pos, End: pos}, nil
	}
	if l.ch == utf8.RuneError && l.readPos-l.pos == 1 {
		return token.Token{}, l.errorf(pos, ErrInvalidUTF8)
	}

	switch {
	case l.dialect.IsDelimitedIdentifierStart(l.ch):
		return l.readDelimitedIdentifier(pos)
	case l.ch == '\'':
		return l.readString(pos)
	case dialect.IsASCIIDigit(l.ch), l.ch == '.' && dialect.IsASCIIDigit(l.peekChar()):
		return l.readNumber(pos), nil
	case l.dialect.IsIdentifierStart(l.ch):
		return l.readWord(pos), nil
	}
	return l.readOperator(pos)
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEOF() {
		switch {
		case unicode.IsSpace(l.ch):
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			l.readLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			if err := l.readBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) readLineComment() {
	start := l.currentPos()
	for !l.atEOF() && l.ch != '\n' {
		l.readChar()
	}
	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.LineComment,
		Text: l.input[start.Offset:l.pos],
		Span: token.Span{Start: start, End: l.currentPos()},
	})
}

func (l *Lexer) readBlockComment() error {
	start := l.currentPos()
	l.readChar() // /
	l.readChar() // *
	for {
		if l.atEOF() {
			return l.errorf(start, ErrUnterminatedComment)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.BlockComment,
		Text: l.input[start.Offset:l.pos],
		Span: token.Span{Start: start, End: l.currentPos()},
	})
	return nil
}

// readDelimitedIdentifier reads "ident", `ident` or [ident]. A doubled
// closing delimiter stands for one literal delimiter.
func (l *Lexer) readDelimitedIdentifier(pos token.Position) (token.Token, error) {
	open := l.ch
	closeCh := dialect.ClosingQuote(open)
	l.readChar()

	var sb strings.Builder
	for {
		if l.atEOF() {
			return token.Token{}, l.errorf(pos, ErrUnterminatedIdent, closeCh)
		}
		if l.ch == closeCh {
			if l.peekChar() != closeCh {
				l.readChar()
				break
			}
			l.readChar()
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if sb.Len() == 0 {
		return token.Token{}, l.errorf(pos, ErrEmptyDelimitedIdent)
	}
	return token.Token{
		Type:    token.IDENT,
		Literal: sb.String(),
		Quote:   open,
		Pos:     pos,
		End:     l.currentPos(),
	}, nil
}

// readString reads a single-quoted string; '' is an escaped quote.
func (l *Lexer) readString(pos token.Position) (token.Token, error) {
	l.readChar() // opening quote

	var sb strings.Builder
	for {
		if l.atEOF() {
			return token.Token{}, l.errorf(pos, ErrUnterminatedString)
		}
		if l.ch == '\'' {
			if l.peekChar() != '\'' {
				l.readChar()
				break
			}
			l.readChar()
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos, End: l.currentPos()}, nil
}

// readNumber reads 123, 1.5, .5 and 1e10 forms.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	l.readDigits()
	if l.ch == '.' && (l.pos == pos.Offset || dialect.IsASCIIDigit(l.peekChar())) {
		l.readChar()
		l.readDigits()
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if dialect.IsASCIIDigit(next) {
			l.readChar()
			l.readDigits()
		} else if next == '+' || next == '-' {
			// only an exponent if a digit follows the sign
			if l.readPos+1 < len(l.input) && dialect.IsASCIIDigit(rune(l.input[l.readPos+1])) {
				l.readChar()
				l.readChar()
				l.readDigits()
			}
		}
	}
	return token.Token{
		Type:    token.NUMBER,
		Literal: l.input[pos.Offset:l.pos],
		Pos:     pos,
		End:     l.currentPos(),
	}
}

func (l *Lexer) readDigits() {
	for dialect.IsASCIIDigit(l.ch) {
		l.readChar()
	}
}

// readWord reads a bare identifier or keyword.
func (l *Lexer) readWord(pos token.Position) token.Token {
	for !l.atEOF() && l.dialect.IsIdentifierPart(l.ch) {
		l.readChar()
	}
	word := l.input[pos.Offset:l.pos]
	typ := token.IDENT
	if kw, ok := token.LookupKeyword(word); ok {
		typ = kw
	}
	return token.Token{Type: typ, Literal: word, Pos: pos, End: l.currentPos()}
}

func (l *Lexer) readOperator(pos token.Position) (token.Token, error) {
	single := func(t token.TokenType) (token.Token, error) {
		l.readChar()
		return token.Token{Type: t, Literal: l.input[pos.Offset:l.pos], Pos: pos, End: l.currentPos()}, nil
	}
	double := func(t token.TokenType) (token.Token, error) {
		l.readChar()
		return single(t)
	}

	switch l.ch {
	case '+':
		return single(token.PLUS)
	case '-':
		return single(token.MINUS)
	case '*':
		return single(token.STAR)
	case '/':
		return single(token.SLASH)
	case '%':
		return single(token.PERCENT)
	case '=':
		return single(token.EQ)
	case '<':
		switch l.peekChar() {
		case '=':
			return double(token.LE)
		case '>':
			return double(token.NE)
		}
		return single(token.LT)
	case '>':
		if l.peekChar() == '=' {
			return double(token.GE)
		}
		return single(token.GT)
	case '!':
		if l.peekChar() == '=' {
			return double(token.NE)
		}
	case '|':
		if l.peekChar() == '|' {
			return double(token.DPIPE)
		}
	case '.':
		return single(token.DOT)
	case ',':
		return single(token.COMMA)
	case ';':
		return single(token.SEMICOLON)
	case '(':
		return single(token.LPAREN)
	case ')':
		return single(token.RPAREN)
	case '[':
		return single(token.LBRACKET)
	case ']':
		return single(token.RBRACKET)
	case '?':
		return single(token.PLACEHOLDER)
	}
	return token.Token{}, l.errorf(pos, ErrUnexpectedChar, l.ch)
}
