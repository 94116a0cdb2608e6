package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokSlashSlash
	tokPercent
	tokStarStar
	tokLParen
	tokRParen
	tokEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	case tokSlashSlash:
		return "//"
	case tokPercent:
		return "%"
	case tokStarStar:
		return "**"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokEOF:
		return "end of expression"
	}
	return "?"
}

type token struct {
	kind  tokenKind
	value float64 // set for tokNumber
}

// Characters that belong to constructs the grammar rejects outright
// (comparisons, assignment, identifiers-adjacent punctuation, containers,
// strings). Seeing one of these is an unsupported construct rather than a
// syntax slip.
const unsupportedChars = "<>=!&|^~,[]{}'\"_"

func lex(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, text)
			}
			toks = append(toks, token{kind: tokNumber, value: val})
		case r == '+':
			toks = append(toks, token{kind: tokPlus})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus})
			i++
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokStarStar})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar})
				i++
			}
		case r == '/':
			if i+1 < len(runes) && runes[i+1] == '/' {
				toks = append(toks, token{kind: tokSlashSlash})
				i += 2
			} else {
				toks = append(toks, token{kind: tokSlash})
				i++
			}
		case r == '%':
			toks = append(toks, token{kind: tokPercent})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case unicode.IsLetter(r) || strings.ContainsRune(unsupportedChars, r):
			return nil, fmt.Errorf("%w: %q is not part of the arithmetic grammar", ErrUnsupported, string(r))
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, string(r))
		}
	}
	return append(toks, token{kind: tokEOF}), nil
}

// parse turns source text into an expression tree. The grammar, lowest to
// highest precedence:
//
//	sum     := product (("+" | "-") product)*
//	product := unary (("*" | "/" | "//" | "%") unary)*
//	unary   := ("+" | "-") unary | power
//	power   := atom ("**" unary)?        right-associative
//	atom    := NUMBER | "(" sum ")"
func parse(src string) (expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s", ErrSyntax, p.peek().kind)
	}
	return root, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) sum() (expr, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

func (p *parser) product() (expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash && op != tokSlashSlash && op != tokPercent {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (expr, error) {
	if op := p.peek().kind; op == tokPlus || op == tokMinus {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return unaryExpr{op: op, operand: operand}, nil
	}
	return p.power()
}

func (p *parser) power() (expr, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokStarStar {
		return base, nil
	}
	p.next()
	// The exponent may itself carry a sign: 2**-1 is 0.5.
	exponent, err := p.unary()
	if err != nil {
		return nil, err
	}
	return binaryExpr{op: tokStarStar, left: base, right: exponent}, nil
}

func (p *parser) atom() (expr, error) {
	switch t := p.next(); t.kind {
	case tokNumber:
		return literal{value: t.value}, nil
	case tokLParen:
		inner, err := p.sum()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ) but found %s", ErrSyntax, closing.kind)
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrSyntax, t.kind)
	}
}
