// Package calc evaluates plain arithmetic expressions.
//
// The grammar is closed: numeric literals, parentheses, unary +/- and the
// binary operators + - * / // % **. There are no identifiers, calls or
// comparisons, and evaluation is a structural walk over a fixed set of node
// types, so no general-purpose execution facility is ever involved.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxExprLen is the longest expression Evaluate accepts, in runes.
const MaxExprLen = 200

var (
	// ErrTooLong means the expression exceeded MaxExprLen.
	ErrTooLong = errors.New("expression too long")
	// ErrUnsupported means the expression used a construct outside the
	// arithmetic grammar (identifiers, comparisons, calls, ...).
	ErrUnsupported = errors.New("unsupported expression")
	// ErrDivisionByZero is returned for /, // and % with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrSyntax means the expression did not parse.
	ErrSyntax = errors.New("invalid syntax")
)

// expr is the closed node set. Only the three concrete types below exist;
// there is deliberately no variant for anything the grammar does not allow.
type expr interface {
	isExpr()
}

type literal struct {
	value float64
}

type unaryExpr struct {
	op      tokenKind // tokPlus or tokMinus
	operand expr
}

type binaryExpr struct {
	op          tokenKind
	left, right expr
}

func (literal) isExpr()    {}
func (unaryExpr) isExpr()  {}
func (binaryExpr) isExpr() {}

// Evaluate parses and evaluates an arithmetic expression, returning the
// result formatted as a decimal string. Results within 1e-12 of a whole
// number are rendered as that integer.
func Evaluate(input string) (string, error) {
	src := strings.TrimSpace(input)
	if utf8.RuneCountInString(src) > MaxExprLen {
		return "", fmt.Errorf("%w: %d runes (limit %d)", ErrTooLong, utf8.RuneCountInString(src), MaxExprLen)
	}

	root, err := parse(src)
	if err != nil {
		return "", err
	}

	val, err := eval(root)
	if err != nil {
		return "", err
	}
	return formatResult(val), nil
}

func eval(e expr) (float64, error) {
	switch n := e.(type) {
	case literal:
		return n.value, nil
	case unaryExpr:
		v, err := eval(n.operand)
		if err != nil {
			return 0, err
		}
		if n.op == tokMinus {
			return -v, nil
		}
		return v, nil
	case binaryExpr:
		left, err := eval(n.left)
		if err != nil {
			return 0, err
		}
		right, err := eval(n.right)
		if err != nil {
			return 0, err
		}
		return apply(n.op, left, right)
	default:
		// Unreachable: the node set is closed.
		return 0, fmt.Errorf("%w: unknown node %T", ErrUnsupported, e)
	}
}

func apply(op tokenKind, a, b float64) (float64, error) {
	switch op {
	case tokPlus:
		return a + b, nil
	case tokMinus:
		return a - b, nil
	case tokStar:
		return a * b, nil
	case tokSlash:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case tokSlashSlash:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		// Floor division: truncates toward negative infinity.
		return math.Floor(a / b), nil
	case tokPercent:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		// Result takes the sign of the divisor.
		return a - b*math.Floor(a/b), nil
	case tokStarStar:
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("%w: operator %s", ErrUnsupported, op)
	}
}

func formatResult(v float64) string {
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		if r := math.Round(v); math.Abs(v-r) < 1e-12 {
			return strconv.FormatFloat(r, 'f', -1, 64)
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
