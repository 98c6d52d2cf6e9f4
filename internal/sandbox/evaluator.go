// Package sandbox evaluates small aggregation expressions in isolation from
// the rest of the process. The language is deliberately narrow: literals,
// arithmetic, list literals, indexing, and calls to a fixed whitelist of
// aggregation functions. There are no variables, loops, assignments, or any
// access to the filesystem, network, or reflection.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrTimeout        = errors.New("sandbox: evaluation timed out")
	ErrBudgetExceeded = errors.New("sandbox: expression budget exceeded")
)

const (
	defaultTimeout = 5 * time.Second
	// maxNodes bounds the parsed expression size so a pathological script
	// cannot exhaust memory before the timeout fires.
	maxNodes = 100_000
)

// Evaluator runs scripts with a hard wall-clock timeout.
type Evaluator struct {
	timeout time.Duration
}

// New creates an evaluator. A non-positive timeout falls back to the
// 5 second default.
func New(timeout time.Duration) *Evaluator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Evaluator{timeout: timeout}
}

// Eval parses and evaluates a script. Any syntax error, unknown identifier,
// type error, or timeout is returned to the caller; the caller is expected
// to fall back to an in-process computation.
func (e *Evaluator) Eval(ctx context.Context, script string) (interface{}, error) {
	node, err := parse(script)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type evalResult struct {
		value interface{}
		err   error
	}
	done := make(chan evalResult, 1)

	go func() {
		value, evalErr := eval(ctx, node)
		done <- evalResult{value, evalErr}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrTimeout
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, res.err
		}
		return res.value, nil
	}
}

// ==================== AST ====================

type node interface{}

type numberNode float64

type stringNode string

type listNode []node

type binaryNode struct {
	op          rune
	left, right node
}

type unaryNode struct {
	operand node
}

type indexNode struct {
	target, index node
}

type callNode struct {
	name string
	args []node
}

// ==================== LEXER ====================

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenString
	tokenIdent
	tokenOp     // + - * / %
	tokenLParen // (
	tokenRParen // )
	tokenLBrack // [
	tokenRBrack // ]
	tokenComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF, pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch >= '0' && ch <= '9' || ch == '.':
		for l.pos < len(l.input) {
			c := l.input[l.pos]
			if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
				((c == '+' || c == '-') && l.pos > start && (l.input[l.pos-1] == 'e' || l.input[l.pos-1] == 'E')) {
				l.pos++
				continue
			}
			break
		}
		return token{kind: tokenNumber, text: l.input[start:l.pos], pos: start}, nil

	case ch == '"':
		l.pos++
		var sb strings.Builder
		for l.pos < len(l.input) {
			c := l.input[l.pos]
			if c == '\\' && l.pos+1 < len(l.input) {
				l.pos++
				sb.WriteByte(l.input[l.pos])
				l.pos++
				continue
			}
			if c == '"' {
				l.pos++
				return token{kind: tokenString, text: sb.String(), pos: start}, nil
			}
			sb.WriteByte(c)
			l.pos++
		}
		return token{}, fmt.Errorf("sandbox: unterminated string at %d", start)

	case isIdentStart(rune(ch)):
		for l.pos < len(l.input) && isIdentPart(rune(l.input[l.pos])) {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.input[start:l.pos], pos: start}, nil

	case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '%':
		l.pos++
		return token{kind: tokenOp, text: string(ch), pos: start}, nil

	case ch == '(':
		l.pos++
		return token{kind: tokenLParen, text: "(", pos: start}, nil
	case ch == ')':
		l.pos++
		return token{kind: tokenRParen, text: ")", pos: start}, nil
	case ch == '[':
		l.pos++
		return token{kind: tokenLBrack, text: "[", pos: start}, nil
	case ch == ']':
		l.pos++
		return token{kind: tokenRBrack, text: "]", pos: start}, nil
	case ch == ',':
		l.pos++
		return token{kind: tokenComma, text: ",", pos: start}, nil
	}

	return token{}, fmt.Errorf("sandbox: unexpected character %q at %d", ch, start)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ==================== PARSER ====================

type parser struct {
	lex     lexer
	current token
	nodes   int
}

func parse(script string) (node, error) {
	p := &parser{lex: lexer{input: script}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.current.kind != tokenEOF {
		return nil, fmt.Errorf("sandbox: unexpected token %q at %d", p.current.text, p.current.pos)
	}
	return expr, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *parser) count() error {
	p.nodes++
	if p.nodes > maxNodes {
		return ErrBudgetExceeded
	}
	return nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current.kind == tokenOp && (p.current.text == "+" || p.current.text == "-") {
		op := rune(p.current.text[0])
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.count(); err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current.kind == tokenOp && (p.current.text == "*" || p.current.text == "/" || p.current.text == "%") {
		op := rune(p.current.text[0])
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if err := p.count(); err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.current.kind == tokenOp && p.current.text == "-" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if err := p.count(); err != nil {
			return nil, err
		}
		return unaryNode{operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current.kind == tokenLBrack {
		if err := p.advance(); err != nil {
			return nil, err
		}
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current.kind != tokenRBrack {
			return nil, fmt.Errorf("sandbox: expected ] at %d", p.current.pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.count(); err != nil {
			return nil, err
		}
		expr = indexNode{target: expr, index: index}
	}
	return expr, nil
}

func (p *parser) parsePrimary() (node, error) {
	if err := p.count(); err != nil {
		return nil, err
	}

	switch p.current.kind {
	case tokenNumber:
		value, err := strconv.ParseFloat(p.current.text, 64)
		if err != nil {
			return nil, fmt.Errorf("sandbox: invalid number %q at %d", p.current.text, p.current.pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return numberNode(value), nil

	case tokenString:
		text := p.current.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return stringNode(text), nil

	case tokenIdent:
		name := p.current.text
		pos := p.current.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.kind != tokenLParen {
			// Bare identifiers are not allowed: the language has no
			// variables, so anything outside a call is rejected.
			return nil, fmt.Errorf("sandbox: unknown identifier %q at %d", name, pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		var args []node
		for p.current.kind != tokenRParen {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current.kind == tokenComma {
				if err := p.advance(); err != nil {
					return nil, err
				}
			} else if p.current.kind != tokenRParen {
				return nil, fmt.Errorf("sandbox: expected , or ) at %d", p.current.pos)
			}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return callNode{name: name, args: args}, nil

	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current.kind != tokenRParen {
			return nil, fmt.Errorf("sandbox: expected ) at %d", p.current.pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expr, nil

	case tokenLBrack:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var items listNode
		for p.current.kind != tokenRBrack {
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.current.kind == tokenComma {
				if err := p.advance(); err != nil {
					return nil, err
				}
			} else if p.current.kind != tokenRBrack {
				return nil, fmt.Errorf("sandbox: expected , or ] at %d", p.current.pos)
			}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return items, nil
	}

	return nil, fmt.Errorf("sandbox: unexpected token %q at %d", p.current.text, p.current.pos)
}

// ==================== EVALUATOR ====================

func eval(ctx context.Context, n node) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch v := n.(type) {
	case numberNode:
		return float64(v), nil

	case stringNode:
		return string(v), nil

	case listNode:
		items := make([]interface{}, 0, len(v))
		for _, item := range v {
			value, err := eval(ctx, item)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil

	case unaryNode:
		operand, err := eval(ctx, v.operand)
		if err != nil {
			return nil, err
		}
		num, ok := operand.(float64)
		if !ok {
			return nil, fmt.Errorf("sandbox: unary minus requires a number, got %T", operand)
		}
		return -num, nil

	case binaryNode:
		left, err := eval(ctx, v.left)
		if err != nil {
			return nil, err
		}
		right, err := eval(ctx, v.right)
		if err != nil {
			return nil, err
		}
		return applyBinary(v.op, left, right)

	case indexNode:
		target, err := eval(ctx, v.target)
		if err != nil {
			return nil, err
		}
		index, err := eval(ctx, v.index)
		if err != nil {
			return nil, err
		}
		return applyIndex(target, index)

	case callNode:
		fn, ok := builtins[v.name]
		if !ok {
			return nil, fmt.Errorf("sandbox: function %q is not allowed", v.name)
		}
		args := make([]interface{}, 0, len(v.args))
		for _, arg := range v.args {
			value, err := eval(ctx, arg)
			if err != nil {
				return nil, err
			}
			args = append(args, value)
		}
		return fn(args)
	}

	return nil, fmt.Errorf("sandbox: unsupported node %T", n)
}

func applyBinary(op rune, left, right interface{}) (interface{}, error) {
	// String concatenation is the one non-numeric operation.
	if op == '+' {
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
	}

	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, fmt.Errorf("sandbox: operator %q requires numbers, got %T and %T", op, left, right)
	}

	switch op {
	case '+':
		return ln + rn, nil
	case '-':
		return ln - rn, nil
	case '*':
		return ln * rn, nil
	case '/':
		if rn == 0 {
			return nil, errors.New("sandbox: division by zero")
		}
		return ln / rn, nil
	case '%':
		if rn == 0 {
			return nil, errors.New("sandbox: modulo by zero")
		}
		return float64(int64(ln) % int64(rn)), nil
	}
	return nil, fmt.Errorf("sandbox: unknown operator %q", op)
}

func applyIndex(target, index interface{}) (interface{}, error) {
	switch t := target.(type) {
	case []interface{}:
		i, ok := index.(float64)
		if !ok {
			return nil, fmt.Errorf("sandbox: list index must be a number, got %T", index)
		}
		idx := int(i)
		if idx < 0 || idx >= len(t) {
			return nil, fmt.Errorf("sandbox: index %d out of range (len %d)", idx, len(t))
		}
		return t[idx], nil
	case map[string]float64:
		key, ok := index.(string)
		if !ok {
			return nil, fmt.Errorf("sandbox: map key must be a string, got %T", index)
		}
		return t[key], nil
	}
	return nil, fmt.Errorf("sandbox: cannot index %T", target)
}
