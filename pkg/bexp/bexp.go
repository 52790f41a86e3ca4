// Copyright Hartgen Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package bexp provides a small infix expression language over bit vectors,
// giving the library surface a hand-driveable front end.  Operands are
// written in the literal grammar of the bits package (including possibly
// unknown digits), and all arithmetic follows the bit vector operator
// contracts, with precedence mirroring hardware description languages:
//
//	unary - ~  binds tightest, then * / %, + -, << >> >>>, &, ^, |
//
// where >> is the arithmetic right shift and >>> the logical one.
package bexp

import (
	"fmt"

	"github.com/hartgen/go-bitvec/pkg/bits"
)

// Term is a parsed expression which can be evaluated into a possibly-unknown
// bit vector.
type Term interface {
	// Eval computes the value of this term.  Evaluation fails when, for
	// example, a shift amount contains unknown bits.
	Eval() (bits.UnknownBits, error)
}

// Parse a given input string into an expression term.
func Parse(input string) (Term, error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}
	//
	p := &parser{tokens, 0}
	//
	term, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	// Check all tokens were consumed.
	if tok := p.lookahead(); tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q at offset %d", tok.text, tok.offset)
	}
	//
	return term, nil
}

// Eval parses and evaluates an expression in one step.
func Eval(input string) (bits.UnknownBits, error) {
	term, err := Parse(input)
	if err != nil {
		return bits.UnknownBits{}, err
	}
	//
	return term.Eval()
}

// ============================================================================
// Terms
// ============================================================================

type literalTerm struct {
	value bits.UnknownBits
}

func (p *literalTerm) Eval() (bits.UnknownBits, error) {
	return p.value, nil
}

type unaryTerm struct {
	op  string
	arg Term
}

func (p *unaryTerm) Eval() (bits.UnknownBits, error) {
	v, err := p.arg.Eval()
	if err != nil {
		return v, err
	}
	//
	switch p.op {
	case "-":
		return v.Neg(), nil
	case "~":
		return v.Not(), nil
	default:
		panic(fmt.Sprintf("unknown unary operator %q", p.op))
	}
}

type binaryTerm struct {
	op       string
	lhs, rhs Term
}

func (p *binaryTerm) Eval() (bits.UnknownBits, error) {
	lhs, err := p.lhs.Eval()
	if err != nil {
		return lhs, err
	}
	//
	rhs, err := p.rhs.Eval()
	if err != nil {
		return rhs, err
	}
	//
	switch p.op {
	case "|":
		return lhs.Or(rhs), nil
	case "^":
		return lhs.Xor(rhs), nil
	case "&":
		return lhs.And(rhs), nil
	case "+":
		return lhs.Add(rhs), nil
	case "-":
		return lhs.Sub(rhs), nil
	case "*":
		return lhs.Mul(rhs), nil
	case "/":
		if rhs.IsFullyKnown() && rhs.MustValue().IsZero() {
			return lhs, fmt.Errorf("division by zero")
		}
		//
		return lhs.Div(rhs), nil
	case "%":
		if rhs.IsFullyKnown() && rhs.MustValue().IsZero() {
			return lhs, fmt.Errorf("division by zero")
		}
		//
		return lhs.Rem(rhs), nil
	case "<<", ">>", ">>>":
		return p.evalShift(lhs, rhs)
	default:
		panic(fmt.Sprintf("unknown binary operator %q", p.op))
	}
}

func (p *binaryTerm) evalShift(lhs, rhs bits.UnknownBits) (bits.UnknownBits, error) {
	amount, err := rhs.Uint64()
	if err != nil {
		return lhs, fmt.Errorf("shift amount: %w", err)
	}
	//
	switch p.op {
	case "<<":
		return lhs.Shl(uint(amount)), nil
	case ">>":
		return lhs.Sra(uint(amount)), nil
	default:
		return lhs.Shr(uint(amount)), nil
	}
}

// ============================================================================
// Parser
// ============================================================================

// Binary operator precedence levels, loosest first.
var precedence = [][]string{
	{"|"},
	{"^"},
	{"&"},
	{"<<", ">>", ">>>"},
	{"+", "-"},
	{"*", "/", "%"},
}

type parser struct {
	tokens []token
	index  int
}

func (p *parser) parseBinary(level int) (Term, error) {
	if level >= len(precedence) {
		return p.parseUnary()
	}
	//
	lhs, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	//
	for {
		tok := p.lookahead()
		if tok.kind != tokOperator || !contains(precedence[level], tok.text) {
			return lhs, nil
		}
		//
		p.index++
		//
		rhs, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		//
		lhs = &binaryTerm{tok.text, lhs, rhs}
	}
}

func (p *parser) parseUnary() (Term, error) {
	tok := p.lookahead()
	//
	if tok.kind == tokOperator && (tok.text == "-" || tok.text == "~") {
		p.index++
		//
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return &unaryTerm{tok.text, arg}, nil
	}
	//
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Term, error) {
	tok := p.lookahead()
	//
	switch tok.kind {
	case tokNumber:
		p.index++
		//
		value, err := bits.ParseUnknownBits(tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d", err, tok.offset)
		}
		//
		return &literalTerm{value}, nil
	case tokLeftBracket:
		p.index++
		//
		term, err := p.parseBinary(0)
		if err != nil {
			return nil, err
		}
		//
		if close := p.lookahead(); close.kind != tokRightBracket {
			return nil, fmt.Errorf("expected ')' at offset %d", close.offset)
		}
		//
		p.index++
		//
		return term, nil
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", tok.text, tok.offset)
	}
}

func (p *parser) lookahead() token {
	return p.tokens[p.index]
}

func contains(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	//
	return false
}
