// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snailfish

import (
	"errors"
	"fmt"
	"strings"
)

// Parse builds a Number from bracket notation:
//
//	PAIR  := "[" ELEM "," ELEM "]"
//	ELEM  := DIGIT | PAIR
//	DIGIT := "0".."9"
//
// Nodes are laid out in pre-order, so the outermost pair lands at index 0.
func Parse(s string) (*Number, error) {
	p := &parser{src: s}
	if len(s) == 0 {
		return nil, p.fail("empty input")
	}
	if s[0] != '[' {
		if isDigit(s[0]) {
			return nil, p.fail("top level must be a pair, got a bare digit")
		}
		return nil, p.unexpected()
	}
	if _, err := p.pair(NoIndex); err != nil {
		return nil, err
	}
	if p.pos < len(s) {
		if s[p.pos] == ']' {
			return nil, p.fail("unbalanced brackets: unexpected ']'")
		}
		return nil, p.fail(fmt.Sprintf("trailing input %q", s[p.pos:]))
	}
	return &Number{arena: p.arena}, nil
}

// ParseLines parses one number per non-blank line. Parse errors carry the
// 1-based line number.
func ParseLines(text string) ([]*Number, error) {
	var numbers []*Number
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := Parse(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = i + 1
			}
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals known to be valid.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	src   string
	pos   int
	arena Arena
}

// pair consumes "[" ELEM "," ELEM "]" starting at p.pos.
func (p *parser) pair(parent int) (int, error) {
	p.pos++ // '['
	idx := p.arena.push(newPair(NoIndex, NoIndex, parent))

	left, err := p.elem(idx)
	if err != nil {
		return NoIndex, err
	}
	if err := p.expect(','); err != nil {
		return NoIndex, err
	}
	right, err := p.elem(idx)
	if err != nil {
		return NoIndex, err
	}
	if err := p.expect(']'); err != nil {
		return NoIndex, err
	}

	p.arena.nodes[idx].Left = left
	p.arena.nodes[idx].Right = right
	return idx, nil
}

func (p *parser) elem(parent int) (int, error) {
	if p.pos >= len(p.src) {
		return NoIndex, p.fail("unbalanced brackets: unexpected end of input")
	}
	c := p.src[p.pos]
	switch {
	case c == '[':
		return p.pair(parent)
	case isDigit(c):
		if p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1]) {
			return NoIndex, p.fail("multi-digit literal")
		}
		p.pos++
		return p.arena.push(newLeaf(uint16(c-'0'), parent)), nil
	default:
		return NoIndex, p.unexpected()
	}
}

func (p *parser) expect(want byte) error {
	if p.pos >= len(p.src) {
		return p.fail("unbalanced brackets: unexpected end of input")
	}
	if c := p.src[p.pos]; c != want {
		if !isToken(c) {
			return p.unexpected()
		}
		return p.fail(fmt.Sprintf("expected %q, got %q", want, c))
	}
	p.pos++
	return nil
}

func (p *parser) unexpected() error {
	return p.fail(fmt.Sprintf("unexpected character %q", p.src[p.pos]))
}

func (p *parser) fail(reason string) error {
	return &ParseError{Offset: p.pos, Reason: reason}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isToken(c byte) bool {
	return c == '[' || c == ']' || c == ',' || isDigit(c)
}
