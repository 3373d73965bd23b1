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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"[1,2]",
		"[[1,2],3]",
		"[9,[8,7]]",
		"[[1,9],[8,5]]",
		"[[[[1,2],[3,4]],[[5,6],[7,8]]],9]",
		"[[[9,[3,8]],[[0,9],6]],[[[3,7],[4,9]],3]]",
		"[[[[1,3],[5,3]],[[1,3],[8,7]]],[[[4,9],[6,9]],[[8,2],[7,3]]]]",
		"[[[[[9,8],1],2],3],4]",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			n, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, in, n.String())
			assert.NoError(t, n.Arena().Validate())
		})
	}
}

func TestParse_Layout(t *testing.T) {
	n := MustParse("[[1,2],3]")
	a := n.Arena()
	require.Equal(t, 5, a.Len())

	root := a.Node(RootIndex)
	assert.True(t, root.IsPair())
	assert.Equal(t, NoIndex, root.Parent)
	assert.Equal(t, 1, root.Left)
	assert.Equal(t, 4, root.Right)

	inner := a.Node(1)
	assert.True(t, inner.IsPair())
	assert.Equal(t, RootIndex, inner.Parent)
	assert.Equal(t, uint16(1), a.Node(inner.Left).Value)
	assert.Equal(t, uint16(2), a.Node(inner.Right).Value)
	assert.Equal(t, 1, a.Node(inner.Left).Parent)

	three := a.Node(4)
	assert.True(t, three.IsLeaf())
	assert.Equal(t, uint16(3), three.Value)
	assert.Equal(t, RootIndex, three.Parent)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		reason string
	}{
		{name: "empty", input: "", offset: 0, reason: "empty input"},
		{name: "bare digit", input: "7", offset: 0, reason: "top level must be a pair, got a bare digit"},
		{name: "unexpected leading char", input: "x", offset: 0, reason: "unexpected character 'x'"},
		{name: "unexpected char in pair", input: "[1,a]", offset: 3, reason: "unexpected character 'a'"},
		{name: "whitespace", input: "[1, 2]", offset: 3, reason: "unexpected character ' '"},
		{name: "bad separator", input: "[1;2]", offset: 2, reason: "unexpected character ';'"},
		{name: "multi-digit", input: "[12,3]", offset: 1, reason: "multi-digit literal"},
		{name: "missing close", input: "[[1,2],3", offset: 8, reason: "unbalanced brackets: unexpected end of input"},
		{name: "missing right", input: "[1,", offset: 3, reason: "unbalanced brackets: unexpected end of input"},
		{name: "extra close", input: "[1,2]]", offset: 5, reason: "unbalanced brackets: unexpected ']'"},
		{name: "three elements", input: "[1,2,3]", offset: 4, reason: "expected ']', got ','"},
		{name: "missing comma", input: "[1[2,3]]", offset: 2, reason: "expected ',', got '['"},
		{name: "trailing pair", input: "[1,2][3,4]", offset: 5, reason: `trailing input "[3,4]"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.input)
			assert.Nil(t, n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.reason, perr.Reason)
			assert.Equal(t, 0, perr.Line)
		})
	}
}

func TestParseLines(t *testing.T) {
	numbers, err := ParseLines("[1,1]\r\n[2,2]\n\n[3,3]\n")
	require.NoError(t, err)
	require.Len(t, numbers, 3)
	assert.Equal(t, "[3,3]", numbers[2].String())

	numbers, err = ParseLines("")
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestParseLines_ReportsLine(t *testing.T) {
	_, err := ParseLines("[1,1]\n[2,2]\n[3,33]\n")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 3, perr.Offset)
	assert.Equal(t, "snailfish: parse error at line 3, offset 3: multi-digit literal", err.Error())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("[1") })
}
