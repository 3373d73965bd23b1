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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homework() []string {
	return []string{
		"[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]",
		"[[[5,[2,8]],4],[5,[[9,9],0]]]",
		"[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]",
		"[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]",
		"[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]",
		"[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]",
		"[[[[5,4],[7,7]],8],[[8,3],8]]",
		"[[9,3],[[9,9],[6,[4,9]]]]",
		"[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]",
		"[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]",
	}
}

func mustParseAll(t *testing.T, lines ...string) []*Number {
	t.Helper()
	numbers, err := ParseLines(strings.Join(lines, "\n"))
	require.NoError(t, err)
	return numbers
}

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "four",
			lines: []string{"[1,1]", "[2,2]", "[3,3]", "[4,4]"},
			want:  "[[[[1,1],[2,2]],[3,3]],[4,4]]",
		},
		{
			name:  "five",
			lines: []string{"[1,1]", "[2,2]", "[3,3]", "[4,4]", "[5,5]"},
			want:  "[[[[3,0],[5,3]],[4,4]],[5,5]]",
		},
		{
			name:  "six",
			lines: []string{"[1,1]", "[2,2]", "[3,3]", "[4,4]", "[5,5]", "[6,6]"},
			want:  "[[[[5,0],[7,4]],[5,5]],[6,6]]",
		},
		{
			name:  "homework",
			lines: homework(),
			want:  "[[[[6,6],[7,6]],[[7,7],[7,0]]],[[[7,7],[7,7]],[[7,8],[9,9]]]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Sum(mustParseAll(t, tt.lines...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sum.String())
			assertReduced(t, sum)
		})
	}
}

func TestSum_HomeworkMagnitude(t *testing.T) {
	var stats Stats
	sum, err := Sum(mustParseAll(t, homework()...), WithStats(&stats))
	require.NoError(t, err)
	assert.Equal(t, uint64(4140), sum.Magnitude())
	assert.Equal(t, 9, stats.Additions)
	assert.Positive(t, stats.Explodes)
	assert.Positive(t, stats.Splits)
}

func TestSum_SingleNumber(t *testing.T) {
	numbers := mustParseAll(t, "[[1,2],3]")
	sum, err := Sum(numbers)
	require.NoError(t, err)
	assert.Equal(t, "[[1,2],3]", sum.String())
	assert.NotSame(t, numbers[0], sum)
}

func TestSum_Empty(t *testing.T) {
	sum, err := Sum(nil)
	assert.Nil(t, sum)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSum_StepCapAbortsFold(t *testing.T) {
	_, err := Sum(mustParseAll(t, homework()...), WithMaxSteps(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant))
	assert.Contains(t, err.Error(), "add number 2")
}

func TestMaxPairMagnitude_Homework(t *testing.T) {
	best, err := MaxPairMagnitude(mustParseAll(t, homework()...))
	require.NoError(t, err)
	assert.Equal(t, uint64(3993), best)

	// the winning pair from the puzzle statement, in the winning order
	numbers := mustParseAll(t, homework()...)
	mag, err := PairMagnitude(numbers[8], numbers[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(3993), mag)
}

func TestMaxPairMagnitude_TriesBothOrders(t *testing.T) {
	numbers := mustParseAll(t, "[1,1]", "[2,2]", "[3,3]", "[4,4]")

	forward, err := PairMagnitude(numbers[2], numbers[3])
	require.NoError(t, err)
	backward, err := PairMagnitude(numbers[3], numbers[2])
	require.NoError(t, err)
	assert.Equal(t, uint64(85), forward)
	assert.Equal(t, uint64(90), backward)

	best, err := MaxPairMagnitude(numbers)
	require.NoError(t, err)
	assert.Equal(t, max(forward, backward), best)
}

func TestMaxPairMagnitude_DistinctPositions(t *testing.T) {
	// identical text at two positions still forms a pair
	best, err := MaxPairMagnitude(mustParseAll(t, "[9,9]", "[9,9]"))
	require.NoError(t, err)

	want, err := PairMagnitude(MustParse("[9,9]"), MustParse("[9,9]"))
	require.NoError(t, err)
	assert.Equal(t, want, best)
}

func TestMaxPairMagnitude_NotEnoughInput(t *testing.T) {
	_, err := MaxPairMagnitude(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = MaxPairMagnitude(mustParseAll(t, "[1,1]"))
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "got 1")
}
