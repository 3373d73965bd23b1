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

import "math"

const (
	// ExplodeDepth is the depth from the root at which a pair of leaves explodes.
	ExplodeDepth = 4
	// SplitThreshold is the smallest leaf value that splits.
	SplitThreshold = 10
	// DefaultMaxReduceSteps caps explode and split applications per reduction.
	DefaultMaxReduceSteps = 100000
)

// Stats counts rule applications. It is only written by the goroutine that
// owns the reduction.
type Stats struct {
	Explodes  int
	Splits    int
	Additions int
}

// Merge adds other into s.
func (s *Stats) Merge(other Stats) {
	s.Explodes += other.Explodes
	s.Splits += other.Splits
	s.Additions += other.Additions
}

type reduceConfig struct {
	maxSteps int
	stats    *Stats
}

// ReduceOption configures Reduce, Add and the folds built on them.
type ReduceOption func(*reduceConfig)

// WithMaxSteps bounds the number of rule applications of one reduction.
func WithMaxSteps(n int) ReduceOption {
	return func(c *reduceConfig) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// WithStats accumulates rule counts into s.
func WithStats(s *Stats) ReduceOption {
	return func(c *reduceConfig) {
		c.stats = s
	}
}

func newReduceConfig(opts []ReduceOption) *reduceConfig {
	c := &reduceConfig{maxSteps: DefaultMaxReduceSteps}
	for _, opt := range opts {
		opt(c)
	}
	if c.stats == nil {
		c.stats = &Stats{}
	}
	return c
}

// reduce applies explode, then split, until neither fires. Every search
// restarts from the root against the fully committed previous step.
func (a *Arena) reduce(c *reduceConfig) error {
	for step := 0; ; step++ {
		if step >= c.maxSteps {
			return violation("reduce", NoIndex, "no fixed point after %d steps", c.maxSteps)
		}

		if i := a.firstExplodable(RootIndex, 0); i != NoIndex {
			if err := a.explode(i); err != nil {
				return err
			}
			c.stats.Explodes++
			continue
		}

		if i := a.firstSplittable(RootIndex); i != NoIndex {
			a.split(i)
			c.stats.Splits++
			continue
		}

		return nil
	}
}

// firstExplodable returns the left-most pair at depth >= ExplodeDepth whose
// children are both leaves.
func (a *Arena) firstExplodable(i, depth int) int {
	n := a.nodes[i]
	if n.IsLeaf() {
		return NoIndex
	}
	if depth >= ExplodeDepth && a.nodes[n.Left].IsLeaf() && a.nodes[n.Right].IsLeaf() {
		return i
	}
	if found := a.firstExplodable(n.Left, depth+1); found != NoIndex {
		return found
	}
	return a.firstExplodable(n.Right, depth+1)
}

// firstSplittable returns the left-most leaf with value >= SplitThreshold.
func (a *Arena) firstSplittable(i int) int {
	n := a.nodes[i]
	if n.IsLeaf() {
		if n.Value >= SplitThreshold {
			return i
		}
		return NoIndex
	}
	if found := a.firstSplittable(n.Left); found != NoIndex {
		return found
	}
	return a.firstSplittable(n.Right)
}

// explode donates the pair's values to its neighbors, turns the pair into a
// zero leaf in place and compacts its two former children away.
func (a *Arena) explode(i int) error {
	pair := a.nodes[i]
	if !pair.IsPair() || !a.nodes[pair.Left].IsLeaf() || !a.nodes[pair.Right].IsLeaf() {
		return violation("explode", i, "not a pair of leaves")
	}

	prev, next, err := a.Neighbors(i)
	if err != nil {
		return err
	}
	if prev != NoIndex {
		if err := a.addValue(prev, a.nodes[pair.Left].Value); err != nil {
			return err
		}
	}
	if next != NoIndex {
		if err := a.addValue(next, a.nodes[pair.Right].Value); err != nil {
			return err
		}
	}

	a.nodes[pair.Left].Parent = NoIndex
	a.nodes[pair.Right].Parent = NoIndex
	a.nodes[i] = newLeaf(0, pair.Parent)
	return a.compact()
}

func (a *Arena) addValue(i int, delta uint16) error {
	sum := uint32(a.nodes[i].Value) + uint32(delta)
	if sum > math.MaxUint16 {
		return violation("explode", i, "leaf value %d overflows", sum)
	}
	a.nodes[i].Value = uint16(sum)
	return nil
}

// split replaces leaf i with a pair of its halves, rounding down on the left.
func (a *Arena) split(i int) {
	n := a.nodes[i]
	half := n.Value / 2
	left := a.push(newLeaf(half, i))
	right := a.push(newLeaf(n.Value-half, i))
	a.nodes[i] = newPair(left, right, n.Parent)
}
