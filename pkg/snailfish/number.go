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
	"strconv"
	"strings"
)

// Number is a snailfish number: one tree rooted at index 0 of its own arena.
// Numbers never share an arena, so distinct Numbers may be used from
// different goroutines.
type Number struct {
	arena Arena
}

// Arena exposes the underlying node store for inspection.
func (n *Number) Arena() *Arena {
	return &n.arena
}

// Clone returns an independent copy.
func (n *Number) Clone() *Number {
	return &Number{arena: n.arena.clone()}
}

// Reduce rewrites n in place until no explode or split applies.
func (n *Number) Reduce(opts ...ReduceOption) error {
	if err := n.check("reduce"); err != nil {
		return err
	}
	return n.arena.reduce(newReduceConfig(opts))
}

// Add returns the reduced sum [a,b]. Neither input is modified.
func Add(a, b *Number, opts ...ReduceOption) (*Number, error) {
	if err := a.check("add"); err != nil {
		return nil, err
	}
	if err := b.check("add"); err != nil {
		return nil, err
	}

	sum := join(a, b)
	c := newReduceConfig(opts)
	c.stats.Additions++
	if err := sum.arena.reduce(c); err != nil {
		return nil, err
	}
	return sum, nil
}

// join builds the unreduced pair [a,b] in a fresh arena: a is relocated to
// offset 1 and b right after it, and both old roots are re-parented to 0.
func join(a, b *Number) *Number {
	la, lb := a.arena.Len(), b.arena.Len()
	nodes := make([]Node, 0, 1+la+lb)
	nodes = append(nodes, newPair(1, 1+la, NoIndex))
	for _, node := range a.arena.nodes {
		nodes = append(nodes, node.shift(1))
	}
	for _, node := range b.arena.nodes {
		nodes = append(nodes, node.shift(1+la))
	}
	nodes[1].Parent = RootIndex
	nodes[1+la].Parent = RootIndex
	return &Number{arena: Arena{nodes: nodes}}
}

// Magnitude folds the tree: a leaf is its value, a pair is 3*left + 2*right.
func (n *Number) Magnitude() uint64 {
	if n == nil || n.arena.Len() == 0 {
		return 0
	}
	return n.arena.magnitude(RootIndex)
}

func (a *Arena) magnitude(i int) uint64 {
	node := a.nodes[i]
	if node.IsLeaf() {
		return uint64(node.Value)
	}
	return 3*a.magnitude(node.Left) + 2*a.magnitude(node.Right)
}

// String prints the canonical bracket notation. Leaves above 9, which only
// exist mid-reduction, print in decimal.
func (n *Number) String() string {
	if n == nil || n.arena.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	n.arena.write(&sb, RootIndex)
	return sb.String()
}

func (a *Arena) write(sb *strings.Builder, i int) {
	node := a.nodes[i]
	if node.IsLeaf() {
		sb.WriteString(strconv.FormatUint(uint64(node.Value), 10))
		return
	}
	sb.WriteByte('[')
	a.write(sb, node.Left)
	sb.WriteByte(',')
	a.write(sb, node.Right)
	sb.WriteByte(']')
}

func (n *Number) check(op string) error {
	if n == nil || n.arena.Len() == 0 {
		return violation(op, NoIndex, "empty number")
	}
	return nil
}
