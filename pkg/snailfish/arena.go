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

// NoIndex marks an absent child, parent or neighbor.
const NoIndex = -1

// RootIndex is the slot of the root node in every non-empty arena.
const RootIndex = 0

// Kind discriminates the two node shapes.
type Kind uint8

const (
	KindLeaf Kind = iota + 1
	KindPair
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Node is either a leaf holding Value or a pair holding Left and Right.
// Parent is a back-reference only; ownership runs root to leaf.
type Node struct {
	Kind   Kind
	Value  uint16
	Left   int
	Right  int
	Parent int
}

func newLeaf(value uint16, parent int) Node {
	return Node{Kind: KindLeaf, Value: value, Left: NoIndex, Right: NoIndex, Parent: parent}
}

func newPair(left, right, parent int) Node {
	return Node{Kind: KindPair, Left: left, Right: right, Parent: parent}
}

// IsLeaf reports whether the node is a leaf.
func (n Node) IsLeaf() bool { return n.Kind == KindLeaf }

// IsPair reports whether the node is a pair.
func (n Node) IsPair() bool { return n.Kind == KindPair }

// shift relocates every index held by the node by offset.
func (n Node) shift(offset int) Node {
	if n.Parent != NoIndex {
		n.Parent += offset
	}
	if n.Kind == KindPair {
		n.Left += offset
		n.Right += offset
	}
	return n
}

// Arena is the index-addressed node store of exactly one tree. Indices are
// only meaningful for the arena that produced them and only until the next
// mutating operation.
type Arena struct {
	nodes []Node
}

// Len returns the number of live slots.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns a copy of the node at index i.
func (a *Arena) Node(i int) Node {
	return a.nodes[i]
}

func (a *Arena) push(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *Arena) inRange(i int) bool {
	return i >= 0 && i < len(a.nodes)
}

func (a *Arena) clone() Arena {
	nodes := make([]Node, len(a.nodes))
	copy(nodes, a.nodes)
	return Arena{nodes: nodes}
}

// Depth returns the distance from the root to node i, following parents.
func (a *Arena) Depth(i int) (int, error) {
	if !a.inRange(i) {
		return 0, violation("depth", i, "index out of range [0,%d)", len(a.nodes))
	}
	depth := 0
	for cur := i; cur != RootIndex; depth++ {
		parent := a.nodes[cur].Parent
		if parent == NoIndex || depth >= len(a.nodes) {
			return 0, violation("depth", i, "no parent chain to the root")
		}
		cur = parent
	}
	return depth, nil
}

// Validate checks every structural invariant of the arena: the root sits at
// index 0 with no parent, each child points back at the pair referencing it,
// no slot is referenced twice, and every slot is reachable from the root.
func (a *Arena) Validate() error {
	if len(a.nodes) == 0 {
		return violation("validate", NoIndex, "empty arena")
	}
	if p := a.nodes[RootIndex].Parent; p != NoIndex {
		return violation("validate", RootIndex, "root has parent %d", p)
	}

	seen := make([]bool, len(a.nodes))
	seen[RootIndex] = true
	visited := 1
	stack := []int{RootIndex}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a.nodes[i]
		switch n.Kind {
		case KindLeaf:
			continue
		case KindPair:
		default:
			return violation("validate", i, "unknown node kind %d", n.Kind)
		}

		for _, child := range [2]int{n.Left, n.Right} {
			if !a.inRange(child) {
				return violation("validate", i, "child %d out of range", child)
			}
			if seen[child] {
				return violation("validate", i, "child %d referenced twice", child)
			}
			if got := a.nodes[child].Parent; got != i {
				return violation("validate", child, "parent is %d, want %d", got, i)
			}
			seen[child] = true
			visited++
			stack = append(stack, child)
		}
	}

	if visited != len(a.nodes) {
		for i, ok := range seen {
			if !ok {
				return violation("validate", i, "unreachable from the root")
			}
		}
	}
	return nil
}
