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

type side uint8

const (
	sideLeft side = iota
	sideRight
)

// Neighbors returns the nearest leaf before and after the subtree rooted at
// i in the in-order leaf sequence of the whole tree. Either result is NoIndex
// when i already touches that edge of the tree.
func (a *Arena) Neighbors(i int) (prev, next int, err error) {
	if !a.inRange(i) {
		return NoIndex, NoIndex, violation("neighbors", i, "index out of range [0,%d)", len(a.nodes))
	}
	if _, err := a.Depth(i); err != nil {
		return NoIndex, NoIndex, violation("neighbors", i, "no parent chain to the root")
	}

	prev, next = NoIndex, NoIndex
	branch, err := a.siblingBranch(i, sideLeft)
	if err != nil {
		return NoIndex, NoIndex, err
	}
	if branch != NoIndex {
		prev = a.descend(branch, sideRight)
	}

	branch, err = a.siblingBranch(i, sideRight)
	if err != nil {
		return NoIndex, NoIndex, err
	}
	if branch != NoIndex {
		next = a.descend(branch, sideLeft)
	}
	return prev, next, nil
}

// siblingBranch climbs from i until it leaves a pair through the edge
// opposite to s and returns that pair's child on side s.
func (a *Arena) siblingBranch(i int, s side) (int, error) {
	cur := i
	for parent := a.nodes[cur].Parent; parent != NoIndex; parent = a.nodes[cur].Parent {
		p := a.nodes[parent]
		if p.Left != cur && p.Right != cur {
			return NoIndex, violation("neighbors", cur, "parent %d does not reference it", parent)
		}
		switch {
		case s == sideLeft && p.Right == cur:
			return p.Left, nil
		case s == sideRight && p.Left == cur:
			return p.Right, nil
		}
		cur = parent
	}
	return NoIndex, nil
}

// descend follows the s-most child down to a leaf.
func (a *Arena) descend(i int, s side) int {
	for a.nodes[i].IsPair() {
		if s == sideLeft {
			i = a.nodes[i].Left
		} else {
			i = a.nodes[i].Right
		}
	}
	return i
}
