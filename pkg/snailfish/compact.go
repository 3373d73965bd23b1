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

// detached reports whether slot i holds a leaf cut loose from the tree.
func (a *Arena) detached(i int) bool {
	n := a.nodes[i]
	return i != RootIndex && n.IsLeaf() && n.Parent == NoIndex
}

// compact removes every detached leaf. A slot is re-examined after a
// removal because the node swapped into it may be detached as well.
func (a *Arena) compact() error {
	for i := 1; i < len(a.nodes); {
		if !a.detached(i) {
			i++
			continue
		}
		if err := a.remove(i); err != nil {
			return err
		}
	}
	return nil
}

// remove drops slot pos by moving the last slot into it and re-pointing the
// references to the moved node: its parent's child index and, for a pair,
// both children's parent index.
func (a *Arena) remove(pos int) error {
	if !a.inRange(pos) {
		return violation("compact", pos, "index out of range [0,%d)", len(a.nodes))
	}
	if pos == RootIndex {
		return violation("compact", pos, "cannot remove the root")
	}
	if n := a.nodes[pos]; n.IsPair() {
		return violation("compact", pos, "pair still owns children %d and %d", n.Left, n.Right)
	} else if n.Parent != NoIndex {
		return violation("compact", pos, "still referenced by parent %d", n.Parent)
	}

	last := len(a.nodes) - 1
	if pos != last {
		moved := a.nodes[last]
		if moved.IsPair() {
			a.nodes[moved.Left].Parent = pos
			a.nodes[moved.Right].Parent = pos
		}
		if moved.Parent != NoIndex {
			parent := &a.nodes[moved.Parent]
			switch last {
			case parent.Left:
				parent.Left = pos
			case parent.Right:
				parent.Right = pos
			default:
				return violation("compact", last, "parent %d does not reference it", moved.Parent)
			}
		}
		a.nodes[pos] = moved
	}
	a.nodes = a.nodes[:last]
	return nil
}
