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

// Package snailfish implements snailfish numbers: binary trees of small
// integers kept in a flat, index-addressed arena.
//
// Addition joins two trees under a new root and reduces the result with two
// rules tried in priority order until neither applies:
//
//  1. explode the left-most pair of leaves nested four or more pairs deep,
//     adding its values to the nearest leaves on either side and replacing
//     it with a zero leaf;
//  2. split the left-most leaf of ten or more into a pair of its halves.
//
// Exploded children are swap-removed from the arena so that every slot stays
// reachable from the root at index 0.
package snailfish
