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

import "fmt"

// Sum adds the numbers strictly left to right. A single number is returned
// as an unreduced copy.
func Sum(numbers []*Number, opts ...ReduceOption) (*Number, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptyInput
	}

	acc := numbers[0].Clone()
	for i, n := range numbers[1:] {
		next, err := Add(acc, n, opts...)
		if err != nil {
			return nil, fmt.Errorf("add number %d: %w", i+2, err)
		}
		acc = next
	}
	return acc, nil
}

// PairMagnitude is the magnitude of Add(a, b).
func PairMagnitude(a, b *Number, opts ...ReduceOption) (uint64, error) {
	sum, err := Add(a, b, opts...)
	if err != nil {
		return 0, err
	}
	return sum.Magnitude(), nil
}

// MaxPairMagnitude returns the largest magnitude of Add(x, y) over every
// ordered pair of numbers at distinct positions. Both orders of each pair
// are tried because addition does not commute.
func MaxPairMagnitude(numbers []*Number, opts ...ReduceOption) (uint64, error) {
	if len(numbers) < 2 {
		return 0, fmt.Errorf("%w: need at least two numbers, got %d", ErrEmptyInput, len(numbers))
	}

	var best uint64
	for i, x := range numbers {
		for j, y := range numbers {
			if i == j {
				continue
			}
			mag, err := PairMagnitude(x, y, opts...)
			if err != nil {
				return 0, fmt.Errorf("add numbers %d and %d: %w", i+1, j+1, err)
			}
			best = max(best, mag)
		}
	}
	return best, nil
}
