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
)

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("snailfish: parse error")
	// ErrInvariant matches every *InvariantViolation via errors.Is.
	ErrInvariant = errors.New("snailfish: invariant violation")
	// ErrEmptyInput is returned by Sum and MaxPairMagnitude when there is
	// nothing to fold, so that "no input" never reads as magnitude zero.
	ErrEmptyInput = errors.New("snailfish: empty input")
)

// ParseError describes malformed bracket notation.
type ParseError struct {
	// Line is the 1-based input line, 0 when parsing a single number.
	Line int
	// Offset is the byte offset inside the line where parsing stopped.
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("snailfish: parse error at line %d, offset %d: %s", e.Line, e.Offset, e.Reason)
	}
	return fmt.Sprintf("snailfish: parse error at offset %d: %s", e.Offset, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvariantViolation reports a broken arena invariant. It is never expected
// on well-formed input and the failing operation is aborted.
type InvariantViolation struct {
	Op     string
	Index  int
	Reason string
}

func (e *InvariantViolation) Error() string {
	if e.Index == NoIndex {
		return fmt.Sprintf("snailfish: invariant violation in %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("snailfish: invariant violation in %s at node %d: %s", e.Op, e.Index, e.Reason)
}

func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariant
}

func violation(op string, index int, format string, args ...any) error {
	return &InvariantViolation{Op: op, Index: index, Reason: fmt.Sprintf(format, args...)}
}
