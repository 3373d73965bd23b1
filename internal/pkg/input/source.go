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

package input

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/wire"
)

// Source resolves where a day's input comes from.
type Source struct {
	Fetcher *Fetcher
	Stdin   io.Reader
}

// NewSource creates a Source reading "-" from os.Stdin.
func NewSource(f *Fetcher) *Source {
	return &Source{Fetcher: f, Stdin: os.Stdin}
}

// Load returns the input text. path "-" reads standard input, any other
// non-empty path reads that file, and an empty path fetches the input.
func (s *Source) Load(ctx context.Context, day int, path string) (string, error) {
	switch path {
	case "":
		if s.Fetcher == nil {
			return "", fmt.Errorf("no input path given and fetching is disabled")
		}
		return s.Fetcher.Fetch(ctx, day)
	case "-":
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
}

// ProviderSet wires input retrieval.
var ProviderSet = wire.NewSet(NewFetcher, NewSource)
