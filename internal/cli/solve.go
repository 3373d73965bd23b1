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

package cli

import (
	"github.com/go-arcade/aoc2021/internal/bootstrap"
	"github.com/go-arcade/aoc2021/internal/config"
	"github.com/spf13/cobra"
)

type solveOptions struct {
	input   string
	workers int
	noCache bool
}

func (o *solveOptions) overrides(cmd *cobra.Command) bootstrap.Override {
	return func(conf *config.AppConfig) {
		if cmd.Flags().Changed("workers") {
			conf.Solver.Workers = o.workers
		}
		if o.noCache {
			conf.Cache.Type = "none"
			conf.Solver.Memoize = false
		}
	}
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve both parts of a day's puzzle",
		Example: `  aoc solve 18
  aoc solve 18 --input day18.txt
  cat day18.txt | aoc solve 18 --input -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}

			a, cleanup, _, err := bootstrap.Bootstrap(root.configFile, root.initApp, opts.overrides(cmd))
			if err != nil {
				return err
			}
			defer cleanup()
			a.Source.Stdin = cmd.InOrStdin()

			answer, err := a.Solve(cmd.Context(), day, opts.input)
			if err != nil {
				return err
			}
			return answer.Print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `input file, "-" for stdin; fetched when empty`)
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines, 0 for one per CPU")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the input and answer caches")
	return cmd
}
