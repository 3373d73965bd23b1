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
	"fmt"
	"strconv"

	"github.com/go-arcade/aoc2021/internal/bootstrap"
	"github.com/go-arcade/aoc2021/internal/config"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	initApp    bootstrap.InitAppFunc
}

// NewRootCmd builds the aoc command tree around initApp.
func NewRootCmd(initApp bootstrap.InitAppFunc) *cobra.Command {
	opts := &rootOptions{initApp: initApp}
	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2021 solutions",
		Long:          "aoc solves Advent of Code 2021 puzzles, fetching inputs on demand.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file path, defaults to "+config.DefaultConfigDir+"/"+config.DefaultConfigName+".toml when present")

	cmd.AddCommand(
		newSolveCmd(opts),
		newWatchCmd(opts),
		version.NewVersionCmd(),
	)
	return cmd
}

// parseDay validates the day argument.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("day must be a number: %q", arg)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("day %d out of range 1-25", day)
	}
	return day, nil
}
