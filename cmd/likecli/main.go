/* Copyright 2025 Stoolap Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License. */

// Command likecli exercises the like package from a shell so its matcher,
// translator, and prefix extractor can be poked at without embedding them
// in a larger query engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaidb/likeql"
)

var useRegexBackend bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "likecli",
		Short: "Exercise the LIKE pattern matcher from the command line",
	}

	matchCmd := &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report whether input is a full match for pattern",
		Args:  cobra.ExactArgs(2),
		RunE:  runMatch,
	}
	matchCmd.Flags().BoolVar(&useRegexBackend, "regex", false, "Use the coregex-backed reference matcher instead of the segment matcher")

	prefixCmd := &cobra.Command{
		Use:   "prefix <pattern>",
		Short: "Print the fixed literal prefix implied by pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrefix,
	}

	translateCmd := &cobra.Command{
		Use:   "translate <pattern>",
		Short: "Print the regex pattern equivalent to pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  runTranslate,
	}

	rootCmd.AddCommand(matchCmd, prefixCmd, translateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern, input := []byte(args[0]), []byte(args[1])

	var matched bool
	if useRegexBackend {
		rm, err := like.NewRegexMatcher(pattern)
		if err != nil {
			slog.Error("compiling reference matcher", "pattern", args[0], "error", err)
			return err
		}
		matched = rm.Matches(input)
	} else {
		m, err := like.NewMatcher(pattern)
		if err != nil {
			slog.Error("compiling matcher", "pattern", args[0], "error", err)
			return err
		}
		matched = m.Matches(input)
	}

	fmt.Println(matched)
	return nil
}

func runPrefix(cmd *cobra.Command, args []string) error {
	prefix, err := like.ExtractFixedPrefix([]byte(args[0]))
	if err != nil {
		slog.Error("extracting fixed prefix", "pattern", args[0], "error", err)
		return err
	}
	fmt.Println(string(prefix))
	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	regex, err := like.TranslateToRegex([]byte(args[0]))
	if err != nil {
		slog.Error("translating pattern", "pattern", args[0], "error", err)
		return err
	}
	fmt.Println(string(regex))
	return nil
}
