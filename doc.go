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

// Package like implements an SQL LIKE pattern matcher for byte strings.
//
// A pattern is compiled once with NewMatcher and then evaluated against
// many inputs with Matcher.Matches. Compilation partitions the pattern
// into literal segments separated by unescaped '%' runs; evaluation
// locates those segments in the input while honoring the anchoring and
// overlap rules of the SQL LIKE grammar. See TranslateToRegex for the
// reference regex translation (RegexMatcher documents where Matcher
// differs from it), and
// ExtractFixedPrefix for the fixed-prefix helper used to seed index
// range scans.
//
// Matching is byte-exact: '_' matches exactly one byte, not one Unicode
// code point, and invalid UTF-8 input is matched the same way valid
// UTF-8 is. There is no case folding, locale handling, or Unicode
// normalization anywhere in this package.
package like
