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

// Package literalsearch accelerates the no-underscore-wildcard case of LIKE
// segment search with a single-pattern Aho-Corasick automaton, the same
// construction github.com/coregx/coregex/meta uses for its own literal
// fast path.
package literalsearch

import "github.com/coregx/ahocorasick"

// Searcher locates one fixed literal inside a haystack using an automaton
// built once, at Matcher-compile time, instead of re-scanning byte by byte
// on every call.
type Searcher struct {
	automaton *ahocorasick.Automaton
}

// New builds a Searcher for pattern. It returns nil if the automaton could
// not be built; callers must fall back to a plain substring search in that
// case rather than treat a nil Searcher as "never matches".
func New(pattern []byte) *Searcher {
	if len(pattern) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Searcher{automaton: automaton}
}

// Find returns the offset of the first occurrence of the searcher's
// pattern in haystack at or after at, or -1 if there is none.
func (s *Searcher) Find(haystack []byte, at int) int {
	if s == nil || at < 0 || at > len(haystack) {
		return -1
	}
	m := s.automaton.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}
