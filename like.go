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

package like

import "github.com/kaidb/likeql/internal/literalsearch"

// Matcher is a compiled SQL LIKE pattern. It is immutable after
// construction, allocates nothing during Matches, and is safe for
// concurrent use by multiple goroutines.
type Matcher struct {
	segments          []Segment
	searchers         []*literalsearch.Searcher // parallel to segments; nil where unused
	leadingWildcard   bool
	trailingWildcard  bool
	minRequiredLength int
}

// NewMatcher compiles pattern into a Matcher. It returns ErrInvalidPattern
// (via errors.Is) if pattern ends in a lone, unescaped '\'.
func NewMatcher(pattern []byte) (*Matcher, error) {
	segments, leading, trailing, minLen, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	searchers := make([]*literalsearch.Searcher, len(segments))
	for i := range segments {
		seg := &segments[i]
		if len(seg.underscorePositions) == 0 && len(seg.literal) >= minSegmentLenForAutomaton {
			searchers[i] = literalsearch.New(seg.literal)
		}
	}

	return &Matcher{
		segments:          segments,
		searchers:         searchers,
		leadingWildcard:   leading,
		trailingWildcard:  trailing,
		minRequiredLength: minLen,
	}, nil
}

// Matches reports whether s is a full match for the compiled pattern: the
// entire input must be consumed, end to end, with no implicit surrounding
// '%'.
func (m *Matcher) Matches(s []byte) bool {
	n := len(s)
	if n < m.minRequiredLength {
		return false
	}

	if len(m.segments) == 1 && !m.leadingWildcard && !m.trailingWildcard {
		seg := &m.segments[0]
		return n == seg.totalLength && segmentMatchesAt(seg, s, 0)
	}

	pos := 0
	last := len(m.segments) - 1
	for i := range m.segments {
		seg := &m.segments[i]
		if seg.totalLength == 0 {
			continue
		}

		switch {
		case i == 0 && !m.leadingWildcard:
			if !segmentMatchesAt(seg, s, 0) {
				return false
			}
			pos = seg.totalLength
			if i == last && !m.trailingWildcard {
				return n == seg.totalLength
			}
		case i == last && !m.trailingWildcard:
			if n < seg.totalLength {
				return false
			}
			// The '%' before this segment may match zero bytes, so this
			// segment only needs to end, not start, at or after pos: the
			// same one-byte-short-of-length slack the found+1 rule below
			// grants floating segments. Since endPos+seg.totalLength==n,
			// "endPos >= pos-(seg.totalLength-1)" reduces to "pos < n".
			if pos >= n {
				return false
			}
			endPos := n - seg.totalLength
			if !segmentMatchesAt(seg, s, endPos) {
				return false
			}
		default:
			found := findSegment(seg, m.searchers[i], s, pos)
			if found < 0 {
				return false
			}
			// found + 1, not found + seg.totalLength: a '%' between
			// segments may match zero bytes, so consecutive segments are
			// allowed to overlap by up to one byte short of the next
			// segment's length (spec invariant U3).
			pos = found + 1
		}
	}
	return true
}

// MatchesOperand evaluates Matches against operand if it is a byte sequence
// ([]byte or string), and returns false without error for any other type.
// This lets a Matcher be dropped into a generically-typed predicate slot
// over heterogeneous column values.
func (m *Matcher) MatchesOperand(operand any) bool {
	switch v := operand.(type) {
	case []byte:
		return m.Matches(v)
	case string:
		return m.Matches([]byte(v))
	default:
		return false
	}
}
