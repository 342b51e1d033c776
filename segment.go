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

import (
	"bytes"

	"github.com/kaidb/likeql/internal/literalsearch"
)

const (
	wildcardAny = '%'
	wildcardOne = '_'
	escapeByte  = '\\'
)

// Segment is the literal-plus-underscore run of a compiled pattern between
// two consecutive unescaped '%' wildcards.
type Segment struct {
	// literal is the concatenation of all non-'_' bytes of the segment, in
	// order the way they appear in the input they would match.
	literal []byte
	// underscorePositions holds, in ascending order, the offsets within
	// the segment's own matched byte layout where a '_' occurs.
	underscorePositions []int
	// totalLength is the number of input bytes this segment consumes:
	// len(literal) + len(underscorePositions).
	totalLength int
}

// minSegmentLenForAutomaton is the literal length at or above which building a
// per-segment Aho-Corasick automaton pays for itself over bytes.Index. Short
// literals are dominated by automaton construction and call overhead.
const minSegmentLenForAutomaton = 4

// compilePattern partitions pattern on unescaped '%' into Segments, recording
// underscore positions and escape closure along the way. It reports
// leadingWildcard and trailingWildcard, and minRequiredLength: the shortest
// input length the evaluator in like.go could possibly accept. A trailing
// unescaped '\' is reported as an error.
func compilePattern(pattern []byte) (segments []Segment, leadingWildcard, trailingWildcard bool, minRequiredLength int, err error) {
	var cur Segment
	escaped := false
	firstCharSeen := false

	for _, c := range pattern {
		switch {
		case escaped:
			cur.literal = append(cur.literal, c)
			cur.totalLength++
			escaped = false
			trailingWildcard = false
		case c == escapeByte:
			escaped = true
			trailingWildcard = false
		case c == wildcardAny:
			segments = append(segments, cur)
			cur = Segment{}
			if !firstCharSeen {
				leadingWildcard = true
			}
			trailingWildcard = true
		case c == wildcardOne:
			cur.underscorePositions = append(cur.underscorePositions, cur.totalLength)
			cur.totalLength++
			trailingWildcard = false
		default:
			cur.literal = append(cur.literal, c)
			cur.totalLength++
			trailingWildcard = false
		}
		firstCharSeen = true
	}

	if escaped {
		return nil, false, false, 0, invalidPattern("trailing unescaped backslash", pattern)
	}

	segments = append(segments, cur)
	minRequiredLength = minRequiredLengthFor(segments, leadingWildcard, trailingWildcard)
	return segments, leadingWildcard, trailingWildcard, minRequiredLength, nil
}

// minRequiredLengthFor computes the shortest input length Matches could
// possibly accept for segments. A plain sum of segment lengths overstates
// this bound: the '%' between two segments can match zero bytes, and the
// evaluator in like.go lets consecutive segments overlap by up to one byte
// short of the following segment's length (invariant U3). This walks the
// same position bookkeeping Matches uses, symbolically, to get a tight bound
// instead of the looser sum.
func minRequiredLengthFor(segments []Segment, leadingWildcard, trailingWildcard bool) int {
	if len(segments) == 1 && !leadingWildcard && !trailingWildcard {
		return segments[0].totalLength
	}

	pos := 0
	required := 0
	last := len(segments) - 1
	for i := range segments {
		seg := &segments[i]
		if seg.totalLength == 0 {
			continue
		}

		switch {
		case i == 0 && !leadingWildcard:
			if seg.totalLength > required {
				required = seg.totalLength
			}
			pos = seg.totalLength
		case i == last && !trailingWildcard:
			// Matches requires n > pos and n >= seg.totalLength for this
			// segment to be anchored at the end; see the i == last case
			// there for the derivation of the "n > pos" half.
			if pos+1 > required {
				required = pos + 1
			}
			if seg.totalLength > required {
				required = seg.totalLength
			}
		default:
			if pos+seg.totalLength > required {
				required = pos + seg.totalLength
			}
			pos++
		}
	}
	return required
}

// segmentMatchesAt reports whether seg matches s starting exactly at off,
// treating each underscore position as a wildcard for exactly one byte.
func segmentMatchesAt(seg *Segment, s []byte, off int) bool {
	if off < 0 || off+seg.totalLength > len(s) {
		return false
	}

	litIdx := 0
	underIdx := 0
	nextUnderscore := -1
	if len(seg.underscorePositions) > 0 {
		nextUnderscore = seg.underscorePositions[0]
	}

	for i := 0; i < seg.totalLength; i++ {
		if i == nextUnderscore {
			underIdx++
			if underIdx < len(seg.underscorePositions) {
				nextUnderscore = seg.underscorePositions[underIdx]
			} else {
				nextUnderscore = -1
			}
			continue
		}
		if s[off+i] != seg.literal[litIdx] {
			return false
		}
		litIdx++
	}
	return true
}

// findSegment locates seg in s at any offset >= start, preferring searcher
// (a pre-built Aho-Corasick automaton) when available and the segment has
// no underscores, falling back to bytes.Index, and otherwise scanning every
// candidate offset with segmentMatchesAt.
func findSegment(seg *Segment, searcher *literalsearch.Searcher, s []byte, start int) int {
	if len(seg.underscorePositions) == 0 {
		if searcher != nil {
			return searcher.Find(s, start)
		}
		if start > len(s) {
			return -1
		}
		idx := bytes.Index(s[start:], seg.literal)
		if idx < 0 {
			return -1
		}
		return start + idx
	}

	for pos := start; pos+seg.totalLength <= len(s); pos++ {
		if segmentMatchesAt(seg, s, pos) {
			return pos
		}
	}
	return -1
}
