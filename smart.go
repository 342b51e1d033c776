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

// SmartMatcher dispatches LIKE evaluation to the fastest available engine
// for a compiled pattern. Today that is always the segment Matcher, which
// is faster than any regex engine for the patterns this package supports;
// SmartMatcher exists as the extension point the original matcher reserved
// for a future cost-based choice between the segment matcher and a regex
// engine, without forcing call sites to change.
type SmartMatcher struct {
	matcher *Matcher
}

// NewSmart compiles pattern into a SmartMatcher.
func NewSmart(pattern []byte) (*SmartMatcher, error) {
	m, err := NewMatcher(pattern)
	if err != nil {
		return nil, err
	}
	return &SmartMatcher{matcher: m}, nil
}

// Matches reports whether s is a full match.
func (sm *SmartMatcher) Matches(s []byte) bool {
	return sm.matcher.Matches(s)
}

// MatchesOperand mirrors Matcher.MatchesOperand.
func (sm *SmartMatcher) MatchesOperand(operand any) bool {
	return sm.matcher.MatchesOperand(operand)
}
