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

import "testing"

func TestSmartMatcherDelegatesToMatcher(t *testing.T) {
	pattern := "%smart%matcher%"
	sm, err := NewSmart([]byte(pattern))
	if err != nil {
		t.Fatalf("NewSmart(%q): %v", pattern, err)
	}
	m, err := NewMatcher([]byte(pattern))
	if err != nil {
		t.Fatalf("NewMatcher(%q): %v", pattern, err)
	}

	for _, in := range []string{"a smart b matcher c", "matcher smart", ""} {
		if got, want := sm.Matches([]byte(in)), m.Matches([]byte(in)); got != want {
			t.Errorf("input %q: SmartMatcher=%v Matcher=%v", in, got, want)
		}
	}
	if sm.MatchesOperand(42) {
		t.Error("MatchesOperand should be false for a non-byte-sequence operand")
	}
}

func TestNewSmartRejectsInvalidPattern(t *testing.T) {
	if _, err := NewSmart([]byte(`bad\`)); err == nil {
		t.Fatal("expected an error for a trailing unescaped backslash")
	}
}
