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

func TestExtractFixedPrefix(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"abc", "abc"},
		{"abc%", "abc"},
		{"%abc", ""},
		{"ab_c", "ab"},
		{`ab\%c`, "ab%c"},
		{`ab\_c%`, "ab_c"},
		{"", ""},
		{"%", ""},
		{`a\\b%c`, `a\b`},
	}
	for _, tc := range cases {
		got, err := ExtractFixedPrefix([]byte(tc.pattern))
		if err != nil {
			t.Fatalf("ExtractFixedPrefix(%q): %v", tc.pattern, err)
		}
		if string(got) != tc.want {
			t.Errorf("ExtractFixedPrefix(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestExtractFixedPrefixStopsAtFirstWildcardEvenIfShorter(t *testing.T) {
	// The literal run after the wildcard ("defghijk") is longer than the
	// prefix ("abc"), but the planner contract requires stopping at the
	// first unescaped wildcard regardless.
	got, err := ExtractFixedPrefix([]byte("abc%defghijk"))
	if err != nil {
		t.Fatalf("ExtractFixedPrefix: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestExtractFixedPrefixRejectsTrailingBackslash(t *testing.T) {
	if _, err := ExtractFixedPrefix([]byte(`abc\`)); err == nil {
		t.Fatal("expected an error for a trailing unescaped backslash")
	}
}
