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

func TestSplitAtFirstSlashDigit(t *testing.T) {
	cases := []struct {
		input    string
		wantHead string
		wantRest string
	}{
		{"a/0/b", "a", "/0/b"},
		{"a/b/1", "a/b", "/1"},
		{"a/b/c", "a/b/c", ""},
		{"", "", ""},
		{"/9", "", "/9"},
		{"a/٣", "a/٣", ""}, // Arabic-Indic digit U+0663 does not count
		{"/", "/", ""},
		{"/abc", "/abc", ""},
		{"abc/", "abc/", ""},
		{"abc123", "abc123", ""},
		{"/data/items/0/name", "/data/items", "/0/name"},
		{"/data/items/0/subarray/1/value", "/data/items", "/0/subarray/1/value"},
		{"a//1", "a/", "/1"},   // consecutive slashes: split at the second
		{"//0", "/", "/0"},     // leading consecutive slashes
		{"path with spaces/123", "path with spaces", "/123"},
		{"path\\123", "path\\123", ""},      // backslash is not a slash
		{"a\\b/1\\c/2", "a\\b", "/1\\c/2"},  // backslash never counts as a split point
		{"no_digit_after/", "no_digit_after/", ""},
	}
	for _, tc := range cases {
		head, rest := SplitAtFirstSlashDigit([]byte(tc.input))
		if string(head) != tc.wantHead || string(rest) != tc.wantRest {
			t.Errorf("SplitAtFirstSlashDigit(%q) = (%q, %q), want (%q, %q)",
				tc.input, head, rest, tc.wantHead, tc.wantRest)
		}
	}
}

func TestSplitAtFirstSlashDigitVeryLongPath(t *testing.T) {
	prefix := make([]byte, 1000)
	for i := range prefix {
		prefix[i] = 'a'
	}
	input := append(append([]byte{}, prefix...), "/123"...)

	head, rest := SplitAtFirstSlashDigit(input)
	if string(head) != string(prefix) || string(rest) != "/123" {
		t.Errorf("SplitAtFirstSlashDigit(long path) = (%d bytes, %q), want (%d bytes, %q)",
			len(head), rest, len(prefix), "/123")
	}
}

func TestSplitAtFirstSlashDigitAllASCIIDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		input := append([]byte("path/"), d)
		wantRest := "/" + string([]byte{d})
		head, rest := SplitAtFirstSlashDigit(input)
		if string(head) != "path" || string(rest) != wantRest {
			t.Errorf("SplitAtFirstSlashDigit(%q) = (%q, %q), want (%q, %q)",
				input, head, rest, "path", wantRest)
		}
	}
}

func TestSplitAtFirstSlashDigitNoSplitReturnsNilRest(t *testing.T) {
	_, rest := SplitAtFirstSlashDigit([]byte("no/digits/here"))
	if rest != nil {
		t.Errorf("rest = %q, want nil", rest)
	}
}

func TestSplitAtFirstSlashDigitAliasesInput(t *testing.T) {
	s := []byte("a/0/b")
	head, rest := SplitAtFirstSlashDigit(s)
	if &s[0] != &head[0] {
		t.Error("head must alias the input slice")
	}
	if &s[1] != &rest[0] {
		t.Error("rest must alias the input slice")
	}
}
