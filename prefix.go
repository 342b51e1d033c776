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

// ExtractFixedPrefix returns the longest literal byte prefix any input
// matching pattern must start with. It walks pattern left to right,
// appending unescaped literal bytes (with escapes resolved), and stops
// collecting at the first unescaped '%' or '_' — even if a later literal
// run would otherwise be longer. This is deliberate: the query planner
// depends on "stops at the first unescaped wildcard" to seed index range
// scans correctly. The rest of the pattern is still scanned, only to
// validate it.
//
// ExtractFixedPrefix returns ErrInvalidPattern if pattern ends in a lone,
// unescaped '\'.
func ExtractFixedPrefix(pattern []byte) ([]byte, error) {
	out := make([]byte, 0, len(pattern))
	escaped := false
	stopped := false

	for _, c := range pattern {
		if escaped {
			if !stopped {
				out = append(out, c)
			}
			escaped = false
			continue
		}
		switch c {
		case escapeByte:
			escaped = true
		case wildcardAny, wildcardOne:
			stopped = true
		default:
			if !stopped {
				out = append(out, c)
			}
		}
	}

	if escaped {
		return nil, invalidPattern("trailing unescaped backslash", pattern)
	}
	return out, nil
}
