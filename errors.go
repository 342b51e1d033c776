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

import "github.com/cockroachdb/errors"

// ErrInvalidPattern is the sentinel wrapped by every pattern-compilation
// failure. It is returned whenever a pattern ends in a lone, unescaped '\'.
var ErrInvalidPattern = errors.New("like: invalid pattern")

// ErrUnsupportedOperand is returned by type-erased translation entry points
// when the operand is not a byte sequence.
var ErrUnsupportedOperand = errors.New("like: unsupported operand type")

// invalidPattern wraps ErrInvalidPattern with the offending pattern so
// callers can still recover the sentinel with errors.Is.
func invalidPattern(reason string, pattern []byte) error {
	return errors.Wrapf(ErrInvalidPattern, "%s: %q", reason, string(pattern))
}

// unsupportedOperand wraps ErrUnsupportedOperand with the offending
// operand's dynamic type so callers can still recover the sentinel with
// errors.Is.
func unsupportedOperand(operand any) error {
	return errors.Wrapf(ErrUnsupportedOperand, "%T", operand)
}
