// This file is part of Harness65.
//
// Harness65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Harness65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Harness65.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/test"
)

func TestPatternMatching(t *testing.T) {
	const pattern = "rom file: %v"

	err := curated.Errorf(pattern, "no such file")
	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedSuccess(t, curated.Is(err, pattern))
	test.ExpectedFailure(t, curated.Is(err, "some other pattern"))

	wrapped := curated.Errorf("attach: %v", err)
	test.ExpectedFailure(t, curated.Is(wrapped, pattern))
	test.ExpectedSuccess(t, curated.Has(wrapped, pattern))
}

func TestDeduplication(t *testing.T) {
	err := curated.Errorf("error: %v", curated.Errorf("error: %v", "inner"))
	test.Equate(t, err.Error(), "error: inner")
}

func TestNil(t *testing.T) {
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, "any pattern"))
	test.ExpectedFailure(t, curated.Has(nil, "any pattern"))
}
