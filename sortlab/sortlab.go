// Copyright 2025 go-sortlab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sortlab

import "cmp"

// Ordered is the element constraint shared by all sorts in this package:
// any builtin type with a defined < ordering. Comparisons between
// incomparable values (a NaN operand) report false in both directions,
// which this package treats uniformly as "not greater".
//
// Every type in the set copies by plain assignment, which is all the
// duplication MergeSort and Merge require.
type Ordered interface {
	cmp.Ordered
}

// IsSorted reports whether data is in ascending order: no element compares
// greater than its right neighbor. Adjacent incomparable pairs (NaN) do not
// count as violations.
func IsSorted[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}
