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

// Quick sorts data in place using recursive quicksort. Not stable: equal
// elements may be reordered.
//
// The pivot is the median of the first, middle, and last elements. Each level
// partitions data by swaps into three bands (less than, equal to, and greater
// than the pivot) and recurses on the outer two. The equal band
// keeps degenerate inputs (all equal, sorted, reverse sorted) near linear
// per level; inputs crafted against median-of-three can still degrade the
// whole sort to O(n²), which is a known property of the pivot choice, not
// a defect. Average O(n log n).
func Quick[T Ordered](data []T) {
	if len(data) <= 1 {
		return
	}

	pivot := medianOfThree(data)
	lt, gt := partitionThreeWay(data, pivot)

	// The equal band data[lt:gt] always holds at least the pivot element,
	// so both recursive ranges are strictly smaller.
	Quick(data[:lt])
	Quick(data[gt:])
}

// medianOfThree returns the median of the first, middle, and last elements.
func medianOfThree[T Ordered](data []T) T {
	n := len(data)
	if n <= 2 {
		return data[0]
	}

	a := data[0]
	b := data[n/2]
	c := data[n-1]

	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

// partitionThreeWay performs a Dutch-national-flag partition around pivot,
// entirely by index swaps. On return data[:lt] < pivot, data[lt:gt] is the
// equal band (including every element incomparable with the pivot), and
// data[gt:] > pivot.
func partitionThreeWay[T Ordered](data []T, pivot T) (lt, gt int) {
	gt = len(data)
	i := 0

	for i < gt {
		if data[i] < pivot {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if data[i] > pivot {
			gt--
			data[i], data[gt] = data[gt], data[i]
		} else {
			i++
		}
	}

	return lt, gt
}
