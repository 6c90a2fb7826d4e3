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

// MergeSort returns a newly allocated sorted copy of data. The input is read
// but never mutated. Stable: equal elements keep their relative input order.
// O(n log n) time, O(n) extra space per level of recursion.
//
// The split point is fixed at len(data)/2: the left half gets ⌊n/2⌋ elements,
// the right half the rest.
func MergeSort[T Ordered](data []T) []T {
	if len(data) <= 1 {
		out := make([]T, len(data))
		copy(out, data)
		return out
	}

	mid := len(data) / 2
	left := MergeSort(data[:mid])
	right := MergeSort(data[mid:])
	return Merge(left, right)
}

// Merge combines two individually sorted slices into one newly allocated
// sorted slice of length len(left)+len(right). Neither input is mutated.
//
// The fronts of the two slices are compared and the lesser is appended; on a
// tie, or when the pair is incomparable, the left element wins, which is what
// makes MergeSort stable. Once one side is exhausted the other's remainder is
// appended without further comparison.
func Merge[T Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] > right[j] {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}

	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}
