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

// Insertion sorts data in place using insertion sort.
//
// For each position i, data[:i] is already sorted; data[i] is exchanged with
// its left neighbor while that neighbor compares greater, walking left until
// it finds its spot. Equal elements never exchange, so the sort is stable.
// It is also adaptive: already-sorted input costs one comparison per element.
// O(n²) in the general case.
//
// Empty and single-element slices are no-ops.
func Insertion[T Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		// Invariant: data[:i] is sorted. Walk data[i] left until its
		// left neighbor is not greater (or incomparable, which stops
		// the walk the same way).
		for j := i; j > 0 && data[j-1] > data[j]; j-- {
			data[j-1], data[j] = data[j], data[j-1]
		}
	}
}
