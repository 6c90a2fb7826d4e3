// Package sortlab implements three classic comparison sorts over slices of
// ordered elements: insertion sort, quicksort, and merge sort.
//
// The three algorithms share one element contract, the [Ordered] constraint,
// and differ in how they treat the caller's slice:
//
//   - [Insertion] and [Quick] sort in place, rearranging elements purely by
//     index swaps. The caller's slice is the result.
//   - [MergeSort] leaves its input untouched and returns a newly allocated
//     sorted slice, copying elements as it goes. [Merge], its helper for
//     combining two sorted slices, is exported as well.
//
// # Stability
//
// Insertion and MergeSort/Merge are stable: elements that compare equal keep
// their relative input order. Quick is not.
//
// # Incomparable values
//
// Floating-point NaN compares neither less nor greater than anything,
// including itself. Every loop in this package advances on the "not greater"
// outcome of such a comparison, so NaN values never cause a panic or an
// infinite loop; adjacent incomparable pairs in a result are not considered
// out of order by [IsSorted].
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortlab/sortlab"
//
//	func Process(data []float64) []float64 {
//	    sortlab.Quick(data)           // in place
//	    return sortlab.MergeSort(data) // sorted copy
//	}
package sortlab
