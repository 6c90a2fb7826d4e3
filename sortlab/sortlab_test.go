package sortlab

import (
	"math"
	"slices"
	"testing"
)

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		expect bool
	}{
		{"empty", []float64{}, true},
		{"single", []float64{5}, true},
		{"sorted", []float64{1, 2, 2, 3}, true},
		{"unsorted", []float64{2, 1}, false},
		{"tail_violation", []float64{1, 2, 3, 2}, false},
		{"nan_adjacent", []float64{1, math.NaN(), 2}, true},
		{"all_nan", []float64{math.NaN(), math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.data); got != tt.expect {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.expect)
			}
		})
	}
}

// TestSortsMatchStdlib verifies all three algorithms agree with slices.Sort
// on the same random data.
func TestSortsMatchStdlib(t *testing.T) {
	for _, n := range []int{0, 1, 10, 100, 1000} {
		ref := generateInt64(n)
		want := slices.Clone(ref)
		slices.Sort(want)

		ins := slices.Clone(ref)
		Insertion(ins)
		if !slices.Equal(ins, want) {
			t.Errorf("Insertion(n=%d) disagrees with slices.Sort", n)
		}

		qck := slices.Clone(ref)
		Quick(qck)
		if !slices.Equal(qck, want) {
			t.Errorf("Quick(n=%d) disagrees with slices.Sort", n)
		}

		if got := MergeSort(ref); !slices.Equal(got, want) {
			t.Errorf("MergeSort(n=%d) disagrees with slices.Sort", n)
		}
	}
}

// TestSortsOnStrings verifies the generic contract covers any ordered type,
// not just numbers.
func TestSortsOnStrings(t *testing.T) {
	ref := []string{"pear", "apple", "fig", "banana", "fig", "apple"}
	want := slices.Clone(ref)
	slices.Sort(want)

	ins := slices.Clone(ref)
	Insertion(ins)
	if !slices.Equal(ins, want) {
		t.Errorf("Insertion(strings) = %v, want %v", ins, want)
	}

	qck := slices.Clone(ref)
	Quick(qck)
	if !slices.Equal(qck, want) {
		t.Errorf("Quick(strings) = %v, want %v", qck, want)
	}

	if got := MergeSort(ref); !slices.Equal(got, want) {
		t.Errorf("MergeSort(strings) = %v, want %v", got, want)
	}
}
