package pmath

import "testing"

func TestIsPowerOf2(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 30} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false", n)
		}
	}
	for _, n := range []int{-8, -1, 0, 3, 6, 12, 1000} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true", n)
		}
	}
}

func TestCeilToPowerOf2(t *testing.T) {
	cases := [][2]int{
		{-5, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4},
		{5, 8}, {1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, c := range cases {
		if got := CeilToPowerOf2(c[0]); got != c[1] {
			t.Errorf("CeilToPowerOf2(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}

func TestPowerOf2Index(t *testing.T) {
	cases := [][2]int{{1, 0}, {2, 1}, {3, 2}, {4, 2}, {1024, 10}}
	for _, c := range cases {
		if got := PowerOf2Index(c[0]); got != c[1] {
			t.Errorf("PowerOf2Index(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}
