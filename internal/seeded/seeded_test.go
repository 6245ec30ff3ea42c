package seeded

import "testing"

func TestNext_Deterministic(t *testing.T) {
	seeds := []int64{1, 42, 12345, 2147483646}
	for _, seed := range seeds {
		v1, n1 := Next(seed)
		v2, n2 := Next(seed)
		if v1 != v2 || n1 != n2 {
			t.Errorf("Next(%d) not deterministic: (%v,%d) vs (%v,%d)", seed, v1, n1, v2, n2)
		}
	}
}

func TestNext_Range(t *testing.T) {
	seed := int64(7)
	for i := 0; i < 1000; i++ {
		var v float64
		v, seed = Next(seed)
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d: value %v out of [0,1)", i, v)
		}
	}
}

func TestNext_NegativeAndZeroSeeds(t *testing.T) {
	tests := []struct {
		seed int64
		same int64 // seed expected to produce the identical value
	}{
		{-42, 42},
		{0, 1},
		{-1, 1},
	}

	for _, tt := range tests {
		v1, n1 := Next(tt.seed)
		v2, n2 := Next(tt.same)
		if v1 != v2 || n1 != n2 {
			t.Errorf("Next(%d) = (%v,%d), want same as Next(%d) = (%v,%d)",
				tt.seed, v1, n1, tt.same, v2, n2)
		}
	}
}

func TestNextInt_Bounds(t *testing.T) {
	seed := int64(99)
	for n := 1; n <= 20; n++ {
		for i := 0; i < 100; i++ {
			var v int
			v, seed = NextInt(seed, n)
			if v < 0 || v >= n {
				t.Fatalf("NextInt(_, %d) = %d, out of range", n, v)
			}
		}
	}
}

func TestNextInt_DegenerateBound(t *testing.T) {
	for _, n := range []int{1, 0, -5} {
		v, next := NextInt(42, n)
		if v != 0 {
			t.Errorf("NextInt(42, %d) = %d, want 0", n, v)
		}
		if next == 42 {
			t.Errorf("NextInt(42, %d) did not advance the seed", n)
		}
	}
}

func TestShuffle_Permutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(items, 31337)

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost elements: %v", items)
	}
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6}
	b := []int{1, 2, 3, 4, 5, 6}

	sa := Shuffle(a, 555)
	sb := Shuffle(b, 555)

	if sa != sb {
		t.Errorf("returned seeds differ: %d vs %d", sa, sb)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("orders differ at %d: %v vs %v", i, a, b)
		}
	}
}

func TestShufflePrefix_ZeroCountConsumesNothing(t *testing.T) {
	items := []int{1, 2, 3}
	next := ShufflePrefix(items, 0, 777)
	if next != 777 {
		t.Errorf("zero-count shuffle advanced seed: got %d, want 777", next)
	}
	if items[0] != 1 || items[1] != 2 || items[2] != 3 {
		t.Errorf("zero-count shuffle moved elements: %v", items)
	}
}

func TestShufflePrefix_CountBeyondLength(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	sa := ShufflePrefix(a, 100, 9)
	sb := Shuffle(b, 9)
	if sa != sb {
		t.Errorf("seeds differ: %d vs %d", sa, sb)
	}
}
