package numeral

import (
	"math/big"
	"testing"
)

func TestEncodeRejectsNonPositive(t *testing.T) {
	a := Default()
	for _, n := range []int64{0, -1, -38} {
		if _, err := a.Encode(big.NewInt(n)); err != ErrNonPositive {
			t.Errorf("Encode(%d): expected ErrNonPositive, got %v", n, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	a := Default()
	n := new(big.Int)
	for i := int64(1); i <= 10000; i++ {
		n.SetInt64(i)
		s, err := a.Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d) failed: %v", i, err)
		}
		if got := a.Decode(s); got.Int64() != i {
			t.Fatalf("Decode(Encode(%d)) = %v via %q", i, got, s)
		}
	}
}

func TestNoZeroSymbol(t *testing.T) {
	a := Default()
	base := int64(a.Len())

	s, err := a.Encode(big.NewInt(1))
	if err != nil || s != a.First() {
		t.Errorf("Encode(1) = %q, %v; want first symbol %q", s, err, a.First())
	}

	s, err = a.Encode(big.NewInt(base))
	if err != nil || s != a.Last() {
		t.Errorf("Encode(base) = %q, %v; want last symbol %q", s, err, a.Last())
	}

	s, err = a.Encode(big.NewInt(base + 1))
	if err != nil {
		t.Fatalf("Encode(base+1) failed: %v", err)
	}
	if len(s) != 2 || s[:1] != a.First() {
		t.Errorf("Encode(base+1) = %q; want length 2 starting with %q", s, a.First())
	}
}

func TestBinaryAlphabetSequence(t *testing.T) {
	a := New("ab")
	want := []string{"a", "b", "aa", "ab", "ba", "bb", "aaa"}
	for i, expected := range want {
		got, err := a.Encode(big.NewInt(int64(i + 1)))
		if err != nil {
			t.Fatalf("Encode(%d) failed: %v", i+1, err)
		}
		if got != expected {
			t.Errorf("Encode(%d) = %q, want %q", i+1, got, expected)
		}
	}
}

func TestDecodeMatchesPosition(t *testing.T) {
	a := New("ab")
	cases := map[string]int64{
		"a": 1, "b": 2, "aa": 3, "ab": 4, "ba": 5, "bb": 6, "aaa": 7,
	}
	for s, n := range cases {
		if got := a.Decode(s).Int64(); got != n {
			t.Errorf("Decode(%q) = %d, want %d", s, got, n)
		}
	}
}

func TestLargeIndexRoundTrip(t *testing.T) {
	a := Default()
	// Well past int64 range; the codec is arbitrary precision.
	n, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	s, err := a.Encode(n)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if a.Decode(s).Cmp(n) != 0 {
		t.Errorf("round trip mismatch for %v via %q", n, s)
	}
}
