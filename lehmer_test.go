package primality

import (
	"errors"
	"math/big"
	"testing"
)

// bruteLehmer evaluates the U and V sequences for (r, q) mod m by the direct
// linear recurrence X[n] = (R-2Q)*X[n-2] - Q^2*X[n-4].
func bruteLehmer(r, q, m, count int64) (u, v []int64) {
	mod := func(x int64) int64 { return ((x % m) + m) % m }
	u = []int64{0, 1, 1, mod(r - q)}
	v = []int64{2, 1, mod(r - 2*q), mod(r - 3*q)}
	for n := int64(4); n < count; n++ {
		u = append(u, mod((r-2*q)*u[n-2]-q*q*u[n-4]))
		v = append(v, mod((r-2*q)*v[n-2]-q*q*v[n-4]))
	}
	return u, v
}

func TestLehmerSequenceMatchesRecurrence(t *testing.T) {
	testCases := []struct {
		r, q, m int64
	}{
		{5, 1, 101},
		{18, 3, 101},
		{14, 3, 37},
		{6, -1, 23},
		{1, -1, 1009},
	}
	for _, tc := range testCases {
		l, err := NewLehmerSequenceComputer(big.NewInt(tc.r), big.NewInt(tc.q), big.NewInt(tc.m))
		if err != nil {
			t.Fatalf("(%d, %d, %d): %v", tc.r, tc.q, tc.m, err)
		}
		wantU, wantV := bruteLehmer(tc.r, tc.q, tc.m, 40)
		for k := int64(0); k < 40; k++ {
			kk := big.NewInt(k)
			if got := l.U(kk); got.Int64() != wantU[k] {
				t.Fatalf("(%d, %d, %d): U(%d) = %v, want %d", tc.r, tc.q, tc.m, k, got, wantU[k])
			}
			if got := l.V(kk); got.Int64() != wantV[k] {
				t.Fatalf("(%d, %d, %d): V(%d) = %v, want %d", tc.r, tc.q, tc.m, k, got, wantV[k])
			}
		}
	}
}

func TestLehmerSequenceDescendingAccess(t *testing.T) {
	// Large index first, then everything below it: the memo walk must give
	// the same answers regardless of access order.
	fresh := func() *LehmerSequenceComputer {
		l, err := NewLehmerSequenceComputer(big.NewInt(5), big.NewInt(1), big.NewInt(101))
		if err != nil {
			t.Fatal(err)
		}
		return l
	}
	a, b := fresh(), fresh()
	for k := int64(38); k >= 0; k-- {
		kk := big.NewInt(k)
		a.U(kk)
		a.V(kk)
	}
	for k := int64(0); k < 39; k++ {
		kk := big.NewInt(k)
		au, av := a.UV(kk)
		bu, bv := b.UV(kk)
		if au.Cmp(bu) != 0 || av.Cmp(bv) != 0 {
			t.Fatalf("UV(%d) depends on access order: (%v, %v) vs (%v, %v)", k, au, av, bu, bv)
		}
	}
}

func TestLehmerSequenceMemoIdempotent(t *testing.T) {
	l, err := NewLehmerSequenceComputer(big.NewInt(5), big.NewInt(1), big.NewInt(101))
	if err != nil {
		t.Fatal(err)
	}
	k := big.NewInt(1 << 20)
	first := l.U(k)
	second := l.U(k)
	if first.Cmp(second) != 0 {
		t.Fatalf("U(%v) changed between calls: %v then %v", k, first, second)
	}
	// Returned values must be copies, not views of the cache.
	first.Add(first, bigOne)
	if l.U(k).Cmp(second) != 0 {
		t.Error("mutating a returned value corrupted the cache")
	}
}

func TestLehmerSequenceVSquared(t *testing.T) {
	r := big.NewInt(5)
	m := big.NewInt(101)
	l, err := NewLehmerSequenceComputer(r, big.NewInt(1), m)
	if err != nil {
		t.Fatal(err)
	}
	for k := int64(0); k < 20; k++ {
		kk := big.NewInt(k)
		want := l.V(kk)
		want.Mul(want, want)
		if k&1 == 1 {
			want.Mul(want, r)
		}
		want.Mod(want, m)
		if got := l.VSquared(kk); got.Cmp(want) != 0 {
			t.Errorf("VSquared(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestLehmerSequenceRejectsEvenModulus(t *testing.T) {
	for _, m := range []int64{0, 1, 4, 100} {
		_, err := NewLehmerSequenceComputer(big.NewInt(5), big.NewInt(1), big.NewInt(m))
		if !errors.Is(err, ErrOddModulus) {
			t.Errorf("modulus %d: want ErrOddModulus, got %v", m, err)
		}
	}
}
