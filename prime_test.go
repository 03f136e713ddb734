package primality

import (
	"math/big"
	"testing"
)

func TestIsPrimeSmallSweep(t *testing.T) {
	isPrimeSlow := func(n int64) bool {
		if n < 2 {
			return false
		}
		for d := int64(2); d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}
	for n := int64(-3); n < 10000; n++ {
		if got, want := IsPrime(big.NewInt(n)), isPrimeSlow(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsPrimeKnownValues(t *testing.T) {
	m61 := new(big.Int).Lsh(bigOne, 61)
	m61.Sub(m61, bigOne)

	testCases := []struct {
		name string
		n    *big.Int
		want bool
	}{
		{"negative", big.NewInt(-5), false},
		{"zero", big.NewInt(0), false},
		{"one", big.NewInt(1), false},
		{"two", big.NewInt(2), true},
		{"three", big.NewInt(3), true},
		{"base-2 pseudoprime 341", big.NewInt(341), false},
		{"carmichael 561", big.NewInt(561), false},
		{"prime 37253", big.NewInt(37253), true},
		{"square 37249", big.NewInt(37249), false},
		{"mersenne 2^31-1", big.NewInt(2147483647), true},
		{"mersenne 2^61-1", m61, true},
		{"2^61-3", new(big.Int).Sub(m61, bigTwo), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPrime(tc.n); got != tc.want {
				t.Errorf("IsPrime(%v) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestIsPrimeDeterministic(t *testing.T) {
	m61 := new(big.Int).Lsh(bigOne, 61)
	m61.Sub(m61, bigOne)
	for i := 0; i < 3; i++ {
		if !IsPrime(m61) {
			t.Fatalf("IsPrime(2^61-1) flipped to false on call %d", i)
		}
	}
}

func TestIsPrimeConcurrent(t *testing.T) {
	// All per-call state is private; concurrent calls on the same candidate
	// must agree without synchronization.
	m61 := new(big.Int).Lsh(bigOne, 61)
	m61.Sub(m61, bigOne)
	done := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- IsPrime(m61) }()
	}
	for i := 0; i < 8; i++ {
		if !<-done {
			t.Fatal("concurrent IsPrime(2^61-1) returned false")
		}
	}
}

func TestIsPrimeWithExtraWitnesses(t *testing.T) {
	m61 := new(big.Int).Lsh(bigOne, 61)
	m61.Sub(m61, bigOne)
	testCases := []struct {
		n    *big.Int
		want bool
	}{
		{big.NewInt(2), true},
		{big.NewInt(3), true},
		{big.NewInt(101), true},
		{big.NewInt(561), false},
		{m61, true},
		{new(big.Int).Sub(m61, bigTwo), false},
	}
	for _, tc := range testCases {
		for _, extra := range []int{0, 1, 8} {
			if got := IsPrimeWithExtraWitnesses(tc.n, extra); got != tc.want {
				t.Errorf("IsPrimeWithExtraWitnesses(%v, %d) = %v, want %v", tc.n, extra, got, tc.want)
			}
		}
	}
}

func BenchmarkIsPrimeMersenne61(b *testing.B) {
	m61 := new(big.Int).Lsh(bigOne, 61)
	m61.Sub(m61, bigOne)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !IsPrime(m61) {
			b.Fatal("rejected")
		}
	}
}

func BenchmarkTestSmallDivisorsComposite(b *testing.B) {
	n := big.NewInt(221)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if TestSmallDivisors(n) {
			b.Fatal("accepted")
		}
	}
}
