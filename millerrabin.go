package primality

import (
	"encoding/binary"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// MillerRabinMultiWitnessPrimalityTest runs a strong-probable-prime test on n
// for every prime below 192, reduced mod n, as witness. On top of the usual
// per-witness check it accumulates the square roots of -1 discovered along
// the way: a prime modulus has exactly two, so a third proves compositeness
// even when every individual witness passes.
func MillerRabinMultiWitnessPrimalityTest(n *big.Int) bool {
	witnesses := make([]*big.Int, 0, len(tinyPrimes))
	for _, p := range tinyPrimes {
		a := new(big.Int).Mod(big.NewInt(p), n)
		if a.Sign() == 0 {
			// n >= 2 divides a prime below 192, so n is that prime.
			return true
		}
		witnesses = append(witnesses, a)
	}

	nm1 := new(big.Int).Sub(n, bigOne)
	r, d := SplitInt(nm1)

	roots := make(map[string]struct{})
	x := new(big.Int)
	prev := new(big.Int)
	for _, a := range witnesses {
		x.Exp(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		passed := false
		for uu := uint(1); uu < r; uu++ {
			prev.Set(x)
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(bigOne) == 0 {
				// Nontrivial square root of unity.
				return false
			}
			if x.Cmp(nm1) == 0 {
				roots[string(prev.Bytes())] = struct{}{}
				neg := new(big.Int).Sub(n, prev)
				roots[string(neg.Bytes())] = struct{}{}
				if len(roots) > 2 {
					return false
				}
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}

// strongWitness reports whether n is a strong probable prime to base a,
// given the precomputed split n-1 = d * 2^r.
func strongWitness(n, nm1, a, d *big.Int, r uint) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nm1) == 0 {
		return true
	}
	for uu := uint(1); uu < r; uu++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nm1) == 0 {
			return true
		}
		if x.Cmp(bigOne) == 0 {
			return false
		}
	}
	return false
}

// MillerRabinExtraWitnesses derives count additional witnesses in [2, n-2]
// from the candidate itself, by counter-mode SHA-256 over its magnitude
// bytes. The derivation is deterministic, so repeated calls agree; it exists
// to harden the fixed witness set against adversarially constructed
// candidates. Returns nil when n < 5 leaves no room for a witness.
func MillerRabinExtraWitnesses(n *big.Int, count int) []*big.Int {
	if count <= 0 {
		return nil
	}
	span := new(big.Int).Sub(n, big.NewInt(3))
	if span.Sign() <= 0 {
		return nil
	}
	seed := sha256simd.Sum256(n.Bytes())
	buf := make([]byte, len(seed)+4)
	copy(buf, seed[:])

	out := make([]*big.Int, 0, count)
	for ctr := uint32(0); len(out) < count; ctr++ {
		binary.BigEndian.PutUint32(buf[len(seed):], ctr)
		h := sha256simd.Sum256(buf)
		w := new(big.Int).SetBytes(h[:])
		w.Mod(w, span)
		w.Add(w, bigTwo)
		out = append(out, w)
	}
	return out
}
