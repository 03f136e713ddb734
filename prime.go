// Package primality decides whether an arbitrary-precision integer is prime,
// with a false-positive probability suitable for cryptographic key
// generation and validation. It is a battery of independent compositeness
// filters run in increasing cost order -- a gcd sieve against embedded prime
// products, a fixed multi-witness Miller-Rabin stage, and an Extended Lehmer
// (Lucas-sequence) stage -- not a prover: no certificate is produced.
//
// All mutable state lives inside a single call; concurrent calls need no
// synchronization. Results are deterministic: no witness is ever chosen at
// random.
package primality

import "math/big"

// IsPrime reports whether n is prime. Candidates below 2 are never prime.
// The stages run cost-ascending and any stage proving compositeness
// short-circuits the rest. Below 193^2 the sieve alone is a complete proof,
// so the heavier stages are skipped there.
//
// IsPrime panics with an *InvariantError if the Extended Lehmer stage hits a
// parameter-search failure, which indicates a broken invariant rather than a
// property of n and cannot occur for candidates the earlier stages passed.
func IsPrime(n *big.Int) bool {
	if n.Cmp(bigTwo) < 0 {
		return false
	}
	if !TestSmallDivisors(n) {
		return false
	}
	if n.Cmp(smallSieveExact) < 0 {
		return true
	}
	if !MillerRabinMultiWitnessPrimalityTest(n) {
		return false
	}
	ok, err := ExtendedLehmerPrimalityTest(n)
	if err != nil {
		panic(err)
	}
	return ok
}

// IsPrimeWithExtraWitnesses runs the full pipeline and then extra strong
// probable-prime rounds using witnesses derived deterministically from n
// itself (see MillerRabinExtraWitnesses). extra <= 0 degenerates to IsPrime.
func IsPrimeWithExtraWitnesses(n *big.Int, extra int) bool {
	if !IsPrime(n) {
		return false
	}
	if extra <= 0 {
		return true
	}
	nm1 := new(big.Int).Sub(n, bigOne)
	r, d := SplitInt(nm1)
	for _, a := range MillerRabinExtraWitnesses(n, extra) {
		if !strongWitness(n, nm1, a, d, r) {
			return false
		}
	}
	return true
}
