package primality

import "math/big"

// TestSmallDivisors screens n against the embedded prime products. A false
// result proves n composite (or below 2). A true result proves that n has no
// prime factor at or below 23029 -- a full primality proof only when n is
// small enough that a composite would need such a factor.
func TestSmallDivisors(n *big.Int) bool {
	if n.Cmp(bigTwo) < 0 {
		return false
	}
	if GCD(n, tinyPrimeProduct).Cmp(bigOne) != 0 {
		// n shares a factor with the primes below 192; it is prime only if
		// it is one of them.
		return isTinyPrime(n)
	}
	// No factor below 193, so nothing composite can hide below 193^2.
	if n.Cmp(smallSieveExact) < 0 {
		return true
	}
	for i := range smallPrimeProducts {
		if GCD(n, smallPrimeProducts[i]).Cmp(bigOne) != 0 {
			return false
		}
	}
	return true
}

func isTinyPrime(n *big.Int) bool {
	if !n.IsInt64() {
		return false
	}
	v := n.Int64()
	for _, p := range tinyPrimes {
		if v == p {
			return true
		}
	}
	return false
}
