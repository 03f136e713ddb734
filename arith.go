package primality

import "math/big"

// Shared small constants. Read-only; safe for concurrent use.
var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigFour  = big.NewInt(4)
	bigEight = big.NewInt(8)
)

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(0, 0) is 0. Inputs are not modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ModInverse returns t with a*t == 1 (mod n), normalized into [0, n), using
// the extended Euclidean algorithm. It returns ErrNoInverse when
// gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	t := new(big.Int)
	newt := big.NewInt(1)
	r := new(big.Int).Set(n)
	newr := new(big.Int).Mod(a, n)
	quotient := new(big.Int)
	tmp := new(big.Int)
	for newr.Sign() != 0 {
		quotient.Div(r, newr)
		t.Sub(t, tmp.Mul(quotient, newt))
		t, newt = newt, t
		r.Sub(r, tmp.Mul(quotient, newr))
		r, newr = newr, r
	}
	if r.Cmp(bigOne) > 0 {
		return nil, ErrNoInverse
	}
	if t.Sign() < 0 {
		t.Add(t, n)
	}
	return t.Mod(t, n), nil
}

// SplitInt decomposes n as m * 2^e with m odd and returns (e, m).
// SplitInt(0) returns (0, 0).
func SplitInt(n *big.Int) (uint, *big.Int) {
	if n.Sign() == 0 {
		return 0, new(big.Int)
	}
	e := n.TrailingZeroBits()
	return e, new(big.Int).Rsh(n, e)
}

// Jacobi computes the Jacobi symbol (m/n) for odd positive n, using the
// binary algorithm:
//
//	(a*b/n) = (a/n) * (b/n)
//	(m/n)   = ((n % m)/m) * (-1)^((n-1)/2 * (m-1)/2)
//	(2/n)   = (-1)^((n^2 - 1)/8)
//
// It returns ErrOddModulus when n is even or not positive.
func Jacobi(m, n *big.Int) (int, error) {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return 0, ErrOddModulus
	}
	j := 1
	mm := new(big.Int).Mod(m, n)
	nn := new(big.Int).Set(n)
	for mm.Cmp(bigOne) > 0 && nn.Cmp(bigOne) != 0 {
		if mm.Bit(0) == 0 {
			// n is odd here, so (2/n) depends only on n mod 8.
			switch low3(nn) {
			case 3, 5:
				j = -j
			}
			mm.Rsh(mm, 1)
		} else {
			// Reciprocity flip: both are odd, so check for 3 mod 4.
			if mm.Bit(1) == 1 && nn.Bit(1) == 1 {
				j = -j
			}
			mm, nn = new(big.Int).Mod(nn, mm), mm
		}
	}
	if mm.Cmp(bigOne) == 0 || nn.Cmp(bigOne) == 0 {
		return j, nil
	}
	if mm.Sign() == 0 {
		return 0, nil
	}
	return 0, invariantf("jacobi reduction ended at m=%v n=%v", mm, nn)
}

// low3 returns the low three bits of a non-negative x.
func low3(x *big.Int) uint {
	return x.Bit(0) | x.Bit(1)<<1 | x.Bit(2)<<2
}

// IsNonQuadraticResidue reports whether a is a quadratic non-residue mod p.
// It requires gcd(a, p) = 1, Jacobi(a, p) = -1 and Euler's criterion
// a^((p-1)/2) == p-1 (mod p) to all agree; the redundancy guards against
// inconsistent Jacobi results when p is not actually prime.
func IsNonQuadraticResidue(a, p *big.Int) (bool, error) {
	if GCD(a, p).Cmp(bigOne) != 0 {
		return false, nil
	}
	j, err := Jacobi(a, p)
	if err != nil {
		return false, err
	}
	if j != -1 {
		return false, nil
	}
	pm1 := new(big.Int).Sub(p, bigOne)
	exp := new(big.Int).Rsh(pm1, 1)
	euler := new(big.Int).Exp(a, exp, p)
	return euler.Cmp(pm1) == 0, nil
}
