package primality

import "math/big"

// RootFinder extracts square roots modulo a fixed odd modulus assumed to be
// prime, by the Tonelli-Shanks algorithm. Construction precomputes the
// generator derived from the smallest quadratic non-residue and the odd part
// of n-1; instances are immutable afterwards and safe for concurrent use.
//
// If the bound modulus is not actually prime the results are undefined. The
// caller contract is that a RootFinder is only built after the cheaper
// compositeness filters have failed to disprove primality.
type RootFinder struct {
	n *big.Int
	e uint
	s *big.Int
	g *big.Int
}

// NewRootFinder builds a RootFinder for the odd modulus n. It returns an
// InvariantError when no quadratic non-residue exists below n, which cannot
// happen for a prime n > 2.
func NewRootFinder(n *big.Int) (*RootFinder, error) {
	rf := &RootFinder{n: new(big.Int).Set(n)}
	nm1 := new(big.Int).Sub(n, bigOne)
	rf.e, rf.s = SplitInt(nm1)

	non := big.NewInt(2)
	found := false
	for ; non.Cmp(n) < 0; non.Add(non, bigOne) {
		ok, err := IsNonQuadraticResidue(non, n)
		if err != nil {
			return nil, err
		}
		if ok {
			found = true
			break
		}
	}
	if !found {
		return nil, invariantf("no quadratic non-residue below %v", n)
	}
	rf.g = new(big.Int).Exp(non, rf.s, rf.n)
	return rf, nil
}

// Mod returns the modulus the finder is bound to.
func (rf *RootFinder) Mod() *big.Int {
	return new(big.Int).Set(rf.n)
}

// Root returns the two square roots of a mod n, or (nil, nil) when a has no
// square root. Root(0) is (0, 0) and Root(1) is (1, n-1); the two returned
// roots are always negations of each other mod n.
func (rf *RootFinder) Root(a *big.Int) (*big.Int, *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int), new(big.Int)
	}
	n := rf.n
	a = new(big.Int).Mod(a, n)
	j, err := Jacobi(a, n)
	if err != nil || j == -1 {
		return nil, nil
	}
	if a.Cmp(bigOne) == 0 {
		return big.NewInt(1), new(big.Int).Sub(n, bigOne)
	}

	exp := new(big.Int).Add(rf.s, bigOne)
	exp.Rsh(exp, 1)
	x := new(big.Int).Exp(a, exp, n)
	b := new(big.Int).Exp(a, rf.s, n)
	g := new(big.Int).Set(rf.g)
	r := rf.e

	bm := new(big.Int)
	t := new(big.Int)
	for {
		// Find the least m < r with b^(2^m) == 1. The exponent order of b
		// divides 2^r for a prime modulus, so absence of such an m means the
		// modulus lied to us; bail out rather than loop forever.
		bm.Set(b)
		m := uint(0)
		for ; m < r; m++ {
			if bm.Cmp(bigOne) == 0 {
				break
			}
			bm.Mul(bm, bm)
			bm.Mod(bm, n)
		}
		if m == r {
			return nil, nil
		}
		if m == 0 {
			neg := new(big.Int).Sub(n, x)
			return x, neg.Mod(neg, n)
		}

		t.Exp(g, new(big.Int).Lsh(bigOne, r-m-1), n)
		x.Mul(x, t)
		x.Mod(x, n)
		g.Mul(t, t)
		g.Mod(g, n)
		b.Mul(b, g)
		b.Mod(b, n)
		r = m
	}
}

// Roots is an alias for Root.
func (rf *RootFinder) Roots(a *big.Int) (*big.Int, *big.Int) {
	return rf.Root(a)
}
