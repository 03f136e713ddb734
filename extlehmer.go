package primality

import "math/big"

// ExtendedLehmerPrimalityTest applies the battery of Lehmer-sequence
// conditions from "Extensions in the Theory of Lucas and Lehmer
// Pseudoprimes" to n, for every seed in {2,3,4,5} crossed with both Jacobi
// signs. Every parameter choice must pass every check for n to pass.
//
// A false result proves n composite. An InvariantError means a parameter or
// root search that must succeed for a prime modulus failed -- the caller ran
// this stage on input the cheaper filters should have rejected first. The
// modulus must be odd and coprime to the scanned parameters, which holds for
// anything that survived TestSmallDivisors.
func ExtendedLehmerPrimalityTest(n *big.Int) (bool, error) {
	// One root finder serves every trial; built on first need since most
	// composites reaching this stage die before the root checks.
	var modroot *RootFinder

	for _, seqStart := range [...]int64{2, 3, 4, 5} {
		for _, desiredDSign := range [...]int{+1, -1} {
			// First D = seqStart (mod 4) whose Jacobi symbol has the
			// desired sign. A zero symbol exposes a shared factor.
			D := big.NewInt(seqStart)
			dSign := 0
			for ; D.Cmp(n) < 0; D.Add(D, bigFour) {
				s, err := Jacobi(D, n)
				if err != nil {
					return false, err
				}
				if s == 0 {
					return false, nil
				}
				if s == desiredDSign {
					dSign = s
					break
				}
			}
			if dSign == 0 {
				return false, invariantf("no D = %d (mod 4) with Jacobi sign %+d below %v", seqStart, desiredDSign, n)
			}

			// First R > D+4, R = D (mod 4), with the opposite sign.
			R := new(big.Int).Add(D, bigEight)
			rSign := 0
			for ; R.Cmp(n) < 0; R.Add(R, bigFour) {
				s, err := Jacobi(R, n)
				if err != nil {
					return false, err
				}
				if s == 0 {
					return false, nil
				}
				if s != dSign {
					rSign = s
					break
				}
			}
			if rSign == 0 {
				return false, invariantf("no R above %v with Jacobi sign %+d below %v", D, -dSign, n)
			}

			Q := new(big.Int).Sub(R, D)
			Q.Rsh(Q, 2)
			qSign, err := Jacobi(Q, n)
			if err != nil {
				return false, err
			}
			if qSign == 0 {
				return false, nil
			}

			// The sequence parameters must share nothing with n.
			g := new(big.Int).Lsh(R, 1)
			g.Mul(g, Q)
			g.Mul(g, D)
			if GCD(g, n).Cmp(bigOne) != 0 {
				return false, nil
			}

			Q = Q.Mod(Q, n)
			R = R.Mod(R, n)

			l, err := NewLehmerSequenceComputer(R, Q, n)
			if err != nil {
				return false, err
			}
			J := dSign * rSign
			nmj := new(big.Int).Sub(n, big.NewInt(int64(J)))
			s, d := SplitInt(nmj)

			// Lehmer: U[n-J] == 0.
			if l.U(nmj).Sign() != 0 {
				return false, nil
			}

			// Euler-Lehmer: half-index term vanishes, which of U or V
			// depending on the sign of (RQ/n).
			rq := new(big.Int).Mul(R, Q)
			rqSign, err := Jacobi(rq, n)
			if err != nil {
				return false, err
			}
			halfIdx := new(big.Int).Rsh(nmj, 1)
			if rqSign == +1 {
				if l.U(halfIdx).Sign() != 0 {
					return false, nil
				}
			} else {
				if l.V(halfIdx).Sign() != 0 {
					return false, nil
				}
			}

			// Strong Lehmer: U[d] != 0 with every V[d*2^r] != 0 proves
			// compositeness.
			if l.U(d).Sign() != 0 {
				allNonzero := true
				for r := uint(0); r < s; r++ {
					if l.V(new(big.Int).Lsh(d, r)).Sign() == 0 {
						allNonzero = false
						break
					}
				}
				if allNonzero {
					return false, nil
				}
			}

			// Strong Lehmer 2: V[d*2^s] must land exactly on
			// 2 * sign(R) * Q^((1-J)/2).
			want := new(big.Int).Exp(Q, big.NewInt(int64((1-J)/2)), n)
			want.Lsh(want, 1)
			if rSign < 0 {
				want.Neg(want)
			}
			want.Mod(want, n)
			if l.V(new(big.Int).Lsh(d, s)).Cmp(want) != 0 {
				return false, nil
			}

			// A(i) = V[d*2^(s-i)] + 2*Q^(d*2^(s-i-1)), the value whose
			// square roots the next level of V must hit.
			A := func(i uint) *big.Int {
				a := l.V(new(big.Int).Lsh(d, s-i))
				qp := new(big.Int).Exp(Q, new(big.Int).Lsh(d, s-i-1), n)
				a.Add(a, qp.Lsh(qp, 1))
				return a.Mod(a, n)
			}

			if modroot == nil {
				modroot, err = NewRootFinder(n)
				if err != nil {
					return false, err
				}
			}

			// Walk the square-root chain down the power-of-two levels.
			for ii := uint(0); ii+1 < s; ii++ {
				plus, minus := modroot.Root(A(ii))
				if plus == nil {
					return false, nil
				}
				v := l.V(new(big.Int).Lsh(d, s-ii-1))
				if v.Cmp(plus) != 0 && v.Cmp(minus) != 0 {
					return false, nil
				}
			}

			// Final level: the odd part itself. An odd d leaves one factor
			// of sqrt(R) in V[d], so divide it out of the square first.
			a := A(s - 1)
			if d.Bit(0) == 1 {
				inv, err := ModInverse(R, n)
				if err != nil {
					return false, invariantf("R=%v not invertible mod %v after gcd screen", R, n)
				}
				a.Mul(a, inv)
				a.Mod(a, n)
			}
			plus, minus := modroot.Root(a)
			if plus == nil {
				return false, nil
			}
			vd := l.V(d)
			if vd.Cmp(plus) != 0 && vd.Cmp(minus) != 0 {
				return false, nil
			}
		}
	}
	return true, nil
}
