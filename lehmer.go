package primality

import "math/big"

// Recurrences satisfied by the Lehmer U/V sequences for parameters (R, Q),
// a Lucas sequence with P = sqrt(R) and the multiples of sqrt(R) removed so
// that every term stays an integer:
//
//	U[n] := (R - 2*Q) * U[n-2] - Q^2 * U[n-4];  U[0..3] = 0, 1, 1, R-Q
//	V[n] := (R - 2*Q) * V[n-2] - Q^2 * V[n-4];  V[0..3] = 2, 1, R-2Q, R-3Q
//
// and the doubling identities driving the binary computation:
//
//	all n:  U[2n]   = U[n] * V[n]
//	even n: V[2n]*2 = V[n]^2 + R*(R-4Q)*U[n]^2
//	odd n:  V[2n]*2 = R*V[n]^2 + (R-4Q)*U[n]^2
//	all n:  U[2n+1]*2 = R*U[2n] + V[2n]
//	all n:  V[2n+1]*2 = (R-4Q)*U[2n] + V[2n]
type LehmerSequenceComputer struct {
	r    *big.Int
	q    *big.Int
	mod  *big.Int
	half *big.Int // inverse of 2 mod mod
	rm4q *big.Int // R - 4Q mod mod

	uMemo map[string]*big.Int
	vMemo map[string]*big.Int
}

// memoKey maps a non-negative sequence index to a unique map key.
func memoKey(k *big.Int) string {
	return string(k.Bytes())
}

// NewLehmerSequenceComputer binds a computer to the triple (r, q, mod).
// The modulus must be odd and greater than 1 so that 2 is invertible;
// ErrOddModulus is returned otherwise. The caches are seeded with the
// closed-form values for indices 0 through 3.
func NewLehmerSequenceComputer(r, q, mod *big.Int) (*LehmerSequenceComputer, error) {
	if mod.Cmp(bigOne) <= 0 || mod.Bit(0) == 0 {
		return nil, ErrOddModulus
	}
	l := &LehmerSequenceComputer{
		r:     new(big.Int).Mod(r, mod),
		q:     new(big.Int).Mod(q, mod),
		mod:   new(big.Int).Set(mod),
		uMemo: make(map[string]*big.Int),
		vMemo: make(map[string]*big.Int),
	}
	l.half = new(big.Int).Add(l.mod, bigOne)
	l.half.Rsh(l.half, 1)
	l.rm4q = new(big.Int).Lsh(l.q, 2)
	l.rm4q.Sub(l.r, l.rm4q)
	l.rm4q.Mod(l.rm4q, l.mod)

	seedU := [4]*big.Int{
		new(big.Int),
		big.NewInt(1),
		big.NewInt(1),
		reduce(new(big.Int).Sub(l.r, l.q), l.mod),
	}
	twoQ := new(big.Int).Lsh(l.q, 1)
	threeQ := new(big.Int).Add(twoQ, l.q)
	seedV := [4]*big.Int{
		big.NewInt(2),
		big.NewInt(1),
		reduce(new(big.Int).Sub(l.r, twoQ), l.mod),
		reduce(new(big.Int).Sub(l.r, threeQ), l.mod),
	}
	for i := int64(0); i < 4; i++ {
		key := memoKey(big.NewInt(i))
		l.uMemo[key] = seedU[i]
		l.vMemo[key] = seedV[i]
	}
	return l, nil
}

func reduce(x, mod *big.Int) *big.Int {
	return x.Mod(x, mod)
}

// calc fills the caches up to index k by binary doubling and returns
// (U[k], V[k]). It walks down from the deepest already-cached prefix of k,
// doubling at every bit and advancing by one extra index wherever the bit
// is set. Halving in the identities is multiplication by the precomputed
// inverse of 2. O(log k) modular multiplications.
func (l *LehmerSequenceComputer) calc(k *big.Int) (*big.Int, *big.Int) {
	mod := l.mod

	// Deepest cached ancestor of k under right shifts. Without one, start
	// from the identity pair at index 0.
	bits := k.BitLen() - 1
	ui := new(big.Int)
	vi := big.NewInt(2)
	for ii := 1; ii <= bits; ii++ {
		key := memoKey(new(big.Int).Rsh(k, uint(ii)))
		if u, ok := l.uMemo[key]; ok {
			ui = u
			vi = l.vMemo[key]
			bits = ii - 1
			break
		}
	}

	t1 := new(big.Int)
	t2 := new(big.Int)
	for ii := bits; ii >= 0; ii-- {
		idx := new(big.Int).Rsh(k, uint(ii))

		u2 := new(big.Int).Mul(ui, vi)
		u2.Mod(u2, mod)

		v2 := new(big.Int)
		t1.Mul(vi, vi)
		t2.Mul(ui, ui)
		t2.Mul(t2, l.rm4q)
		if k.Bit(ii+1) == 1 {
			// Previous index was odd: V[2n]*2 = R*V[n]^2 + (R-4Q)*U[n]^2.
			t1.Mul(t1, l.r)
		} else {
			// Previous index was even: V[2n]*2 = V[n]^2 + R*(R-4Q)*U[n]^2.
			t2.Mul(t2, l.r)
		}
		v2.Add(t1, t2)
		v2.Mul(v2, l.half)
		v2.Mod(v2, mod)

		evenKey := memoKey(new(big.Int).AndNot(idx, bigOne))
		l.uMemo[evenKey] = u2
		l.vMemo[evenKey] = v2

		if idx.Bit(0) == 1 {
			u21 := new(big.Int).Mul(l.r, u2)
			u21.Add(u21, v2)
			u21.Mul(u21, l.half)
			u21.Mod(u21, mod)
			v21 := new(big.Int).Mul(l.rm4q, u2)
			v21.Add(v21, v2)
			v21.Mul(v21, l.half)
			v21.Mod(v21, mod)
			key := memoKey(idx)
			l.uMemo[key] = u21
			l.vMemo[key] = v21
			ui, vi = u21, v21
		} else {
			ui, vi = u2, v2
		}
	}
	return ui, vi
}

// U returns U[k] mod the bound modulus.
func (l *LehmerSequenceComputer) U(k *big.Int) *big.Int {
	if u, ok := l.uMemo[memoKey(k)]; ok {
		return new(big.Int).Set(u)
	}
	u, _ := l.calc(k)
	return new(big.Int).Set(u)
}

// V returns V[k] mod the bound modulus.
func (l *LehmerSequenceComputer) V(k *big.Int) *big.Int {
	if v, ok := l.vMemo[memoKey(k)]; ok {
		return new(big.Int).Set(v)
	}
	_, v := l.calc(k)
	return new(big.Int).Set(v)
}

// UV returns (U[k], V[k]) from a single cache walk.
func (l *LehmerSequenceComputer) UV(k *big.Int) (*big.Int, *big.Int) {
	key := memoKey(k)
	if u, ok := l.uMemo[key]; ok {
		return new(big.Int).Set(u), new(big.Int).Set(l.vMemo[key])
	}
	u, v := l.calc(k)
	return new(big.Int).Set(u), new(big.Int).Set(v)
}

// VSquared returns the square of the underlying Lucas V at index k, reduced
// mod the modulus. The Lehmer V carries an implicit factor of sqrt(R) at odd
// indices, so the square picks up a factor of R there.
func (l *LehmerSequenceComputer) VSquared(k *big.Int) *big.Int {
	v := l.V(k)
	v.Mul(v, v)
	v.Mod(v, l.mod)
	if k.Bit(0) == 1 {
		v.Mul(v, l.r)
		v.Mod(v, l.mod)
	}
	return v
}
