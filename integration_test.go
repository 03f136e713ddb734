package primality

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// The secp256k1 parameters give the pipeline two independently verified
// 256-bit primes to chew on, pulled from the reference curve implementation
// rather than hardcoded here.

func TestIsPrimeSecp256k1FieldPrime(t *testing.T) {
	if testing.Short() {
		t.Skip("256-bit candidate")
	}
	p := btcec.S256().P
	if !IsPrime(p) {
		t.Errorf("IsPrime rejected the secp256k1 field prime %v", p)
	}
	if !IsPrime(btcec.S256().N) {
		t.Errorf("IsPrime rejected the secp256k1 group order %v", btcec.S256().N)
	}
}

func TestIsPrimeSecp256k1Neighbors(t *testing.T) {
	if testing.Short() {
		t.Skip("256-bit candidates")
	}
	p := btcec.S256().P
	for _, delta := range []int64{-1, 1} {
		n := new(big.Int).Add(p, big.NewInt(delta))
		if IsPrime(n) {
			t.Errorf("IsPrime accepted %v", n)
		}
	}
	pn := new(big.Int).Mul(btcec.S256().P, btcec.S256().N)
	if IsPrime(pn) {
		t.Error("IsPrime accepted the product of two 256-bit primes")
	}
}

func TestPipelineStagesAgreeOnSecp256k1Order(t *testing.T) {
	if testing.Short() {
		t.Skip("256-bit candidate")
	}
	n := btcec.S256().N
	if !TestSmallDivisors(n) {
		t.Fatal("sieve rejected the group order")
	}
	if !MillerRabinMultiWitnessPrimalityTest(n) {
		t.Fatal("Miller-Rabin rejected the group order")
	}
	ok, err := ExtendedLehmerPrimalityTest(n)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Extended Lehmer rejected the group order")
	}
	ok, err = SelfridgePrimalityTest(n)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Selfridge rejected the group order")
	}
}
