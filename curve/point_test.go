// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.  It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const (
	gCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	twoGCompressed   = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	threeGCompressed = "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"

	curveOrder = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func TestGenerator(t *testing.T) {
	g := Generator()
	if got := hex.EncodeToString(g.SerializeCompressed()); got != gCompressed {
		t.Fatalf("compressed: got: %s want: %s", got, gCompressed)
	}
	if got := hex.EncodeToString(g.SerializeUncompressed()); got != gUncompressed {
		t.Fatalf("uncompressed: got: %s want: %s", got, gUncompressed)
	}

	// Mutating the returned copy must not affect later callers.
	g.x.SetInt(1)
	if got := hex.EncodeToString(Generator().SerializeCompressed()); got != gCompressed {
		t.Fatalf("generator was modified: %s", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	g := Generator()

	added, err := g.Add(g)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	doubled, err := g.Double()
	if err != nil {
		t.Fatalf("double: %v", err)
	}
	multiplied, err := g.Multiply([]byte{2})
	if err != nil {
		t.Fatalf("multiply: %v", err)
	}
	for i, p := range []*Point{added, doubled, multiplied} {
		if got := hex.EncodeToString(p.SerializeCompressed()); got != twoGCompressed {
			t.Errorf("#%d: got: %s want: %s", i, got, twoGCompressed)
		}
	}

	three, err := added.Add(g)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	threeMul, err := g.Multiply([]byte{3})
	if err != nil {
		t.Fatalf("multiply: %v", err)
	}
	if !three.IsEqual(threeMul) {
		t.Fatalf("2G+G != 3G")
	}
	if got := hex.EncodeToString(three.SerializeCompressed()); got != threeGCompressed {
		t.Fatalf("got: %s want: %s", got, threeGCompressed)
	}

	// (N-1)G = -G, so adding G yields the point at infinity.
	order := hexToBytes(curveOrder)
	order[31]--
	negG, err := g.Multiply(order)
	if err != nil {
		t.Fatalf("multiply: %v", err)
	}
	if negG.X() != g.X() || negG.Y() == g.Y() {
		t.Fatalf("(N-1)G is not -G")
	}
	if _, err := negG.Add(g); !errors.Is(err, ErrPointAtInfinity) {
		t.Fatalf("got: %v want: %v", err, ErrPointAtInfinity)
	}
}

// TestMultiplyMatchesBaseMult ensures the generic double-and-add agrees with
// the optimized base point multiplication.
func TestMultiplyMatchesBaseMult(t *testing.T) {
	tests := []string{
		"cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5",
		"0000000000000000000000000000000000000000000000000000000000000001",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		"18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725",
	}

	for i, test := range tests {
		k := hexToBytes(test)
		priv, err := PrivKeyFromBytes(k)
		if err != nil {
			t.Errorf("#%d: %v", i, err)
			continue
		}
		p, err := Generator().Multiply(k)
		if err != nil {
			t.Errorf("#%d: %v", i, err)
			continue
		}
		want := priv.PubKey(false).Bytes()
		if got := p.SerializeUncompressed(); !bytes.Equal(got, want) {
			t.Errorf("#%d: got: %x want: %x", i, got, want)
		}
	}
}

func TestMultiplyInvalidScalar(t *testing.T) {
	tests := []struct {
		name string
		k    []byte
	}{
		{"zero", make([]byte, 32)},
		{"empty", nil},
		{"order", hexToBytes(curveOrder)},
		{"above order", hexToBytes("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")},
		{"33 bytes", append([]byte{0}, hexToBytes(curveOrder)...)},
	}

	for _, test := range tests {
		_, err := Generator().Multiply(test.k)
		if !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("%s: got: %v want: %v", test.name, err, ErrInvalidScalar)
		}
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{{
		name: "compressed generator",
		in:   gCompressed,
	}, {
		name: "uncompressed generator",
		in:   gUncompressed,
	}, {
		name: "compressed odd",
		in:   "0348ca8b4e7c0c75ecfd4b437535d186a12f3027be0c29d2125e9c0dec48677caa",
	}, {
		name: "bad length",
		in:   "0279be667ef9dcbbac55a06295ce870b07",
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "empty",
		in:   "",
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "compressed with uncompressed format",
		in:   "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "uncompressed with hybrid format",
		in: "0679be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		err: ErrPubKeyInvalidFormat,
	}, {
		name: "x too big",
		in:   "02ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		err:  ErrPubKeyXTooBig,
	}, {
		name: "y too big",
		in: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		err: ErrPubKeyYTooBig,
	}, {
		name: "not on curve",
		in: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b9",
		err: ErrPubKeyNotOnCurve,
	}}

	for _, test := range tests {
		p, err := ParsePoint(hexToBytes(test.in))
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%s: got: %v want: %v", test.name, err, test.err)
			}
			if !errors.Is(err, ErrInvalidPublicKey) {
				t.Errorf("%s: %v is not an ErrInvalidPublicKey", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		var got []byte
		if len(test.in) == 2*PubKeyBytesLenCompressed {
			got = p.SerializeCompressed()
		} else {
			got = p.SerializeUncompressed()
		}
		if hex.EncodeToString(got) != test.in {
			t.Errorf("%s: got: %x want: %s", test.name, got, test.in)
		}
	}
}

func TestNewPoint(t *testing.T) {
	g := Generator()
	x, y := g.X(), g.Y()
	p, err := NewPoint(&x, &y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsEqual(g) {
		t.Fatalf("got: %x want: %x", p.SerializeCompressed(), g.SerializeCompressed())
	}

	y[31] ^= 1
	if _, err := NewPoint(&x, &y); !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Fatalf("got: %v want: %v", err, ErrPubKeyNotOnCurve)
	}
}
