// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wif

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
)

const testKey = "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"

var mainnet = []byte{0x80}

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		wif        string
		compressed bool
		typ        Type
		checksum   string
	}{
		{"5KN7MzqK5wt2TP1fQCYyHBtDrXdJuXbUzm4A9rKAteGu3Qi5CVR", false, TypeUncompressed, "f0a25c0c"},
		{"L44B5gGEpqEDRS9vVPz7QT35jcBG2r3CZwSwQ4fCewXAhAhqGVpP", true, TypeCompressed, "dc37f844"},
	}

	priv, err := curve.PrivKeyFromBytes(hexToBytes(testKey))
	if err != nil {
		t.Fatal(err)
	}
	for i, test := range tests {
		if got := Encode(priv, mainnet, test.compressed, nil); got != test.wif {
			t.Errorf("#%d: encode got: %s want: %s", i, got, test.wif)
			continue
		}

		key, compressed, err := Decode(test.wif, mainnet, base58check.Bitcoin)
		if err != nil {
			t.Errorf("#%d: unexpected error: %v", i, err)
			continue
		}
		if got := hex.EncodeToString(key.Bytes()); got != testKey {
			t.Errorf("#%d: key got: %s want: %s", i, got, testKey)
		}
		if compressed != test.compressed {
			t.Errorf("#%d: compressed got: %v want: %v", i, compressed, test.compressed)
		}

		typ, err := TypeOfWIF(test.wif, mainnet, nil)
		if err != nil || typ != test.typ {
			t.Errorf("#%d: type got: %v, %v want: %v", i, typ, err, test.typ)
		}
		if TypeOf(test.compressed) != test.typ {
			t.Errorf("#%d: TypeOf got: %v want: %v", i, TypeOf(test.compressed), test.typ)
		}

		// Encoding must leave the key usable.
		if got := Encode(priv, mainnet, test.compressed, nil); got != test.wif {
			t.Errorf("#%d: second encode got: %s want: %s", i, got, test.wif)
		}
		if got := hex.EncodeToString(priv.Bytes()); got != testKey {
			t.Errorf("#%d: key after encode got: %s want: %s", i, got, testKey)
		}

		checksum, err := Checksum(test.wif, mainnet, nil)
		if err != nil || hex.EncodeToString(checksum) != test.checksum {
			t.Errorf("#%d: checksum got: %x, %v want: %s", i, checksum, err, test.checksum)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	key := hexToBytes(testKey)
	encode := func(parts ...[]byte) string {
		var b []byte
		for _, p := range parts {
			b = append(b, p...)
		}
		return base58check.Encode(b, nil)
	}

	tests := []struct {
		name string
		wif  string
		err  error
	}{{
		name: "bad checksum",
		wif:  "5KN7MzqK5wt2TP1fQCYyHBtDrXdJuXbUzm4A9rKAteGu3Qi5CVS",
		err:  ErrInvalidEncoding,
	}, {
		name: "testnet prefix",
		wif:  encode([]byte{0xef}, key),
		err:  ErrInvalidPrefix,
	}, {
		name: "bad suffix",
		wif:  encode(mainnet, key, []byte{0x02}),
		err:  ErrInvalidSuffix,
	}, {
		name: "short key",
		wif:  encode(mainnet, key[:31]),
		err:  ErrInvalidLength,
	}, {
		name: "long key",
		wif:  encode(mainnet, key, []byte{0x01, 0x01}),
		err:  ErrInvalidLength,
	}, {
		name: "zero key",
		wif:  encode(mainnet, make([]byte, 32)),
		err:  ErrInvalidKey,
	}, {
		name: "key equal to the order",
		wif:  encode(mainnet, hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")),
		err:  ErrInvalidKey,
	}}

	for _, test := range tests {
		_, _, err := Decode(test.wif, mainnet, nil)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got: %v want: %v", test.name, err, test.err)
		}
		if !errors.Is(err, ErrWIF) {
			t.Errorf("%s: %v is not an ErrWIF", test.name, err)
		}
	}

	_, _, err := Decode(encode(mainnet, make([]byte, 32)), mainnet, nil)
	if !errors.Is(err, curve.ErrInvalidScalar) {
		t.Errorf("cause not preserved: %v", err)
	}
}

// TestMultiBytePrefix ensures prefixes longer than one byte round trip.
func TestMultiBytePrefix(t *testing.T) {
	prefix := []byte{0x05, 0x82}
	priv, err := curve.PrivKeyFromBytes(hexToBytes(testKey))
	if err != nil {
		t.Fatal(err)
	}
	s := Encode(priv, prefix, true, nil)
	got, compressed, err := Decode(s, prefix, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !compressed || hex.EncodeToString(got.Bytes()) != testKey {
		t.Fatalf("got: %x compressed %v", got.Bytes(), compressed)
	}
	if _, _, err := Decode(s, mainnet, nil); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("got: %v want: %v", err, ErrInvalidPrefix)
	}
}
