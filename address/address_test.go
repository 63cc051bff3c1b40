// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ModChain/bip38/base58check"
	"github.com/ModChain/bip38/curve"
)

func TestEncodeDecode(t *testing.T) {
	const (
		compressed   = "02d2ce831dd06e5c1f5b1121ef34c2af4bcb01b126e309234adbc3561b60c9360e"
		uncompressed = "04d2ce831dd06e5c1f5b1121ef34c2af4bcb01b126e309234adbc3561b60c9360ea7f23327b49ba7f10d17fad15f068b8807dbbc9e4ace5d4a0b40264eefaf31a4"
	)

	tests := []struct {
		name   string
		pubKey string
		prefix byte
		want   string
	}{
		{"mainnet compressed", compressed, 0x00, "164MQi977u9GUteHr4EPH27VkkdxmfCvGW"},
		{"mainnet uncompressed", uncompressed, 0x00, "1Jq6MksXQVWzrznvZzxkV6oY57oWXD9TXB"},
		{"testnet compressed", compressed, 0x6f, "mkaJhmE5vvaXG17uZdCm6wKpckEfnG4yt9"},
		{"testnet uncompressed", uncompressed, 0x6f, "myM3eoxWDWxFe7GYHZw8K21rw7QDNZeDYM"},
	}

	for _, test := range tests {
		b, err := hex.DecodeString(test.pubKey)
		if err != nil {
			t.Fatal(err)
		}
		pub, err := curve.ParsePubKey(b)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}

		addr := Encode(pub, []byte{test.prefix}, nil)
		if addr != test.want {
			t.Errorf("%s: got: %s want: %s", test.name, addr, test.want)
			continue
		}

		hash, err := Decode(addr, []byte{test.prefix}, base58check.Bitcoin)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got, want := hex.EncodeToString(hash), hex.EncodeToString(base58check.Hash160(b)); got != want {
			t.Errorf("%s: hash got: %s want: %s", test.name, got, want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		addr   string
		prefix []byte
		err    error
	}{{
		name:   "wrong network",
		addr:   "1Jq6MksXQVWzrznvZzxkV6oY57oWXD9TXB",
		prefix: []byte{0x6f},
		err:    ErrInvalidPrefix,
	}, {
		name:   "bad checksum",
		addr:   "1Jq6MksXQVWzrznvZzxkV6oY57oWXD9TXC",
		prefix: []byte{0x00},
		err:    ErrInvalidEncoding,
	}, {
		name:   "wrong length",
		addr:   "5KN7MzqK5wt2TP1fQCYyHBtDrXdJuXbUzm4A9rKAteGu3Qi5CVR",
		prefix: []byte{0x80},
		err:    ErrInvalidLength,
	}, {
		name:   "two byte prefix",
		addr:   "1Jq6MksXQVWzrznvZzxkV6oY57oWXD9TXB",
		prefix: []byte{0x05, 0x82},
		err:    ErrInvalidLength,
	}}

	for _, test := range tests {
		_, err := Decode(test.addr, test.prefix, nil)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got: %v want: %v", test.name, err, test.err)
		}
		if !errors.Is(err, ErrAddress) {
			t.Errorf("%s: %v is not an ErrAddress", test.name, err)
		}
	}

	_, err := Decode("1Jq6MksXQVWzrznvZzxkV6oY57oWXD9TXC", []byte{0x00}, nil)
	if !errors.Is(err, base58check.ErrChecksumMismatch) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"1Jq6MksXQVWzrznvZzxkV6oY57oWXD9TXB", "e957a24a"},
		{"164MQi977u9GUteHr4EPH27VkkdxmfCvGW", "43be4179"},
	}
	for _, test := range tests {
		if got := hex.EncodeToString(Hash(test.addr)); got != test.want {
			t.Errorf("%s: got: %s want: %s", test.addr, got, test.want)
		}
	}
}
